package surface

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/foprover/pkg/prover"
)

func TestCheckAritiesNoMismatch(t *testing.T) {
	occs := map[string][]occurrence{
		"P": {{arity: 2, line: 1, col: 1}, {arity: 2, line: 2, col: 5}},
	}
	assert.NoError(t, CheckArities(occs))
}

func TestCheckAritiesReportsLineAndCol(t *testing.T) {
	occs := map[string][]occurrence{
		"P": {{arity: 1, line: 1, col: 1}, {arity: 2, line: 3, col: 7}},
	}
	err := CheckArities(occs)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)

	var am *prover.ArityMismatch
	require.ErrorAs(t, merr.Errors[0], &am)
	assert.Equal(t, 1, am.FirstArity)
	assert.Equal(t, 2, am.ConflictArity)
	assert.Equal(t, 3, am.Line)
	assert.Equal(t, 7, am.Col)
}

func TestCheckAritiesReportsEveryOffendingSymbol(t *testing.T) {
	occs := map[string][]occurrence{
		"P": {{arity: 1}, {arity: 2}},
		"Q": {{arity: 0}, {arity: 3}},
		"R": {{arity: 2}, {arity: 2}},
	}
	err := CheckArities(occs)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}
