package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicNamesMatchesRegistry(t *testing.T) {
	names := HeuristicNames()
	assert.Len(t, names, 6)
	for _, n := range names {
		_, err := LookupHeuristic(n)
		assert.NoError(t, err, "heuristic %s should resolve", n)
	}
}

func TestLookupHeuristicUnknownNameErrors(t *testing.T) {
	_, err := LookupHeuristic("does_not_exist")
	require.Error(t, err)
}

func TestPreferEmptyScoresByLiteralCount(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	small := clauseOf(predLit(true, "P", a))
	big := clauseOf(predLit(true, "P", a), predLit(true, "Q", a))

	score, err := LookupHeuristic(HeuristicPreferEmpty)
	require.NoError(t, err)
	assert.Less(t, score(small), score(big))
}
