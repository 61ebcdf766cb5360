package prover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFalseConclusionYieldsNoClauses(t *testing.T) {
	ResetClauseIDs()
	// |- ~ : no premises, conclusion the False constant; its negation is
	// True, which contributes no clauses, so the initial set is empty and
	// Saturate's passive queue starts (and stays) exhausted.
	seq := Sequent{Conclusions: []*Formula{False()}}
	clauses, err := Normalize(seq)
	require.NoError(t, err)
	assert.Empty(t, clauses)
}

func TestNormalizeDetectsArityMismatch(t *testing.T) {
	seq := Sequent{
		Premises: []*Formula{Pred("P", "a")},
		Conclusions: []*Formula{
			Pred("P", "a", "b"),
		},
	}
	_, err := Normalize(seq)
	require.Error(t, err)
	var am *ArityMismatch
	require.ErrorAs(t, err, &am)
}

func TestNormalizeEqualityTriggersAxioms(t *testing.T) {
	ResetClauseIDs()
	seq := Sequent{
		Premises:    []*Formula{EqF("a", "b")},
		Conclusions: []*Formula{EqF("b", "a")},
	}
	clauses, err := Normalize(seq)
	require.NoError(t, err)

	foundReflexivity := false
	for _, c := range clauses {
		if len(c.Literals) == 1 && c.Literals[0].Positive &&
			c.Literals[0].Pred.Kind == PredEq && c.Literals[0].Pred.Lhs.IsVar() &&
			c.Literals[0].Pred.Lhs.Equal(c.Literals[0].Pred.Rhs) {
			foundReflexivity = true
		}
	}
	assert.True(t, foundReflexivity, "expected a reflexivity axiom clause")
}

func TestNormalizeNoEqualityNoAxioms(t *testing.T) {
	ResetClauseIDs()
	seq := Sequent{
		Premises:    []*Formula{Atom("A")},
		Conclusions: []*Formula{Atom("A")},
	}
	clauses, err := Normalize(seq)
	require.NoError(t, err)
	assert.False(t, anyEquality(clauses))
}

func TestDistributeOverCapUsesTseitinNaming(t *testing.T) {
	// Build a large disjunction of conjunctions so the direct
	// cross-product would exceed cnfExpansionCap.
	var big *Formula
	for i := 0; i < 10; i++ {
		conj := And(Atom("a"), Atom("b"))
		if big == nil {
			big = conj
		} else {
			big = Or(big, conj)
		}
	}
	clauses := toCNF(nnf(desugar(big), false))
	assert.Greater(t, len(clauses), 0)

	named := false
	for _, c := range clauses {
		for _, l := range c {
			if l.Pred.Kind == PredApp && strings.HasPrefix(l.Pred.Name.String(), "$tseitin") {
				named = true
			}
		}
	}
	assert.True(t, named, "expected a Tseitin-named literal once the cap is exceeded")
}
