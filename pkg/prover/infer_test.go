package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clauseOf(lits ...Literal) *Clause {
	return NewAxiomClause(lits, OriginPremise)
}

func predLit(positive bool, name string, args ...Term) Literal {
	l := Pos(App(Intern(name), args...))
	if !positive {
		l = Neg(App(Intern(name), args...))
	}
	return l
}

func TestResolveBinaryResolution(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	// P(a) ; !P(a) -> []
	c1 := clauseOf(predLit(true, "P", a))
	c2 := clauseOf(predLit(false, "P", a))

	children := Resolve(c1, c2)
	require.Len(t, children, 1)
	assert.True(t, children[0].IsEmpty())
}

func TestResolveNoUnificationNoChildren(t *testing.T) {
	ResetClauseIDs()
	a, b := ConstTerm(Intern("a")), ConstTerm(Intern("b"))
	c1 := clauseOf(predLit(true, "P", a))
	c2 := clauseOf(predLit(false, "P", b))

	assert.Empty(t, Resolve(c1, c2))
}

func TestFactorMergesUnifiableLiterals(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	a := ConstTerm(Intern("a"))
	// P(X) | P(a) factors to P(a).
	c := clauseOf(predLit(true, "P", x), predLit(true, "P", a))
	factored := Factor(c)
	assert.Len(t, factored.Literals, 1)
}

func TestParamodulateRewritesSubterm(t *testing.T) {
	ResetClauseIDs()
	a, b := ConstTerm(Intern("a")), ConstTerm(Intern("b"))
	// a == b
	eq := clauseOf(Pos(Eq(a, b)))
	// P(a)
	into := clauseOf(predLit(true, "P", a))

	children := Paramodulate(eq, into)
	require.NotEmpty(t, children)

	foundPb := false
	for _, c := range children {
		if len(c.Literals) == 1 && c.Literals[0].Pred.Kind == PredApp &&
			len(c.Literals[0].Pred.Args) == 1 && c.Literals[0].Pred.Args[0].Equal(b) {
			foundPb = true
		}
	}
	assert.True(t, foundPb, "expected a paramodulant containing P(b)")
}

func TestReflexivityResolveClosesOnIdentity(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	// !(X == X) -> []
	c := clauseOf(Neg(Eq(x, x)))
	children := ReflexivityResolve(c)
	require.Len(t, children, 1)
	assert.True(t, children[0].IsEmpty())
}

func TestDerivedClauseProvenanceDepth(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	c1 := clauseOf(predLit(true, "P", a))
	c2 := clauseOf(predLit(false, "P", a))
	children := Resolve(c1, c2)
	require.Len(t, children, 1)
	assert.Equal(t, 1, children[0].Metrics.Depth)
	assert.Equal(t, "resolution", children[0].Provenance.Rule)
	assert.ElementsMatch(t, []int{c1.ID, c2.ID}, children[0].Provenance.Parents)
}
