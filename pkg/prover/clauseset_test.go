package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsumesUnitGeneralizesGround(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	a := ConstTerm(Intern("a"))

	general := clauseOf(predLit(true, "P", x))
	ground := clauseOf(predLit(true, "P", a))

	assert.True(t, Subsumes(general, ground))
	assert.False(t, Subsumes(ground, general))
}

func TestSubsumesRejectsLongerClause(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	short := clauseOf(predLit(true, "P", a))
	long := clauseOf(predLit(true, "P", a), predLit(true, "Q", a))

	assert.False(t, Subsumes(long, short))
	assert.True(t, Subsumes(short, long))
}

func TestTryInsertRejectsTautology(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	taut := clauseOf(predLit(true, "P", a), predLit(false, "P", a))

	set := NewSet()
	inserted, _ := set.TryInsert(taut)
	assert.False(t, inserted)
}

func TestTryInsertBackwardSubsumption(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	a := ConstTerm(Intern("a"))

	ground := clauseOf(predLit(true, "P", a))
	general := clauseOf(predLit(true, "P", x))

	set := NewSet()
	inserted, removed := set.TryInsert(ground)
	require.True(t, inserted)
	assert.Empty(t, removed)

	inserted, removed = set.TryInsert(general)
	require.True(t, inserted)
	assert.Contains(t, removed, ground.ID)
}

func TestTryInsertDropsSubsumedByPassive(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	a := ConstTerm(Intern("a"))

	general := clauseOf(predLit(true, "P", x))
	ground := clauseOf(predLit(true, "P", a))

	set := NewSet()
	inserted, _ := set.TryInsert(general)
	require.True(t, inserted)

	inserted, _ = set.TryInsert(ground)
	assert.False(t, inserted)
}

func TestIsRedundantAgainstActive(t *testing.T) {
	ResetClauseIDs()
	x := VarTerm(FreshVariable("X"))
	a := ConstTerm(Intern("a"))

	general := clauseOf(predLit(true, "P", x))
	ground := clauseOf(predLit(true, "P", a))

	set := NewSet()
	set.Activate(general)
	assert.True(t, set.IsRedundantAgainstActive(ground))
}
