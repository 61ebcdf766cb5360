package prover

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueuePopsLowestScoreFirst(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	small := clauseOf(predLit(true, "P", a))
	big := clauseOf(predLit(true, "P", a), predLit(true, "Q", a))

	score, err := LookupHeuristic(HeuristicPreferEmpty)
	require.NoError(t, err)

	pq := &priorityQueue{score: score}
	heap.Init(pq)
	heap.Push(pq, big)
	heap.Push(pq, small)

	first := heap.Pop(pq).(*Clause)
	assert.Equal(t, small.ID, first.ID)
}

func TestPriorityQueueFIFOTiesBreakByID(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	c1 := clauseOf(predLit(true, "P", a))
	c2 := clauseOf(predLit(true, "Q", a))

	score, err := LookupHeuristic(HeuristicPreferEmpty)
	require.NoError(t, err)

	pq := &priorityQueue{score: score}
	heap.Init(pq)
	heap.Push(pq, c2)
	heap.Push(pq, c1)

	first := heap.Pop(pq).(*Clause)
	assert.Equal(t, c1.ID, first.ID, "lower id should win a same-score tie")
}

func TestPriorityQueueRemoveID(t *testing.T) {
	ResetClauseIDs()
	a := ConstTerm(Intern("a"))
	c1 := clauseOf(predLit(true, "P", a))
	c2 := clauseOf(predLit(true, "Q", a))

	score, _ := LookupHeuristic(HeuristicPreferEmpty)
	pq := &priorityQueue{score: score}
	heap.Init(pq)
	heap.Push(pq, c1)
	heap.Push(pq, c2)

	pq.removeID(c1.ID)
	require.Equal(t, 1, pq.Len())
	remaining := heap.Pop(pq).(*Clause)
	assert.Equal(t, c2.ID, remaining.ID)
}
