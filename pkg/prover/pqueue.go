package prover

import "container/heap"

// priorityQueue is the container/heap-backed passive queue from §4.F,
// keyed by the active heuristic's Scorer with FIFO (clause id) tie-break.
// saturate.go owns one private instance per Saturate call; clauseset.Set
// only tracks membership and subsumption, never ordering.
type priorityQueue struct {
	items []*Clause
	score Scorer
}

var _ heap.Interface = (*priorityQueue)(nil)

func (q *priorityQueue) Len() int { return len(q.items) }

func (q *priorityQueue) Less(i, j int) bool {
	si, sj := q.score(q.items[i]), q.score(q.items[j])
	if si != sj {
		return si < sj
	}
	return q.items[i].ID < q.items[j].ID
}

func (q *priorityQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *priorityQueue) Push(x any) { q.items = append(q.items, x.(*Clause)) }

func (q *priorityQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// removeID drops the clause with the given id from the queue, used when a
// later insertion backward-subsumes an already-queued passive clause.
func (q *priorityQueue) removeID(id int) {
	for i, c := range q.items {
		if c.ID == id {
			heap.Remove(q, i)
			return
		}
	}
}
