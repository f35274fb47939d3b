package relax

import "container/heap"

// entry is a pending state together with the distance it had when added.
// A popped entry whose dist is larger than the state's current distance is
// stale: a newer entry for the same state is still pending.
type entry[S comparable] struct {
	state S
	dist  uint64
}

// pending is the worklist abstraction shared by the three removal orders.
type pending[S comparable] interface {
	push(e entry[S])
	pop() entry[S]
	len() int
}

func newPending[S comparable](w Worklist, capacity int) pending[S] {
	switch w {
	case Queue:
		return &fifo[S]{items: make([]entry[S], 0, capacity)}
	case Priority:
		pq := make(entryPQ[S], 0, capacity)
		heap.Init(&pq)
		return &pq
	default:
		return &lifo[S]{items: make([]entry[S], 0, capacity)}
	}
}

// lifo is a stack: the most recently pushed entry is removed first.
type lifo[S comparable] struct {
	items []entry[S]
}

func (s *lifo[S]) push(e entry[S]) { s.items = append(s.items, e) }

func (s *lifo[S]) pop() entry[S] {
	n := len(s.items)
	e := s.items[n-1]
	s.items = s.items[:n-1]

	return e
}

func (s *lifo[S]) len() int { return len(s.items) }

// fifo is a queue backed by a slice and a head index. The consumed prefix is
// dropped once it dominates the slice.
type fifo[S comparable] struct {
	items []entry[S]
	head  int
}

func (q *fifo[S]) push(e entry[S]) { q.items = append(q.items, e) }

func (q *fifo[S]) pop() entry[S] {
	e := q.items[q.head]
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return e
}

func (q *fifo[S]) len() int { return len(q.items) - q.head }

// entryPQ is a min-heap of entries ordered by dist ascending. Improvements are
// pushed as new entries ("lazy decrease-key"); outdated ones are skipped by the
// runner when popped.
type entryPQ[S comparable] []entry[S]

// Len returns the number of items in the heap.
func (pq entryPQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq entryPQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq entryPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry[S].
func (pq *entryPQ[S]) Push(x any) { *pq = append(*pq, x.(entry[S])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *entryPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func (pq *entryPQ[S]) push(e entry[S]) { heap.Push(pq, e) }

func (pq *entryPQ[S]) pop() entry[S] { return heap.Pop(pq).(entry[S]) }

func (pq *entryPQ[S]) len() int { return len(*pq) }
