// Package queue provides an unbounded lock-free multi-producer queue.
//
// Producers push with a single compare-and-swap and never block. The
// consumer detaches everything pending with one atomic swap (TakeAll), so
// there is exactly one ownership-transfer point and no pop loop racing
// against concurrent pushes.
//
// Order: values come out of TakeAll in the order their pushes completed.
// Pushes from one goroutine keep their program order; racing pushes from
// different goroutines are ordered by whichever CAS lands first.
package queue

import "sync/atomic"

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is an unbounded MPSC queue. The zero value is an empty queue.
//
// Thread safety: Push and Len are safe from any number of goroutines.
// TakeAll is safe to call concurrently with Push; concurrent TakeAll calls
// each receive a disjoint set of values.
type Queue[T any] struct {
	// head is the most recently pushed node; the list runs newest to oldest.
	head atomic.Pointer[node[T]]

	// pending counts values pushed but not yet taken.
	pending atomic.Int64
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends v. It never blocks and never fails.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{value: v}
	for {
		old := q.head.Load()
		n.next = old
		if q.head.CompareAndSwap(old, n) {
			q.pending.Add(1)
			return
		}
	}
}

// TakeAll atomically detaches every pending value and returns them oldest
// first. It returns nil if the queue is empty.
func (q *Queue[T]) TakeAll() []T {
	head := q.head.Swap(nil)
	if head == nil {
		return nil
	}

	n := 0
	for p := head; p != nil; p = p.next {
		n++
	}
	q.pending.Add(int64(-n))

	out := make([]T, n)
	for p := head; p != nil; p = p.next {
		n--
		out[n] = p.value
	}
	return out
}

// Snapshot returns the pending values oldest first without detaching them.
// Nodes are immutable once published, so the walk is safe while producers
// push; values pushed during the walk are not included.
func (q *Queue[T]) Snapshot() []T {
	head := q.head.Load()
	if head == nil {
		return nil
	}

	n := 0
	for p := head; p != nil; p = p.next {
		n++
	}
	out := make([]T, n)
	for p := head; p != nil; p = p.next {
		n--
		out[n] = p.value
	}
	return out
}

// Len returns the number of pending values. It is a snapshot and may be
// stale by the time the caller looks at it.
func (q *Queue[T]) Len() int {
	n := q.pending.Load()
	if n < 0 {
		// A TakeAll can observe a node before its Push has counted it.
		return 0
	}
	return int(n)
}

// Empty reports whether no values are pending.
func (q *Queue[T]) Empty() bool {
	return q.head.Load() == nil
}
