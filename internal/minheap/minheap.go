// Package minheap provides a generic binary min-heap keyed by a
// caller-supplied comparison relation.
package minheap

import (
	"container/heap"
)

// Queue is a min-heap of T.  The zero value is not usable; use New.
type Queue[T any] struct {
	h store[T]
}

// New returns an empty Queue ordered by less.  less(a, b) must report whether
// a sorts strictly before b.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: store[T]{less: less}}
}

// Insert adds x to the queue.
func (q *Queue[T]) Insert(x T) {
	heap.Push(&q.h, x)
}

// PeekMin returns the least element without removing it.  ok is false if the
// queue is empty.
func (q *Queue[T]) PeekMin() (x T, ok bool) {
	if len(q.h.list) == 0 {
		return x, false
	}
	return q.h.list[0], true
}

// RemoveMin removes and returns the least element.  ok is false if the queue
// is empty.
func (q *Queue[T]) RemoveMin() (x T, ok bool) {
	if len(q.h.list) == 0 {
		return x, false
	}
	return heap.Pop(&q.h).(T), true
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return len(q.h.list)
}

// type store {{{

type store[T any] struct {
	list []T
	less func(a, b T) bool
}

func (h *store[T]) Len() int {
	return len(h.list)
}

func (h *store[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *store[T]) Less(i, j int) bool {
	return h.less(h.list[i], h.list[j])
}

func (h *store[T]) Push(x interface{}) {
	h.list = append(h.list, x.(T))
}

func (h *store[T]) Pop() interface{} {
	var zero T
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = zero
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*store[int])(nil)

// }}}
