package queue

import "github.com/ef-ds/deque/v2"

// Q is a FIFO queue backed by a deque, used to stage command callbacks during
// dispatch.
type Q[T any] struct {
	d deque.Deque[T]
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	return q.d.PopFront()
}

// Peek returns the first item from the queue without removing it
func (q *Q[T]) Peek() (T, bool) {
	return q.d.Front()
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}
