package ringdeque

// Stack and Queue are restricted views over the same circular-buffer
// engine. They hold a Deque and only ever touch its ends, so they cost
// amortized O(1) per operation with no element shifting.

// A Stack is a last-in-first-out sequence. The zero value is ready to
// use.
type Stack[T any] struct {
	d Deque[T]
}

// Push places x on top of the stack.
func (s *Stack[T]) Push(x T) error {
	return s.d.PushBack(x)
}

// Pop removes and returns the top of the stack, or (zero, false) if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.d.PopBack()
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.d.Back()
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.d.Len()
}

// Empty returns true if the stack contains no elements.
func (s *Stack[T]) Empty() bool {
	return s.d.Empty()
}

// A Queue is a first-in-first-out sequence. The zero value is ready to
// use.
type Queue[T any] struct {
	d Deque[T]
}

// Enqueue appends x at the back of the queue.
func (q *Queue[T]) Enqueue(x T) error {
	return q.d.PushBack(x)
}

// Dequeue removes and returns the front of the queue, or (zero, false)
// if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.d.PopFront()
}

// Peek returns the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.d.Front()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// Empty returns true if the queue contains no elements.
func (q *Queue[T]) Empty() bool {
	return q.d.Empty()
}
