// Package ringdeque implements an indexable double-ended queue backed by
// a single growable circular buffer. It gives array-like random access
// plus amortized O(1) insertion and removal at both ends, and bounds
// every mid-sequence insertion or removal at logical index i to
// min(i, n-i) element moves.
package ringdeque

import "golang.org/x/xerrors"

// A Deque is an ordered sequence of values of type T stored in a single
// contiguous buffer used as a ring. The zero value is an empty deque
// with no storage allocated and is ready to use.
//
// A Deque is not safe to use concurrently from multiple goroutines.
type Deque[T any] struct {
	// Items at logical index i in [0, count) live at physical slot
	// (head + i) % len(buf). The live region may wrap past the end of
	// the buffer. If len(buf) == 0, head == 0.
	buf   []T
	head  int
	count int
	// Maximum capacity the buffer may grow to, 0 for no limit.
	limit int
}

// New creates an empty deque with no capacity limit.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// NewBounded creates an empty deque whose buffer will never grow past
// limit elements. Once Len reaches the limit, further insertions fail
// with ErrAllocation. A limit of 0 or less means no limit.
func NewBounded[T any](limit int) *Deque[T] {
	if limit < 0 {
		limit = 0
	}
	return &Deque[T]{limit: limit}
}

// physical maps a logical index to its slot in the buffer. Only valid
// while the buffer is allocated.
func (d *Deque[T]) physical(i int) int {
	return (d.head + i) % len(d.buf)
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.count
}

// Cap returns the current capacity of the backing buffer.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// Empty returns true if the deque contains no elements.
func (d *Deque[T]) Empty() bool {
	return d.count == 0
}

// Get returns the element at logical index i, or (zero, false) if i is
// not a valid index.
func (d *Deque[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	return d.buf[d.physical(i)], true
}

// Set replaces the element at logical index i with x and returns the
// previous value, or (zero, false) if i is not a valid index. Set never
// resizes the buffer.
func (d *Deque[T]) Set(i int, x T) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	p := d.physical(i)
	old := d.buf[p]
	d.buf[p] = x
	return old, true
}

// Add inserts x at logical index i, shifting the shorter side of the
// sequence to open a slot. i may be anywhere in [0, Len()]; any other
// position fails with ErrOutOfBounds. If the buffer is full and cannot
// grow within the capacity limit, Add fails with ErrAllocation and the
// deque is left unchanged.
func (d *Deque[T]) Add(i int, x T) error {
	if i < 0 || i > d.count {
		return xerrors.Errorf("add at %d with %d elements: %w", i, d.count, ErrOutOfBounds)
	}
	if d.count == len(d.buf) {
		if err := d.grow(); err != nil {
			return err
		}
	}
	d.insert(i, x)
	return nil
}

// insert opens a one-slot gap at logical index i and writes x into it.
// The buffer must not be full. It reports how many elements the shift
// engine moved.
func (d *Deque[T]) insert(i int, x T) int {
	c := len(d.buf)
	var moved int
	if i < d.count/2 {
		// Fewer elements before i: shift them one slot earlier and
		// pull the head back.
		moved = d.shiftLeft(d.head, d.physical(i))
		d.head = (d.head - 1 + c) % c
	} else {
		moved = d.shiftRight(d.physical(i), d.physical(d.count))
	}
	d.buf[d.physical(i)] = x
	d.count++
	return moved
}

// Remove deletes and returns the element at logical index i, closing
// the gap from whichever side has fewer elements to move. It returns
// (zero, false) if i is not a valid index.
func (d *Deque[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	x, _ := d.removeAt(i)
	d.shrink()
	return x, true
}

// removeAt closes the gap left at logical index i. It reports the
// removed element and how many elements the shift engine moved. The
// vacated slot is zeroed so the buffer does not pin references.
func (d *Deque[T]) removeAt(i int) (T, int) {
	c := len(d.buf)
	x := d.buf[d.physical(i)]
	var moved, vacated int
	if i < d.count/2 {
		moved = d.shiftRight(d.head, d.physical(i))
		vacated = d.head
		d.head = (d.head + 1) % c
	} else {
		moved = d.shiftLeft(d.physical(i+1), d.physical(d.count))
		vacated = d.physical(d.count - 1)
	}
	var zero T
	d.buf[vacated] = zero
	d.count--
	return x, moved
}

// PushFront inserts x before the first element.
func (d *Deque[T]) PushFront(x T) error {
	return d.Add(0, x)
}

// PushBack appends x after the last element.
func (d *Deque[T]) PushBack(x T) error {
	return d.Add(d.count, x)
}

// PopFront removes and returns the first element, or (zero, false) if
// the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	return d.Remove(0)
}

// PopBack removes and returns the last element, or (zero, false) if the
// deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.Remove(d.count - 1)
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	return d.Get(0)
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	return d.Get(d.count - 1)
}

// Values returns a snapshot of the elements in logical order, front
// first. The returned slice is owned by the caller.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.count)
	d.copyTo(out)
	return out
}

// Clear removes all elements and releases the backing buffer, returning
// the deque to its initial unallocated state. The capacity limit is
// kept.
func (d *Deque[T]) Clear() {
	d.buf = nil
	d.head = 0
	d.count = 0
}
