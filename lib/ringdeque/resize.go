package ringdeque

import (
	"math"

	"golang.org/x/xerrors"
)

// The capacity manager decides when the buffer is reallocated and moves
// the live elements across. Every reallocation copies the elements into
// the new buffer in logical order and resets head to 0, costing exactly
// count element moves. Growth doubles and shrinking waits for a 3x
// surplus, which keeps the cost amortized O(1) per operation.

// grow reallocates the full buffer to the smallest power of two that
// holds one more element, clamped to the capacity limit. It fails with
// ErrAllocation, leaving the deque untouched, if even the minimum
// capacity is over the limit.
func (d *Deque[T]) grow() error {
	need := d.count + 1
	if need < 0 {
		return xerrors.Errorf("grow past %d elements: %w", d.count, ErrAllocation)
	}
	if d.limit > 0 && need > d.limit {
		return xerrors.Errorf("grow to %d elements with limit %d: %w", need, d.limit, ErrAllocation)
	}
	newCap := 1
	for newCap < need {
		if newCap > math.MaxInt/2 {
			newCap = need
			break
		}
		newCap *= 2
	}
	if d.limit > 0 && newCap > d.limit {
		newCap = d.limit
	}
	d.realloc(newCap)
	return nil
}

// shrink is run after every removal. A buffer at three or more times
// the live count is reallocated down to twice the count; an empty deque
// releases its buffer entirely.
func (d *Deque[T]) shrink() {
	if d.count == 0 {
		d.buf = nil
		d.head = 0
		return
	}
	if len(d.buf) >= 3*d.count {
		d.realloc(2 * d.count)
	}
}

// Reserve ensures that at least additional more elements can be added
// without triggering a growth reallocation. It reallocates only when
// the free capacity is insufficient, and never shrinks. Reserve fails
// with ErrAllocation, leaving the deque untouched, if the required
// capacity is over the limit.
func (d *Deque[T]) Reserve(additional int) error {
	if additional <= 0 {
		return nil
	}
	if len(d.buf)-d.count >= additional {
		return nil
	}
	need := d.count + additional
	if need < 0 {
		return xerrors.Errorf("reserve %d more of %d elements: %w", additional, d.count, ErrAllocation)
	}
	if d.limit > 0 && need > d.limit {
		return xerrors.Errorf("reserve %d more with limit %d: %w", additional, d.limit, ErrAllocation)
	}
	d.realloc(need)
	return nil
}

// realloc moves the live elements into a fresh buffer of capacity c, in
// logical order starting at slot 0, and resets head. c must be at least
// count.
func (d *Deque[T]) realloc(c int) {
	buf := make([]T, c)
	d.copyTo(buf)
	d.buf = buf
	d.head = 0
}

// copyTo copies the live elements into dst in logical order. If the
// live region wraps, the segment at the top of the buffer goes first,
// then the wrapped segment. dst must hold at least count elements.
func (d *Deque[T]) copyTo(dst []T) int {
	if d.count == 0 {
		return 0
	}
	if d.head+d.count <= len(d.buf) {
		return copy(dst, d.buf[d.head:d.head+d.count])
	}
	n := copy(dst, d.buf[d.head:])
	n += copy(dst[n:], d.buf[:d.count-n])
	return n
}
