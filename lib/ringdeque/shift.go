package ringdeque

// The shift engine moves elements of a circular range one slot sideways
// to open or close a single-element gap. Ranges are half-open physical
// slot intervals [start, end); start > end means the range wraps past
// the end of the buffer. Both directions report how many elements they
// moved so callers can reason about work done.

// shiftLeft moves every element in [start, end) one physical slot
// earlier. The element at start is relocated to the slot before it,
// wrapping at the buffer boundary. start == end is a no-op.
func (d *Deque[T]) shiftLeft(start, end int) int {
	if start == end {
		return 0
	}
	n := len(d.buf)
	if start < end {
		displaced := d.buf[start]
		copy(d.buf[start:end-1], d.buf[start+1:end])
		d.buf[(start-1+n)%n] = displaced
		return end - start
	}
	// The range wraps. Shift the tail segment first so the boundary
	// element is relocated before the leading segment moves into the
	// slot it vacates.
	moved := d.shiftLeft(start, n)
	moved += d.shiftLeft(0, end)
	return moved
}

// shiftRight moves every element in [start, end) one physical slot
// later. The element at end-1 is relocated to slot end mod len,
// wrapping at the buffer boundary. start == end is a no-op.
func (d *Deque[T]) shiftRight(start, end int) int {
	if start == end {
		return 0
	}
	n := len(d.buf)
	if start < end {
		displaced := d.buf[end-1]
		copy(d.buf[start+1:end], d.buf[start:end-1])
		d.buf[end%n] = displaced
		return end - start
	}
	// Wrapped range: the segment nearer the wrap boundary goes first,
	// then the tail segment's boundary element wraps into slot 0.
	moved := d.shiftRight(0, end)
	moved += d.shiftRight(start, n)
	return moved
}
