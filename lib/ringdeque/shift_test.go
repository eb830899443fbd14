package ringdeque

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftLeft(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
		moved      int
	}{
		{name: "empty range", start: 3, end: 3, want: []int{0, 1, 2, 3, 4, 5}, moved: 0},
		{name: "contiguous interior", start: 2, end: 5, want: []int{0, 2, 3, 4, 4, 5}, moved: 3},
		{name: "displaced wraps to top", start: 0, end: 3, want: []int{1, 2, 2, 3, 4, 0}, moved: 3},
		{name: "range wraps", start: 4, end: 2, want: []int{1, 1, 2, 4, 5, 0}, moved: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Deque[int]{buf: []int{0, 1, 2, 3, 4, 5}, count: 6}
			moved := d.shiftLeft(tt.start, tt.end)
			assert.Equal(t, tt.want, d.buf)
			assert.Equal(t, tt.moved, moved)
		})
	}
}

func TestShiftRight(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
		moved      int
	}{
		{name: "empty range", start: 3, end: 3, want: []int{0, 1, 2, 3, 4, 5}, moved: 0},
		{name: "contiguous interior", start: 1, end: 4, want: []int{0, 1, 1, 2, 3, 5}, moved: 3},
		{name: "displaced wraps to bottom", start: 3, end: 6, want: []int{5, 1, 2, 3, 3, 4}, moved: 3},
		{name: "range wraps", start: 4, end: 2, want: []int{5, 0, 1, 3, 4, 4}, moved: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Deque[int]{buf: []int{0, 1, 2, 3, 4, 5}, count: 6}
			moved := d.shiftRight(tt.start, tt.end)
			assert.Equal(t, tt.want, d.buf)
			assert.Equal(t, tt.moved, moved)
		})
	}
}

// rotated builds a deque of 0..n-1 in a buffer of n+1 slots with head
// at slot h, so the live region wraps whenever h > 1.
func rotated(n, h int) *Deque[int] {
	d := &Deque[int]{buf: make([]int, n+1), head: h, count: n}
	for i := 0; i < n; i++ {
		d.buf[(h+i)%(n+1)] = i
	}
	return d
}

func TestInsertMovesShorterSide(t *testing.T) {
	const n = 64
	for _, h := range []int{0, 17, 60} {
		t.Run(fmt.Sprintf("head-%d", h), func(t *testing.T) {
			for i := 0; i <= n; i++ {
				d := rotated(n, h)
				moved := d.insert(i, 99)
				want := i
				if n-i < i {
					want = n - i
				}
				assert.Equal(t, want, moved, "insert at %d", i)
				got, ok := d.Get(i)
				require.True(t, ok)
				assert.Equal(t, 99, got)
			}
		})
	}
}

func TestRemoveMovesShorterSide(t *testing.T) {
	const n = 64
	for _, h := range []int{0, 17, 60} {
		t.Run(fmt.Sprintf("head-%d", h), func(t *testing.T) {
			for i := 0; i < n; i++ {
				d := rotated(n, h)
				x, moved := d.removeAt(i)
				assert.Equal(t, i, x)
				want := i
				if n-1-i < i {
					want = n - 1 - i
				}
				assert.Equal(t, want, moved, "remove at %d", i)
			}
		})
	}
}

// An insertion near the front must touch strictly fewer elements than
// an insertion deeper into the back half of an equal-length sequence.
func TestFrontInsertionCheaperThanMidBack(t *testing.T) {
	const n = 64
	front := rotated(n, 5)
	back := rotated(n, 5)
	movedFront := front.insert(3, -1)
	movedBack := back.insert(n-10, -1)
	assert.Less(t, movedFront, movedBack)
}

func TestRemoveZeroesVacatedSlot(t *testing.T) {
	d := New[*int]()
	v := 7
	for i := 0; i < 5; i++ {
		require.NoError(t, d.PushBack(&v))
	}
	_, ok := d.PopBack()
	require.True(t, ok)
	assert.Nil(t, d.buf[4])

	_, ok = d.PopFront()
	require.True(t, ok)
	assert.Nil(t, d.buf[0])
}
