package ringdeque

import "golang.org/x/xerrors"

var (
	// ErrOutOfBounds reports an insertion position past the end of the
	// sequence. Reads and removals at an absent index are not errors;
	// they report (zero, false) instead.
	ErrOutOfBounds = xerrors.New("ringdeque: index out of bounds")

	// ErrAllocation reports a buffer request that the capacity limit or
	// the integer range cannot satisfy. The deque is always left in its
	// prior, fully usable state.
	ErrAllocation = xerrors.New("ringdeque: allocation failed")
)
