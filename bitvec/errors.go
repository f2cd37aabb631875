package bitvec

import "errors"

var (
	// ErrNegativeLength indicates a negative element count was requested.
	ErrNegativeLength = errors.New("bitvec: negative length")

	// ErrWidthOutOfRange indicates a PackedVector width outside [1, 64].
	ErrWidthOutOfRange = errors.New("bitvec: width must be in [1, 64]")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")

	// ErrValueOutOfRange indicates a value that does not fit in the
	// vector's element width.
	ErrValueOutOfRange = errors.New("bitvec: value does not fit in element width")
)
