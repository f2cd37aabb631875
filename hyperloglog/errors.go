package hyperloglog

import "errors"

var (
	// ErrLog2NumRegistersTooSmall indicates p < 4, violating the byte-
	// alignment floor the register layout requires.
	ErrLog2NumRegistersTooSmall = errors.New("hyperloglog: log2(num registers) must be >= 4")

	// ErrNotWordAligned indicates m*r is not a multiple of the word width,
	// so counters could not be made word-aligned.
	ErrNotWordAligned = errors.New("hyperloglog: m*r is not a multiple of the word width")

	// ErrUpperBoundTooSmall indicates a non-positive upper bound on the
	// number of distinct elements a counter may hold.
	ErrUpperBoundTooSmall = errors.New("hyperloglog: upper bound on elements must be positive")

	// ErrCounterIndexOutOfRange indicates a counter index outside [0, C).
	ErrCounterIndexOutOfRange = errors.New("hyperloglog: counter index out of range")

	// ErrIncompatibleArrays indicates an attempt to merge or swap counters
	// belonging to register arrays with different m, r, or word layout;
	// always rejected explicitly rather than reinterpreted.
	ErrIncompatibleArrays = errors.New("hyperloglog: register arrays are not layout-compatible")

	// ErrUncommittedCache indicates Commit was called on a Counter that was
	// never cached via Cache.
	ErrUncommittedCache = errors.New("hyperloglog: counter has no active cache to commit")
)
