package visit

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed to a visit.
	ErrGraphNil = errors.New("visit: graph is nil")

	// ErrRootOutOfRange is returned when a root node index is not in [0, N).
	ErrRootOutOfRange = errors.New("visit: root node out of range")

	// ErrInvalidGranularity is returned when a non-positive granularity is
	// requested for a parallel visit.
	ErrInvalidGranularity = errors.New("visit: granularity must be positive")

	// ErrInvalidWorkerCount is returned when a non-positive worker count is
	// requested for a parallel visit.
	ErrInvalidWorkerCount = errors.New("visit: worker count must be positive")
)
