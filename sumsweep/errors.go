package sumsweep

import "errors"

var (
	// ErrGraphNil is returned when a nil graph or transpose is passed to New.
	ErrGraphNil = errors.New("sumsweep: graph or transpose is nil")

	// ErrTransposeMismatch is returned when the transpose disagrees with
	// the forward graph on node or arc count.
	ErrTransposeMismatch = errors.New("sumsweep: transpose does not match graph (N or M differ)")

	// ErrRadialVerticesLengthMismatch is returned when WithRadialVertices
	// supplies a bit set whose length does not equal the graph's node count.
	ErrRadialVerticesLengthMismatch = errors.New("sumsweep: radial vertices bit set length does not match node count")

	// ErrInvalidOutputLevel is returned by New for an OutputLevel outside
	// the defined range.
	ErrInvalidOutputLevel = errors.New("sumsweep: invalid output level")

	// ErrNotRun is returned by any accessor called before Run completes.
	ErrNotRun = errors.New("sumsweep: Run has not completed")

	// ErrOutputLevelDoesNotCoverQuantity is returned when an accessor for a
	// quantity the configured OutputLevel never computes is called (for
	// example Diameter() after a Radius-only run).
	ErrOutputLevelDoesNotCoverQuantity = errors.New("sumsweep: output level does not compute this quantity")
)
