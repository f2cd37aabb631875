package hyperball

import "errors"

var (
	// ErrGraphNil is returned when a nil graph.Graph is passed to New.
	ErrGraphNil = errors.New("hyperball: graph is nil")

	// ErrTransposeMismatch is returned when the supplied transpose disagrees
	// with the graph on node or arc count.
	ErrTransposeMismatch = errors.New("hyperball: transpose does not match graph (N or M differ)")

	// ErrWeightsLengthMismatch is returned when WithWeights supplies a
	// slice whose length does not equal the graph's node count.
	ErrWeightsLengthMismatch = errors.New("hyperball: weights length does not match node count")

	// ErrNotRun is returned by any accessor called before Run completes.
	ErrNotRun = errors.New("hyperball: Run has not completed")

	// ErrCentralityNotConfigured is returned when an accessor for a
	// centrality that was never requested via an Option is called.
	ErrCentralityNotConfigured = errors.New("hyperball: centrality was not configured")

	// ErrInvalidDiscountIndex is returned by DiscountedCentrality when k is
	// outside the configured discount-function slice.
	ErrInvalidDiscountIndex = errors.New("hyperball: invalid discount function index")
)

// FatalInvariantError wraps a violated internal invariant (the node count
// reaching the reserved sentinel, or an encountered counter value
// exceeding its register's representable range). It is still returned
// through the normal error path rather than panicking, so a driver can log
// it and exit non-zero, but it signals a bug in this package or its
// collaborators rather than a recoverable usage error.
type FatalInvariantError struct {
	Msg string
}

func (e *FatalInvariantError) Error() string { return "hyperball: fatal invariant violated: " + e.Msg }
