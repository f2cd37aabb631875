package visit

import "context"

// config holds the tunable parameters shared by the visits in this
// package, built via functional Options.
type config struct {
	ctx             context.Context
	bfsFilter       BFSFilter
	dfsFilter       DFSFilter
	threeState      bool
	granularity     int
	workers         int
	lowMemCallback  bool
}

// Option configures a visit.
type Option func(*config)

func defaultConfig() config {
	return config{
		ctx:         context.Background(),
		bfsFilter:   func(BFSEvent) bool { return true },
		dfsFilter:   func(DFSEvent) bool { return true },
		granularity: 1,
		workers:     1,
	}
}

// WithContext sets a context whose cancellation stops the visit early, same
// as a callback returning Stop.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithBFSFilter installs a filter consulted before a BFS discovers a node.
func WithBFSFilter(f BFSFilter) Option {
	return func(c *config) {
		if f != nil {
			c.bfsFilter = f
		}
	}
}

// WithDFSFilter installs a filter consulted before a DFS discovers a node.
func WithDFSFilter(f DFSFilter) Option {
	return func(c *config) {
		if f != nil {
			c.dfsFilter = f
		}
	}
}

// WithThreeState selects the three-state (unvisited/on-stack/completed) DFS
// state machine, needed to detect back edges. Two-state (the default) is
// sufficient for topological-order extraction on a graph already known to
// be acyclic.
func WithThreeState() Option {
	return func(c *config) { c.threeState = true }
}

// WithGranularity sets the number of nodes a parallel-BFS worker claims per
// work-stealing step. Non-positive values are rejected by the caller at
// visit time (ErrInvalidGranularity).
func WithGranularity(g int) Option {
	return func(c *config) { c.granularity = g }
}

// WithWorkers sets the fixed worker-pool size for a parallel BFS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLowMemoryCallback selects the "callback-in-place" parallel BFS
// variant, which invokes the callback during successor enumeration instead
// of queueing parent pointers: a strictly smaller frontier, at the cost of
// doing more work per callback invocation when callbacks are heavy.
func WithLowMemoryCallback() Option {
	return func(c *config) { c.lowMemCallback = true }
}
