package sumsweep

import "github.com/katalvlaran/hyperweb/bitvec"

// OutputLevel selects which quantities ExactSumSweep computes, bounding
// missing_nodes (and hence how early Run can terminate) to only what the
// caller actually wants.
type OutputLevel int

const (
	// Radius computes only the graph's radius and its witness.
	Radius OutputLevel = iota
	// Diameter computes only the graph's diameter and its witness.
	Diameter
	// RadiusDiameter computes both radius and diameter.
	RadiusDiameter
	// AllForward computes a tight forward_high/forward_low for every node.
	AllForward
	// All computes tight bounds in both directions for every node.
	All
)

func (l OutputLevel) valid() bool {
	return l >= Radius && l <= All
}

type config struct {
	workers     int
	granularity int
	radial      *bitvec.BitSet
}

// Option configures an ExactSumSweep run.
type Option func(*config)

func defaultConfig() config {
	return config{workers: 1, granularity: 1}
}

// WithWorkers sets the fixed worker-pool size for forward/backward and
// AllCCUpperBound parallel BFS steps.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithGranularity sets the work-stealing chunk size (in nodes) for parallel
// BFS steps.
func WithGranularity(g int) Option {
	return func(c *config) { c.granularity = g }
}

// WithRadialVertices supplies a precomputed radial-vertex bit set, skipping
// the default "nodes that can reach the largest SCC" computation. Must
// have length equal to the graph's node count.
func WithRadialVertices(radial *bitvec.BitSet) Option {
	return func(c *config) { c.radial = radial }
}
