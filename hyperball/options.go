package hyperball

import "github.com/katalvlaran/hyperweb/graph"

// DiscountFunction weights a centrality contribution by iteration distance
// t. HyperBall evaluates it as d(t+1) on the iteration a node's counter
// grows at.
type DiscountFunction func(t int) float64

// granularityAlignment is the word width HyperBall's adaptive granularity
// is rounded up to.
const granularityAlignment = 64

type config struct {
	log2NumRegisters   uint
	upperBoundElements int64
	weights            []float64
	threshold          float64
	maxIterations      int
	granularity        int
	workers            int
	discountFns        []DiscountFunction
	sumOfDistances     bool
	harmonicCentrality bool
	cumDeg             graph.CumulativeDegree
}

// Option configures a HyperBall run.
type Option func(*config)

func defaultConfig(n int) config {
	return config{
		log2NumRegisters:   6,
		upperBoundElements: int64(n) + 1,
		granularity:        granularityAlignment,
		workers:            1,
	}
}

// WithLog2NumRegisters sets p, the log2 of the number of HLL registers per
// counter. Default 6 (m=64).
func WithLog2NumRegisters(p uint) Option {
	return func(c *config) { c.log2NumRegisters = p }
}

// WithUpperBoundElements sets the declared upper bound on distinct elements
// a counter may ever hold, used to derive the register width r. Invalid
// values (<=0 or exceeding the node count) are clamped to the node count at
// construction.
func WithUpperBoundElements(n int64) Option {
	return func(c *config) { c.upperBoundElements = n }
}

// WithWeights supplies a per-node weight: counter i is initialised with
// round(weights[i]) distinct synthetic elements instead of exactly one, so
// its initial estimate approximates weights[i]. Must have length equal to
// the graph's node count.
func WithWeights(w []float64) Option {
	return func(c *config) { c.weights = w }
}

// WithThreshold sets tau, the relative-increment termination threshold.
// Zero (the default) disables this termination criterion; only the
// modified-counters-zero and upper-bound-iterations criteria apply.
func WithThreshold(tau float64) Option {
	return func(c *config) { c.threshold = tau }
}

// WithMaxIterations caps the number of iterations. Non-positive (the
// default) or values exceeding the node count are clamped to the node
// count when Run starts.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithGranularity sets the starting work-stealing chunk size (in nodes) for
// the non-local parallel task, before adaptive resizing kicks in after
// iteration 0.
func WithGranularity(g int) Option {
	return func(c *config) { c.granularity = g }
}

// WithWorkers sets the fixed worker-pool size for the parallel task.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithCumulativeDegree supplies the sorted cumulative-out-degree
// collaborator, switching the non-local parallel task from a plain node
// cursor to an arc-balanced one: workers claim strides of ≈(M/N)·granularity
// arcs and map them to node ranges via the collaborator's successor lookup,
// so a worker landing on a run of high-degree hubs claims fewer nodes than
// one landing on a run of leaves. Without it, work is balanced by node
// count alone.
func WithCumulativeDegree(cd graph.CumulativeDegree) Option {
	return func(c *config) { c.cumDeg = cd }
}

// WithDiscountFunctions configures one discounted-centrality accumulator
// per function supplied; DiscountedCentrality(k, v) later returns the
// accumulator for fns[k].
func WithDiscountFunctions(fns ...DiscountFunction) Option {
	return func(c *config) { c.discountFns = fns }
}

// WithSumOfDistances enables the sum_of_distances accumulator (and hence
// Closeness, Lin, and Nieminen centrality, which derive from it).
func WithSumOfDistances() Option {
	return func(c *config) { c.sumOfDistances = true }
}

// WithHarmonicCentrality enables the sum_of_inverse_distances accumulator
// (harmonic centrality).
func WithHarmonicCentrality() Option {
	return func(c *config) { c.harmonicCentrality = true }
}
