package graph

// NI (node index) identifies a node in [0, N). The zero value is node 0,
// a valid node whenever N > 0.
type NI int32

// MaxNodes is the reserved sentinel: every Graph implementation must
// guarantee N < MaxNodes").
const MaxNodes NI = 1<<31 - 1

// Graph is the external collaborator every algorithm in this module is
// written against. Implementations must be safe for concurrent read access
// from multiple goroutines: the algorithms here never mutate a Graph and
// never synchronize around it.
type Graph interface {
	// NumNodes returns N, the number of nodes, all indexed in [0, N).
	NumNodes() int

	// NumArcs returns M, the total number of arcs.
	NumArcs() int64

	// OutDegree returns the out-degree of v in O(1).
	OutDegree(v NI) int

	// Successors returns the ordered sequence of successors of v. The
	// returned slice must not be mutated by the caller and is only valid
	// until the next call to Successors on the same Graph from the same
	// goroutine if the implementation reuses a buffer; CSR never reuses
	// buffers, so its slices are valid for the lifetime of the graph.
	Successors(v NI) []NI
}

// Transposable is implemented by graphs that can hand back their transpose.
// Algorithms that need predecessor information (HyperBall's pre-local mode,
// ExactSumSweep's backward BFS) require a Graph paired with its transpose;
// they accept the transpose as a second Graph argument rather than through
// this interface, but CSR implements it for convenience.
type Transposable interface {
	Transpose() Graph
}

// CumulativeDegree is the sorted-by-arc-rank collaborator used by HyperBall's
// arc-balanced work scheduler: given a rank in [0, M), it
// returns the node that owns that arc and the number of arcs whose source
// precedes that node.
type CumulativeDegree interface {
	// Succ returns, for the given arc rank, the owning node and the
	// cumulative arc count at that node's first arc (i.e. the rank of the
	// node's first out-arc). Succ(0) always returns the first node with a
	// nonzero out-degree (or node 0 if N==0 is excluded by the caller).
	Succ(rank int64) (node NI, cumulativeArcsAtNodeStart int64)

	// NumArcs returns M, matching the owning Graph's NumArcs.
	NumArcs() int64
}
