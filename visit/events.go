package visit

import "github.com/katalvlaran/hyperweb/graph"

// Signal is returned from a callback to request the visit continue or stop.
type Signal int

const (
	// Continue lets the visit proceed normally.
	Continue Signal = iota
	// Stop requests the visit unwind as soon as possible. Once any
	// callback returns Stop, no further callbacks are delivered.
	Stop
)

// Outcome reports how a visit ended: by exhausting reachable nodes, or by a
// callback requesting Stop. Stopping is not an error.
type Outcome int

const (
	// Completed means the visit ran to exhaustion without a Stop signal.
	Completed Outcome = iota
	// Stopped means some callback returned Stop.
	Stopped
)

// BFSEventKind distinguishes the three events a BFS traversal emits.
type BFSEventKind int

const (
	// BFSInit fires once per root, before any node is dequeued.
	BFSInit BFSEventKind = iota
	// BFSUnknown fires the first time a node is discovered.
	BFSUnknown
	// BFSKnown fires when an already-discovered node is re-encountered via
	// another arc.
	BFSKnown
)

// BFSEvent describes one step of a BFS traversal. Parent and Distance are
// meaningless for BFSInit (Parent == NoParent, Distance == 0).
type BFSEvent struct {
	Kind     BFSEventKind
	Curr     graph.NI
	Parent   graph.NI
	Root     graph.NI
	Distance int
}

// NoParent is the sentinel Parent value for a BFSEvent/DFSEvent with no
// predecessor (the root's Init/Previsit event).
const NoParent graph.NI = -1

// BFSCallback observes BFS events and may request early termination.
type BFSCallback func(BFSEvent) Signal

// BFSFilter is consulted with the candidate BFSUnknown event for an arc
// before the target is discovered; returning false skips the node for this
// arc (it may be discovered later via a different arc).
type BFSFilter func(BFSEvent) bool

// DFSEventKind distinguishes the four events a DFS traversal emits.
type DFSEventKind int

const (
	// DFSInit fires once per root, before the root is previsited.
	DFSInit DFSEventKind = iota
	// DFSPrevisit fires on first discovery of a node (pre-order).
	DFSPrevisit
	// DFSRevisit fires when an arc targets an already-discovered node.
	DFSRevisit
	// DFSCompleted fires when a node's entire subtree has been explored
	// (post-order).
	DFSCompleted
)

// DFSEvent describes one step of a DFS traversal. BackEdge is only
// meaningful on DFSRevisit in three-state mode: it reports whether the
// target is currently on the recursion stack (indicating a cycle). In
// two-state mode BackEdge is always false: only completed nodes count as
// discovered, so a node still on the recursion stack is not recognised and
// two-state mode handles only acyclic graphs (see WithThreeState).
type DFSEvent struct {
	Kind     DFSEventKind
	Curr     graph.NI
	Parent   graph.NI
	Root     graph.NI
	Depth    int
	BackEdge bool
}

// DFSCallback observes DFS events and may request early termination.
type DFSCallback func(DFSEvent) Signal

// DFSFilter is consulted with the candidate DFSPrevisit event for an arc
// before the target is discovered.
type DFSFilter func(DFSEvent) bool
