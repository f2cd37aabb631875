package visit

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/hyperweb/graph"
)

// dfsState is one node's position in the two- or three-state machine
//: unvisited -> [on-stack ->] completed.
type dfsState int

const (
	stateUnvisited dfsState = iota
	stateOnStack
	stateCompleted
)

// dfsWalker holds recursive DFS state. completed tracks which nodes have
// finished (sufficient for two-state mode); onStack additionally tracks the
// current recursion path, consulted only in three-state mode to classify
// back edges. Both are plain (non-atomic) bit vectors: DFS in this package
// is single-goroutine.
type dfsWalker struct {
	g         graph.Graph
	cfg       *config
	completed bits.Bits
	onStack   bits.Bits
}

// DFS runs a sequential depth-first search from root.
func DFS(g graph.Graph, root graph.NI, cb DFSCallback, opts ...Option) (Outcome, error) {
	if g == nil {
		return Completed, ErrGraphNil
	}
	n := g.NumNodes()
	if int(root) < 0 || int(root) >= n {
		return Completed, ErrRootOutOfRange
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &dfsWalker{g: g, cfg: &cfg, completed: bits.New(n), onStack: bits.New(n)}
	if w.visitRoot(root, cb) {
		return Stopped, nil
	}
	return Completed, nil
}

// DFSAll runs a DFS forest over every node not yet reached, in increasing
// node-index order, sharing state across the whole call.
func DFSAll(g graph.Graph, cb DFSCallback, opts ...Option) (Outcome, error) {
	if g == nil {
		return Completed, ErrGraphNil
	}
	n := g.NumNodes()
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &dfsWalker{g: g, cfg: &cfg, completed: bits.New(n), onStack: bits.New(n)}
	for v := 0; v < n; v++ {
		if w.completed.Bit(v) == 1 {
			continue
		}
		if w.visitRoot(graph.NI(v), cb) {
			return Stopped, nil
		}
	}
	return Completed, nil
}

func (w *dfsWalker) visitRoot(root graph.NI, cb DFSCallback) (stopped bool) {
	if cb(DFSEvent{Kind: DFSInit, Curr: root, Parent: NoParent, Root: root}) == Stop {
		return true
	}
	return w.traverse(root, NoParent, root, 0, cb)
}

// traverse recursively explores node u, returning true iff the visit was
// stopped.
func (w *dfsWalker) traverse(u, parent, root graph.NI, depth int, cb DFSCallback) bool {
	select {
	case <-w.cfg.ctx.Done():
		return true
	default:
	}

	if w.cfg.threeState {
		w.onStack.SetBit(int(u), 1)
	}

	if cb(DFSEvent{Kind: DFSPrevisit, Curr: u, Parent: parent, Root: root, Depth: depth}) == Stop {
		return true
	}

	for _, v := range w.g.Successors(u) {
		candidate := DFSEvent{Kind: DFSPrevisit, Curr: v, Parent: u, Root: root, Depth: depth + 1}

		switch {
		case w.nodeState(v) == stateUnvisited:
			if !w.cfg.dfsFilter(candidate) {
				continue
			}
			if w.traverse(v, u, root, depth+1, cb) {
				return true
			}
		default:
			backEdge := w.cfg.threeState && w.onStack.Bit(int(v)) == 1
			revisit := DFSEvent{Kind: DFSRevisit, Curr: v, Parent: u, Root: root, Depth: depth + 1, BackEdge: backEdge}
			if cb(revisit) == Stop {
				return true
			}
		}
	}

	if w.cfg.threeState {
		w.onStack.SetBit(int(u), 0)
	}
	w.completed.SetBit(int(u), 1)

	if cb(DFSEvent{Kind: DFSCompleted, Curr: u, Parent: parent, Root: root, Depth: depth}) == Stop {
		return true
	}
	return false
}

// nodeState classifies v using whichever state machine is active.
func (w *dfsWalker) nodeState(v graph.NI) dfsState {
	if w.completed.Bit(int(v)) == 1 {
		return stateCompleted
	}
	if w.cfg.threeState && w.onStack.Bit(int(v)) == 1 {
		return stateOnStack
	}
	return stateUnvisited
}
