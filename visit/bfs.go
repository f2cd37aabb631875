package visit

import (
	"github.com/katalvlaran/hyperweb/bitvec"
	"github.com/katalvlaran/hyperweb/graph"
)

// queueItem pairs a node with its BFS distance and parent.
type queueItem struct {
	node     graph.NI
	parent   graph.NI
	distance int
}

// BFS runs a sequential breadth-first search from root, invoking cb for
// every event. It returns Stopped if any callback, or the
// context, requested early termination.
func BFS(g graph.Graph, root graph.NI, cb BFSCallback, opts ...Option) (Outcome, error) {
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

	visited, err := bitvec.NewBitSet(n)
	if err != nil {
		return Completed, err
	}
	return bfsFrom(g, root, cb, &cfg, visited)
}

// BFSAll runs a BFS forest: a BFSInit/traversal for every node not yet
// reached, in increasing node-index order, sharing one visited set across
// the whole call.
func BFSAll(g graph.Graph, cb BFSCallback, opts ...Option) (Outcome, error) {
	if g == nil {
		return Completed, ErrGraphNil
	}
	n := g.NumNodes()
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	visited, err := bitvec.NewBitSet(n)
	if err != nil {
		return Completed, err
	}
	for v := 0; v < n; v++ {
		if visited.Get(v) {
			continue
		}
		out, err := bfsFrom(g, graph.NI(v), cb, &cfg, visited)
		if err != nil || out == Stopped {
			return out, err
		}
	}
	return Completed, nil
}

func bfsFrom(g graph.Graph, root graph.NI, cb BFSCallback, cfg *config, visited *bitvec.BitSet) (Outcome, error) {
	if cb(BFSEvent{Kind: BFSInit, Curr: root, Parent: NoParent, Root: root}) == Stop {
		return Stopped, nil
	}

	visited.Set(int(root))
	queue := make([]queueItem, 0, g.NumNodes())
	queue = append(queue, queueItem{node: root, parent: NoParent, distance: 0})

	for len(queue) > 0 {
		select {
		case <-cfg.ctx.Done():
			return Stopped, nil
		default:
		}

		item := queue[0]
		queue = queue[1:]

		for _, succ := range g.Successors(item.node) {
			candidate := BFSEvent{Kind: BFSUnknown, Curr: succ, Parent: item.node, Root: root, Distance: item.distance + 1}
			if !visited.Get(int(succ)) {
				if !cfg.bfsFilter(candidate) {
					continue
				}
				visited.Set(int(succ))
				queue = append(queue, queueItem{node: succ, parent: item.node, distance: item.distance + 1})
				if cb(candidate) == Stop {
					return Stopped, nil
				}
			} else {
				known := candidate
				known.Kind = BFSKnown
				if cb(known) == Stop {
					return Stopped, nil
				}
			}
		}
	}
	return Completed, nil
}
