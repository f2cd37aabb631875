package visit

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperweb/bitvec"
	"github.com/katalvlaran/hyperweb/graph"
)

// parItem is one queued frontier entry of the default parallel BFS: the
// discovered node together with the arc that won its claim. The low-memory
// variant stores bare node indices instead (see parallelBFSLowMem).
type parItem struct {
	node   graph.NI
	parent graph.NI
}

// ParallelBFS runs a work-stealing breadth-first search from root across a
// fixed worker pool. Workers cooperatively drain the
// current frontier in chunks of granularity nodes; each candidate target is
// claimed exactly once via an atomic swap-and-check on the visited bit, so
// the Unknown callback for a node fires from exactly one winning arc.
//
// By default the frontier queues (node, parent) pairs and the Unknown
// callback for a node fires when its entry is drained at the next level.
// WithLowMemoryCallback selects the callback-in-place variant, which invokes
// the callback inside successor enumeration and queues bare node indices: a
// strictly smaller frontier, but the callback runs inside the expansion
// loop, which is slower when callbacks are heavy.
//
// Callback and filter must tolerate concurrent invocation from different
// goroutines: there is no lock around cb or the filter, only around
// appending to the next frontier.
func ParallelBFS(g graph.Graph, root graph.NI, cb BFSCallback, opts ...Option) (Outcome, error) {
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
	if cfg.granularity < 1 {
		return Completed, ErrInvalidGranularity
	}
	if cfg.workers < 1 {
		return Completed, ErrInvalidWorkerCount
	}

	visited, err := bitvec.NewBitSet(n)
	if err != nil {
		return Completed, err
	}

	if cb(BFSEvent{Kind: BFSInit, Curr: root, Parent: NoParent, Root: root}) == Stop {
		return Stopped, nil
	}
	visited.SetAtomic(int(root))

	if cfg.lowMemCallback {
		return parallelBFSLowMem(g, root, cb, &cfg, visited)
	}
	return parallelBFSQueued(g, root, cb, &cfg, visited)
}

// parallelBFSQueued is the default variant: frontier entries carry the
// winning arc's parent, and each entry's Unknown event fires as the entry is
// drained, batched per level outside the claim loop.
func parallelBFSQueued(g graph.Graph, root graph.NI, cb BFSCallback, cfg *config, visited *bitvec.BitSet) (Outcome, error) {
	var stopped atomic.Bool
	cur := []parItem{{node: root, parent: NoParent}}
	distance := 0

	for len(cur) > 0 {
		select {
		case <-cfg.ctx.Done():
			return Stopped, nil
		default:
		}

		var cursor atomic.Int64
		var nextMu sync.Mutex
		next := make([]parItem, 0, len(cur))

		dist := distance
		var grp errgroup.Group
		workers := cfg.workers
		if workers > len(cur) {
			workers = len(cur)
		}
		for w := 0; w < workers; w++ {
			grp.Go(func() error {
				localNext := make([]parItem, 0, cfg.granularity)
				for {
					if stopped.Load() {
						return nil
					}
					start := int(cursor.Add(int64(cfg.granularity))) - cfg.granularity
					if start >= len(cur) {
						return nil
					}
					end := start + cfg.granularity
					if end > len(cur) {
						end = len(cur)
					}
					localNext = localNext[:0]
					for i := start; i < end; i++ {
						if stopped.Load() {
							break
						}
						item := cur[i]
						if dist > 0 {
							unknown := BFSEvent{Kind: BFSUnknown, Curr: item.node, Parent: item.parent, Root: root, Distance: dist}
							if cb(unknown) == Stop {
								stopped.Store(true)
								break
							}
						}
						for _, succ := range g.Successors(item.node) {
							if stopped.Load() {
								break
							}
							candidate := BFSEvent{Kind: BFSUnknown, Curr: succ, Parent: item.node, Root: root, Distance: dist + 1}
							if !cfg.bfsFilter(candidate) {
								continue
							}
							if !visited.TestAndSetAtomic(int(succ)) {
								localNext = append(localNext, parItem{node: succ, parent: item.node})
							} else {
								known := candidate
								known.Kind = BFSKnown
								if cb(known) == Stop {
									stopped.Store(true)
								}
							}
						}
					}
					if len(localNext) > 0 {
						nextMu.Lock()
						next = append(next, localNext...)
						nextMu.Unlock()
					}
				}
			})
		}
		grp.Wait()

		if stopped.Load() {
			return Stopped, nil
		}
		cur = next
		distance++
	}
	return Completed, nil
}

// parallelBFSLowMem is the callback-in-place variant: the Unknown event
// fires at the moment a worker wins a node's claim, so the frontier needs
// only the node index.
func parallelBFSLowMem(g graph.Graph, root graph.NI, cb BFSCallback, cfg *config, visited *bitvec.BitSet) (Outcome, error) {
	var stopped atomic.Bool
	cur := []graph.NI{root}
	distance := 0

	for len(cur) > 0 {
		select {
		case <-cfg.ctx.Done():
			return Stopped, nil
		default:
		}

		var cursor atomic.Int64
		var nextMu sync.Mutex
		next := make([]graph.NI, 0, len(cur))

		dist := distance
		var grp errgroup.Group
		workers := cfg.workers
		if workers > len(cur) {
			workers = len(cur)
		}
		for w := 0; w < workers; w++ {
			grp.Go(func() error {
				localNext := make([]graph.NI, 0, cfg.granularity)
				for {
					if stopped.Load() {
						return nil
					}
					start := int(cursor.Add(int64(cfg.granularity))) - cfg.granularity
					if start >= len(cur) {
						return nil
					}
					end := start + cfg.granularity
					if end > len(cur) {
						end = len(cur)
					}
					localNext = localNext[:0]
					for i := start; i < end; i++ {
						if stopped.Load() {
							break
						}
						u := cur[i]
						for _, succ := range g.Successors(u) {
							if stopped.Load() {
								break
							}
							candidate := BFSEvent{Kind: BFSUnknown, Curr: succ, Parent: u, Root: root, Distance: dist + 1}
							if !cfg.bfsFilter(candidate) {
								continue
							}
							if !visited.TestAndSetAtomic(int(succ)) {
								localNext = append(localNext, succ)
								if cb(candidate) == Stop {
									stopped.Store(true)
								}
							} else {
								known := candidate
								known.Kind = BFSKnown
								if cb(known) == Stop {
									stopped.Store(true)
								}
							}
						}
					}
					if len(localNext) > 0 {
						nextMu.Lock()
						next = append(next, localNext...)
						nextMu.Unlock()
					}
				}
			})
		}
		grp.Wait()

		if stopped.Load() {
			return Stopped, nil
		}
		cur = next
		distance++
	}
	return Completed, nil
}
