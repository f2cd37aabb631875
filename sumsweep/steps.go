package sumsweep

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/visit"
)

// forwardStep runs a parallel BFS on g from s, tightening backward bounds
// of every reached node and fixing s's own forward eccentricity exactly.
// Each reached node is claimed
// by exactly one worker (visit.ParallelBFS's atomic visited-bit), so the
// per-node bound updates below never race across goroutines; only the
// shared maxDist accumulator and the radius tuple need synchronization.
func (ss *SumSweep) forwardStep(s graph.NI) error {
	var maxDist atomic.Int64
	_, err := visit.ParallelBFS(ss.g, s, func(e visit.BFSEvent) visit.Signal {
		if e.Kind != visit.BFSUnknown {
			return visit.Continue
		}
		u, d := e.Curr, e.Distance
		ss.backwardTot[u] += float64(d)
		if ss.backwardIncomplete(u) && ss.backwardLow[u] < d {
			ss.backwardLow[u] = d
		}
		maxDist.Store(int64(d))
		return visit.Continue
	}, visit.WithWorkers(ss.cfg.workers), visit.WithGranularity(ss.cfg.granularity))
	if err != nil {
		return err
	}

	d := int(maxDist.Load())
	ss.forwardLow[s] = d
	ss.forwardHigh[s] = d
	if d > ss.diameterLow {
		ss.diameterLow = d
		ss.diameterVertex = s
	}
	if ss.radial.Get(int(s)) {
		ss.tryShrinkRadius(d, s)
	}
	return nil
}

// backwardStep runs a parallel BFS on the transpose from s, tightening
// forward bounds of every reached node and fixing s's own backward
// eccentricity exactly.
func (ss *SumSweep) backwardStep(s graph.NI) error {
	var maxDist atomic.Int64
	_, err := visit.ParallelBFS(ss.transpose, s, func(e visit.BFSEvent) visit.Signal {
		if e.Kind != visit.BFSUnknown {
			return visit.Continue
		}
		u, d := e.Curr, e.Distance
		ss.forwardTot[u] += float64(d)
		if ss.forwardIncomplete(u) && ss.forwardLow[u] < d {
			ss.forwardLow[u] = d
			if ss.forwardLow[u] == ss.forwardHigh[u] && ss.radial.Get(int(u)) {
				ss.tryShrinkRadius(ss.forwardLow[u], u)
			}
		}
		maxDist.Store(int64(d))
		return visit.Continue
	}, visit.WithWorkers(ss.cfg.workers), visit.WithGranularity(ss.cfg.granularity))
	if err != nil {
		return err
	}

	d := int(maxDist.Load())
	ss.backwardLow[s] = d
	ss.backwardHigh[s] = d
	return nil
}

// allCCUpperBound runs the all-components upper-bound pass: a per-SCC
// restricted pivot BFS in both directions, then two SCC-DAG propagation
// passes tightening every node's forward_high/backward_high.
//
// The backward propagation is run in topological (ascending component id)
// order and pushes an already-finalized parent's ecc_pivot_bwd into each
// child, rather than literally mirroring the forward pass's pull-from-
// children formula: processing children in topological order before their
// parents would read an unfinished ecc_pivot_bwd off of them. Pushing
// forward from each already-finalized component into its (higher-id, not
// yet finalized) children preserves the same "combine with an already-known
// value" property the forward pass relies on, while visiting components in
// an order where that property actually holds.
func (ss *SumSweep) allCCUpperBound() error {
	k := ss.dec.NumComponents()
	pivot := make([]graph.NI, k)
	for c := 0; c < k; c++ {
		pivot[c] = ss.findBestPivot(ss.members[c])
	}

	distFwdPivot := make([]int, ss.n)
	distBwdPivot := make([]int, ss.n)
	eccPivotFwd := make([]int, k)
	eccPivotBwd := make([]int, k)

	// Each component's pivot BFS pair touches only that component's own
	// node indices and its own eccPivot slot, so running components
	// concurrently needs no locking beyond capping how many run at once.
	// sem bounds that to cfg.workers, the same budget ParallelBFS gives
	// each individual BFS its goroutines from.
	sem := semaphore.NewWeighted(int64(ss.cfg.workers))
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for c := 0; c < k; c++ {
		c := c
		if err := sem.Acquire(context.Background(), 1); err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			p := pivot[c]
			component := func(e visit.BFSEvent) bool { return ss.dec.Component(e.Curr) == c }

			// BFS levels are total, so the last distance any worker stores
			// is the maximum; same pattern as forwardStep's maxDist.
			var maxFwd atomic.Int64
			_, err := visit.ParallelBFS(ss.g, p, func(e visit.BFSEvent) visit.Signal {
				if e.Kind != visit.BFSUnknown {
					return visit.Continue
				}
				distFwdPivot[e.Curr] = e.Distance
				maxFwd.Store(int64(e.Distance))
				return visit.Continue
			}, visit.WithBFSFilter(component), visit.WithWorkers(ss.cfg.workers), visit.WithGranularity(ss.cfg.granularity))
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			eccPivotFwd[c] = int(maxFwd.Load())

			var maxBwd atomic.Int64
			_, err = visit.ParallelBFS(ss.transpose, p, func(e visit.BFSEvent) visit.Signal {
				if e.Kind != visit.BFSUnknown {
					return visit.Continue
				}
				distBwdPivot[e.Curr] = e.Distance
				maxBwd.Store(int64(e.Distance))
				return visit.Continue
			}, visit.WithBFSFilter(component), visit.WithWorkers(ss.cfg.workers), visit.WithGranularity(ss.cfg.granularity))
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			eccPivotBwd[c] = int(maxBwd.Load())
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	for c := k - 1; c >= 0; c-- {
		for _, br := range ss.dag.Children(c) {
			cand := distFwdPivot[br.Start] + 1 + distBwdPivot[br.End] + eccPivotFwd[br.Target]
			if cand > eccPivotFwd[c] {
				eccPivotFwd[c] = cand
			}
		}
		if fh := ss.forwardHigh[pivot[c]]; eccPivotFwd[c] > fh {
			eccPivotFwd[c] = fh
		}
	}

	for c := 0; c < k; c++ {
		if bh := ss.backwardHigh[pivot[c]]; eccPivotBwd[c] > bh {
			eccPivotBwd[c] = bh
		}
		for _, br := range ss.dag.Children(c) {
			cPrime := br.Target
			cand := distBwdPivot[br.End] + 1 + distFwdPivot[br.Start] + eccPivotBwd[c]
			if cand > eccPivotBwd[cPrime] {
				eccPivotBwd[cPrime] = cand
			}
		}
	}

	for u := 0; u < ss.n; u++ {
		c := ss.dec.Component(graph.NI(u))
		if cand := distBwdPivot[u] + eccPivotFwd[c]; cand < ss.forwardHigh[u] {
			ss.forwardHigh[u] = cand
			if ss.forwardHigh[u] == ss.forwardLow[u] && ss.radial.Get(u) {
				ss.tryShrinkRadius(ss.forwardHigh[u], graph.NI(u))
			}
		}
		if cand := distFwdPivot[u] + eccPivotBwd[c]; cand < ss.backwardHigh[u] {
			ss.backwardHigh[u] = cand
		}
	}
	return nil
}
