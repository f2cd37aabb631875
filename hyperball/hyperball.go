package hyperball

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperweb/bitvec"
	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/hyperloglog"
	"github.com/katalvlaran/hyperweb/internal/xmath"
)

// HyperBall runs the diffusion-based approximate neighbourhood-function
// computation over a graph and, optionally, its transpose.
// A zero HyperBall is not usable; construct one with New.
type HyperBall struct {
	g         graph.Graph
	transpose graph.Graph // nil disables systolic/pre-local/local modes
	n         int
	m         int64
	cfg       config

	current *hyperloglog.RegisterArray
	result  *hyperloglog.RegisterArray

	modifiedCurrent   *bitvec.BitSet
	modifiedResult    *bitvec.BitSet
	mustBeChecked     *bitvec.BitSet
	nextMustBeChecked *bitvec.BitSet
	localChecklist    []graph.NI

	sumOfDistances        []float64
	sumOfInverseDistances []float64
	discounted            [][]float64

	neighbourhoodFunction []float64

	iteration   int
	lastDelta   int
	wasSystolic bool
	wasPreLocal bool

	ran bool
}

// New constructs a HyperBall over g (and, if non-nil, its transpose). The
// transpose is required for systolic, pre-local, and local scheduling
// modes; without it every iteration runs in standard (non-systolic) mode.
func New(g graph.Graph, transpose graph.Graph, opts ...Option) (*HyperBall, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumNodes()
	if graph.NI(n) >= graph.MaxNodes {
		return nil, &FatalInvariantError{Msg: "node count reaches the reserved sentinel"}
	}
	if transpose != nil && (transpose.NumNodes() != n || transpose.NumArcs() != g.NumArcs()) {
		return nil, ErrTransposeMismatch
	}
	cfg := defaultConfig(n)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weights != nil && len(cfg.weights) != n {
		return nil, ErrWeightsLengthMismatch
	}
	if cfg.upperBoundElements < 1 || cfg.upperBoundElements > int64(n) {
		cfg.upperBoundElements = int64(n)
	}
	if cfg.upperBoundElements < 1 {
		cfg.upperBoundElements = 1
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.granularity < 1 {
		cfg.granularity = granularityAlignment
	}

	current, err := hyperloglog.New(cfg.log2NumRegisters, cfg.upperBoundElements, n)
	if err != nil {
		return nil, err
	}
	result, err := hyperloglog.New(cfg.log2NumRegisters, cfg.upperBoundElements, n)
	if err != nil {
		return nil, err
	}
	modifiedCurrent, err := bitvec.NewBitSet(n)
	if err != nil {
		return nil, err
	}
	modifiedResult, err := bitvec.NewBitSet(n)
	if err != nil {
		return nil, err
	}
	mustBeChecked, err := bitvec.NewBitSet(n)
	if err != nil {
		return nil, err
	}
	nextMustBeChecked, err := bitvec.NewBitSet(n)
	if err != nil {
		return nil, err
	}

	hb := &HyperBall{
		g: g, transpose: transpose, n: n, m: g.NumArcs(), cfg: cfg,
		current: current, result: result,
		modifiedCurrent: modifiedCurrent, modifiedResult: modifiedResult,
		mustBeChecked: mustBeChecked, nextMustBeChecked: nextMustBeChecked,
		lastDelta: n,
	}

	if cfg.sumOfDistances {
		hb.sumOfDistances = make([]float64, n)
	}
	if cfg.harmonicCentrality {
		hb.sumOfInverseDistances = make([]float64, n)
	}
	if len(cfg.discountFns) > 0 {
		hb.discounted = make([][]float64, len(cfg.discountFns))
		for i := range hb.discounted {
			hb.discounted[i] = make([]float64, n)
		}
	}

	var totalWeight float64
	for i := 0; i < n; i++ {
		w := 1.0
		if cfg.weights != nil {
			w = cfg.weights[i]
		}
		totalWeight += w
		count := int(math.Round(w))
		if count < 0 {
			count = 0
		}
		c, err := current.Get(i)
		if err != nil {
			return nil, err
		}
		// Only distinctness of the seeded elements matters to the estimate;
		// hash64 scatters these deterministic values as well as random ones,
		// and determinism keeps repeated runs reproducible.
		for k := 0; k < count; k++ {
			c.Insert(uint64(i)<<32 | uint64(k))
		}
		modifiedCurrent.Set(i)
	}
	hb.neighbourhoodFunction = []float64{totalWeight}

	return hb, nil
}

// Run drives the iteration loop to termination. An empty graph returns
// immediately. Run is not safe to call concurrently with itself or with any
// accessor, and is not resumable after it returns.
func (hb *HyperBall) Run(ctx context.Context) error {
	if hb.n == 0 {
		hb.ran = true
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	maxIter := hb.cfg.maxIterations
	if maxIter <= 0 || maxIter > hb.n {
		maxIter = hb.n
	}

	for {
		select {
		case <-ctx.Done():
			hb.ran = true
			return ctx.Err()
		default:
		}

		terminated, err := hb.step(ctx)
		if err != nil {
			return err
		}
		if terminated || hb.iteration >= maxIter {
			break
		}
	}
	hb.ran = true
	return nil
}

// step executes one HyperBall iteration: decide the scheduling mode,
// prepare the modification bits, run the parallel diffusion task, and
// finalize the neighbourhood-function history and bank swap.
func (hb *HyperBall) step(ctx context.Context) (terminated bool, err error) {
	t := hb.iteration
	delta := hb.lastDelta

	systolic := hb.transpose != nil && t > 0 && delta < hb.n/4
	preLocal := systolic && int64(delta)*int64(hb.n) < hb.m/10
	local := hb.wasPreLocal

	if local {
		for _, u := range hb.localChecklist {
			hb.modifiedResult.ResetAtomic(int(u))
		}
	} else {
		hb.modifiedResult.Reset()
	}

	if systolic && !local {
		hb.nextMustBeChecked.Reset()
		if !hb.wasSystolic {
			hb.mustBeChecked.SetAll()
		}
	}

	g := hb.cfg.granularity
	if local {
		g = 1
	} else if t > 0 {
		g = adaptiveGranularity(g, hb.n, delta)
	}

	sum, newDelta, err := hb.runIteration(ctx, t, systolic, preLocal, local, g)
	if err != nil {
		return false, err
	}

	prev := hb.neighbourhoodFunction[len(hb.neighbourhoodFunction)-1]
	var nt1 float64
	if systolic {
		nt1 = prev + sum
	} else {
		nt1 = sum
	}
	if nt1 < prev {
		nt1 = prev
	}
	relInc := 1.0
	if prev > 0 {
		relInc = nt1 / prev
	}
	hb.neighbourhoodFunction = append(hb.neighbourhoodFunction, nt1)

	if err := hb.current.SwapWith(hb.result); err != nil {
		return false, err
	}
	hb.modifiedCurrent, hb.modifiedResult = hb.modifiedResult, hb.modifiedCurrent
	hb.mustBeChecked, hb.nextMustBeChecked = hb.nextMustBeChecked, hb.mustBeChecked

	if preLocal {
		checklist := hb.localChecklist[:0]
		for i := 0; i < hb.n; i++ {
			if hb.mustBeChecked.GetAtomic(i) {
				checklist = append(checklist, graph.NI(i))
			}
		}
		hb.localChecklist = checklist
	}

	hb.wasSystolic = systolic
	hb.wasPreLocal = preLocal
	hb.lastDelta = newDelta
	hb.iteration++

	terminated = newDelta == 0 ||
		(hb.cfg.threshold > 0 && hb.iteration > 3 && relInc < 1+hb.cfg.threshold)
	return terminated, nil
}

// runIteration launches the work-stealing parallel task over either all N
// nodes (non-local modes, chunked by granularity g) or hb.localChecklist
// (local mode, g=1), and returns the Kahan-compensated sum HyperBall's
// end-of-iteration logic folds into the neighbourhood-function history.
//
// In non-local modes the cursor is arc-balanced when a cumulative-out-degree
// collaborator was supplied: workers advance it in strides of ≈(M/N)·g arcs
// and map each claimed rank range back to a node range via the
// collaborator's successor lookup. Claimed
// node ranges tile [0, N) exactly: each claim ends at the node owning its
// final rank, which is where the next claim begins.
func (hb *HyperBall) runIteration(ctx context.Context, t int, systolic, preLocal, local bool, g int) (float64, int, error) {
	workItems := hb.n
	if local {
		workItems = len(hb.localChecklist)
	}
	if workItems == 0 {
		return 0, 0, nil
	}

	arcBalanced := !local && hb.cfg.cumDeg != nil && hb.m > 0
	var arcStride int64
	if arcBalanced {
		arcStride = hb.m / int64(hb.n) * int64(g)
		if arcStride < 1 {
			arcStride = 1
		}
	}

	workers := hb.cfg.workers
	if workers > workItems {
		workers = workItems
	}
	if workers < 1 {
		workers = 1
	}

	var cursor atomic.Int64
	var mu sync.Mutex
	var centralityMu sync.Mutex
	var total xmath.KahanSum
	var modifiedCounters atomic.Int64

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		grp.Go(func() error {
			var localSum xmath.KahanSum
			var localModified int64
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				var start, end int
				if arcBalanced {
					rank := cursor.Add(arcStride) - arcStride
					if rank >= hb.m {
						break
					}
					if rank == 0 {
						start = 0
					} else {
						node, _ := hb.cfg.cumDeg.Succ(rank)
						start = int(node)
					}
					if rank+arcStride >= hb.m {
						end = hb.n
					} else {
						node, _ := hb.cfg.cumDeg.Succ(rank + arcStride)
						end = int(node)
					}
				} else {
					start = int(cursor.Add(int64(g))) - g
					if start >= workItems {
						break
					}
					end = start + g
					if end > workItems {
						end = workItems
					}
				}

				for i := start; i < end; i++ {
					var u graph.NI
					if local {
						u = hb.localChecklist[i]
					} else {
						u = graph.NI(i)
					}
					if systolic && !local && !hb.mustBeChecked.GetAtomic(int(u)) {
						// The node cannot have changed, but its copy in the
						// result bank may still predate its current value.
						if hb.modifiedCurrent.GetAtomic(int(u)) {
							if err := hb.copyThrough(u); err != nil {
								return err
							}
						}
						continue
					}
					modified, err := hb.processNode(u, t, systolic, preLocal, &localSum, &centralityMu)
					if err != nil {
						return err
					}
					if modified {
						localModified++
					}
				}
			}
			mu.Lock()
			total.Add(localSum.Value())
			mu.Unlock()
			modifiedCounters.Add(localModified)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, 0, err
	}
	return total.Value(), int(modifiedCounters.Load()), nil
}

// copyThrough copies counter(current, u) into counter(result, u) unchanged,
// keeping the result bank self-consistent across the bank swap for nodes
// whose counter was not reprocessed this iteration.
func (hb *HyperBall) copyThrough(u graph.NI) error {
	cc, err := hb.current.Get(int(u))
	if err != nil {
		return err
	}
	rc, err := hb.result.Get(int(u))
	if err != nil {
		return err
	}
	return rc.CopyFrom(&cc)
}

// processNode performs the per-node diffusion step of the parallel task
// for a single node u, writing the merged counter into the
// result bank and updating centrality accumulators and the must-check
// bookkeeping for the next iteration. It reports whether u's counter grew.
func (hb *HyperBall) processNode(u graph.NI, t int, systolic, preLocal bool, kahan *xmath.KahanSum, centralityMu *sync.Mutex) (bool, error) {
	cc, err := hb.current.Get(int(u))
	if err != nil {
		return false, err
	}
	cc.Cache()
	pre := cc.EstimateFloat()

	anyChanged := false
	for _, v := range hb.g.Successors(u) {
		if v == u || !hb.modifiedCurrent.GetAtomic(int(v)) {
			continue
		}
		vc, err := hb.current.Get(int(v))
		if err != nil {
			return false, err
		}
		changed, err := cc.MergeFrom(&vc)
		if err != nil {
			return false, err
		}
		if changed {
			anyChanged = true
		}
	}
	post := cc.EstimateFloat()

	if !systolic {
		kahan.Add(post)
	}

	if anyChanged {
		if systolic {
			kahan.Add(post - pre)
		}
		if delta := post - pre; delta > 0 {
			hb.accumulateCentrality(u, delta, t, centralityMu)
		}
		hb.modifiedResult.SetAtomic(int(u))

		if systolic && hb.transpose != nil {
			// A modified node enters the next check set itself too when
			// preparing a local iteration: it may need a copy to the result
			// bank next iteration even if none of its successors change.
			if preLocal {
				hb.nextMustBeChecked.SetAtomic(int(u))
			}
			for _, p := range hb.transpose.Successors(u) {
				hb.nextMustBeChecked.SetAtomic(int(p))
			}
		}

		rc, err := hb.result.Get(int(u))
		if err != nil {
			return false, err
		}
		return true, rc.CopyFrom(&cc)
	}

	if hb.modifiedCurrent.GetAtomic(int(u)) {
		rc, err := hb.result.Get(int(u))
		if err != nil {
			return false, err
		}
		return false, rc.CopyFrom(&cc)
	}
	return false, nil
}

// accumulateCentrality folds a counter's growth (delta = post - pre,
// already confirmed positive by the caller) into every configured
// centrality accumulator for node u at iteration t+1. The lock is held only for this one
// node's accumulator writes, bounding contention to nodes whose counters
// actually changed.
func (hb *HyperBall) accumulateCentrality(u graph.NI, delta float64, t int, mu *sync.Mutex) {
	if hb.sumOfDistances == nil && hb.sumOfInverseDistances == nil && len(hb.discounted) == 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if hb.sumOfDistances != nil {
		hb.sumOfDistances[u] += delta * float64(t+1)
	}
	if hb.sumOfInverseDistances != nil {
		hb.sumOfInverseDistances[u] += delta / float64(t+1)
	}
	for k, fn := range hb.cfg.discountFns {
		hb.discounted[k][u] += delta * fn(t+1)
	}
}

// adaptiveGranularity implements the non-local granularity
// resizing rule: g = clamp(g * N / max(1, delta)), rounded up to a
// multiple of the word alignment and clamped to [granularityAlignment, N].
func adaptiveGranularity(g, n, delta int) int {
	if delta < 1 {
		delta = 1
	}
	g = g * n / delta
	if g < 1 {
		g = 1
	}
	if rem := g % granularityAlignment; rem != 0 {
		g += granularityAlignment - rem
	}
	if g > n {
		g = n
	}
	if g < granularityAlignment {
		g = granularityAlignment
	}
	return g
}
