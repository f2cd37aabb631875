package sumsweep

import (
	"sync"

	"github.com/katalvlaran/hyperweb/bitvec"
	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/scc"
	"github.com/katalvlaran/hyperweb/sccdag"
	"github.com/katalvlaran/hyperweb/visit"
)

// SumSweep computes exact radius, diameter, and per-node eccentricity
// bounds for a directed graph. A zero SumSweep is not usable; construct
// one with New.
type SumSweep struct {
	g, transpose graph.Graph
	n            int
	cfg          config
	level        OutputLevel

	dec     *scc.Decomposition
	dag     *sccdag.DAG
	members [][]graph.NI
	radial  *bitvec.BitSet

	forwardLow, forwardHigh   []int
	backwardLow, backwardHigh []int
	forwardTot, backwardTot   []float64

	radiusMu     sync.RWMutex
	radiusHigh   int
	radiusVertex graph.NI

	diameterLow    int
	diameterVertex graph.NI

	iteration        int
	radiusDone       bool
	iterAtRadius     int
	diameterDone     bool
	iterAtDiameter   int

	ran bool
}

// New constructs a SumSweep over g and its transpose, computing the SCC
// decomposition and condensation DAG up front.
func New(g, transpose graph.Graph, level OutputLevel, opts ...Option) (*SumSweep, error) {
	if g == nil || transpose == nil {
		return nil, ErrGraphNil
	}
	if transpose.NumNodes() != g.NumNodes() || transpose.NumArcs() != g.NumArcs() {
		return nil, ErrTransposeMismatch
	}
	if !level.valid() {
		return nil, ErrInvalidOutputLevel
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.granularity < 1 {
		cfg.granularity = 1
	}

	n := g.NumNodes()
	if cfg.radial != nil && cfg.radial.Len() != n {
		return nil, ErrRadialVerticesLengthMismatch
	}

	dec, err := scc.Tarjan(g)
	if err != nil {
		return nil, err
	}
	dag, err := sccdag.Build(g, transpose, dec)
	if err != nil {
		return nil, err
	}
	members := dec.Members()

	ss := &SumSweep{
		g: g, transpose: transpose, n: n, cfg: cfg, level: level,
		dec: dec, dag: dag, members: members,
		forwardLow:    make([]int, n),
		forwardHigh:   make([]int, n),
		backwardLow:   make([]int, n),
		backwardHigh:  make([]int, n),
		forwardTot:    make([]float64, n),
		backwardTot:   make([]float64, n),
		radiusHigh:    n,
		diameterLow:   0,
	}
	for i := 0; i < n; i++ {
		ss.forwardHigh[i] = n
		ss.backwardHigh[i] = n
	}

	if n == 0 {
		return ss, nil
	}

	if cfg.radial != nil {
		ss.radial = cfg.radial
	} else {
		radial, err := ss.computeRadialVertices()
		if err != nil {
			return nil, err
		}
		ss.radial = radial
	}

	return ss, nil
}

// computeRadialVertices finds the nodes that can reach the largest SCC, via
// a reverse BFS (on the transpose) from an arbitrary member of that SCC.
func (ss *SumSweep) computeRadialVertices() (*bitvec.BitSet, error) {
	sizes := ss.dec.ComputeSizes()
	largest := 0
	for c, sz := range sizes {
		if sz > sizes[largest] {
			largest = c
		}
	}
	anchor := ss.members[largest][0]

	radial, err := bitvec.NewBitSet(ss.n)
	if err != nil {
		return nil, err
	}
	_, err = visit.BFS(ss.transpose, anchor, func(e visit.BFSEvent) visit.Signal {
		radial.Set(int(e.Curr))
		return visit.Continue
	})
	if err != nil {
		return nil, err
	}
	return radial, nil
}

// tryShrinkRadius applies the double-check-locking radius update: a
// cheap read-locked check before taking the write lock, then a
// retest, so concurrent callers converging on the same non-improving
// distance don't contend on the write lock.
func (ss *SumSweep) tryShrinkRadius(d int, v graph.NI) {
	ss.radiusMu.RLock()
	need := d < ss.radiusHigh
	ss.radiusMu.RUnlock()
	if !need {
		return
	}
	ss.radiusMu.Lock()
	if d < ss.radiusHigh {
		ss.radiusHigh = d
		ss.radiusVertex = v
	}
	ss.radiusMu.Unlock()
}

// findBestPivot chooses each component's upper-bound pivot: walk an SCC's
// members in reverse (node-index) order, minimising
// backward_low+forward_low+completeness penalties, ties broken by smaller
// forward_tot+backward_tot using <= so the last-scanned (lowest-index)
// equally-good candidate wins, keeping the chosen witness deterministic
// for a given graph and bounds state.
func (ss *SumSweep) findBestPivot(members []graph.NI) graph.NI {
	best := members[len(members)-1]
	bestScore := ss.pivotScore(best)
	bestTie := ss.forwardTot[best] + ss.backwardTot[best]
	for i := len(members) - 2; i >= 0; i-- {
		v := members[i]
		score := ss.pivotScore(v)
		tie := ss.forwardTot[v] + ss.backwardTot[v]
		if score < bestScore || (score == bestScore && tie <= bestTie) {
			best = v
			bestScore = score
			bestTie = tie
		}
	}
	return best
}

func (ss *SumSweep) pivotScore(v graph.NI) int {
	score := ss.backwardLow[v] + ss.forwardLow[v]
	if !ss.forwardIncomplete(v) {
		score += ss.n
	}
	if !ss.backwardIncomplete(v) {
		score += ss.n
	}
	return score
}

func (ss *SumSweep) forwardIncomplete(v graph.NI) bool {
	return ss.forwardLow[v] < ss.forwardHigh[v]
}

func (ss *SumSweep) backwardIncomplete(v graph.NI) bool {
	return ss.backwardLow[v] < ss.backwardHigh[v]
}

// filteredArgmaxMinTie returns the index maximising vec among indices
// accepted by filter, breaking ties by minimising tieBreak: the seed
// heuristic's "tie-break: lower bound" rule, which is the
// opposite tie direction from xmath.FilteredArgmax's maximising tie-break,
// so it is implemented locally rather than forced through that helper.
func filteredArgmaxMinTie(vec []float64, tieBreak []int, filter func(i int) bool) int {
	best := -1
	var bestVal float64
	var bestTie int
	for i, v := range vec {
		if !filter(i) {
			continue
		}
		if best == -1 || v > bestVal || (v == bestVal && tieBreak[i] < bestTie) {
			best = i
			bestVal = v
			bestTie = tieBreak[i]
		}
	}
	return best
}
