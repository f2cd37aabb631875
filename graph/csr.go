package graph

import "sort"

// CSR is a compressed-sparse-row, immutable, in-memory implementation of
// Graph. It is the reference collaborator used by this module's own tests,
// the builder package's generators, and the CLI driver's text-format loader;
// production callers are expected to supply their own collaborator (for
// example a memory-mapped webgraph) implementing Graph directly.
//
// Once built, a CSR never mutates: there is no AddArc. This matches the
// "graphs are immutable for the lifetime of a computation" invariant every
// algorithm in this module relies on.
type CSR struct {
	n    int
	off  []int64 // len n+1; off[v]..off[v+1] indexes succ for node v
	succ []NI
}

// NewCSR builds a CSR graph over n nodes from an arc list. Arcs need not be
// pre-sorted; NewCSR groups and orders them internally (stable by target
// within a source, ascending). NewCSR returns ErrNegativeSize if n < 0,
// ErrSentinelOverflow if n reaches MaxNodes, and ErrNodeOutOfRange if any
// arc endpoint falls outside [0, n).
func NewCSR(n int, arcs [][2]NI) (*CSR, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if NI(n) >= MaxNodes {
		return nil, ErrSentinelOverflow
	}
	for _, a := range arcs {
		if int(a[0]) < 0 || int(a[0]) >= n || int(a[1]) < 0 || int(a[1]) >= n {
			return nil, ErrNodeOutOfRange
		}
	}

	sorted := make([][2]NI, len(arcs))
	copy(sorted, arcs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	off := make([]int64, n+1)
	for _, a := range sorted {
		off[int(a[0])+1]++
	}
	for v := 0; v < n; v++ {
		off[v+1] += off[v]
	}
	succ := make([]NI, len(sorted))
	cursor := make([]int64, n)
	copy(cursor, off[:n])
	for _, a := range sorted {
		idx := cursor[int(a[0])]
		succ[idx] = a[1]
		cursor[int(a[0])]++
	}

	return &CSR{n: n, off: off, succ: succ}, nil
}

// NumNodes implements Graph.
func (g *CSR) NumNodes() int { return g.n }

// NumArcs implements Graph.
func (g *CSR) NumArcs() int64 { return int64(len(g.succ)) }

// OutDegree implements Graph.
func (g *CSR) OutDegree(v NI) int {
	return int(g.off[int(v)+1] - g.off[int(v)])
}

// Successors implements Graph.
func (g *CSR) Successors(v NI) []NI {
	return g.succ[g.off[int(v)]:g.off[int(v)+1]]
}

// Transpose builds and returns the reverse-adjacency graph. Transpose(g)
// satisfies transpose(transpose(g)) == g up to arc
// ordering (CSR always orders successors ascending by target).
func (g *CSR) Transpose() Graph {
	arcs := make([][2]NI, 0, len(g.succ))
	for v := 0; v < g.n; v++ {
		for _, w := range g.Successors(NI(v)) {
			arcs = append(arcs, [2]NI{w, NI(v)})
		}
	}
	t, _ := NewCSR(g.n, arcs) // n and endpoints are already validated
	return t
}
