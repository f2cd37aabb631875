package graph

import "sort"

// CumulativeOutDegree is the straightforward CumulativeDegree implementation
// built over a CSR's own offset table: it is exactly the prefix-sum of
// out-degrees the CSR already maintains, exposed as the collaborator
// HyperBall's arc-balanced scheduler expects.
type CumulativeOutDegree struct {
	off []int64 // shared with the owning CSR; off[v] is the cumulative count
}

// NewCumulativeOutDegree builds the collaborator from a CSR. It shares the
// CSR's offset table rather than copying it.
func NewCumulativeOutDegree(g *CSR) *CumulativeOutDegree {
	return &CumulativeOutDegree{off: g.off}
}

// NumArcs implements CumulativeDegree.
func (c *CumulativeOutDegree) NumArcs() int64 {
	return c.off[len(c.off)-1]
}

// Succ implements CumulativeDegree via binary search over the offset table:
// it returns the node owning the given arc rank and the cumulative arc
// count at that node's first out-arc.
func (c *CumulativeOutDegree) Succ(rank int64) (NI, int64) {
	n := len(c.off) - 1
	// off is non-decreasing; find the rightmost v such that off[v] <= rank.
	v := sort.Search(n, func(i int) bool { return c.off[i+1] > rank })
	return NI(v), c.off[v]
}
