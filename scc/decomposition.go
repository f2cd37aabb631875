package scc

import "github.com/katalvlaran/hyperweb/graph"

// Decomposition is the result of running Tarjan or Kosaraju: a per-node
// component id in [0, NumComponents()).
type Decomposition struct {
	component []int
	numComp   int
	sizes     []int // lazily computed by ComputeSizes
}

// NumComponents returns K, the number of strongly connected components.
func (d *Decomposition) NumComponents() int { return d.numComp }

// Component returns the component id of node v.
func (d *Decomposition) Component(v graph.NI) int { return d.component[v] }

// ComputeSizes returns the number of nodes in each component, computed (and
// cached) in one O(N) pass.
func (d *Decomposition) ComputeSizes() []int {
	if d.sizes != nil {
		return d.sizes
	}
	sizes := make([]int, d.numComp)
	for _, c := range d.component {
		sizes[c]++
	}
	d.sizes = sizes
	return sizes
}

// Members groups node indices by component id, in component-id order; each
// inner slice is in increasing node-index order. Used by sccdag's bridge
// scan, which needs to iterate a component's member nodes.
func (d *Decomposition) Members() [][]graph.NI {
	sizes := d.ComputeSizes()
	members := make([][]graph.NI, d.numComp)
	for c, sz := range sizes {
		members[c] = make([]graph.NI, 0, sz)
	}
	for v, c := range d.component {
		members[c] = append(members[c], graph.NI(v))
	}
	return members
}
