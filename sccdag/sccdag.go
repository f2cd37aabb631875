package sccdag

import (
	"sort"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/scc"
)

// Bridge is the representative arc witnessing one edge of the condensation
// DAG: Start lies in the source component, End lies in Target.
type Bridge struct {
	Target int
	Start  graph.NI
	End    graph.NI
}

// DAG is the condensation of a graph under an scc.Decomposition: one node
// per component, edges given by Bridge arcs, laid out as a per-component
// offset table over one flattened, source-component-sorted Bridge array.
type DAG struct {
	offset  []int32 // len numComponents+1
	bridges []Bridge
}

// Children returns, in O(1), the bridges leaving component c in ascending
// target-component order.
func (d *DAG) Children(c int) []Bridge {
	return d.bridges[d.offset[c]:d.offset[c+1]]
}

// NumComponents returns the number of condensation nodes.
func (d *DAG) NumComponents() int { return len(d.offset) - 1 }

// Build constructs the condensation DAG in one linear scan over g's arcs,
// grouped by source component. For each ordered pair (c, c')
// of distinct components connected by at least one arc, the stored bridge
// maximises out-degree(start in transpose) + out-degree(end in g) among all
// arcs crossing from c to c'; ties are broken by first encounter in
// increasing node order, which is deterministic but otherwise arbitrary.
func Build(g graph.Graph, transpose graph.Graph, d *scc.Decomposition) (*DAG, error) {
	if d == nil {
		return nil, ErrDecompositionNil
	}
	if g == nil || transpose == nil {
		return nil, ErrGraphNil
	}

	k := d.NumComponents()
	best := make([]map[int]Bridge, k)
	bestScore := make([]map[int]int, k)

	n := g.NumNodes()
	for u := 0; u < n; u++ {
		uc := d.Component(graph.NI(u))
		for _, v := range g.Successors(graph.NI(u)) {
			vc := d.Component(v)
			if vc == uc {
				continue
			}
			score := transpose.OutDegree(graph.NI(u)) + g.OutDegree(v)
			if best[uc] == nil {
				best[uc] = make(map[int]Bridge)
				bestScore[uc] = make(map[int]int)
			}
			if cur, ok := bestScore[uc][vc]; !ok || score > cur {
				bestScore[uc][vc] = score
				best[uc][vc] = Bridge{Target: vc, Start: graph.NI(u), End: v}
			}
		}
	}

	offset := make([]int32, k+1)
	var flattened []Bridge
	for c := 0; c < k; c++ {
		targets := make([]int, 0, len(best[c]))
		for t := range best[c] {
			targets = append(targets, t)
		}
		sort.Ints(targets)
		for _, t := range targets {
			flattened = append(flattened, best[c][t])
		}
		offset[c+1] = int32(len(flattened))
	}

	return &DAG{offset: offset, bridges: flattened}, nil
}
