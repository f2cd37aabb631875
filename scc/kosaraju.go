package scc

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/hyperweb/graph"
)

// Kosaraju computes a strongly-connected-component decomposition of g using
// the two-pass algorithm: a forward DFS recording completion order, then a
// DFS over the transpose rooted at nodes in decreasing completion time, one
// new component id per root of that second pass.
//
// Kosaraju's ids are assigned independently of Tarjan's and carry no
// ordering guarantee relative to the condensation; only the node partition
// is guaranteed to match Tarjan's.
func Kosaraju(g graph.Graph, transpose graph.Graph) (*Decomposition, error) {
	if g == nil || transpose == nil {
		return nil, ErrGraphNil
	}
	n := g.NumNodes()
	if transpose.NumNodes() != n {
		return nil, ErrTransposeMismatch
	}

	order := make([]graph.NI, 0, n)
	visited := bits.New(n)
	for v := 0; v < n; v++ {
		if visited.Bit(v) == 0 {
			forwardVisit(g, graph.NI(v), &visited, &order)
		}
	}

	component := make([]int, n)
	assigned := bits.New(n)
	id := 0
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if assigned.Bit(int(v)) == 1 {
			continue
		}
		assignComponent(transpose, v, id, &assigned, component)
		id++
	}

	return &Decomposition{component: component, numComp: id}, nil
}

func forwardVisit(g graph.Graph, root graph.NI, visited *bits.Bits, order *[]graph.NI) {
	type frame struct {
		v    graph.NI
		next int
	}
	stack := []frame{{root, 0}}
	visited.SetBit(int(root), 1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		succ := g.Successors(top.v)
		if top.next >= len(succ) {
			*order = append(*order, top.v)
			stack = stack[:len(stack)-1]
			continue
		}
		w := succ[top.next]
		top.next++
		if visited.Bit(int(w)) == 0 {
			visited.SetBit(int(w), 1)
			stack = append(stack, frame{w, 0})
		}
	}
}

func assignComponent(transpose graph.Graph, root graph.NI, id int, assigned *bits.Bits, component []int) {
	stack := []graph.NI{root}
	assigned.SetBit(int(root), 1)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component[v] = id
		for _, w := range transpose.Successors(v) {
			if assigned.Bit(int(w)) == 0 {
				assigned.SetBit(int(w), 1)
				stack = append(stack, w)
			}
		}
	}
}
