package scc

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/hyperweb/graph"
)

// Tarjan computes a strongly-connected-component decomposition of g in one
// DFS pass. Component ids are assigned so that ascending id
// order is a valid topological order of the condensation: the first
// component closed by the DFS (a sink of the condensation) receives the
// highest id, the last closed (a source) receives id 0.
func Tarjan(g graph.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumNodes()
	t := &tarjanState{
		g:       g,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: bits.New(n),
	}
	for i := range t.index {
		t.index[i] = -1
	}

	for v := 0; v < n; v++ {
		if t.index[v] == -1 {
			t.strongconnect(graph.NI(v))
		}
	}

	k := len(t.emitted)
	component := make([]int, n)
	for i, members := range t.emitted {
		id := k - 1 - i
		for _, v := range members {
			component[v] = id
		}
	}
	return &Decomposition{component: component, numComp: k}, nil
}

type tarjanState struct {
	g       graph.Graph
	index   []int
	low     []int
	onStack bits.Bits
	stack   []graph.NI
	counter int
	emitted [][]graph.NI // components in the order the DFS closes them
}

func (t *tarjanState) strongconnect(v graph.NI) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack.SetBit(int(v), 1)

	for _, w := range t.g.Successors(v) {
		switch {
		case t.index[w] == -1:
			t.strongconnect(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		case t.onStack.Bit(int(w)) == 1:
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] == t.index[v] {
		var members []graph.NI
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack.SetBit(int(w), 0)
			members = append(members, w)
			if w == v {
				break
			}
		}
		t.emitted = append(t.emitted, members)
	}
}
