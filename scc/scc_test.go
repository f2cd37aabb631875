package scc_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/scc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two SCCs, {0,1,2} feeding into {3,4,5} through the single arc (2,3).
func twoComponentGraph(t *testing.T) *graph.CSR {
	t.Helper()
	g, err := graph.NewCSR(6, [][2]graph.NI{
		{0, 1}, {1, 2}, {2, 0}, // cycle: component {0,1,2}
		{3, 4}, {4, 5}, {5, 3}, // cycle: component {3,4,5}
		{2, 3}, // bridge, one direction only
	})
	require.NoError(t, err)
	return g
}

func TestTarjan_TwoCyclePartition(t *testing.T) {
	g := twoComponentGraph(t)
	d, err := scc.Tarjan(g)
	require.NoError(t, err)
	require.Equal(t, 2, d.NumComponents())

	for _, v := range []graph.NI{0, 1, 2} {
		assert.Equal(t, d.Component(0), d.Component(v))
	}
	for _, v := range []graph.NI{3, 4, 5} {
		assert.Equal(t, d.Component(3), d.Component(v))
	}
	assert.NotEqual(t, d.Component(0), d.Component(3))
}

func TestTarjan_IdAscendingIsTopologicalOrder(t *testing.T) {
	// {3,4,5} closes first (sink), so it must receive the higher id;
	// {0,1,2} (source) must receive the lower id.
	g := twoComponentGraph(t)
	d, err := scc.Tarjan(g)
	require.NoError(t, err)
	assert.Less(t, d.Component(0), d.Component(3))
}

func TestTarjan_Sizes(t *testing.T) {
	g := twoComponentGraph(t)
	d, err := scc.Tarjan(g)
	require.NoError(t, err)
	sizes := d.ComputeSizes()
	require.Len(t, sizes, 2)
	assert.ElementsMatch(t, []int{3, 3}, sizes)
}

func TestTarjan_RejectsNilGraph(t *testing.T) {
	_, err := scc.Tarjan(nil)
	assert.ErrorIs(t, err, scc.ErrGraphNil)
}

func TestKosaraju_RejectsTransposeMismatch(t *testing.T) {
	g := twoComponentGraph(t)
	bad, err := graph.NewCSR(4, nil)
	require.NoError(t, err)
	_, err = scc.Kosaraju(g, bad)
	assert.ErrorIs(t, err, scc.ErrTransposeMismatch)
}

func TestKosaraju_MatchesTarjanPartition_TwoCycles(t *testing.T) {
	g := twoComponentGraph(t)
	tr := g.Transpose()

	tarjanD, err := scc.Tarjan(g)
	require.NoError(t, err)
	kosarajuD, err := scc.Kosaraju(g, tr)
	require.NoError(t, err)

	assert.Equal(t, tarjanD.NumComponents(), kosarajuD.NumComponents())
	assertSamePartition(t, g.NumNodes(), tarjanD, kosarajuD)
}

func TestKosaraju_MatchesTarjanPartition_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(12)
		var arcs [][2]graph.NI
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && rng.Float64() < 0.25 {
					arcs = append(arcs, [2]graph.NI{graph.NI(u), graph.NI(v)})
				}
			}
		}
		g, err := graph.NewCSR(n, arcs)
		require.NoError(t, err)
		tr := g.Transpose()

		tarjanD, err := scc.Tarjan(g)
		require.NoError(t, err)
		kosarajuD, err := scc.Kosaraju(g, tr)
		require.NoError(t, err)

		require.Equal(t, tarjanD.NumComponents(), kosarajuD.NumComponents())
		assertSamePartition(t, n, tarjanD, kosarajuD)
	}
}

// assertSamePartition checks two decompositions agree on which nodes share a
// component, independent of how each numbers its components.
func assertSamePartition(t *testing.T, n int, a, b *scc.Decomposition) {
	t.Helper()
	aToB := map[int]int{}
	bToA := map[int]int{}
	for v := 0; v < n; v++ {
		ca, cb := a.Component(graph.NI(v)), b.Component(graph.NI(v))
		if mapped, ok := aToB[ca]; ok {
			assert.Equal(t, mapped, cb, "node %d: a-component %d previously mapped to b-component %d, now sees %d", v, ca, mapped, cb)
		} else {
			aToB[ca] = cb
		}
		if mapped, ok := bToA[cb]; ok {
			assert.Equal(t, mapped, ca, "node %d: b-component %d previously mapped to a-component %d, now sees %d", v, cb, mapped, ca)
		} else {
			bToA[cb] = ca
		}
	}
}
