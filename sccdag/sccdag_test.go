package sccdag_test

import (
	"testing"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/scc"
	"github.com/katalvlaran/hyperweb/sccdag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleCrossingBridge(t *testing.T) {
	// Two 3-cycles {0,1,2} -> {3,4,5} joined by the single crossing arc (2,3).
	g, err := graph.NewCSR(6, [][2]graph.NI{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})
	require.NoError(t, err)
	tr := g.Transpose()

	d, err := scc.Tarjan(g)
	require.NoError(t, err)
	dag, err := sccdag.Build(g, tr, d)
	require.NoError(t, err)

	require.Equal(t, 2, dag.NumComponents())
	sourceComp, targetComp := d.Component(2), d.Component(3)
	children := dag.Children(sourceComp)
	require.Len(t, children, 1)
	assert.Equal(t, targetComp, children[0].Target)
	assert.Equal(t, graph.NI(2), children[0].Start)
	assert.Equal(t, graph.NI(3), children[0].End)

	// No edge in the reverse direction.
	assert.Empty(t, dag.Children(targetComp))
}

func TestBuild_AtMostOneBridgePerPair(t *testing.T) {
	// Two independent sinks {1},{2} both reachable from source {0},
	// plus a second bridge (0,2)-equivalent arc via an extra node, so
	// component 0 -> component of {2} has two candidate crossing arcs.
	g, err := graph.NewCSR(5, [][2]graph.NI{
		{0, 1}, {0, 2}, {3, 2}, {0, 3}, {3, 4}, {4, 0},
	})
	require.NoError(t, err)
	tr := g.Transpose()

	d, err := scc.Tarjan(g)
	require.NoError(t, err)
	dag, err := sccdag.Build(g, tr, d)
	require.NoError(t, err)

	seen := map[[2]int]int{}
	for c := 0; c < dag.NumComponents(); c++ {
		for _, b := range dag.Children(c) {
			key := [2]int{c, b.Target}
			seen[key]++
			assert.Equal(t, c, d.Component(b.Start))
			assert.Equal(t, b.Target, d.Component(b.End))
		}
	}
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestBuild_RejectsNilInputs(t *testing.T) {
	g, err := graph.NewCSR(1, nil)
	require.NoError(t, err)
	d, err := scc.Tarjan(g)
	require.NoError(t, err)

	_, err = sccdag.Build(g, g, nil)
	assert.ErrorIs(t, err, sccdag.ErrDecompositionNil)
	_, err = sccdag.Build(nil, g, d)
	assert.ErrorIs(t, err, sccdag.ErrGraphNil)
}
