package builder_test

import (
	"testing"

	"github.com/katalvlaran/hyperweb/builder"
	"github.com/katalvlaran/hyperweb/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, int64(5), g.NumArcs())
	assert.Equal(t, []graph.NI{1}, g.Successors(0))
	assert.Equal(t, []graph.NI{0}, g.Successors(4))
}

func TestCycle_RejectsTooFew(t *testing.T) {
	_, err := builder.Build(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.NumArcs())
	assert.Empty(t, g.Successors(3))
}

func TestStar(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(5))
	require.NoError(t, err)
	assert.Len(t, g.Successors(0), 4)
	for i := graph.NI(1); i < 5; i++ {
		assert.Empty(t, g.Successors(i))
	}
}

func TestWheel(t *testing.T) {
	g, err := builder.Build(nil, builder.Wheel(5))
	require.NoError(t, err)
	// hub is the last allocated node (index 4): 4 spokes out.
	assert.Len(t, g.Successors(4), 4)
	assert.Equal(t, int64(4+4), g.NumArcs())
}

func TestComplete(t *testing.T) {
	g, err := builder.Build(nil, builder.Complete(4))
	require.NoError(t, err)
	for i := graph.NI(0); i < 4; i++ {
		assert.Len(t, g.Successors(i), 3)
	}
}

func TestCompleteBipartite(t *testing.T) {
	g, err := builder.Build(nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumNodes())
	assert.Len(t, g.Successors(0), 3) // left node -> all 3 right nodes
	assert.Len(t, g.Successors(2), 2) // right node -> both left nodes
}

func TestGrid(t *testing.T) {
	g, err := builder.Build(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumNodes())
	// (0,0) -> (0,1) and (0,0) -> (1,0)
	assert.Len(t, g.Successors(0), 2)
	// (1,2) is the bottom-right corner: no right/bottom neighbor.
	assert.Empty(t, g.Successors(5))
}

func TestGrid_Symmetric(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithSymmetric()}, builder.Grid(2, 2))
	require.NoError(t, err)
	for i := graph.NI(0); i < 4; i++ {
		assert.Len(t, g.Successors(i), 2)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42)}
	g1, err := builder.Build(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	g2, err := builder.Build([]builder.Option{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.NumArcs(), g2.NumArcs())
	for v := 0; v < 20; v++ {
		assert.Equal(t, g1.Successors(graph.NI(v)), g2.Successors(graph.NI(v)))
	}
}

func TestRandomSparse_RejectsInvalidProbability(t *testing.T) {
	_, err := builder.Build(nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_RequiresRNGForFractionalP(t *testing.T) {
	_, err := builder.Build(nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomRegular_Degree(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithSeed(1)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	for v := 0; v < 10; v++ {
		assert.Len(t, g.Successors(graph.NI(v)), 3)
	}
}

func TestRandomRegular_RejectsOddParity(t *testing.T) {
	_, err := builder.Build([]builder.Option{builder.WithSeed(1)}, builder.RandomRegular(5, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuild_RejectsNilConstructor(t *testing.T) {
	_, err := builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)
}
