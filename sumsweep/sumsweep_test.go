package sumsweep_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hyperweb/builder"
	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/internal/bruteforce"
	"github.com/katalvlaran/hyperweb/sumsweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSumSweep_CrossCheckAgainstFloydWarshall validates radius and diameter
// against an all-pairs shortest path reference over a strongly connected
// builder-generated topology. Radius is only meaningful to compare this way
// when every node is radial (the radius is restricted to radial
// vertices, nodes that can reach the largest SCC; on a strongly connected
// graph every node qualifies, so ExactSumSweep's radius coincides with the
// naive minimum eccentricity over all nodes).
func TestSumSweep_CrossCheckAgainstFloydWarshall_StronglyConnected(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(7))
	require.NoError(t, err)
	tr := g.Transpose()

	dist := bruteforce.Distances(g)
	wantRadius, wantDiameter := bruteforce.RadiusDiameter(dist)

	ss, err := sumsweep.New(g, tr, sumsweep.RadiusDiameter)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	gotRadius, err := ss.Radius()
	require.NoError(t, err)
	gotDiameter, err := ss.Diameter()
	require.NoError(t, err)

	assert.Equal(t, wantRadius, gotRadius)
	assert.Equal(t, wantDiameter, gotDiameter)
}

// TestSumSweep_CrossCheckDiameter_Path validates only the diameter (not
// radius, which on a DAG-like path is restricted to a small radial-vertex
// set and so is not comparable to the naive all-nodes minimum) against
// Floyd-Warshall on a directed path.
func TestSumSweep_CrossCheckDiameter_Path(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(6))
	require.NoError(t, err)
	tr := g.Transpose()

	dist := bruteforce.Distances(g)
	_, wantDiameter := bruteforce.RadiusDiameter(dist)

	ss, err := sumsweep.New(g, tr, sumsweep.Diameter)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	gotDiameter, err := ss.Diameter()
	require.NoError(t, err)
	assert.Equal(t, wantDiameter, gotDiameter)
}

// A directed 5-cycle has radius=diameter=4, and every
// node is an eccentricity-4 witness.
func TestSumSweep_FiveCycle(t *testing.T) {
	g, err := graph.NewCSR(5, [][2]graph.NI{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
	})
	require.NoError(t, err)
	tr := g.Transpose()

	ss, err := sumsweep.New(g, tr, sumsweep.RadiusDiameter)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	radius, err := ss.Radius()
	require.NoError(t, err)
	assert.Equal(t, 4, radius)

	diameter, err := ss.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 4, diameter)
}

// An empty graph runs to completion with nothing to compute.
func TestSumSweep_EmptyGraph(t *testing.T) {
	g, err := graph.NewCSR(0, nil)
	require.NoError(t, err)
	tr := g.Transpose()

	ss, err := sumsweep.New(g, tr, sumsweep.All)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))
}

// A single node with a self-loop has radius=diameter=0.
func TestSumSweep_SingleSelfLoop(t *testing.T) {
	g, err := graph.NewCSR(1, [][2]graph.NI{{0, 0}})
	require.NoError(t, err)
	tr := g.Transpose()

	ss, err := sumsweep.New(g, tr, sumsweep.RadiusDiameter)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	radius, err := ss.Radius()
	require.NoError(t, err)
	assert.Equal(t, 0, radius)

	diameter, err := ss.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 0, diameter)
}

// Invariant 3: forward_low <= forward_high and
// backward_low <= backward_high for every node once AllForward/All bounds
// are computed.
func TestSumSweep_BoundsOrdering(t *testing.T) {
	g, err := graph.NewCSR(6, [][2]graph.NI{
		{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3},
	})
	require.NoError(t, err)
	tr := g.Transpose()

	ss, err := sumsweep.New(g, tr, sumsweep.All)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	for v := 0; v < 6; v++ {
		fl, fh, err := ss.ForwardBounds(v)
		require.NoError(t, err)
		assert.LessOrEqual(t, fl, fh)

		bl, bh, err := ss.BackwardBounds(v)
		require.NoError(t, err)
		assert.LessOrEqual(t, bl, bh)
	}
}

// An All-level run must tighten every node's bounds to its exact forward and
// backward eccentricity; cross-checked against Floyd-Warshall over random
// sparse topologies.
func TestSumSweep_AllBoundsExact_RandomGraphs(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(18, 0.12),
		)
		require.NoError(t, err)
		tr := g.Transpose()

		ss, err := sumsweep.New(g, tr, sumsweep.All, sumsweep.WithWorkers(3))
		require.NoError(t, err)
		require.NoError(t, ss.Run(context.Background()))

		distFwd := bruteforce.Distances(g)
		distBwd := bruteforce.Distances(tr)

		for v := 0; v < g.NumNodes(); v++ {
			fl, fh, err := ss.ForwardBounds(v)
			require.NoError(t, err)
			require.Equalf(t, fl, fh, "seed %d node %d: forward bounds not tight", seed, v)
			require.Equalf(t, bruteforce.Eccentricity(distFwd, v), fl, "seed %d node %d: forward eccentricity", seed, v)

			bl, bh, err := ss.BackwardBounds(v)
			require.NoError(t, err)
			require.Equalf(t, bl, bh, "seed %d node %d: backward bounds not tight", seed, v)
			require.Equalf(t, bruteforce.Eccentricity(distBwd, v), bl, "seed %d node %d: backward eccentricity", seed, v)
		}
	}
}

// Diameter must agree with the Floyd-Warshall reference over random sparse
// graphs as well, not just the literal scenarios.
func TestSumSweep_CrossCheckDiameter_RandomGraphs(t *testing.T) {
	for seed := int64(20); seed < 26; seed++ {
		g, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(16, 0.15),
		)
		require.NoError(t, err)

		dist := bruteforce.Distances(g)
		_, wantDiameter := bruteforce.RadiusDiameter(dist)

		ss, err := sumsweep.New(g, g.Transpose(), sumsweep.Diameter)
		require.NoError(t, err)
		require.NoError(t, ss.Run(context.Background()))

		gotDiameter, err := ss.Diameter()
		require.NoError(t, err)
		require.Equalf(t, wantDiameter, gotDiameter, "seed %d", seed)
	}
}

func TestSumSweep_RejectsNilGraph(t *testing.T) {
	g, err := graph.NewCSR(2, nil)
	require.NoError(t, err)
	_, err = sumsweep.New(nil, g, sumsweep.Radius)
	assert.ErrorIs(t, err, sumsweep.ErrGraphNil)
	_, err = sumsweep.New(g, nil, sumsweep.Radius)
	assert.ErrorIs(t, err, sumsweep.ErrGraphNil)
}

func TestSumSweep_RejectsInvalidOutputLevel(t *testing.T) {
	g, err := graph.NewCSR(2, nil)
	require.NoError(t, err)
	_, err = sumsweep.New(g, g.Transpose(), sumsweep.OutputLevel(99))
	assert.ErrorIs(t, err, sumsweep.ErrInvalidOutputLevel)
}

func TestSumSweep_AccessorsRequireRun(t *testing.T) {
	g, err := graph.NewCSR(3, [][2]graph.NI{{0, 1}, {1, 2}})
	require.NoError(t, err)
	ss, err := sumsweep.New(g, g.Transpose(), sumsweep.RadiusDiameter)
	require.NoError(t, err)

	_, err = ss.Radius()
	assert.ErrorIs(t, err, sumsweep.ErrNotRun)
}

func TestSumSweep_AccessorRequiresMatchingOutputLevel(t *testing.T) {
	g, err := graph.NewCSR(3, [][2]graph.NI{{0, 1}, {1, 2}})
	require.NoError(t, err)
	ss, err := sumsweep.New(g, g.Transpose(), sumsweep.Radius)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	_, err = ss.Diameter()
	assert.ErrorIs(t, err, sumsweep.ErrOutputLevelDoesNotCoverQuantity)
}

// A single strongly connected component (the whole graph) yields exactly
// one SCC-DAG node, exercising AllCCUpperBound's zero-bridge case.
func TestSumSweep_SingleSCC(t *testing.T) {
	g, err := graph.NewCSR(4, [][2]graph.NI{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
	})
	require.NoError(t, err)
	tr := g.Transpose()

	ss, err := sumsweep.New(g, tr, sumsweep.All)
	require.NoError(t, err)
	require.NoError(t, ss.Run(context.Background()))

	for v := 0; v < 4; v++ {
		fl, fh, err := ss.ForwardBounds(v)
		require.NoError(t, err)
		assert.Equal(t, fl, fh)
	}
}
