package visit_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/visit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFS_DiamondTailDistances(t *testing.T) {
	// Diamond with a tail: {(0,1),(0,2),(1,3),(2,3),(3,4)}, N=5.
	g, err := graph.NewCSR(5, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	dist := map[graph.NI]int{}
	_, err = visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			dist[e.Curr] = e.Distance
		}
		return visit.Continue
	})
	require.NoError(t, err)

	assert.Equal(t, map[graph.NI]int{1: 1, 2: 1, 3: 2, 4: 3}, dist)
}

func TestBFS_UnreachableNodeAbsent(t *testing.T) {
	g, err := graph.NewCSR(6, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	visited := map[graph.NI]bool{0: true}
	_, err = visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			visited[e.Curr] = true
		}
		return visit.Continue
	})
	require.NoError(t, err)
	assert.False(t, visited[5])
}

func TestBFS_StopUnwinds(t *testing.T) {
	g, err := graph.NewCSR(5, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	var seen int
	outcome, err := visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			seen++
			if seen == 2 {
				return visit.Stop
			}
		}
		return visit.Continue
	})
	require.NoError(t, err)
	assert.Equal(t, visit.Stopped, outcome)
	assert.Equal(t, 2, seen)
}

func TestDFS_BackEdgeDetectsCycle(t *testing.T) {
	g, err := graph.NewCSR(3, [][2]graph.NI{{0, 1}, {1, 2}})
	require.NoError(t, err)

	acyclic := true
	_, err = visit.DFS(g, 0, func(e visit.DFSEvent) visit.Signal {
		if e.Kind == visit.DFSRevisit && e.BackEdge {
			acyclic = false
		}
		return visit.Continue
	}, visit.WithThreeState())
	require.NoError(t, err)
	assert.True(t, acyclic)

	g2, err := graph.NewCSR(3, [][2]graph.NI{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	acyclic = true
	_, err = visit.DFS(g2, 0, func(e visit.DFSEvent) visit.Signal {
		if e.Kind == visit.DFSRevisit && e.BackEdge {
			acyclic = false
		}
		return visit.Continue
	}, visit.WithThreeState())
	require.NoError(t, err)
	assert.False(t, acyclic)
}

func TestDFSAll_CompletionOrderIsReverseTopological(t *testing.T) {
	// Diamond {(0,1),(0,2),(1,3),(2,3)}, N=4: 0 before {1,2} before 3.
	g, err := graph.NewCSR(4, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	var completionOrder []graph.NI
	_, err = visit.DFSAll(g, func(e visit.DFSEvent) visit.Signal {
		if e.Kind == visit.DFSCompleted {
			completionOrder = append(completionOrder, e.Curr)
		}
		return visit.Continue
	})
	require.NoError(t, err)

	// Reverse completion order is a valid topological order.
	topo := make([]graph.NI, len(completionOrder))
	for i, v := range completionOrder {
		topo[len(completionOrder)-1-i] = v
	}
	pos := map[graph.NI]int{}
	for i, v := range topo {
		pos[v] = i
	}
	assert.Less(t, pos[0], pos[1])
	assert.Less(t, pos[0], pos[2])
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[3])
}

func TestFilter_SkipsArcButAllowsLaterDiscovery(t *testing.T) {
	g, err := graph.NewCSR(3, [][2]graph.NI{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)

	var discovered []graph.NI
	_, err = visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			discovered = append(discovered, e.Curr)
		}
		return visit.Continue
	}, visit.WithBFSFilter(func(e visit.BFSEvent) bool {
		return !(e.Parent == 0 && e.Curr == 2)
	}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.NI{1, 2}, discovered)
}

// Invariant 6: two BFS runs over the same graph yield identical
// distance tables; no state leaks from one run into the next.
func TestBFS_RepeatedRunsYieldIdenticalDistances(t *testing.T) {
	g, err := graph.NewCSR(6, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 1}})
	require.NoError(t, err)

	collect := func() map[graph.NI]int {
		dist := map[graph.NI]int{}
		_, err := visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
			if e.Kind == visit.BFSUnknown {
				dist[e.Curr] = e.Distance
			}
			return visit.Continue
		})
		require.NoError(t, err)
		return dist
	}

	assert.Equal(t, collect(), collect())
}

func TestParallelBFS_LowMemoryVariantMatchesDefault(t *testing.T) {
	g, err := graph.NewCSR(7, [][2]graph.NI{
		{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 5}, {2, 5}, {5, 6},
	})
	require.NoError(t, err)

	collect := func(opts ...visit.Option) map[graph.NI]int {
		dist := map[graph.NI]int{}
		var mu sync.Mutex
		opts = append(opts, visit.WithWorkers(4), visit.WithGranularity(1))
		_, err := visit.ParallelBFS(g, 0, func(e visit.BFSEvent) visit.Signal {
			if e.Kind == visit.BFSUnknown {
				mu.Lock()
				dist[e.Curr] = e.Distance
				mu.Unlock()
			}
			return visit.Continue
		}, opts...)
		require.NoError(t, err)
		return dist
	}

	assert.Equal(t, collect(), collect(visit.WithLowMemoryCallback()))
}

func TestParallelBFS_StopDeliversNoFurtherCallbacks(t *testing.T) {
	g, err := graph.NewCSR(5, [][2]graph.NI{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	var events atomic.Int64
	outcome, err := visit.ParallelBFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		events.Add(1)
		if e.Kind == visit.BFSUnknown && e.Curr == 2 {
			return visit.Stop
		}
		return visit.Continue
	}, visit.WithWorkers(2), visit.WithGranularity(1))
	require.NoError(t, err)
	assert.Equal(t, visit.Stopped, outcome)
	// Init + unknown(1) + unknown(2); nodes 3 and 4 must never be delivered.
	assert.LessOrEqual(t, events.Load(), int64(3))
}

func TestParallelBFS_MatchesSequentialReachability(t *testing.T) {
	g, err := graph.NewCSR(5, [][2]graph.NI{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	seq := map[graph.NI]bool{}
	_, err = visit.BFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			seq[e.Curr] = true
		}
		return visit.Continue
	})
	require.NoError(t, err)

	par := map[graph.NI]bool{}
	var mu sync.Mutex
	_, err = visit.ParallelBFS(g, 0, func(e visit.BFSEvent) visit.Signal {
		if e.Kind == visit.BFSUnknown {
			mu.Lock()
			par[e.Curr] = true
			mu.Unlock()
		}
		return visit.Continue
	}, visit.WithWorkers(4), visit.WithGranularity(1))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}
