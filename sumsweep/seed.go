package sumsweep

import "github.com/katalvlaran/hyperweb/graph"

// seed runs the SumSweep heuristic seed: six alternating
// BFS steps, the first forward from the maximum-out-degree vertex, then
// alternating backward/forward with each start vertex chosen by
// filtered_argmax over the opposite-direction total-distance array
// (tie-break: the lower bound of the step's own direction), restricted to
// nodes with incomplete eccentricity in that direction.
func (ss *SumSweep) seed() error {
	start := maxOutDegreeVertex(ss.g)
	if err := ss.forwardStep(start); err != nil {
		return err
	}

	forwardNext := false // step 2 is backward
	for i := 1; i < 6; i++ {
		if forwardNext {
			s := filteredArgmaxMinTie(ss.backwardTot, ss.forwardLow, func(v int) bool {
				return ss.forwardIncomplete(graph.NI(v))
			})
			if s == -1 {
				break
			}
			if err := ss.forwardStep(graph.NI(s)); err != nil {
				return err
			}
		} else {
			s := filteredArgmaxMinTie(ss.forwardTot, ss.backwardLow, func(v int) bool {
				return ss.backwardIncomplete(graph.NI(v))
			})
			if s == -1 {
				break
			}
			if err := ss.backwardStep(graph.NI(s)); err != nil {
				return err
			}
		}
		forwardNext = !forwardNext
	}
	return nil
}

func maxOutDegreeVertex(g graph.Graph) graph.NI {
	best := graph.NI(0)
	bestDeg := -1
	for v := 0; v < g.NumNodes(); v++ {
		if d := g.OutDegree(graph.NI(v)); d > bestDeg {
			bestDeg = d
			best = graph.NI(v)
		}
	}
	return best
}
