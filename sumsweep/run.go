package sumsweep

import (
	"context"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/internal/xmath"
)

// Run drives the SumSweep heuristic seed and the five-slot adaptive main
// loop to termination. An empty graph returns immediately.
// Run is not safe to call concurrently with itself or with any accessor,
// and is not resumable after it returns.
func (ss *SumSweep) Run(ctx context.Context) error {
	if ss.n == 0 {
		ss.ran = true
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := ss.seed(); err != nil {
		return err
	}
	ss.iteration = 6
	ss.checkSnapshots()

	scores := [5]float64{float64(ss.n), float64(ss.n), float64(ss.n), float64(ss.n), float64(ss.n)}

	// maxSteps is a defensive backstop; missing_nodes reaching zero is the
	// real termination condition and is expected to always be hit first.
	maxSteps := 4*ss.n + 64
	for step := 0; step < maxSteps; step++ {
		select {
		case <-ctx.Done():
			ss.ran = true
			return ctx.Err()
		default:
		}

		if ss.missingNodes() == 0 {
			break
		}

		slot := xmath.Argmax(scores[:])
		before := ss.missingNodes()

		moved, iters, err := ss.executeMove(slot)
		if err != nil {
			return err
		}
		ss.iteration += iters

		after := ss.missingNodes()
		if moved {
			scores[slot] = float64(before - after)
		} else {
			scores[slot] = -float64(ss.n)
		}
		count := float64(ss.iteration)
		if count < 1 {
			count = 1
		}
		for i := range scores {
			if i != slot {
				scores[i] += 2 / count
			}
		}
		ss.checkSnapshots()
	}

	ss.ran = true
	return nil
}

// executeMove runs the main loop's chosen slot, reporting whether a BFS
// or propagation pass actually ran (false
// when the slot's filtered selection found no candidate) and how many
// iterations it counts as.
func (ss *SumSweep) executeMove(slot int) (moved bool, iters int, err error) {
	switch slot {
	case 0:
		if err := ss.allCCUpperBound(); err != nil {
			return false, 0, err
		}
		return true, 3, nil
	case 1:
		s := xmath.FilteredArgmax(ss.forwardHigh, ss.forwardTot, func(i int, _ int) bool {
			return ss.forwardIncomplete(graph.NI(i))
		})
		if s == -1 {
			return false, 0, nil
		}
		if err := ss.forwardStep(graph.NI(s)); err != nil {
			return false, 0, err
		}
		return true, 1, nil
	case 2:
		s := xmath.FilteredArgmin(ss.forwardLow, ss.forwardTot, func(i int, _ int) bool {
			return ss.radial.Get(i)
		})
		if s == -1 {
			return false, 0, nil
		}
		if err := ss.forwardStep(graph.NI(s)); err != nil {
			return false, 0, err
		}
		return true, 1, nil
	case 3:
		s := xmath.FilteredArgmax(ss.backwardHigh, ss.backwardTot, func(i int, _ int) bool {
			return ss.backwardIncomplete(graph.NI(i))
		})
		if s == -1 {
			return false, 0, nil
		}
		if err := ss.backwardStep(graph.NI(s)); err != nil {
			return false, 0, err
		}
		return true, 1, nil
	default:
		s := xmath.FilteredArgmax(ss.backwardTot, ss.backwardHigh, func(i int, _ float64) bool {
			return ss.backwardIncomplete(graph.NI(i))
		})
		if s == -1 {
			return false, 0, nil
		}
		if err := ss.backwardStep(graph.NI(s)); err != nil {
			return false, 0, err
		}
		return true, 1, nil
	}
}

// missingNodes counts the nodes whose still-incomplete bound could still
// affect the requested OutputLevel.
func (ss *SumSweep) missingNodes() int {
	switch ss.level {
	case Radius:
		return ss.missingRadius()
	case Diameter:
		return ss.missingDiameter()
	case RadiusDiameter:
		return ss.missingRadius() + ss.missingDiameter()
	case AllForward:
		return ss.missingAllForward()
	default: // All
		return ss.missingAllForward() + ss.missingAllBackward()
	}
}

func (ss *SumSweep) missingRadius() int {
	count := 0
	for v := 0; v < ss.n; v++ {
		if ss.radial.Get(v) && ss.forwardLow[v] < ss.radiusHigh {
			count++
		}
	}
	return count
}

func (ss *SumSweep) missingDiameter() int {
	fwd, bwd := 0, 0
	for v := 0; v < ss.n; v++ {
		if ss.forwardIncomplete(graph.NI(v)) && ss.forwardHigh[v] > ss.diameterLow {
			fwd++
		}
		if ss.backwardIncomplete(graph.NI(v)) && ss.backwardHigh[v] > ss.diameterLow {
			bwd++
		}
	}
	if fwd < bwd {
		return fwd
	}
	return bwd
}

func (ss *SumSweep) missingAllForward() int {
	count := 0
	for v := 0; v < ss.n; v++ {
		if ss.forwardIncomplete(graph.NI(v)) {
			count++
		}
	}
	return count
}

func (ss *SumSweep) missingAllBackward() int {
	count := 0
	for v := 0; v < ss.n; v++ {
		if ss.backwardIncomplete(graph.NI(v)) {
			count++
		}
	}
	return count
}

// checkSnapshots records the iteration at which radius and diameter first
// become final.
func (ss *SumSweep) checkSnapshots() {
	if !ss.radiusDone && ss.missingRadius() == 0 {
		ss.radiusDone = true
		ss.iterAtRadius = ss.iteration
	}
	if !ss.diameterDone && ss.missingDiameter() == 0 {
		ss.diameterDone = true
		ss.iterAtDiameter = ss.iteration
	}
}
