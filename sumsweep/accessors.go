package sumsweep

import "github.com/katalvlaran/hyperweb/graph"

func (ss *SumSweep) mustHaveRun() error {
	if !ss.ran {
		return ErrNotRun
	}
	return nil
}

func (ss *SumSweep) mustCompute(levels ...OutputLevel) error {
	if err := ss.mustHaveRun(); err != nil {
		return err
	}
	for _, l := range levels {
		if ss.level == l {
			return nil
		}
	}
	return ErrOutputLevelDoesNotCoverQuantity
}

// Radius returns the graph's radius: the minimum forward eccentricity
// among radial vertices. Requires an OutputLevel of Radius or
// RadiusDiameter.
func (ss *SumSweep) Radius() (int, error) {
	if err := ss.mustCompute(Radius, RadiusDiameter); err != nil {
		return 0, err
	}
	return ss.radiusHigh, nil
}

// RadiusVertex returns a witness vertex whose forward eccentricity equals
// the radius.
func (ss *SumSweep) RadiusVertex() (graph.NI, error) {
	if err := ss.mustCompute(Radius, RadiusDiameter); err != nil {
		return 0, err
	}
	return ss.radiusVertex, nil
}

// Diameter returns the graph's diameter: the maximum eccentricity over all
// vertices. Requires an OutputLevel of Diameter or RadiusDiameter.
func (ss *SumSweep) Diameter() (int, error) {
	if err := ss.mustCompute(Diameter, RadiusDiameter); err != nil {
		return 0, err
	}
	return ss.diameterLow, nil
}

// DiameterVertex returns a witness vertex whose eccentricity equals the
// diameter.
func (ss *SumSweep) DiameterVertex() (graph.NI, error) {
	if err := ss.mustCompute(Diameter, RadiusDiameter); err != nil {
		return 0, err
	}
	return ss.diameterVertex, nil
}

// ForwardBounds returns node v's [forward_low, forward_high] eccentricity
// bounds. Requires an OutputLevel of AllForward or All.
func (ss *SumSweep) ForwardBounds(v int) (low, high int, err error) {
	if err := ss.mustCompute(AllForward, All); err != nil {
		return 0, 0, err
	}
	return ss.forwardLow[v], ss.forwardHigh[v], nil
}

// BackwardBounds returns node v's [backward_low, backward_high]
// eccentricity bounds. Requires an OutputLevel of All.
func (ss *SumSweep) BackwardBounds(v int) (low, high int, err error) {
	if err := ss.mustCompute(All); err != nil {
		return 0, 0, err
	}
	return ss.backwardLow[v], ss.backwardHigh[v], nil
}

// IterationsToRadius returns the iteration count at which the radius first
// became final, or false if it never did (output level never tightened it).
func (ss *SumSweep) IterationsToRadius() (int, bool, error) {
	if err := ss.mustHaveRun(); err != nil {
		return 0, false, err
	}
	return ss.iterAtRadius, ss.radiusDone, nil
}

// IterationsToDiameter returns the iteration count at which the diameter
// first became final, or false if it never did.
func (ss *SumSweep) IterationsToDiameter() (int, bool, error) {
	if err := ss.mustHaveRun(); err != nil {
		return 0, false, err
	}
	return ss.iterAtDiameter, ss.diameterDone, nil
}
