package hyperball

// mustHaveRun guards every accessor against being called before Run
// completes.
func (hb *HyperBall) mustHaveRun() error {
	if !hb.ran {
		return ErrNotRun
	}
	return nil
}

// NeighbourhoodFunction returns the full history N(0), N(1), ..., N(T)
// accumulated over the run. The slice must not be mutated.
func (hb *HyperBall) NeighbourhoodFunction() ([]float64, error) {
	if err := hb.mustHaveRun(); err != nil {
		return nil, err
	}
	return hb.neighbourhoodFunction, nil
}

// ReachableSetSize returns the final cardinality estimate for node v's
// t-hop reachable set, t being the iteration count the run terminated at.
func (hb *HyperBall) ReachableSetSize(v int) (float64, error) {
	if err := hb.mustHaveRun(); err != nil {
		return 0, err
	}
	c, err := hb.current.Get(v)
	if err != nil {
		return 0, err
	}
	return c.EstimateFloat(), nil
}

// SumOfDistances returns node v's accumulated sum_of_distances, requiring
// WithSumOfDistances to have been set.
func (hb *HyperBall) SumOfDistances(v int) (float64, error) {
	if err := hb.mustHaveRun(); err != nil {
		return 0, err
	}
	if hb.sumOfDistances == nil {
		return 0, ErrCentralityNotConfigured
	}
	return hb.sumOfDistances[v], nil
}

// HarmonicCentrality returns node v's accumulated sum_of_inverse_distances,
// requiring WithHarmonicCentrality to have been set.
func (hb *HyperBall) HarmonicCentrality(v int) (float64, error) {
	if err := hb.mustHaveRun(); err != nil {
		return 0, err
	}
	if hb.sumOfInverseDistances == nil {
		return 0, ErrCentralityNotConfigured
	}
	return hb.sumOfInverseDistances[v], nil
}

// DiscountedCentrality returns node v's accumulator for the k-th function
// passed to WithDiscountFunctions.
func (hb *HyperBall) DiscountedCentrality(k, v int) (float64, error) {
	if err := hb.mustHaveRun(); err != nil {
		return 0, err
	}
	if k < 0 || k >= len(hb.discounted) {
		return 0, ErrInvalidDiscountIndex
	}
	return hb.discounted[k][v], nil
}

// Closeness returns node v's closeness centrality, 1/sum_of_distances(v),
// or 0 if v's sum of distances is 0 (an isolated node, or a graph with
// fewer than two reachable nodes).
func (hb *HyperBall) Closeness(v int) (float64, error) {
	sd, err := hb.SumOfDistances(v)
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, nil
	}
	return 1 / sd, nil
}

// Lin returns node v's Lin index, reachable_set_size(v)^2 / sum_of_distances(v),
// defined as 1 when v's sum of distances is 0 (a node reaching nothing has a
// Lin index of exactly one, itself).
func (hb *HyperBall) Lin(v int) (float64, error) {
	sd, err := hb.SumOfDistances(v)
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 1, nil
	}
	rs, err := hb.ReachableSetSize(v)
	if err != nil {
		return 0, err
	}
	return rs * rs / sd, nil
}

// Nieminen returns node v's Nieminen centrality,
// reachable_set_size(v)^2 - sum_of_distances(v).
func (hb *HyperBall) Nieminen(v int) (float64, error) {
	sd, err := hb.SumOfDistances(v)
	if err != nil {
		return 0, err
	}
	rs, err := hb.ReachableSetSize(v)
	if err != nil {
		return 0, err
	}
	return rs*rs - sd, nil
}
