// Package sumsweep implements ExactSumSweep, an exact radius/diameter/
// eccentricity computer for directed graphs. It drives a
// SumSweep heuristic seed, a five-slot adaptive main loop choosing between
// forward/backward parallel BFS steps and an SCC-DAG AllCCUpperBound
// propagation, and terminates once every bound required by the requested
// output level is tight.
package sumsweep
