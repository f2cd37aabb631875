// Package visit implements the traversal framework that ExactSumSweep's
// forward/backward steps and per-SCC visits are built on (the scc and
// hyperball packages run their own traversals): typed BFS/DFS events,
// a filter-before-discover hook, a callback that can request early
// termination, and both sequential and work-stealing parallel BFS engines.
//
// Filter-before-discover: before a node is discovered via a candidate arc,
// the Filter is invoked with that candidate event; returning false skips
// the node for this arc only; it may still be discovered later via a
// different arc. A callback returning Stop unwinds the visit; unwinding is
// reported as an Outcome, not an error, since it is caller-requested, not a
// failure.
package visit
