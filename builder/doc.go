// Package builder provides deterministic structural graph generators used by
// this module's own property-based tests: Cycle, Path,
// Complete, Star, Wheel, CompleteBipartite, Grid, and the two stochastic
// generators RandomSparse and RandomRegular.
//
// One orchestrator (Build) runs Constructor closures in order against a
// shared, accumulating Spec; options resolve into an immutable config once
// per call; determinism is explicit (WithSeed freezes stochastic paths).
// Constructors allocate plain integer node ranges via Spec.AddNodes, so
// composed topologies never collide.
package builder
