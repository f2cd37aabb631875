// Package graph declares the external-collaborator contracts that every
// algorithm in this module is written against: an immutable, random-access
// directed graph and its transpose, plus a cumulative-out-degree index used
// for arc-balanced work scheduling.
//
// The module does not own graph storage, arc enumeration, or node-count
// reporting in production: those are supplied by a caller's own collaborator
// (for example a memory-mapped webgraph representation). What this package
// does provide is:
//
//   - the Graph and CumulativeDegree interfaces algorithms are coded against;
//   - CSR, a simple in-memory compressed-sparse-row implementation of Graph,
//     used by tests, the CLI driver, and the builder package's generators.
//
// CSR is intentionally minimal: once built it never mutates, matching the
// "graphs are immutable for the lifetime of a computation" invariant that
// every algorithm in this module relies on.
package graph
