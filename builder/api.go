// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order,
//     materializes the accumulated Spec as a graph.CSR in one shot.
//   - Functional options (Option) resolve into an immutable config (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

// Spec accumulates the node count and arc list a Constructor chain builds.
// graph.CSR has no incremental AddArc, so Constructors build a Spec first
// and Build turns it into a CSR once, at the end, in one shot.
type Spec struct {
	n    int
	arcs [][2]graph.NI
}

// AddNodes reserves count fresh, contiguously-indexed nodes and returns the
// index of the first one; composing constructors call this instead of
// assuming they own indices [0,n) so that composed topologies never collide.
func (s *Spec) AddNodes(count int) graph.NI {
	base := graph.NI(s.n)
	s.n += count
	return base
}

// AddArc appends (u,v), and its reverse too when cfg requests a symmetric
// encoding.
func (s *Spec) AddArc(cfg *config, u, v graph.NI) {
	s.arcs = append(s.arcs, [2]graph.NI{u, v})
	if cfg.symmetric && u != v {
		s.arcs = append(s.arcs, [2]graph.NI{v, u})
	}
}

// AddArcOneWay appends (u,v) only, ignoring cfg.symmetric. Constructors whose
// topology is inherently bidirectional (Complete, CompleteBipartite) use this
// to add each direction exactly once instead of double-mirroring.
func (s *Spec) AddArcOneWay(u, v graph.NI) {
	s.arcs = append(s.arcs, [2]graph.NI{u, v})
}

// Constructor applies one deterministic topology to a Spec under the
// resolved config. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(s *Spec, cfg *config) error

// Build resolves opts into a config, applies every Constructor in order
// against a shared Spec, and materializes the result as a graph.CSR. A
// Constructor error is wrapped with "Build: %w" and returned immediately.
func Build(opts []Option, cons ...Constructor) (*graph.CSR, error) {
	cfg := newConfig(opts...)
	s := &Spec{}
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := c(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return graph.NewCSR(s.n, s.arcs)
}
