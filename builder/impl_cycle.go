// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Emits arcs in stable order i -> (i+1)%n for i=0..n-1.
//   - Under WithSymmetric each arc is mirrored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

// File-local constants (method tag, minima).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex directed ring
// i -> (i+1)%n for i=0..n-1 (n >= 3). Under WithSymmetric it becomes an
// undirected cycle.
func Cycle(n int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.AddNodes(n)
		for i := 0; i < n; i++ {
			s.AddArc(cfg, base+graph.NI(i), base+graph.NI((i+1)%n))
		}
		return nil
	}
}
