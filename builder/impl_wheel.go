// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n >= 4 (outer ring C_{n-1} requires n-1 >= 3).
//   - Ring nodes are allocated first, the hub last, so ring indices match
//     a standalone Cycle(n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer ring C_{n-1} requires n-1 >= 3
)

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub node with
// spokes to every ring node (n >= 4). The hub is the last node allocated, so
// ring nodes keep the same indices Cycle(n-1) would assign standalone.
func Wheel(n int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ringSize := n - 1
		ringBase := s.AddNodes(ringSize)
		for i := 0; i < ringSize; i++ {
			s.AddArc(cfg, ringBase+graph.NI(i), ringBase+graph.NI((i+1)%ringSize))
		}
		hub := s.AddNodes(1)
		for i := 0; i < ringSize; i++ {
			s.AddArc(cfg, hub, ringBase+graph.NI(i))
		}
		return nil
	}
}
