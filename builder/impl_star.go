// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - The hub is the first allocated node; spokes hub -> leaf in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub node 0 (the first
// node this Constructor allocates) and n-1 leaves, spokes hub -> leaf[i]
// (n >= 2). Under WithSymmetric, leaf -> hub arcs are added too.
func Star(n int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := s.AddNodes(n)
		hub := base
		for i := 1; i < n; i++ {
			s.AddArc(cfg, hub, base+graph.NI(i))
		}
		return nil
	}
}
