// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits arcs in stable order (i-1) -> i for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path
// 0 -> 1 -> ... -> (n-1) (n >= 2).
func Path(n int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.AddNodes(n)
		for i := 1; i < n; i++ {
			s.AddArc(cfg, base+graph.NI(i-1), base+graph.NI(i))
		}
		return nil
	}
}
