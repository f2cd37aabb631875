// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Every ordered pair (i,j), i != j, gets an arc; both directions are
//     emitted explicitly, so WithSymmetric is a no-op here.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n: every ordered pair (i,j),
// i != j, gets an arc (n >= 1).
func Complete(n int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddArcOneWay(base+graph.NI(i), base+graph.NI(j))
				s.AddArcOneWay(base+graph.NI(j), base+graph.NI(i))
			}
		}
		return nil
	}
}
