// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 >= 1 (else ErrTooFewVertices).
//   - Left partition occupies the first n1 allocated nodes, right the next n2;
//     every cross pair gets arcs in both directions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodBipartite  = "CompleteBipartite"
	minPartitionSize = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}: the left
// partition occupies the first n1 allocated nodes, the right partition the
// next n2; every cross pair gets arcs in both directions (n1, n2 >= 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := s.AddNodes(n1)
		right := s.AddNodes(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.AddArcOneWay(left+graph.NI(i), right+graph.NI(j))
				s.AddArcOneWay(right+graph.NI(j), left+graph.NI(i))
			}
		}
		return nil
	}
}
