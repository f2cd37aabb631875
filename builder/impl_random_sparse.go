// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); 0 <= p <= 1 (else ErrInvalidProbability).
//   - A seeded RNG is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Deterministic given the same seed: pairs are scanned in fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like
// directed graph over n nodes: every ordered pair (i,j), i != j, gets an arc
// independently with probability p (n >= 1, 0 <= p <= 1). A seeded RNG
// (WithSeed/WithRand) is required whenever 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := s.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				include := p == 1.0
				if cfg.rng != nil {
					include = cfg.rng.Float64() < p
				}
				if include {
					s.AddArcOneWay(base+graph.NI(i), base+graph.NI(j))
				}
			}
		}
		return nil
	}
}
