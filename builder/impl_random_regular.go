// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Contract:
//   - n >= 1, 0 <= d < n, n*d even (else ErrTooFewVertices).
//   - A seeded RNG is required (else ErrNeedRandSource).
//   - Stub matching with bounded reshuffles; exhausting them returns
//     ErrConstructFailed rather than looping forever.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 3
)

// RandomRegular returns a Constructor that builds an undirected (both-arc)
// d-regular simple graph over n nodes via stub-matching with a bounded
// number of reshuffle attempts (n >= 1, 0 <= d < n, n*d even). A seeded RNG
// is required.
func RandomRegular(n, d int) Constructor {
	return func(s *Spec, cfg *config) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		base := s.AddNodes(n)
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				u, v := base+graph.NI(stubs[i]), base+graph.NI(stubs[i+1])
				s.AddArcOneWay(u, v)
				s.AddArcOneWay(v, u)
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
