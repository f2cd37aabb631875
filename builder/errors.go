// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Implementations attach context with %w at the call site.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) is
	// below the minimum the requested constructor requires.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability argument outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor requires a seeded
	// RNG (supply WithSeed) and none was configured.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a bounded-retry construction strategy
	// (RandomRegular's stub matching) exhausted its attempts.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
