package scc

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed to a decomposition.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrTransposeMismatch is returned when a transpose graph's node count
	// does not match the forward graph's, so Kosaraju's reverse pass could
	// not possibly be exploring the same node set.
	ErrTransposeMismatch = errors.New("scc: transpose node count does not match graph")
)
