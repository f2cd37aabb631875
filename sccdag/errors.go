package sccdag

import "errors"

// ErrDecompositionNil is returned when a nil *scc.Decomposition is passed to
// Build.
var ErrDecompositionNil = errors.New("sccdag: decomposition is nil")

// ErrGraphNil is returned when a nil graph.Graph is passed to Build.
var ErrGraphNil = errors.New("sccdag: graph is nil")
