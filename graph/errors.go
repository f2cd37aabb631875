package graph

import "errors"

// Sentinel errors returned by the in-memory CSR implementation and by
// helpers in this package.
var (
	// ErrNegativeSize indicates a requested node count or arc count is negative.
	ErrNegativeSize = errors.New("graph: negative size")

	// ErrSentinelOverflow indicates N has reached or exceeded MaxNodes, the
	// reserved sentinel value every Graph implementation must
	// refuse (N < MAX).
	ErrSentinelOverflow = errors.New("graph: node count reaches the reserved sentinel")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrArcOutOfOrder indicates arcs were not supplied in non-decreasing
	// source-node order. NewCSR sorts its input arcs itself and does not
	// return this error.
	ErrArcOutOfOrder = errors.New("graph: arcs must be grouped by non-decreasing source node")

	// ErrTransposeMismatch indicates a transpose graph disagrees with its
	// forward graph on node or arc count.
	ErrTransposeMismatch = errors.New("graph: transpose does not match forward graph (N or M differ)")

	// ErrRankOutOfRange indicates a cumulative-degree lookup was asked for
	// an arc rank beyond the graph's arc count.
	ErrRankOutOfRange = errors.New("graph: arc rank out of range")
)
