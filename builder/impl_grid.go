// SPDX-License-Identifier: MIT
// Package: hyperweb/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices).
//   - 2D orthogonal grid with 4-neighborhood, nodes in row-major order
//     (index = r*cols + c), arcs to the right and bottom neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid with
// 4-neighborhood connectivity, nodes in row-major order (index = r*cols+c),
// edges to the right and bottom neighbor where they exist (rows, cols >= 1).
// Under WithSymmetric the grid becomes an undirected mesh.
func Grid(rows, cols int) Constructor {
	return func(s *Spec, cfg *config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.AddNodes(rows * cols)
		idx := func(r, c int) graph.NI { return base + graph.NI(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.AddArc(cfg, idx(r, c), idx(r, c+1))
				}
				if r+1 < rows {
					s.AddArc(cfg, idx(r, c), idx(r+1, c))
				}
			}
		}
		return nil
	}
}
