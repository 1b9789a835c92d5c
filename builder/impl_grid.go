// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid, each cell linked to its right and bottom neighbor.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); the id scheme
//     option is not consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom where present.
//
// Complexity: O(rows*cols) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtraverse/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex id Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string { return cfg.scope + GridID(r, c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cell(r, c)
				if err := core.AddRecord(g, core.Record[string]{ID: id, State: id}); err != nil {
					return fmt.Errorf("%s: add %q: %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addEdge(g, cfg, cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
