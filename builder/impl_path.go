// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n, cfg); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			addEdge(g, cfg, cfg.id(i-1), cfg.id(i))
		}

		return nil
	}
}
