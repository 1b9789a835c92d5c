// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair i -> j with i ≠ j, i asc then j asc.
//     WithBidirectional is ignored; the graph is already symmetric.
//
// Complexity: O(n²) time.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					appendEdge(g, cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}
