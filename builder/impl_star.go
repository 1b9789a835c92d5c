// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); vertex 0 is the hub, 1..n-1 the leaves.
//   - Emits hub -> leaf for leaves in ascending order.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodStar, n, cfg); err != nil {
			return err
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, hub, cfg.id(i))
		}

		return nil
	}
}
