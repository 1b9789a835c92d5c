// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i -> (i+1) mod n for i=0..n-1; the last edge closes the ring.
//
// Complexity: O(n) time.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodCycle, n, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			addEdge(g, cfg, cfg.id(i), cfg.id((i+1)%n))
		}

		return nil
	}
}
