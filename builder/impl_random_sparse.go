// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: each ordered pair (i,j), i ≠ j, becomes an
//     edge independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//
// Determinism:
//   - Trial order: for each i asc, j asc. Same seed ⇒ same graph.

package builder

import "fmt"

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	minProbability       = 0.0
	maxProbability       = 1.0
)

// RandomSparse returns a Constructor that builds a random digraph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w", methodRandomSparse, p, minProbability, maxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, methodRandomSparse, n, cfg); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					appendEdge(g, cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}
