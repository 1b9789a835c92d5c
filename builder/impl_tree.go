// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_tree.go - implementation of BinaryTree(depth) constructor.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewVertices); depth 1 is a single root.
//   - Heap layout: 2^depth-1 vertices, i -> 2i+1 then i -> 2i+2.
//
// Complexity: O(2^depth) time.

package builder

import "fmt"

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 24
)

// BinaryTree returns a Constructor that builds a complete binary tree.
func BinaryTree(depth int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d", methodBinaryTree, depth, maxTreeDepth)
		}

		n := 1<<depth - 1
		if err := addVertices(g, methodBinaryTree, n, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for _, child := range [2]int{2*i + 1, 2*i + 2} {
				if child < n {
					addEdge(g, cfg, cfg.id(i), cfg.id(child))
				}
			}
		}

		return nil
	}
}
