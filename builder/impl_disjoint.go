// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// impl_disjoint.go - implementation of Disjoint(parts...) constructor.
//
// Contract:
//   - Runs part k with an id scheme prefixed "g<k>." so parts never collide.
//   - Parts are added in argument order, giving one traversal run each.

package builder

import (
	"fmt"
	"strconv"
)

const methodDisjoint = "Disjoint"

// Disjoint returns a Constructor that lays out the given parts as separate
// components of one graph.
func Disjoint(parts ...Constructor) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		for k, part := range parts {
			scoped := cfg
			scoped.scope = cfg.scope + "g" + strconv.Itoa(k) + "."
			if err := part(g, scoped); err != nil {
				return fmt.Errorf("%s: part %d: %w", methodDisjoint, k, err)
			}
		}

		return nil
	}
}
