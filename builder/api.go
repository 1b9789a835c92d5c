// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are declared in impl_*.go, one per file.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtraverse/core"
)

// Graph is the concrete graph type every constructor fills.
type Graph = core.Graph[string, core.Record[string]]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with context.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// opts, applies all constructors in order and finally the dangling-edge
// option. Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.New[string, core.Record[string]](0)
	cfg := newBuilderConfig(opts...)

	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	addDangling(g, cfg.dangling)

	return g, nil
}

// Build is shorthand for BuildGraph with a single constructor.
func Build(con Constructor, opts ...BuilderOption) (*Graph, error) {
	return BuildGraph(opts, con)
}
