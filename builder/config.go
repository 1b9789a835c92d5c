// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn ("0","1","2",...)
//   • rng           = nil (RandomSparse refuses to run without one)
//   • bidirectional = false
//   • dangling      = 0

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Emit v→u next to every u→v.
	bidirectional bool
	// Number of edges to absent targets appended after all constructors.
	dangling int
	// Prefix set by Disjoint for the part being built.
	scope string
}

// id returns the scoped vertex id for index i.
func (c builderConfig) id(i int) string {
	return c.scope + c.idFn(i)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
