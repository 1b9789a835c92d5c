// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithPrefix names vertices prefix+index, e.g. WithPrefix("v") → "v0","v1",...
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithExcelColumnIDs names vertices "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBidirectional makes every constructor emit the reverse arc as well.
// The reverse arc of u→v is appended to v's edges when u→v is emitted.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithDangling appends k edges whose targets are absent from the graph,
// spread round-robin over the vertices in key order. Targets are named
// "missing-0", "missing-1", ... Panics if k < 0.
func WithDangling(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithDangling(k<0)")
	}
	return func(c *builderConfig) {
		c.dangling = k
	}
}
