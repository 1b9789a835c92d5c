// SPDX-License-Identifier: MIT
// Package: lvtraverse/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w, e.g. "Cycle: n=2 < min=3: ...".
//   - Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, depth)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
