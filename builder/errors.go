// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with "%s: ...: %w" (method name first).
//   • Validation order: actor count, arc count, RNG presence.

package builder

import "errors"

// ErrTooFewActors indicates the requested actor count is below the minimum.
var ErrTooFewActors = errors.New("builder: too few actors")

// ErrTooManyArcs indicates the requested arc count is negative or exceeds
// n·(n−1), the number of distinct non-loop arcs over n actors.
var ErrTooManyArcs = errors.New("builder: arc count out of range")

// ErrNeedRandSource indicates a stochastic generator ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
