// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating its config.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxPotential draws potentials uniformly in [0, hi).
// Panics unless hi is finite and > 0.
func WithMaxPotential(hi float64) Option {
	if !finiteNonNegative(hi) || hi == 0 {
		panic(fmt.Sprintf("builder: WithMaxPotential(%g)", hi))
	}
	return func(c *config) {
		c.potentialFn = UniformValue(0, hi)
	}
}

// WithMaxInterestRate draws arc rates uniformly in [0, hi).
// Panics unless hi is finite and > 0.
func WithMaxInterestRate(hi float64) Option {
	if !finiteNonNegative(hi) || hi == 0 {
		panic(fmt.Sprintf("builder: WithMaxInterestRate(%g)", hi))
	}
	return func(c *config) {
		c.rateFn = UniformValue(0, hi)
	}
}

// WithPotentialFn overrides the potential distribution. Panics on nil.
func WithPotentialFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithPotentialFn(nil)")
	}
	return func(c *config) {
		c.potentialFn = fn
	}
}

// WithRateFn overrides the arc rate distribution. Panics on nil.
func WithRateFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *config) {
		c.rateFn = fn
	}
}
