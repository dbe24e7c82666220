// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • rng         = nil (stochastic generators then fail with ErrNeedRandSource)
//   • potentialFn = UniformValue(0, DefaultMaxPotential)
//   • rateFn      = UniformValue(0, DefaultMaxInterestRate)

package builder

import "math/rand"

// config aggregates the knobs used by generators. Passed by value.
type config struct {
	rng         *rand.Rand
	potentialFn ValueFn
	rateFn      ValueFn
}

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		potentialFn: UniformValue(0, DefaultMaxPotential),
		rateFn:      UniformValue(0, DefaultMaxInterestRate),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
