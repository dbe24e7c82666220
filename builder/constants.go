// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// constants.go — method tags and deterministic defaults.

package builder

// Method tags used as error prefixes.
const (
	methodRandomActorGraph = "RandomActorGraph"
)

// Domain limits.
const (
	minActors = 1
)

// Defaults for the value distributions: potentials uniform in
// [0, DefaultMaxPotential), rates uniform in [0, DefaultMaxInterestRate).
const (
	DefaultMaxPotential    = 100.0
	DefaultMaxInterestRate = 0.1
)
