// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// value_fn.go — distributions for actor potentials and arc rates.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn draws one non-negative finite value from rng.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// ConstantValue returns a ValueFn that always yields v.
// Panics if v is negative, NaN or infinite.
// Complexity: O(1).
func ConstantValue(v float64) ValueFn {
	if !finiteNonNegative(v) {
		panic(fmt.Sprintf("builder: ConstantValue(%g)", v))
	}

	return func(*rand.Rand) float64 { return v }
}

// UniformValue returns a ValueFn sampling uniformly in [lo, hi).
// A degenerate interval lo == hi, or a nil rng, yields lo.
// Panics unless 0 ≤ lo ≤ hi < +Inf.
// Complexity: O(1).
func UniformValue(lo, hi float64) ValueFn {
	if !finiteNonNegative(lo) || !finiteNonNegative(hi) || hi < lo {
		panic(fmt.Sprintf("builder: UniformValue(%g, %g)", lo, hi))
	}
	span := hi - lo

	return func(rng *rand.Rand) float64 {
		if span == 0 || rng == nil {
			return lo
		}
		return lo + rng.Float64()*span
	}
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
