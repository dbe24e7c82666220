// SPDX-License-Identifier: MIT
// Package: lvloan/actorgraph
//
// validators.go — scalar and membership checks shared by graph methods and
// the lender finders.
//
// Policy:
//   - Checks return ErrInvalidValue / ErrNilActor / ErrNotInGraph wrapped with
//     the offending name and value; callers branch with errors.Is.

package actorgraph

import (
	"fmt"
	"math"
)

// CheckNonNegative returns nil if v is finite and ≥ 0, otherwise an error
// wrapping ErrInvalidValue that names the quantity.
//
// Complexity: O(1).
func CheckNonNegative(name string, v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, name)
	case v < 0:
		return fmt.Errorf("%w: %s is negative: %g", ErrInvalidValue, name, v)
	case math.IsInf(v, 1):
		return fmt.Errorf("%w: %s is positive infinite", ErrInvalidValue, name)
	}

	return nil
}

// checkMember verifies a is non-nil and belongs to g.
func (g *Graph[I]) checkMember(role string, a *Actor[I]) error {
	if a == nil {
		return fmt.Errorf("%w: %s", ErrNilActor, role)
	}
	if a.owner != g {
		return fmt.Errorf("%w: %s %v", ErrNotInGraph, role, a)
	}

	return nil
}

// checkArcEnds verifies both arc endpoints are members of g.
func (g *Graph[I]) checkArcEnds(from, to *Actor[I]) error {
	if err := g.checkMember("source", from); err != nil {
		return err
	}

	return g.checkMember("target", to)
}
