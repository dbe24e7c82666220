// SPDX-License-Identifier: MIT
// Package: lvloan/actorgraph
//
// methods_arcs.go — arc lifecycle and adjacency queries.
//
// Storage:
//   - rates[tail][head] = interest rate tail offers head.
//   - incoming[head][tail] mirrors every entry of rates.

package actorgraph

import "fmt"

// AddArc inserts or overwrites the arc from→to with the given interest rate.
//
// Implementation:
//   - Stage 1: Reject from == to (ErrSelfLoop), even for non-members.
//   - Stage 2: Both endpoints must be members (ErrNilActor / ErrNotInGraph).
//   - Stage 3: Validate rate (ErrInvalidValue).
//   - Stage 4: Store the rate, mirror it in the reverse index, bump counters.
//
// Behavior highlights:
//   - Overwriting an existing arc keeps ArcCount unchanged.
//
// Complexity:
//   - O(1) amortized.
func (g *Graph[I]) AddArc(from, to *Actor[I], rate float64) error {
	if from != nil && from == to {
		return fmt.Errorf("%w: %v", ErrSelfLoop, from)
	}
	if err := g.checkArcEnds(from, to); err != nil {
		return err
	}
	if err := CheckNonNegative("interest rate", rate); err != nil {
		return err
	}

	if _, exists := g.rates[from][to]; !exists {
		g.arcs++
	}
	g.rates[from][to] = rate
	g.incoming[to][from] = struct{}{}
	g.revision++

	return nil
}

// RemoveArc deletes the arc from→to if present; a missing arc is a no-op
// that leaves the revision untouched.
//
// Errors:
//   - ErrNilActor, ErrNotInGraph for non-member endpoints.
//
// Complexity:
//   - O(1).
func (g *Graph[I]) RemoveArc(from, to *Actor[I]) error {
	if err := g.checkArcEnds(from, to); err != nil {
		return err
	}
	if _, exists := g.rates[from][to]; !exists {
		return nil
	}

	delete(g.rates[from], to)
	delete(g.incoming[to], from)
	g.arcs--
	g.revision++

	return nil
}

// HasArc reports whether the arc from→to exists.
// Errors: ErrNilActor, ErrNotInGraph.
func (g *Graph[I]) HasArc(from, to *Actor[I]) (bool, error) {
	if err := g.checkArcEnds(from, to); err != nil {
		return false, err
	}
	_, ok := g.rates[from][to]

	return ok, nil
}

// InterestRate returns the rate from charges to.
// Errors: ErrNilActor, ErrNotInGraph, ErrArcNotFound.
func (g *Graph[I]) InterestRate(from, to *Actor[I]) (float64, error) {
	if err := g.checkArcEnds(from, to); err != nil {
		return 0, err
	}
	rate, ok := g.rates[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v → %v", ErrArcNotFound, from, to)
	}

	return rate, nil
}

// Incoming returns the actors with an arc into a, in unspecified order.
// Errors: ErrNilActor, ErrNotInGraph.
// Complexity: O(in(a)).
func (g *Graph[I]) Incoming(a *Actor[I]) ([]*Actor[I], error) {
	if err := g.checkMember("actor", a); err != nil {
		return nil, err
	}
	out := make([]*Actor[I], 0, len(g.incoming[a]))
	for tail := range g.incoming[a] {
		out = append(out, tail)
	}

	return out, nil
}

// Outgoing returns the actors a has an arc into, in unspecified order.
// Errors: ErrNilActor, ErrNotInGraph.
// Complexity: O(out(a)).
func (g *Graph[I]) Outgoing(a *Actor[I]) ([]*Actor[I], error) {
	if err := g.checkMember("actor", a); err != nil {
		return nil, err
	}
	out := make([]*Actor[I], 0, len(g.rates[a]))
	for head := range g.rates[a] {
		out = append(out, head)
	}

	return out, nil
}

// RangeIncoming calls fn(tail, rate) for every arc tail→a, stopping early
// when fn returns false. It allocates nothing and is the adjacency primitive
// used by the lender searches.
//
// fn must not mutate g.
//
// Errors: ErrNilActor, ErrNotInGraph.
// Complexity: O(in(a)).
func (g *Graph[I]) RangeIncoming(a *Actor[I], fn func(tail *Actor[I], rate float64) bool) error {
	if err := g.checkMember("actor", a); err != nil {
		return err
	}
	for tail := range g.incoming[a] {
		if !fn(tail, g.rates[tail][a]) {
			return nil
		}
	}

	return nil
}

// ArcCount returns the number of arcs. O(1).
func (g *Graph[I]) ArcCount() int { return g.arcs }
