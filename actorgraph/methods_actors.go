// SPDX-License-Identifier: MIT
// Package: lvloan/actorgraph
//
// methods_actors.go — actor lifecycle and actor-level queries.
//
// Determinism:
//   - Actors() enumerates members in map order (unspecified). Callers needing a
//     stable order must sort by their own identity ordering.

package actorgraph

import "fmt"

// AddActor registers a with the given potential, or updates the potential of
// an actor that is already a member.
//
// Implementation:
//   - Stage 1: Validate a (ErrNilActor) and potential (ErrInvalidValue).
//   - Stage 2: If a is already a member, overwrite its potential and return.
//   - Stage 3: Reject a distinct actor carrying a registered identity (ErrDuplicateID).
//   - Stage 4: If a belongs to another graph, remove it there (all its arcs go too).
//   - Stage 5: Bootstrap empty arc buckets and the back-reference.
//
// Errors:
//   - ErrNilActor, ErrInvalidValue, ErrDuplicateID. Nothing is mutated on error,
//     including the other graph a would have migrated from.
//
// Complexity:
//   - O(1) amortized; O(deg(a)) when a migrates from another graph.
func (g *Graph[I]) AddActor(a *Actor[I], potential float64) error {
	if a == nil {
		return ErrNilActor
	}
	if err := CheckNonNegative("potential", potential); err != nil {
		return err
	}

	if a.owner == g {
		g.potential[a] = potential
		g.revision++
		return nil
	}

	if other, ok := g.byID[a.id]; ok && other != a {
		return fmt.Errorf("%w: %v", ErrDuplicateID, a)
	}

	if a.owner != nil {
		a.owner.detach(a)
	}

	g.potential[a] = potential
	g.rates[a] = make(map[*Actor[I]]float64)
	g.incoming[a] = make(map[*Actor[I]]struct{})
	g.byID[a.id] = a
	a.owner = g
	g.revision++

	return nil
}

// RemoveActor deletes a and every arc touching it, then detaches a.
//
// Errors:
//   - ErrNilActor, ErrNotInGraph.
//
// Complexity:
//   - O(in(a) + out(a)).
func (g *Graph[I]) RemoveActor(a *Actor[I]) error {
	if err := g.checkMember("actor", a); err != nil {
		return err
	}
	g.detach(a)

	return nil
}

// detach removes member a with all incident arcs. a must belong to g.
func (g *Graph[I]) detach(a *Actor[I]) {
	g.arcs -= len(g.incoming[a]) + len(g.rates[a])

	for tail := range g.incoming[a] {
		delete(g.rates[tail], a)
	}
	for head := range g.rates[a] {
		delete(g.incoming[head], a)
	}

	delete(g.potential, a)
	delete(g.rates, a)
	delete(g.incoming, a)
	delete(g.byID, a.id)
	a.owner = nil
	g.revision++
}

// Clear removes every actor and arc. All former members are detached.
// Complexity: O(V).
func (g *Graph[I]) Clear() {
	for a := range g.potential {
		a.owner = nil
	}
	g.potential = make(map[*Actor[I]]float64)
	g.rates = make(map[*Actor[I]]map[*Actor[I]]float64)
	g.incoming = make(map[*Actor[I]]map[*Actor[I]]struct{})
	g.byID = make(map[I]*Actor[I])
	g.arcs = 0
	g.revision++
}

// Contains reports whether a is a member of g. A nil actor is never a member.
func (g *Graph[I]) Contains(a *Actor[I]) bool {
	return a != nil && a.owner == g
}

// Lookup returns the member actor registered under id.
func (g *Graph[I]) Lookup(id I) (*Actor[I], bool) {
	a, ok := g.byID[id]
	return a, ok
}

// Actors returns all member actors in unspecified order.
// Complexity: O(V).
func (g *Graph[I]) Actors() []*Actor[I] {
	out := make([]*Actor[I], 0, len(g.potential))
	for a := range g.potential {
		out = append(out, a)
	}

	return out
}

// Potential returns the lending capacity of member a.
// Errors: ErrNilActor, ErrNotInGraph.
func (g *Graph[I]) Potential(a *Actor[I]) (float64, error) {
	if err := g.checkMember("actor", a); err != nil {
		return 0, err
	}

	return g.potential[a], nil
}

// ActorCount returns the number of member actors. O(1).
func (g *Graph[I]) ActorCount() int { return len(g.potential) }

// Revision returns the mutation counter. It increases on every successful
// AddActor, RemoveActor, Clear, AddArc and effective RemoveArc, and never
// decreases. Cached results stamped with an older revision are stale.
func (g *Graph[I]) Revision() uint64 { return g.revision }
