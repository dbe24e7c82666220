// SPDX-License-Identifier: MIT
// Package: lvloan/actorgraph
//
// types.go — Actor, Graph, sentinel errors and the NewGraph constructor.

package actorgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for actor graph operations.
var (
	// ErrNilActor indicates a nil *Actor was passed where an actor is required.
	ErrNilActor = errors.New("actorgraph: actor is nil")

	// ErrInvalidValue indicates a potential, rate or amount that is NaN,
	// negative or infinite.
	ErrInvalidValue = errors.New("actorgraph: value must be finite and non-negative")

	// ErrNotInGraph indicates an actor used against a graph it does not belong to.
	ErrNotInGraph = errors.New("actorgraph: actor is not in this graph")

	// ErrArcNotFound indicates a lookup of an arc that does not exist.
	ErrArcNotFound = errors.New("actorgraph: arc not found")

	// ErrSelfLoop indicates an arc from an actor to itself was requested.
	ErrSelfLoop = errors.New("actorgraph: self-loops are not allowed")

	// ErrDuplicateID indicates a distinct actor with the same identity is
	// already registered in the graph.
	ErrDuplicateID = errors.New("actorgraph: identity already registered")
)

// Actor is a vertex of the actor graph.
//
// The identity is immutable and opaque; it only has to be comparable.
// owner is the graph the actor currently belongs to (nil when detached) and
// is written exclusively by Graph methods.
type Actor[I comparable] struct {
	id    I
	owner *Graph[I]
}

// NewActor returns a detached actor with the given identity.
func NewActor[I comparable](id I) *Actor[I] {
	return &Actor[I]{id: id}
}

// ID returns the actor's identity.
func (a *Actor[I]) ID() I { return a.id }

// Graph returns the graph the actor currently belongs to, or nil.
func (a *Actor[I]) Graph() *Graph[I] { return a.owner }

// String renders the actor as "[Actor, <id>]".
func (a *Actor[I]) String() string {
	if a == nil {
		return "[Actor, <nil>]"
	}
	return fmt.Sprintf("[Actor, %v]", a.id)
}

// Graph is a directed actor graph with per-actor potentials and per-arc
// interest rates.
//
// Invariants:
//   - potential, rates and incoming have exactly the same key set: the member actors.
//   - rates[u][v] exists iff incoming[v][u] exists; u != v.
//   - arcs == Σ_u len(rates[u]).
//   - byID[a.ID()] == a for every member a.
//   - every value stored is finite and non-negative.
type Graph[I comparable] struct {
	potential map[*Actor[I]]float64                // actor → lending capacity
	rates     map[*Actor[I]]map[*Actor[I]]float64  // tail → head → interest rate
	incoming  map[*Actor[I]]map[*Actor[I]]struct{} // head → set of tails
	byID      map[I]*Actor[I]                      // identity → member actor

	arcs     int    // cached Σ len(rates[u])
	revision uint64 // bumped on every mutation
}

// NewGraph creates an empty actor graph.
// Complexity: O(1)
func NewGraph[I comparable]() *Graph[I] {
	return &Graph[I]{
		potential: make(map[*Actor[I]]float64),
		rates:     make(map[*Actor[I]]map[*Actor[I]]float64),
		incoming:  make(map[*Actor[I]]map[*Actor[I]]struct{}),
		byID:      make(map[I]*Actor[I]),
	}
}
