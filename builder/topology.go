// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// topology.go — deterministic lender topologies.
//
// Contract:
//   - Actors 0..n−1 are created in index order; actor 0 is the natural sink.
//   - Chain(n): arcs i→i−1 for i = 1..n−1, so every actor lends towards 0
//     through all actors in between.
//   - Star(n):  arcs i→0 for i = 1..n−1, every actor lends to 0 directly.
//   - Potentials and rates come from the configured distributions; with the
//     defaults and no RNG every potential and rate is 0, so callers normally
//     pass WithPotentialFn / WithRateFn or a seed.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvloan/actorgraph"
)

const (
	methodChain = "Chain"
	methodStar  = "Star"
	minTopology = 2
)

// Chain returns a lender chain of n actors ending in actor 0.
// Panics if idFn is nil.
func Chain[I comparable](n int, idFn IDFn[I], opts ...Option) (*actorgraph.Graph[I], []*actorgraph.Actor[I], error) {
	return topology(methodChain, n, idFn, opts, func(i int) int { return i - 1 })
}

// Star returns n−1 lenders each with a single arc into actor 0.
// Panics if idFn is nil.
func Star[I comparable](n int, idFn IDFn[I], opts ...Option) (*actorgraph.Graph[I], []*actorgraph.Actor[I], error) {
	return topology(methodStar, n, idFn, opts, func(int) int { return 0 })
}

// topology adds arcs i→head(i) for i = 1..n−1.
func topology[I comparable](
	method string,
	n int,
	idFn IDFn[I],
	opts []Option,
	head func(i int) int,
) (*actorgraph.Graph[I], []*actorgraph.Actor[I], error) {
	if idFn == nil {
		panic(fmt.Sprintf("builder: %s with nil IDFn", method))
	}
	if n < minTopology {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minTopology, ErrTooFewActors)
	}
	cfg := newConfig(opts...)
	g, actors, err := addActors(method, n, idFn, cfg)
	if err != nil {
		return nil, nil, err
	}
	for i := 1; i < n; i++ {
		from, to := actors[i], actors[head(i)]
		if err = g.AddArc(from, to, cfg.rateFn(cfg.rng)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddArc(%v→%v): %w", method, from, to, err)
		}
	}

	return g, actors, nil
}

// addActors creates a graph holding actors 0..n−1 with drawn potentials.
func addActors[I comparable](method string, n int, idFn IDFn[I], cfg config) (*actorgraph.Graph[I], []*actorgraph.Actor[I], error) {
	g := actorgraph.NewGraph[I]()
	actors := make([]*actorgraph.Actor[I], n)
	for i := range actors {
		a := actorgraph.NewActor(idFn(i))
		if err := g.AddActor(a, cfg.potentialFn(cfg.rng)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddActor(%v): %w", method, a, err)
		}
		actors[i] = a
	}

	return g, actors, nil
}
