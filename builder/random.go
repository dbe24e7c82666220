// SPDX-License-Identifier: MIT
// Package: lvloan/builder
//
// random.go — RandomActorGraph(n, arcs, idFn) generator.
//
// Model:
//   - Actors 0..n−1 are created in index order with identities idFn(i) and
//     potentials drawn from the potential distribution.
//   - Ordered pairs (i, j) are drawn uniformly; self-loops are skipped and an
//     already present pair is redrawn, until exactly arcs distinct arcs exist.
//     Each new arc gets a rate drawn from the rate distribution.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewActors).
//   - 0 ≤ arcs ≤ n·(n−1) (else ErrTooManyArcs).
//   - An RNG must be configured (else ErrNeedRandSource).
//
// Complexity:
//   - Expected O(n + arcs) draws while arcs ≤ n·(n−1)/2; approaching the
//     complete graph the redraws grow like a coupon collector.
//
// Determinism:
//   - For a fixed seed and option set the output is identical: potentials are
//     drawn first in index order, then pairs and rates in draw order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvloan/actorgraph"
)

// RandomActorGraph returns a new graph with n actors and exactly arcs
// distinct random arcs, plus the actors in index order. Panics if idFn is nil.
func RandomActorGraph[I comparable](n, arcs int, idFn IDFn[I], opts ...Option) (*actorgraph.Graph[I], []*actorgraph.Actor[I], error) {
	if idFn == nil {
		panic("builder: RandomActorGraph with nil IDFn")
	}
	if n < minActors {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomActorGraph, n, minActors, ErrTooFewActors)
	}
	if limit := n * (n - 1); arcs < 0 || arcs > limit {
		return nil, nil, fmt.Errorf("%s: arcs=%d not in [0,%d]: %w",
			methodRandomActorGraph, arcs, limit, ErrTooManyArcs)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRandomActorGraph, ErrNeedRandSource)
	}

	g, actors, err := addActors(methodRandomActorGraph, n, idFn, cfg)
	if err != nil {
		return nil, nil, err
	}

	rng := cfg.rng
	for g.ArcCount() < arcs {
		from, to := actors[rng.Intn(n)], actors[rng.Intn(n)]
		if from == to {
			continue
		}
		if ok, _ := g.HasArc(from, to); ok {
			continue
		}
		if err = g.AddArc(from, to, cfg.rateFn(rng)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddArc(%v→%v): %w", methodRandomActorGraph, from, to, err)
		}
	}

	return g, actors, nil
}
