// SPDX-License-Identifier: MIT
// Package: lvloan/loan
//
// search.go — on-demand backward search.
//
// Implementation:
//   - Stage 1: Validate sink, amount and ceiling.
//   - Stage 2: Mark the sink visited and seed the frontier with every arc
//     entering it whose rate is within the ceiling.
//   - Stage 3: Extract the cheapest frontier entry, skip it if its actor was
//     already settled, otherwise settle it, draw from its potential and relax
//     the arcs entering it with Combine.
//   - Stage 4: Stop when the amount is collected or the frontier is empty.
//
// Complexity:
//   - Time:  O((V + E) log E) with the binary heap, O(V log E + E) amortized
//     with the Fibonacci heap, over the part of the graph within the ceiling.
//   - Space: O(V + E).

package loan

import (
	"fmt"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/pq"
)

// Search answers each query with a fresh backward search over the sink's
// graph. A Search holds no graph state and may be reused across graphs.
type Search[I comparable] struct {
	opts Options
}

// NewSearch returns an on-demand finder.
func NewSearch[I comparable](opts ...Option) *Search[I] {
	return &Search[I]{opts: newOptions(opts)}
}

// FindLenders collects up to requested units of potential for sink from its
// ancestors, cheapest effective rate first, never using a lender whose
// effective rate exceeds maxRate.
//
// Errors:
//   - actorgraph.ErrNilActor if sink is nil.
//   - actorgraph.ErrNotInGraph if sink is detached.
//   - actorgraph.ErrInvalidValue if requested or maxRate is NaN, negative or +Inf.
func (s *Search[I]) FindLenders(sink *actorgraph.Actor[I], requested, maxRate float64) (*Result[I], error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: sink", actorgraph.ErrNilActor)
	}
	g := sink.Graph()
	if g == nil {
		return nil, fmt.Errorf("%w: sink %v", actorgraph.ErrNotInGraph, sink)
	}
	if err := checkQuery(requested, maxRate); err != nil {
		return nil, err
	}

	r := &runner[I]{
		g:       g,
		maxRate: maxRate,
		queue:   pq.New[frontierItem[I]](s.opts.Queue),
		visited: make(map[*actorgraph.Actor[I]]bool),
		out:     newResultBuilder(sink, requested, maxRate),
	}
	if err := r.init(sink); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	res := r.out.build()
	s.opts.Logger.Debug().
		Stringer("sink", sink).
		Float64("requested", requested).
		Float64("max_rate", maxRate).
		Float64("achieved", res.Achieved()).
		Int("lenders", len(res.lenders)).
		Int("settled", r.settled).
		Msg("loan search finished")

	return res, nil
}

// runner holds the mutable state of one search.
type runner[I comparable] struct {
	g       *actorgraph.Graph[I]
	maxRate float64
	queue   pq.Queue[frontierItem[I]]
	visited map[*actorgraph.Actor[I]]bool
	out     resultBuilder[I]
	settled int
}

// init marks the sink visited and pushes its direct lenders.
func (r *runner[I]) init(sink *actorgraph.Actor[I]) error {
	r.visited[sink] = true
	if r.out.satisfied() {
		return nil
	}

	return r.relax(sink, 0)
}

// process settles frontier entries in rate order until the amount is
// collected or nothing within the ceiling is left.
func (r *runner[I]) process() error {
	for !r.out.satisfied() && !r.queue.IsEmpty() {
		item, err := r.queue.ExtractMin()
		if err != nil {
			return err
		}
		if r.visited[item.actor] {
			continue
		}
		r.visited[item.actor] = true
		r.settled++

		potential, err := r.g.Potential(item.actor)
		if err != nil {
			return err
		}
		r.out.direct(item.actor, item.next)
		r.out.allocate(item.actor, potential, item.rate)

		if r.out.satisfied() {
			break
		}
		if err = r.relax(item.actor, item.rate); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes every unvisited tail of an arc entering a whose combined rate
// stays within the ceiling. rate is the effective rate already paid from a to
// the sink; it is zero for the sink itself.
func (r *runner[I]) relax(a *actorgraph.Actor[I], rate float64) error {
	return r.g.RangeIncoming(a, func(tail *actorgraph.Actor[I], arcRate float64) bool {
		if r.visited[tail] {
			return true
		}
		combined := Combine(rate, arcRate)
		if combined <= r.maxRate {
			r.queue.Insert(combined, frontierItem[I]{actor: tail, next: a, rate: combined})
		}
		return true
	})
}

