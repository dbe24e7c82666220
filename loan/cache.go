// SPDX-License-Identifier: MIT
// Package: lvloan/loan
//
// cache.go — preprocessing finder.
//
// Construction explores the graph backwards once per actor, without a rate
// ceiling and without an amount target, and memoizes each actor's ancestors
// in ascending effective rate. Queries then walk a prefix of that list.
//
// Staleness:
//   - The graph revision is captured at construction. Any later mutation of
//     the graph makes every query fail with ErrStaleCache; rebuild the Cache
//     to recover.
//
// Complexity:
//   - NewCache: O(V·(V + E) log E) with the binary heap, O(V·(V log E + E))
//     amortized with the Fibonacci heap. Space O(V²) for the memoized lists.
//   - FindLenders: O(k) where k is the number of list entries walked.

package loan

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/pq"
)

// Cache answers queries from lender lists memoized at construction.
type Cache[I comparable] struct {
	graph    *actorgraph.Graph[I]
	revision uint64
	lenders  map[*actorgraph.Actor[I]][]Lender[I]
	opts     Options
}

// NewCache preprocesses g. One priority queue and one visited set are reused
// across all per-actor explorations.
//
// Errors: ErrNilGraph.
func NewCache[I comparable](g *actorgraph.Graph[I], opts ...Option) (*Cache[I], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	c := &Cache[I]{
		graph:    g,
		revision: g.Revision(),
		lenders:  make(map[*actorgraph.Actor[I]][]Lender[I], g.ActorCount()),
		opts:     newOptions(opts),
	}

	start := time.Now()
	queue := pq.New[frontierItem[I]](c.opts.Queue)
	visited := make(map[*actorgraph.Actor[I]]bool, g.ActorCount())
	total := 0
	for _, sink := range g.Actors() {
		list, err := c.explore(sink, queue, visited)
		if err != nil {
			return nil, err
		}
		c.lenders[sink] = list
		total += len(list)

		c.opts.Logger.Trace().
			Stringer("sink", sink).
			Int("lenders", len(list)).
			Msg("lender list memoized")
	}

	c.opts.Logger.Debug().
		Int("actors", g.ActorCount()).
		Int("arcs", g.ArcCount()).
		Int("entries", total).
		Stringer("queue", c.opts.Queue).
		Dur("elapsed", time.Since(start)).
		Msg("preprocessing finished")

	return c, nil
}

// explore lists every ancestor of sink in ascending effective rate.
func (c *Cache[I]) explore(
	sink *actorgraph.Actor[I],
	queue pq.Queue[frontierItem[I]],
	visited map[*actorgraph.Actor[I]]bool,
) ([]Lender[I], error) {
	queue.Clear()
	clear(visited)

	var list []Lender[I]
	push := func(a *actorgraph.Actor[I], rate float64) error {
		return c.graph.RangeIncoming(a, func(tail *actorgraph.Actor[I], arcRate float64) bool {
			if !visited[tail] {
				combined := Combine(rate, arcRate)
				queue.Insert(combined, frontierItem[I]{actor: tail, next: a, rate: combined})
			}
			return true
		})
	}

	visited[sink] = true
	if err := push(sink, 0); err != nil {
		return nil, err
	}
	for !queue.IsEmpty() {
		item, err := queue.ExtractMin()
		if err != nil {
			return nil, err
		}
		if visited[item.actor] {
			continue
		}
		visited[item.actor] = true
		list = append(list, Lender[I]{Actor: item.actor, Rate: item.rate})
		if err = push(item.actor, item.rate); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// checkSink verifies sink is a member of the preprocessed graph and that the
// graph has not changed since.
func (c *Cache[I]) checkSink(sink *actorgraph.Actor[I]) error {
	if sink == nil {
		return fmt.Errorf("%w: sink", actorgraph.ErrNilActor)
	}
	if sink.Graph() != c.graph {
		return fmt.Errorf("%w: sink %v", actorgraph.ErrNotInGraph, sink)
	}
	if c.Stale() {
		return fmt.Errorf("%w: revision %d, graph at %d", ErrStaleCache, c.revision, c.graph.Revision())
	}

	return nil
}

// FindLenders walks the memoized list of sink from the cheapest lender,
// drawing min(potential, missing) from each until the amount is collected,
// the list ends, or the next lender's rate exceeds maxRate. Lenders with
// nothing to give are skipped. Each allocated lender is directed to the
// previously allocated one, the first to the sink.
//
// Errors:
//   - actorgraph.ErrNilActor, actorgraph.ErrNotInGraph.
//   - ErrStaleCache if the graph was mutated after preprocessing.
//   - actorgraph.ErrInvalidValue for a NaN, negative or infinite amount or rate.
func (c *Cache[I]) FindLenders(sink *actorgraph.Actor[I], requested, maxRate float64) (*Result[I], error) {
	if err := c.checkSink(sink); err != nil {
		return nil, err
	}
	if err := checkQuery(requested, maxRate); err != nil {
		return nil, err
	}

	out := newResultBuilder(sink, requested, maxRate)
	prev := sink
	walked := 0
	for _, l := range c.lenders[sink] {
		if out.satisfied() || l.Rate > maxRate {
			break
		}
		walked++
		potential, err := c.graph.Potential(l.Actor)
		if err != nil {
			return nil, err
		}
		if out.allocate(l.Actor, potential, l.Rate) > 0 {
			out.direct(l.Actor, prev)
			prev = l.Actor
		}
	}

	res := out.build()
	c.opts.Logger.Debug().
		Stringer("sink", sink).
		Float64("requested", requested).
		Float64("max_rate", maxRate).
		Float64("achieved", res.Achieved()).
		Int("walked", walked).
		Msg("cached loan lookup finished")

	return res, nil
}

// Lenders returns a copy of the memoized list for sink, ascending by rate.
//
// Errors: actorgraph.ErrNilActor, actorgraph.ErrNotInGraph, ErrStaleCache.
func (c *Cache[I]) Lenders(sink *actorgraph.Actor[I]) ([]Lender[I], error) {
	if err := c.checkSink(sink); err != nil {
		return nil, err
	}

	return append([]Lender[I](nil), c.lenders[sink]...), nil
}

// Graph returns the preprocessed graph.
func (c *Cache[I]) Graph() *actorgraph.Graph[I] { return c.graph }

// Revision returns the graph revision captured at construction.
func (c *Cache[I]) Revision() uint64 { return c.revision }

// Stale reports whether the graph changed after preprocessing.
func (c *Cache[I]) Stale() bool { return c.graph.Revision() != c.revision }
