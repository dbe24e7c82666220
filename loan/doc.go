// Package loan finds the most cost-effective combination of lenders for an
// actor of an actorgraph.Graph.
//
// Overview:
//
//   - A query names a sink (the borrower), a requested amount and a maximum
//     acceptable interest rate. Lenders are the sink's ancestors: every actor
//     with a directed path of arcs into the sink.
//   - Rates compound along a path: Combine(r1, r2) = r1 + r2 + r1·r2, i.e.
//     (1+r1)(1+r2) − 1. Combine is monotone in both arguments for
//     non-negative rates, so lenders can be discovered in non-decreasing
//     order of effective rate with a Dijkstra-style search run backwards over
//     incoming arcs.
//   - Lenders are drained greedily in that order: each contributes
//     min(potential, still-missing amount) until the request is met, the
//     ceiling is exceeded, or no ancestor is left.
//
// Finders:
//
//   - Search: on-demand. Each query runs a fresh backward search that prunes
//     every frontier entry whose effective rate exceeds the ceiling and stops
//     as soon as the requested amount is collected.
//     Time O((V + A) log V) per query with the binary heap.
//   - Cache: preprocessing. NewCache runs the unpruned backward search once
//     per actor and memoizes each actor's complete ascending lender list.
//     A query is then a prefix walk over that list: O(output).
//     The cache stamps the graph revision at build time; any later mutation
//     of the graph makes every query fail with ErrStaleCache.
//
// Both finders accept WithQueue(pq.KindBinary | pq.KindFibonacci) to choose
// the priority queue, and WithLogger(zerolog.Logger) for debug events
// (silent by default).
//
// Results:
//
//   - Result.Achieved() ≤ Result.Requested(); a shortfall is a normal outcome,
//     not an error.
//   - Allocation() holds strictly positive amounts only and sums to Achieved().
//   - Direction() maps each reached actor to the actor it lends to: the parent
//     in the search tree for Search, the previous lender of the walk (or the
//     sink) for Cache.
//   - The sink itself never lends to itself, even through a cycle.
//
// Ceiling:
//
//   - A lender whose effective rate equals the ceiling is accepted (≤).
//
// Ties:
//
//   - When two frontier entries share an effective rate, the order in which
//     they are drained depends on the queue implementation. With a limited
//     request, tied lenders may therefore receive different amounts under
//     different queue kinds.
//
// Errors:
//
//   - actorgraph.ErrNilActor / actorgraph.ErrNotInGraph: bad sink.
//   - actorgraph.ErrInvalidValue: NaN, negative or infinite amount or ceiling.
//   - ErrStaleCache: the graph changed after NewCache.
//   - ErrNilGraph: NewCache(nil).
//
// Thread safety:
//
//   - A Search may be shared by goroutines as long as none of them mutates the
//     graph being searched. A Cache is read-only after construction under the
//     same condition.
package loan
