// Package pq provides the minimum-priority queues that drive the lender
// searches of lvloan.
//
// Overview:
//
//   - Queue[T] is the whole contract the searches rely on: Insert a payload
//     under a float64 priority, ExtractMin the payload with the smallest
//     priority, IsEmpty / Len observers and Clear for reuse.
//   - BinaryHeap[T] is an array-backed binary heap with classic sift-up and
//     sift-down: O(log n) Insert and ExtractMin.
//   - FibonacciHeap[T] keeps a circular root list of heap-ordered multi-way
//     trees plus a pointer to the minimum root: O(1) Insert and O(log n)
//     amortized ExtractMin. Consolidation merges equal-degree roots through a
//     degree-indexed bucket slice sized by the golden-ratio degree bound.
//
// Neither heap supports decrease-key or arbitrary delete. Searches use the
// “lazy” strategy instead: a better entry is inserted again and stale entries
// are skipped when they surface.
//
// Ties:
//
//   - Entries with equal priority come out in an order that depends on the
//     heap's internal shape. The order is deterministic for a fixed sequence
//     of operations on one implementation, but differs between BinaryHeap and
//     FibonacciHeap. Callers must not rely on tie order.
//
// Selecting an implementation:
//
//	q := pq.New[string](pq.KindFibonacci)
//	q.Insert(0.2, "D")
//	q.Insert(0.1, "B")
//	v, _ := q.ExtractMin() // "B"
//
// Errors:
//
//   - ErrEmptyQueue: ExtractMin on an empty queue.
//   - ErrUnknownKind: ParseKind received a name it does not recognise.
//
// Thread safety:
//
//   - Queues are not safe for concurrent use; each search owns its queue.
package pq
