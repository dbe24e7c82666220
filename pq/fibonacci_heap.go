// SPDX-License-Identifier: MIT
// Package: lvloan/pq
//
// fibonacci_heap.go — unindexed Fibonacci heap supporting Insert and ExtractMin.
//
// Structure:
//   - A circular doubly linked root list of heap-ordered trees; min points at
//     the root with the smallest priority.
//   - Children of a node form their own circular list reachable via child.
//   - No decrease-key, hence no cut/mark bookkeeping.
//
// Complexity (amortized):
//   - Insert: O(1); splice a singleton tree next to min.
//   - ExtractMin: O(log n); promote children, consolidate equal-degree roots.
//
// Degree bound:
//   - A tree of degree d holds at least F(d+2) ≥ φ^d nodes, so root degrees
//     never exceed ⌊log_φ n⌋. The consolidation buckets are sized from it.

package pq

import "math"

// logPhi is ln(φ) for the golden ratio φ = (1+√5)/2.
var logPhi = math.Log((1 + math.Sqrt(5)) / 2)

// fibNode is one node of a Fibonacci heap tree.
type fibNode[T any] struct {
	priority float64
	payload  T

	parent *fibNode[T]
	child  *fibNode[T] // any one child; siblings are linked circularly
	left   *fibNode[T]
	right  *fibNode[T]

	degree int // number of children
}

// FibonacciHeap is a min-heap made of a circular list of heap-ordered trees.
// The zero value is an empty, ready-to-use heap.
type FibonacciHeap[T any] struct {
	min  *fibNode[T]
	size int

	// buckets is the degree-indexed scratch table reused by consolidate.
	buckets []*fibNode[T]
}

// NewFibonacciHeap returns an empty Fibonacci heap.
func NewFibonacciHeap[T any]() *FibonacciHeap[T] {
	return &FibonacciHeap[T]{}
}

// Insert splices a singleton tree holding payload into the root list.
func (h *FibonacciHeap[T]) Insert(priority float64, payload T) {
	node := &fibNode[T]{priority: priority, payload: payload}
	node.left = node
	node.right = node

	if h.min == nil {
		h.min = node
	} else {
		spliceLists(h.min, node)
		if priority < h.min.priority {
			h.min = node
		}
	}
	h.size++
}

// ExtractMin removes the minimum root, promotes its children to the root
// list and consolidates the remaining roots.
// Returns ErrEmptyQueue if the heap holds no entries.
func (h *FibonacciHeap[T]) ExtractMin() (T, error) {
	var zero T
	if h.size == 0 {
		return zero, ErrEmptyQueue
	}

	z := h.min

	// Promote every child of z to the root list.
	if z.child != nil {
		c := z.child
		for i := 0; i < z.degree; i++ {
			c.parent = nil
			c = c.right
		}
		spliceLists(z, z.child)
		z.child = nil
		z.degree = 0
	}

	// Unlink z from the root list.
	z.left.right = z.right
	z.right.left = z.left
	h.size--

	if z.right == z {
		h.min = nil
	} else {
		h.min = z.right
		h.consolidate()
	}

	payload := z.payload
	z.left, z.right, z.payload = nil, nil, zero

	return payload, nil
}

// IsEmpty reports whether the heap holds no entries.
func (h *FibonacciHeap[T]) IsEmpty() bool { return h.size == 0 }

// Len returns the number of entries.
func (h *FibonacciHeap[T]) Len() int { return h.size }

// Clear drops every tree. Nodes are reclaimed by the garbage collector.
func (h *FibonacciHeap[T]) Clear() {
	h.min = nil
	h.size = 0
	clear(h.buckets)
}

// consolidate links roots of equal degree until all root degrees differ,
// then rescans the surviving roots for the new minimum.
func (h *FibonacciHeap[T]) consolidate() {
	h.resetBuckets(maxDegree(h.size) + 1)

	// Count roots first: linking rewires the list while we walk it.
	roots := 0
	w := h.min
	for {
		roots++
		w = w.right
		if w == h.min {
			break
		}
	}

	var x, y, next *fibNode[T]
	var d int
	x = h.min
	for ; roots > 0; roots-- {
		next = x.right
		d = x.degree
		for {
			if d >= len(h.buckets) {
				h.buckets = append(h.buckets, nil)
			}
			y = h.buckets[d]
			if y == nil {
				break
			}
			if y.priority < x.priority {
				x, y = y, x
			}
			link(y, x)
			h.buckets[d] = nil
			d++
		}
		h.buckets[d] = x
		x = next
	}

	// The surviving roots are exactly the non-nil buckets.
	h.min = nil
	for _, b := range h.buckets {
		if b != nil && (h.min == nil || b.priority < h.min.priority) {
			h.min = b
		}
	}
}

// resetBuckets makes h.buckets an all-nil slice of length n, reusing storage.
func (h *FibonacciHeap[T]) resetBuckets(n int) {
	if cap(h.buckets) < n {
		h.buckets = make([]*fibNode[T], n)
		return
	}
	h.buckets = h.buckets[:n]
	clear(h.buckets)
}

// maxDegree returns ⌊log_φ n⌋, the largest root degree a heap of n nodes can reach.
func maxDegree(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Floor(math.Log(float64(n))/logPhi)) + 1
}

// link removes root y from the root list and makes it a child of root x.
func link[T any](y, x *fibNode[T]) {
	y.left.right = y.right
	y.right.left = y.left
	y.left = y
	y.right = y
	y.parent = x

	if x.child == nil {
		x.child = y
	} else {
		spliceLists(x.child, y)
	}
	x.degree++
}

// spliceLists merges the circular list containing b into the one containing a,
// placing b's list immediately to the right of a.
func spliceLists[T any](a, b *fibNode[T]) {
	aRight := a.right
	bLeft := b.left
	a.right = b
	b.left = a
	bLeft.right = aRight
	aRight.left = bLeft
}
