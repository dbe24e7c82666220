// SPDX-License-Identifier: MIT
// Package: lvloan/pq
//
// binary_heap.go — array-backed binary min-heap.
//
// Layout:
//   - items[0] is the minimum; children of i live at 2i+1 and 2i+2.
//
// Complexity:
//   - Insert, ExtractMin: O(log n). IsEmpty, Len: O(1). Clear: O(n) (payload release).

package pq

// BinaryHeap is an array-backed binary min-heap keyed by float64 priority.
// The zero value is an empty, ready-to-use heap.
type BinaryHeap[T any] struct {
	items []entry[T]
}

// NewBinaryHeap returns an empty binary heap.
func NewBinaryHeap[T any]() *BinaryHeap[T] {
	return &BinaryHeap[T]{}
}

// Insert adds payload under priority and restores heap order by sifting up.
func (h *BinaryHeap[T]) Insert(priority float64, payload T) {
	h.items = append(h.items, entry[T]{priority: priority, payload: payload})
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the payload with the smallest priority.
// Returns ErrEmptyQueue if the heap holds no entries.
func (h *BinaryHeap[T]) ExtractMin() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = entry[T]{} // drop the payload reference held by the tail slot
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top.payload, nil
}

// IsEmpty reports whether the heap holds no entries.
func (h *BinaryHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of entries.
func (h *BinaryHeap[T]) Len() int { return len(h.items) }

// Clear removes all entries, keeping the backing array for reuse.
func (h *BinaryHeap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// siftUp moves the entry at i towards the root while it is smaller than its parent.
func (h *BinaryHeap[T]) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if h.items[parent].priority <= h.items[i].priority {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown moves the entry at i towards the leaves while a child is smaller.
func (h *BinaryHeap[T]) siftDown(i int) {
	n := len(h.items)
	var left, right, smallest int
	for {
		left = 2*i + 1
		if left >= n {
			return
		}
		smallest = left
		right = left + 1
		if right < n && h.items[right].priority < h.items[left].priority {
			smallest = right
		}
		if h.items[i].priority <= h.items[smallest].priority {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
