// SPDX-License-Identifier: MIT
// Package: lvloan/pq
//
// types.go — Queue contract, sentinel errors and the Kind selector.

package pq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQueue indicates ExtractMin was called on a queue holding no entries.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// ErrUnknownKind indicates that a queue kind name could not be parsed.
var ErrUnknownKind = errors.New("pq: unknown queue kind")

// Queue is a minimum-priority queue over (priority, payload) pairs.
//
// Insert never fails. ExtractMin returns the payload with the smallest
// priority and removes it, or ErrEmptyQueue. Clear drops every entry and
// leaves the queue ready for reuse.
type Queue[T any] interface {
	Insert(priority float64, payload T)
	ExtractMin() (T, error)
	IsEmpty() bool
	Len() int
	Clear()
}

// Kind selects a Queue implementation.
type Kind int

const (
	// KindBinary selects BinaryHeap.
	KindBinary Kind = iota

	// KindFibonacci selects FibonacciHeap.
	KindFibonacci
)

// Canonical kind names, accepted by ParseKind and produced by Kind.String.
const (
	nameBinary    = "binary"
	nameFibonacci = "fibonacci"
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return nameBinary
	case KindFibonacci:
		return nameFibonacci
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a known implementation.
func (k Kind) Valid() bool {
	return k == KindBinary || k == KindFibonacci
}

// ParseKind maps a case-insensitive name ("binary", "fibonacci", or the
// short forms "bin", "fib") to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameBinary, "bin":
		return KindBinary, nil
	case nameFibonacci, "fib":
		return KindFibonacci, nil
	default:
		return KindBinary, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// New returns an empty queue of the requested kind.
// Panics on an invalid kind: kinds are a closed set and reaching here with an
// unknown value is a programming error (use ParseKind for user input).
func New[T any](k Kind) Queue[T] {
	switch k {
	case KindBinary:
		return NewBinaryHeap[T]()
	case KindFibonacci:
		return NewFibonacciHeap[T]()
	default:
		panic(fmt.Sprintf("pq: New(%s)", k))
	}
}

// entry couples a payload with its priority inside the binary heap.
type entry[T any] struct {
	priority float64
	payload  T
}

// Compile-time conformance checks.
var (
	_ Queue[int] = (*BinaryHeap[int])(nil)
	_ Queue[int] = (*FibonacciHeap[int])(nil)
)
