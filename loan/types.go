// SPDX-License-Identifier: MIT
// Package: lvloan/loan
//
// types.go — sentinel errors, the Finder contract, options and the rate
// combination operator.

package loan

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/pq"
)

// Sentinel errors returned by the finders.
var (
	// ErrStaleCache indicates the preprocessed graph was mutated after the
	// Cache was built.
	ErrStaleCache = errors.New("loan: actor graph modified after preprocessing")

	// ErrNilGraph indicates NewCache was given a nil graph.
	ErrNilGraph = errors.New("loan: graph is nil")
)

// Finder answers lender queries.
//
// FindLenders returns the cheapest allocation of up to requested units of
// potential towards sink, using only lenders whose effective rate does not
// exceed maxRate.
type Finder[I comparable] interface {
	FindLenders(sink *actorgraph.Actor[I], requested, maxRate float64) (*Result[I], error)
}

// Combine chains two interest rates along a path: (1+r1)(1+r2) − 1.
// For non-negative inputs it is monotone non-decreasing in each argument.
func Combine(r1, r2 float64) float64 {
	return r1 + r2 + r1*r2
}

// Lender is one entry of a memoized lender list: an ancestor actor and the
// effective rate at which it reaches the sink.
type Lender[I comparable] struct {
	Actor *actorgraph.Actor[I]
	Rate  float64
}

// Options configures a finder.
//
// Queue  – priority queue implementation used by the backward search.
// Logger – receives debug events; zerolog.Nop() by default.
type Options struct {
	Queue  pq.Kind
	Logger zerolog.Logger
}

// Option is a functional option for NewSearch and NewCache.
type Option func(*Options)

// DefaultOptions returns the binary heap and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Queue:  pq.KindBinary,
		Logger: zerolog.Nop(),
	}
}

// WithQueue selects the priority queue. Panics on an unknown kind.
func WithQueue(kind pq.Kind) Option {
	if !kind.Valid() {
		panic(fmt.Sprintf("loan: WithQueue(%s)", kind))
	}
	return func(o *Options) {
		o.Queue = kind
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// newOptions applies opts over DefaultOptions, last wins.
func newOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// frontierItem is a queue payload: actor reached at an effective rate while
// lending towards next.
type frontierItem[I comparable] struct {
	actor *actorgraph.Actor[I]
	next  *actorgraph.Actor[I]
	rate  float64
}

// checkQuery validates the scalar arguments shared by every query.
func checkQuery(requested, maxRate float64) error {
	if err := actorgraph.CheckNonNegative("requested amount", requested); err != nil {
		return err
	}

	return actorgraph.CheckNonNegative("maximum interest rate", maxRate)
}

// Compile-time conformance checks.
var (
	_ Finder[string] = (*Search[string])(nil)
	_ Finder[string] = (*Cache[string])(nil)
)
