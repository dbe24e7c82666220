// SPDX-License-Identifier: MIT
// Package: lvloan/loan
//
// result.go — immutable loan result.

package loan

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvloan/actorgraph"
)

// Result is the immutable outcome of one lender query.
type Result[I comparable] struct {
	sink      *actorgraph.Actor[I]
	requested float64
	achieved  float64
	maxRate   float64

	allocation map[*actorgraph.Actor[I]]float64             // lender → amount (> 0)
	rates      map[*actorgraph.Actor[I]]float64             // lender → effective rate
	direction  map[*actorgraph.Actor[I]]*actorgraph.Actor[I] // actor → actor it lends to

	lenders []*actorgraph.Actor[I] // allocation keys in allocation order
	reached []*actorgraph.Actor[I] // direction keys in insertion order
}

// resultBuilder accumulates a Result while a finder runs.
type resultBuilder[I comparable] struct {
	res *Result[I]
}

func newResultBuilder[I comparable](sink *actorgraph.Actor[I], requested, maxRate float64) resultBuilder[I] {
	return resultBuilder[I]{res: &Result[I]{
		sink:       sink,
		requested:  requested,
		maxRate:    maxRate,
		allocation: make(map[*actorgraph.Actor[I]]float64),
		rates:      make(map[*actorgraph.Actor[I]]float64),
		direction:  make(map[*actorgraph.Actor[I]]*actorgraph.Actor[I]),
	}}
}

// missing is the amount still to collect.
func (b resultBuilder[I]) missing() float64 {
	return b.res.requested - b.res.achieved
}

// satisfied reports whether nothing is missing.
func (b resultBuilder[I]) satisfied() bool {
	return b.res.achieved >= b.res.requested
}

// direct records that a lends to next.
func (b resultBuilder[I]) direct(a, next *actorgraph.Actor[I]) {
	if _, seen := b.res.direction[a]; !seen {
		b.res.reached = append(b.res.reached, a)
	}
	b.res.direction[a] = next
}

// allocate draws min(potential, missing) from a at the given effective rate
// and returns the amount drawn. Zero draws are not recorded. A draw that
// covers everything missing pins achieved to requested, so rounding in the
// running sum never overshoots the request.
func (b resultBuilder[I]) allocate(a *actorgraph.Actor[I], potential, rate float64) float64 {
	missing := b.missing()
	amount := min(potential, missing)
	if amount <= 0 {
		return 0
	}
	b.res.allocation[a] = amount
	b.res.rates[a] = rate
	b.res.lenders = append(b.res.lenders, a)
	if amount == missing {
		b.res.achieved = b.res.requested
	} else {
		b.res.achieved = min(b.res.achieved+amount, b.res.requested)
	}

	return amount
}

func (b resultBuilder[I]) build() *Result[I] { return b.res }

// Sink returns the borrowing actor.
func (r *Result[I]) Sink() *actorgraph.Actor[I] { return r.sink }

// Requested returns the requested amount.
func (r *Result[I]) Requested() float64 { return r.requested }

// Achieved returns the amount actually collected (≤ Requested).
func (r *Result[I]) Achieved() float64 { return r.achieved }

// MaxInterestRate returns the rate ceiling of the query.
func (r *Result[I]) MaxInterestRate() float64 { return r.maxRate }

// Satisfied reports whether the full requested amount was collected.
func (r *Result[I]) Satisfied() bool { return r.achieved >= r.requested }

// Allocation returns a copy of the lender → amount map.
func (r *Result[I]) Allocation() map[*actorgraph.Actor[I]]float64 {
	out := make(map[*actorgraph.Actor[I]]float64, len(r.allocation))
	for a, v := range r.allocation {
		out[a] = v
	}

	return out
}

// Direction returns a copy of the actor → borrower map. Following it from
// any key ends at the sink. Keys of an on-demand search also include
// zero-potential relays that lend nothing but connect a lender to the sink,
// so not every key appears in Allocation.
func (r *Result[I]) Direction() map[*actorgraph.Actor[I]]*actorgraph.Actor[I] {
	out := make(map[*actorgraph.Actor[I]]*actorgraph.Actor[I], len(r.direction))
	for a, next := range r.direction {
		out[a] = next
	}

	return out
}

// Lenders returns the lenders in the order they were drawn from, which is
// non-decreasing effective rate.
func (r *Result[I]) Lenders() []*actorgraph.Actor[I] {
	return append([]*actorgraph.Actor[I](nil), r.lenders...)
}

// Amount returns the amount lender a contributes.
func (r *Result[I]) Amount(a *actorgraph.Actor[I]) (float64, bool) {
	v, ok := r.allocation[a]
	return v, ok
}

// EffectiveRate returns the combined rate at which lender a was reached.
func (r *Result[I]) EffectiveRate(a *actorgraph.Actor[I]) (float64, bool) {
	v, ok := r.rates[a]
	return v, ok
}

// Equal reports whether both results describe the same query and outcome:
// sink, amounts, ceiling, allocation and direction maps. Effective rates and
// ordering are not compared.
func (r *Result[I]) Equal(o *Result[I]) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.sink != o.sink ||
		r.requested != o.requested ||
		r.achieved != o.achieved ||
		r.maxRate != o.maxRate ||
		len(r.allocation) != len(o.allocation) ||
		len(r.direction) != len(o.direction) {
		return false
	}
	for a, v := range r.allocation {
		if w, ok := o.allocation[a]; !ok || w != v {
			return false
		}
	}
	for a, next := range r.direction {
		if w, ok := o.direction[a]; !ok || w != next {
			return false
		}
	}

	return true
}

// String renders the result over several lines: header fields, then
// "lender -> amount" in allocation order, then "actor -> borrower".
func (r *Result[I]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Loan, actor = %v,\n", r.sink)
	fmt.Fprintf(&sb, "potential = %g,\n", r.achieved)
	fmt.Fprintf(&sb, "requested potential = %g,\n", r.requested)
	fmt.Fprintf(&sb, "maximum interest rate = %g,\n", r.maxRate)
	sb.WriteString("potentials:")
	for _, a := range r.lenders {
		fmt.Fprintf(&sb, "\n%v -> %g", a, r.allocation[a])
	}
	sb.WriteString("\ndirections:")
	for _, a := range r.reached {
		fmt.Fprintf(&sb, "\n%v -> %v", a, r.direction[a])
	}
	sb.WriteString("]")

	return sb.String()
}
