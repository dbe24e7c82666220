// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// report.go — fixed-precision rendering of loan results.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvloan/loan"
)

const (
	amountPlaces = 2
	ratePlaces   = 4
)

func amount(v float64) string { return decimal.NewFromFloat(v).StringFixed(amountPlaces) }
func rate(v float64) string   { return decimal.NewFromFloat(v).StringFixed(ratePlaces) }

// writeReport prints a one-line summary of res followed by its first top
// lenders (all of them when top is 0) in allocation order.
func writeReport[I comparable](w io.Writer, title string, res *loan.Result[I], top int) error {
	status := "partial"
	if res.Satisfied() {
		status = "satisfied"
	}
	if _, err := fmt.Fprintf(w, "%s: sink %v collected %s of %s at max rate %s (%s, %d lenders)\n",
		title, res.Sink(), amount(res.Achieved()), amount(res.Requested()),
		rate(res.MaxInterestRate()), status, len(res.Lenders())); err != nil {
		return err
	}

	lenders := res.Lenders()
	if len(lenders) == 0 {
		return nil
	}
	shown := lenders
	if top > 0 && top < len(lenders) {
		shown = lenders[:top]
	}

	dir := res.Direction()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "lender\tamount\trate\tlends to\t")
	for _, a := range shown {
		amt, _ := res.Amount(a)
		r, _ := res.EffectiveRate(a)
		fmt.Fprintf(tw, "%v\t%s\t%s\t%v\t\n", a, amount(amt), rate(r), dir[a])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if rest := len(lenders) - len(shown); rest > 0 {
		_, err := fmt.Fprintf(w, "… %d more\n", rest)
		return err
	}

	return nil
}

// sameAllocation reports whether two results drew the same amounts from the
// same lenders. Direction maps are not compared: the cache directs each
// lender to the previous one while the search records the tree parent.
func sameAllocation[I comparable](a, b *loan.Result[I]) bool {
	if a.Achieved() != b.Achieved() {
		return false
	}
	x, y := a.Allocation(), b.Allocation()
	if len(x) != len(y) {
		return false
	}
	for lender, v := range x {
		if w, ok := y[lender]; !ok || w != v {
			return false
		}
	}

	return true
}
