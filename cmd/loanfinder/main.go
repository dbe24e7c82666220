// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// Command loanfinder builds actor graphs and answers lender queries against
// them with both the on-demand search and the preprocessing cache.
//
// Usage:
//
//	loanfinder run  [--actors N] [--arcs M] [--requested X] [--max-rate R] ...
//	loanfinder demo
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
