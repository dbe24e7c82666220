// Package lvloan finds the cheapest lenders for an actor in a lending graph.
//
// 🚀 What is lvloan?
//
//	A small, dependency-light library for capacitated lending networks:
//		• Actor graph: actors with a lending potential, directed arcs with interest rates
//		• On-demand search: backward Dijkstra over compounding rates, greedy allocation
//		• Preprocessing cache: one exploration per actor, O(k) repeated queries
//		• Priority queues: binary heap and Fibonacci heap behind one interface
//		• Generators: random, chain and star graphs for tests and benchmarks
//
// ✨ How rates combine
//
//	Lending along B → C → A at rates r₁ and r₂ costs (1+r₁)(1+r₂) − 1,
//	so a lender's effective rate is the compounded rate of its cheapest
//	path to the borrower. Lenders are drawn cheapest first until the
//	requested amount is collected or the next one exceeds the ceiling.
//
// Under the hood:
//
//	actorgraph/      — Actor, Graph, sentinel errors, value checks
//	loan/            — Combine, Result, Search (on-demand), Cache (preprocessing)
//	pq/              — Queue interface, BinaryHeap, FibonacciHeap
//	builder/         — RandomActorGraph, Chain, Star, identity schemes
//	cmd/loanfinder/  — CLI driver: run (random graph benchmark) and demo
//
// Quick ASCII example:
//
//	    A(0) ◀─0.1── B(10) ─0.05─▶ D(15)
//	                   ▲             │
//	                  0.15          0.2
//	                   │             │
//	                 C(20) ◀─────────┘
//
//	Asking for 35 for A under a 0.6 ceiling draws B:10 at 0.1, C:20 at
//	0.265 and D:5 at 0.518.
//
//	go get github.com/katalvlaran/lvloan
package lvloan
