// SPDX-License-Identifier: MIT
// Package loan_test holds fixtures shared by the finder tests.

package loan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/loan"
	"github.com/katalvlaran/lvloan/pq"
)

// Worked example potentials and rates.
const (
	PotA = 0.0
	PotB = 10.0
	PotC = 20.0
	PotD = 15.0

	RateBD = 0.05
	RateDC = 0.2
	RateCB = 0.15
	RateBA = 0.1

	eps = 1e-12
)

// workedExample builds
//
//	A(0)  B(10)  C(20)  D(15)
//	B→D 0.05, D→C 0.2, C→B 0.15, B→A 0.1
func workedExample(t testing.TB) (*actorgraph.Graph[string], map[string]*actorgraph.Actor[string]) {
	t.Helper()
	g := actorgraph.NewGraph[string]()
	actors := map[string]*actorgraph.Actor[string]{}
	for _, tc := range []struct {
		id string
		p  float64
	}{{"A", PotA}, {"B", PotB}, {"C", PotC}, {"D", PotD}} {
		a := actorgraph.NewActor(tc.id)
		require.NoError(t, g.AddActor(a, tc.p))
		actors[tc.id] = a
	}
	require.NoError(t, g.AddArc(actors["B"], actors["D"], RateBD))
	require.NoError(t, g.AddArc(actors["D"], actors["C"], RateDC))
	require.NoError(t, g.AddArc(actors["C"], actors["B"], RateCB))
	require.NoError(t, g.AddArc(actors["B"], actors["A"], RateBA))

	return g, actors
}

// finderCase builds one finder over a graph.
type finderCase[I comparable] struct {
	name  string
	build func(t testing.TB, g *actorgraph.Graph[I]) loan.Finder[I]
}

// finderCases lists both finders over both queue kinds.
func finderCases[I comparable]() []finderCase[I] {
	var out []finderCase[I]
	for _, kind := range []pq.Kind{pq.KindBinary, pq.KindFibonacci} {
		kind := kind
		out = append(out,
			finderCase[I]{
				name: "search/" + kind.String(),
				build: func(_ testing.TB, _ *actorgraph.Graph[I]) loan.Finder[I] {
					return loan.NewSearch[I](loan.WithQueue(kind))
				},
			},
			finderCase[I]{
				name: "cache/" + kind.String(),
				build: func(t testing.TB, g *actorgraph.Graph[I]) loan.Finder[I] {
					c, err := loan.NewCache(g, loan.WithQueue(kind))
					require.NoError(t, err)
					return c
				},
			},
		)
	}

	return out
}

// amountsByID rekeys an allocation by identity for readable diffs.
func amountsByID[I comparable](m map[*actorgraph.Actor[I]]float64) map[I]float64 {
	out := make(map[I]float64, len(m))
	for a, v := range m {
		out[a.ID()] = v
	}

	return out
}

// directionsByID rekeys a direction map by identity.
func directionsByID[I comparable](m map[*actorgraph.Actor[I]]*actorgraph.Actor[I]) map[I]I {
	out := make(map[I]I, len(m))
	for a, next := range m {
		out[a.ID()] = next.ID()
	}

	return out
}

// requireWellFormed checks the properties every result must have.
func requireWellFormed[I comparable](t testing.TB, g *actorgraph.Graph[I], res *loan.Result[I]) {
	t.Helper()
	require.LessOrEqual(t, res.Achieved(), res.Requested())

	sum := 0.0
	prevRate := 0.0
	for _, a := range res.Lenders() {
		amount, ok := res.Amount(a)
		require.True(t, ok)
		require.Greater(t, amount, 0.0)
		sum += amount

		p, err := g.Potential(a)
		require.NoError(t, err)
		require.LessOrEqual(t, amount, p)

		rate, ok := res.EffectiveRate(a)
		require.True(t, ok)
		require.LessOrEqual(t, rate, res.MaxInterestRate())
		require.GreaterOrEqual(t, rate, prevRate)
		prevRate = rate

		require.NotSame(t, res.Sink(), a, "sink lends to itself")
	}
	require.InDelta(t, res.Achieved(), sum, 1e-9)
	require.Len(t, res.Allocation(), len(res.Lenders()))

	// Every direction chain ends at the sink.
	dir := res.Direction()
	for a := range dir {
		cur, steps := a, 0
		for cur != res.Sink() {
			next, ok := dir[cur]
			require.True(t, ok, "chain from %v breaks at %v", a, cur)
			cur = next
			steps++
			require.LessOrEqual(t, steps, len(dir), "cycle in direction map from %v", a)
		}
	}
}
