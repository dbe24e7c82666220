// SPDX-License-Identifier: MIT
// Package actorgraph_test contains fixtures and invariant checks shared by the
// actorgraph tests.

package actorgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloan/actorgraph"
)

// Common potentials and rates (avoid magic numbers in test bodies).
const (
	Potential0  = 0.0
	Potential10 = 10.0
	Potential15 = 15.0
	Potential20 = 20.0

	RateBD = 0.05
	RateDC = 0.2
	RateCB = 0.15
	RateBA = 0.1
)

// workedExample builds the four-actor graph used throughout the loan tests:
//
//	A(0)  B(10)  C(20)  D(15)
//	B→D 0.05, D→C 0.2, C→B 0.15, B→A 0.1
func workedExample(t *testing.T) (*actorgraph.Graph[string], map[string]*actorgraph.Actor[string]) {
	t.Helper()
	g := actorgraph.NewGraph[string]()
	actors := map[string]*actorgraph.Actor[string]{}
	for _, tc := range []struct {
		id string
		p  float64
	}{{"A", Potential0}, {"B", Potential10}, {"C", Potential20}, {"D", Potential15}} {
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

// requireConsistent checks the structural invariants observable through the
// public API: forward and reverse adjacency mirror each other and ArcCount
// equals the number of forward entries.
func requireConsistent[I comparable](t *testing.T, g *actorgraph.Graph[I]) {
	t.Helper()
	total := 0
	for _, a := range g.Actors() {
		require.True(t, g.Contains(a))
		require.Same(t, g, a.Graph())

		out, err := g.Outgoing(a)
		require.NoError(t, err)
		total += len(out)
		for _, head := range out {
			require.NotSame(t, a, head, "self-loop stored")
			in, err := g.Incoming(head)
			require.NoError(t, err)
			require.Contains(t, in, a, "reverse index misses %v→%v", a, head)
		}

		in, err := g.Incoming(a)
		require.NoError(t, err)
		for _, tail := range in {
			ok, err := g.HasArc(tail, a)
			require.NoError(t, err)
			require.True(t, ok, "reverse index has phantom %v→%v", tail, a)
		}
	}
	require.Equal(t, total, g.ArcCount())
}
