// SPDX-License-Identifier: MIT
package loan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvloan/actorgraph"
	"github.com/katalvlaran/lvloan/loan"
)

// WorkedExampleSuite runs the four-actor scenario against one finder.
type WorkedExampleSuite struct {
	suite.Suite
	fc     finderCase[string]
	g      *actorgraph.Graph[string]
	actors map[string]*actorgraph.Actor[string]
	finder loan.Finder[string]
}

func (s *WorkedExampleSuite) SetupTest() {
	s.g, s.actors = workedExample(s.T())
	s.finder = s.fc.build(s.T(), s.g)
}

func (s *WorkedExampleSuite) find(sink string, requested, maxRate float64) *loan.Result[string] {
	res, err := s.finder.FindLenders(s.actors[sink], requested, maxRate)
	require.NoError(s.T(), err)
	requireWellFormed(s.T(), s.g, res)

	return res
}

// TestPartialFromLastLender: D gives only what is missing.
func (s *WorkedExampleSuite) TestPartialFromLastLender() {
	res := s.find("A", 35, 0.6)

	require.Equal(s.T(), 35.0, res.Achieved())
	require.True(s.T(), res.Satisfied())
	want := map[string]float64{"B": 10, "C": 20, "D": 5}
	if diff := cmp.Diff(want, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
	wantDir := map[string]string{"B": "A", "C": "B", "D": "C"}
	if diff := cmp.Diff(wantDir, directionsByID(res.Direction())); diff != "" {
		s.T().Errorf("direction mismatch (-want +got):\n%s", diff)
	}

	rate, ok := res.EffectiveRate(s.actors["D"])
	require.True(s.T(), ok)
	require.InDelta(s.T(), 0.518, rate, eps)
	require.Equal(s.T(), []*actorgraph.Actor[string]{s.actors["B"], s.actors["C"], s.actors["D"]}, res.Lenders())
}

// TestCeilingExcludesExpensiveLender: D's combined rate 0.518 exceeds 0.5.
func (s *WorkedExampleSuite) TestCeilingExcludesExpensiveLender() {
	res := s.find("A", 35, 0.5)

	require.Equal(s.T(), 30.0, res.Achieved())
	require.False(s.T(), res.Satisfied())
	if diff := cmp.Diff(map[string]float64{"B": 10, "C": 20}, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
	_, ok := res.Amount(s.actors["D"])
	require.False(s.T(), ok)
}

// TestExhaustsAllLenders: requested more than the graph holds.
func (s *WorkedExampleSuite) TestExhaustsAllLenders() {
	res := s.find("A", 50, 0.7)

	require.Equal(s.T(), 45.0, res.Achieved())
	if diff := cmp.Diff(map[string]float64{"B": 10, "C": 20, "D": 15}, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
}

// TestCeilingIsInclusive: a lender exactly at the ceiling is used.
func (s *WorkedExampleSuite) TestCeilingIsInclusive() {
	res := s.find("A", 10, RateBA)

	require.Equal(s.T(), 10.0, res.Achieved())
	if diff := cmp.Diff(map[string]float64{"B": 10}, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
}

// TestStopsOnceCollected: C and D are never drawn when B suffices.
func (s *WorkedExampleSuite) TestStopsOnceCollected() {
	res := s.find("A", 4, 1)

	require.Equal(s.T(), 4.0, res.Achieved())
	if diff := cmp.Diff(map[string]float64{"B": 4}, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
}

// TestSinkInCycle: D sits on the cycle B→D→C→B and never lends to itself.
func (s *WorkedExampleSuite) TestSinkInCycle() {
	res := s.find("D", 100, 1)

	require.Equal(s.T(), PotB+PotC, res.Achieved())
	if diff := cmp.Diff(map[string]float64{"B": 10, "C": 20}, amountsByID(res.Allocation())); diff != "" {
		s.T().Errorf("allocation mismatch (-want +got):\n%s", diff)
	}
	rate, ok := res.EffectiveRate(s.actors["C"])
	require.True(s.T(), ok)
	require.InDelta(s.T(), loan.Combine(RateBD, RateCB), rate, eps)
}

// TestZeroRequest returns an empty, satisfied result.
func (s *WorkedExampleSuite) TestZeroRequest() {
	res := s.find("A", 0, 1)

	require.Zero(s.T(), res.Achieved())
	require.True(s.T(), res.Satisfied())
	require.Empty(s.T(), res.Allocation())
	require.Empty(s.T(), res.Direction())
}

// TestZeroCeiling: every arc rate is positive, so no lender qualifies.
func (s *WorkedExampleSuite) TestZeroCeiling() {
	res := s.find("A", 10, 0)

	require.Zero(s.T(), res.Achieved())
	require.Empty(s.T(), res.Allocation())
}

// TestValidation covers the argument errors shared by both finders.
func (s *WorkedExampleSuite) TestValidation() {
	_, err := s.finder.FindLenders(nil, 1, 1)
	require.ErrorIs(s.T(), err, actorgraph.ErrNilActor)

	_, err = s.finder.FindLenders(actorgraph.NewActor("Z"), 1, 1)
	require.ErrorIs(s.T(), err, actorgraph.ErrNotInGraph)

	for _, tc := range []struct {
		name           string
		requested, max float64
	}{
		{"negative amount", -1, 1},
		{"NaN amount", nan(), 1},
		{"infinite amount", inf(), 1},
		{"negative rate", 1, -0.1},
		{"NaN rate", 1, nan()},
		{"infinite rate", 1, inf()},
	} {
		_, err = s.finder.FindLenders(s.actors["A"], tc.requested, tc.max)
		require.ErrorIs(s.T(), err, actorgraph.ErrInvalidValue, tc.name)
	}
}

func TestWorkedExample(t *testing.T) {
	for _, fc := range finderCases[string]() {
		t.Run(fc.name, func(t *testing.T) {
			suite.Run(t, &WorkedExampleSuite{fc: fc})
		})
	}
}
