package actorgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloan/actorgraph"
)

func TestAddActor_RegistersAndCounts(t *testing.T) {
	g := actorgraph.NewGraph[string]()
	a := actorgraph.NewActor("A")
	assert.Nil(t, a.Graph())

	rev := g.Revision()
	require.NoError(t, g.AddActor(a, Potential10))
	assert.Same(t, g, a.Graph())
	assert.True(t, g.Contains(a))
	assert.Equal(t, 1, g.ActorCount())
	assert.Greater(t, g.Revision(), rev)

	p, err := g.Potential(a)
	require.NoError(t, err)
	assert.Equal(t, Potential10, p)

	got, ok := g.Lookup("A")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestAddActor_UpdatesPotentialInPlace(t *testing.T) {
	g, actors := workedExample(t)
	rev := g.Revision()

	require.NoError(t, g.AddActor(actors["B"], Potential20))
	p, err := g.Potential(actors["B"])
	require.NoError(t, err)
	assert.Equal(t, Potential20, p)
	assert.Equal(t, 4, g.ActorCount())
	assert.Equal(t, 4, g.ArcCount(), "arcs survive a potential update")
	assert.Greater(t, g.Revision(), rev)
	requireConsistent(t, g)
}

func TestAddActor_InvalidValues(t *testing.T) {
	cases := map[string]float64{
		"nan":      math.NaN(),
		"negative": -1,
		"+inf":     math.Inf(1),
		"-inf":     math.Inf(-1),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			g := actorgraph.NewGraph[string]()
			a := actorgraph.NewActor("A")
			rev := g.Revision()

			err := g.AddActor(a, v)
			assert.ErrorIs(t, err, actorgraph.ErrInvalidValue)
			assert.Zero(t, g.ActorCount())
			assert.Nil(t, a.Graph())
			assert.Equal(t, rev, g.Revision())
		})
	}
}

func TestAddActor_Nil(t *testing.T) {
	g := actorgraph.NewGraph[int]()
	assert.ErrorIs(t, g.AddActor(nil, 1), actorgraph.ErrNilActor)
}

func TestAddActor_DuplicateIdentity(t *testing.T) {
	g, actors := workedExample(t)
	clone := actorgraph.NewActor("B")

	err := g.AddActor(clone, Potential15)
	assert.ErrorIs(t, err, actorgraph.ErrDuplicateID)
	assert.Nil(t, clone.Graph())

	got, _ := g.Lookup("B")
	assert.Same(t, actors["B"], got)
}

// TestAddActor_DuplicateIdentityKeepsOtherMembership checks that a rejected
// migration does not detach the actor from its current graph.
func TestAddActor_DuplicateIdentityKeepsOtherMembership(t *testing.T) {
	src, actors := workedExample(t)
	dst := actorgraph.NewGraph[string]()
	require.NoError(t, dst.AddActor(actorgraph.NewActor("B"), Potential10))

	err := dst.AddActor(actors["B"], Potential10)
	assert.ErrorIs(t, err, actorgraph.ErrDuplicateID)
	assert.Same(t, src, actors["B"].Graph())
	assert.Equal(t, 4, src.ArcCount())
}

func TestAddActor_MigratesFromOtherGraph(t *testing.T) {
	src, actors := workedExample(t)
	dst := actorgraph.NewGraph[string]()
	srcRev := src.Revision()

	// B touches B→D, C→B, B→A.
	require.NoError(t, dst.AddActor(actors["B"], Potential10))

	assert.Same(t, dst, actors["B"].Graph())
	assert.Equal(t, 3, src.ActorCount())
	assert.Equal(t, 1, src.ArcCount())
	assert.Greater(t, src.Revision(), srcRev)
	assert.Equal(t, 1, dst.ActorCount())
	assert.Zero(t, dst.ArcCount())

	_, ok := src.Lookup("B")
	assert.False(t, ok)
	requireConsistent(t, src)
	requireConsistent(t, dst)
}

func TestRemoveActor_DropsIncidentArcs(t *testing.T) {
	g, actors := workedExample(t)

	require.NoError(t, g.RemoveActor(actors["D"])) // B→D, D→C
	assert.Nil(t, actors["D"].Graph())
	assert.Equal(t, 3, g.ActorCount())
	assert.Equal(t, 2, g.ArcCount())
	requireConsistent(t, g)

	out, err := g.Outgoing(actors["B"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []*actorgraph.Actor[string]{actors["A"]}, out)

	_, err = g.Potential(actors["D"])
	assert.ErrorIs(t, err, actorgraph.ErrNotInGraph)
}

func TestRemoveActor_Errors(t *testing.T) {
	g := actorgraph.NewGraph[string]()
	assert.ErrorIs(t, g.RemoveActor(nil), actorgraph.ErrNilActor)
	assert.ErrorIs(t, g.RemoveActor(actorgraph.NewActor("Z")), actorgraph.ErrNotInGraph)

	other := actorgraph.NewGraph[string]()
	z := actorgraph.NewActor("Z")
	require.NoError(t, other.AddActor(z, 1))
	assert.ErrorIs(t, g.RemoveActor(z), actorgraph.ErrNotInGraph)
	assert.Same(t, other, z.Graph())
}

func TestAddArc_Validation(t *testing.T) {
	g, actors := workedExample(t)
	stranger := actorgraph.NewActor("S")
	rev := g.Revision()

	assert.ErrorIs(t, g.AddArc(actors["A"], actors["A"], 0.1), actorgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddArc(stranger, stranger, 0.1), actorgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddArc(nil, nil, 0.1), actorgraph.ErrNilActor)
	assert.ErrorIs(t, g.AddArc(actors["A"], stranger, 0.1), actorgraph.ErrNotInGraph)
	assert.ErrorIs(t, g.AddArc(stranger, actors["A"], 0.1), actorgraph.ErrNotInGraph)
	assert.ErrorIs(t, g.AddArc(nil, actors["A"], 0.1), actorgraph.ErrNilActor)
	assert.ErrorIs(t, g.AddArc(actors["A"], actors["B"], -0.1), actorgraph.ErrInvalidValue)
	assert.ErrorIs(t, g.AddArc(actors["A"], actors["B"], math.NaN()), actorgraph.ErrInvalidValue)
	assert.ErrorIs(t, g.AddArc(actors["A"], actors["B"], math.Inf(1)), actorgraph.ErrInvalidValue)

	assert.Equal(t, rev, g.Revision(), "failed calls must not mutate")
	assert.Equal(t, 4, g.ArcCount())
	requireConsistent(t, g)
}

func TestAddArc_OverwriteKeepsCount(t *testing.T) {
	g, actors := workedExample(t)
	rev := g.Revision()

	require.NoError(t, g.AddArc(actors["B"], actors["A"], 0.3))
	assert.Equal(t, 4, g.ArcCount())
	assert.Greater(t, g.Revision(), rev)

	r, err := g.InterestRate(actors["B"], actors["A"])
	require.NoError(t, err)
	assert.Equal(t, 0.3, r)
}

func TestRemoveArc(t *testing.T) {
	g, actors := workedExample(t)

	rev := g.Revision()
	require.NoError(t, g.RemoveArc(actors["A"], actors["B"])) // absent
	assert.Equal(t, rev, g.Revision())
	assert.Equal(t, 4, g.ArcCount())

	require.NoError(t, g.RemoveArc(actors["B"], actors["A"]))
	assert.Greater(t, g.Revision(), rev)
	assert.Equal(t, 3, g.ArcCount())
	ok, err := g.HasArc(actors["B"], actors["A"])
	require.NoError(t, err)
	assert.False(t, ok)
	requireConsistent(t, g)

	assert.ErrorIs(t, g.RemoveArc(actors["A"], actorgraph.NewActor("S")), actorgraph.ErrNotInGraph)
}

func TestLookups(t *testing.T) {
	g, actors := workedExample(t)

	ok, err := g.HasArc(actors["C"], actors["B"])
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.InterestRate(actors["A"], actors["B"])
	assert.ErrorIs(t, err, actorgraph.ErrArcNotFound)

	r, err := g.InterestRate(actors["D"], actors["C"])
	require.NoError(t, err)
	assert.Equal(t, RateDC, r)

	in, err := g.Incoming(actors["B"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []*actorgraph.Actor[string]{actors["C"]}, in)

	out, err := g.Outgoing(actors["B"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []*actorgraph.Actor[string]{actors["A"], actors["D"]}, out)

	stranger := actorgraph.NewActor("S")
	_, err = g.Incoming(stranger)
	assert.ErrorIs(t, err, actorgraph.ErrNotInGraph)
	_, err = g.Outgoing(stranger)
	assert.ErrorIs(t, err, actorgraph.ErrNotInGraph)
	_, err = g.HasArc(stranger, actors["A"])
	assert.ErrorIs(t, err, actorgraph.ErrNotInGraph)
	_, err = g.Potential(nil)
	assert.ErrorIs(t, err, actorgraph.ErrNilActor)
	assert.False(t, g.Contains(nil))
}

func TestRangeIncoming(t *testing.T) {
	g, actors := workedExample(t)
	require.NoError(t, g.AddArc(actors["A"], actors["C"], 0.4))

	seen := map[string]float64{}
	require.NoError(t, g.RangeIncoming(actors["C"], func(tail *actorgraph.Actor[string], rate float64) bool {
		seen[tail.ID()] = rate
		return true
	}))
	assert.Equal(t, map[string]float64{"D": RateDC, "A": 0.4}, seen)

	calls := 0
	require.NoError(t, g.RangeIncoming(actors["C"], func(*actorgraph.Actor[string], float64) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)

	assert.ErrorIs(t, g.RangeIncoming(actorgraph.NewActor("S"), nil), actorgraph.ErrNotInGraph)
}

func TestClear_DetachesEverything(t *testing.T) {
	g, actors := workedExample(t)
	rev := g.Revision()

	g.Clear()
	assert.Zero(t, g.ActorCount())
	assert.Zero(t, g.ArcCount())
	assert.Greater(t, g.Revision(), rev)
	for _, a := range actors {
		assert.Nil(t, a.Graph())
	}

	// Former members can be registered again.
	require.NoError(t, g.AddActor(actors["A"], Potential10))
	assert.Equal(t, 1, g.ActorCount())
}

func TestActor_String(t *testing.T) {
	assert.Equal(t, "[Actor, A]", actorgraph.NewActor("A").String())
	assert.Equal(t, "[Actor, 42]", actorgraph.NewActor(42).String())

	var nilActor *actorgraph.Actor[int]
	assert.Equal(t, "[Actor, <nil>]", nilActor.String())
}

func TestCheckNonNegative(t *testing.T) {
	assert.NoError(t, actorgraph.CheckNonNegative("x", 0))
	assert.NoError(t, actorgraph.CheckNonNegative("x", 1e300))
	assert.ErrorIs(t, actorgraph.CheckNonNegative("x", -1e-300), actorgraph.ErrInvalidValue)
	assert.ErrorContains(t, actorgraph.CheckNonNegative("requested amount", math.NaN()), "requested amount is NaN")
}

func TestAncestors(t *testing.T) {
	g, a := workedExample(t)

	got, err := g.Ancestors(a["A"])
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Same(t, a["B"], got[0], "direct lender first")
	assert.ElementsMatch(t, []*actorgraph.Actor[string]{a["B"], a["C"], a["D"]}, got)

	// D sits on a cycle; it is not its own ancestor.
	got, err = g.Ancestors(a["D"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []*actorgraph.Actor[string]{a["B"], a["C"]}, got)

	lone := actorgraph.NewActor("Z")
	require.NoError(t, g.AddActor(lone, 1))
	got, err = g.Ancestors(lone)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = g.Ancestors(nil)
	assert.ErrorIs(t, err, actorgraph.ErrNilActor)
	_, err = g.Ancestors(actorgraph.NewActor("Q"))
	assert.ErrorIs(t, err, actorgraph.ErrNotInGraph)
}
