package state_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/state"
)

func sigmas(n int) []anyon.Anyon {
	out := make([]anyon.Anyon, n)
	for i := range out {
		out[i] = anyon.New(fmt.Sprint(i), anyon.Sigma, anyon.Position{X: float64(i)})
	}

	return out
}

func TestFusionPairOrderingAndText(t *testing.T) {
	p := state.FusionPair{A: 0, B: 3}
	q := state.FusionPair{A: 1, B: 2}
	require.True(t, p.Less(q))
	require.False(t, q.Less(p))
	require.Equal(t, -1, state.FusionPair{A: 1, B: 1}.Compare(state.FusionPair{A: 1, B: 2}))
	require.Equal(t, 0, p.Compare(state.FusionPair{A: 0, B: 3}))
	require.True(t, p.Matches(3, 0))
	require.False(t, p.Matches(0, 2))

	ps := []state.FusionPair{{A: 2, B: 3}, {A: 0, B: 5}, {A: 0, B: 1}}
	state.SortPairs(ps)
	require.Equal(t, []state.FusionPair{{A: 0, B: 1}, {A: 0, B: 5}, {A: 2, B: 3}}, ps)

	seen := map[state.FusionPair]bool{p: true}
	require.True(t, seen[state.FusionPair{A: 0, B: 3}])

	require.Equal(t, "(0 3)", p.String())
	for _, pair := range ps {
		got, err := state.ParseFusionPair(pair.String())
		require.NoError(t, err)
		require.Equal(t, pair, got)
	}
	got, err := state.ParseFusionPair("  ( 4   7 ) ")
	require.NoError(t, err)
	require.Equal(t, state.FusionPair{A: 4, B: 7}, got)

	for _, bad := range []string{"", "0 1", "(0)", "(0 1 2)", "(a 1)", "(0 b)", "[0 1]"} {
		_, err := state.ParseFusionPair(bad)
		require.ErrorIs(t, err, state.ErrParsePair, bad)
	}
}

func TestAddFusionOpInvariants(t *testing.T) {
	cases := []struct {
		name string
		time uint32
		a, b int
		want error
	}{
		{"zero time", 0, 0, 1, state.ErrZeroTime},
		{"decreasing time", 1, 2, 3, state.ErrTimeOrder},
		{"negative index", 2, -1, 3, state.ErrAnyonIndex},
		{"index past end", 2, 0, 4, state.ErrAnyonIndex},
		{"self fusion", 3, 2, 2, state.ErrSelfFusion},
		{"reuse in same step", 2, 1, 3, state.ErrIndexReused},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := state.New(sigmas(4)...)
			require.NoError(t, s.AddFusionOp(2, 0, 1))
			before := s.FusionOps()

			err := s.AddFusionOp(tc.time, tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, state.ErrConstruction)
			require.Equal(t, before, s.FusionOps())
		})
	}

	s := state.New(sigmas(4)...)
	require.NoError(t, s.AddFusionOp(1, 0, 1))
	require.NoError(t, s.AddFusionOp(1, 2, 3))
	// A later step may reuse indices.
	require.NoError(t, s.AddFusionOp(2, 0, 2))
}

func TestIndexValidAtRecordingTime(t *testing.T) {
	s := state.New(sigmas(2)...)
	require.ErrorIs(t, s.AddFusionOp(1, 0, 2), state.ErrAnyonIndex)

	idx := s.AddAnyon(anyon.New("late", anyon.Psi, anyon.Position{}))
	require.Equal(t, 2, idx)
	require.NoError(t, s.AddFusionOp(1, 0, 2))
}

func TestEventsGroupByTime(t *testing.T) {
	_, err := state.FromSchedule(sigmas(6), []state.FusionNode{
		{Time: 1, Pair: state.FusionPair{A: 0, B: 1}},
		{Time: 1, Pair: state.FusionPair{A: 2, B: 3}},
		{Time: 3, Pair: state.FusionPair{A: 0, B: 2}},
		{Time: 7, Pair: state.FusionPair{A: 4, B: 5}},
		{Time: 7, Pair: state.FusionPair{A: 0, B: 4}},
	})
	require.Error(t, err, "index 4 reused at time 7")
	require.ErrorIs(t, err, state.ErrIndexReused)

	s, err := state.FromSchedule(sigmas(6), []state.FusionNode{
		{Time: 1, Pair: state.FusionPair{A: 2, B: 3}},
		{Time: 1, Pair: state.FusionPair{A: 0, B: 1}},
		{Time: 3, Pair: state.FusionPair{A: 0, B: 2}},
		{Time: 7, Pair: state.FusionPair{A: 4, B: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, []state.FusionEvent{
		{{A: 2, B: 3}, {A: 0, B: 1}},
		{{A: 0, B: 2}},
		{{A: 4, B: 5}},
	}, s.Events())

	require.Empty(t, state.New(sigmas(3)...).Events())
}

func TestSwapAndClone(t *testing.T) {
	s := state.New(sigmas(3)...)
	require.NoError(t, s.AddFusionOp(1, 0, 1))
	snap := s.Clone()

	require.NoError(t, s.SwapAnyons(0, 2))
	a0, err := s.Anyon(0)
	require.NoError(t, err)
	require.Equal(t, "2", a0.Name())
	require.Equal(t, s.FusionOps(), snap.FusionOps(), "schedule untouched by swaps")

	b0, err := snap.Anyon(0)
	require.NoError(t, err)
	require.Equal(t, "0", b0.Name(), "clone does not observe later mutation")

	require.NoError(t, s.AddFusionOp(2, 0, 2))
	require.Len(t, snap.FusionOps(), 1)

	require.ErrorIs(t, s.SwapAnyons(0, 3), state.ErrAnyonIndex)
	_, err = s.Anyon(-1)
	require.ErrorIs(t, err, state.ErrAnyonIndex)

	list := s.Anyons()
	list[0] = anyon.New("mutated", anyon.Psi, anyon.Position{})
	a0, _ = s.Anyon(0)
	require.Equal(t, "2", a0.Name())
	require.Equal(t, 3, s.Len())
}

func TestZeroValueState(t *testing.T) {
	var s state.State
	require.Zero(t, s.Len())
	require.Empty(t, s.Events())
	require.ErrorIs(t, s.AddFusionOp(1, 0, 1), state.ErrAnyonIndex)
}
