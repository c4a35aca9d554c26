package state_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cornell-QCA/tqc-emu/matrix"
	"github.com/Cornell-QCA/tqc-emu/state"
)

func TestNewStateVecDefault(t *testing.T) {
	v, err := state.NewStateVec(2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, v.Qubits())
	require.Equal(t, 4, v.Len())
	require.Equal(t, []complex128{1, 0, 0, 0}, v.Amplitudes())
	require.InDelta(t, 1.0, v.Norm(), 1e-15)

	_, err = state.NewStateVec(2, []complex128{1, 0, 0})
	require.ErrorIs(t, err, state.ErrAmplitudeCount)
	_, err = state.NewStateVec(-1, nil)
	require.ErrorIs(t, err, state.ErrAmplitudeCount)
	_, err = state.NewStateVec(state.MaxQubits+1, nil)
	require.ErrorIs(t, err, state.ErrAmplitudeCount)
}

func TestStateVecNormalize(t *testing.T) {
	amps := []complex128{3, 4i}
	v, err := state.NewStateVec(1, amps)
	require.NoError(t, err)
	amps[0] = 100
	require.Equal(t, complex(3, 0), v.Amplitudes()[0], "input is copied")

	require.NoError(t, v.Normalize())
	got := v.Amplitudes()
	require.InDelta(t, 0.6, real(got[0]), 1e-15)
	require.InDelta(t, 0.8, imag(got[1]), 1e-15)

	p, err := v.Probability(1)
	require.NoError(t, err)
	require.InDelta(t, 0.64, p, 1e-12)
	_, err = v.Probability(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	zero, err := state.NewStateVec(1, []complex128{0, 0})
	require.NoError(t, err)
	require.ErrorIs(t, zero.Normalize(), state.ErrZeroNorm)
}

func TestStateVecApply(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	h, err := matrix.NewFromRows([][]complex128{{s, s}, {s, -s}})
	require.NoError(t, err)

	v, err := state.NewStateVec(1, nil)
	require.NoError(t, err)
	require.NoError(t, v.Apply(h))
	got := v.Amplitudes()
	require.InDelta(t, 1/math.Sqrt2, real(got[0]), 1e-15)
	require.InDelta(t, 1/math.Sqrt2, real(got[1]), 1e-15)
	require.InDelta(t, 1.0, v.Norm(), 1e-12)

	id4, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	require.ErrorIs(t, v.Apply(id4), matrix.ErrDimensionMismatch)

	rect, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, v.Apply(rect), matrix.ErrNonSquare)
}

func TestStateVecString(t *testing.T) {
	v, err := state.NewStateVec(1, []complex128{complex(0.5, -1.25), 2i})
	require.NoError(t, err)
	require.Equal(t, "[\n\t0.5 + -1.25i\n\t0 + 2i\n]", v.String())
}
