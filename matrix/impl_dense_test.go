// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/Cornell-QCA/tqc-emu/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1i), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite-only policy on both components.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, complex(0, math.Inf(-1))), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, 2-3i))
	require.Equal(t, 2-3i, MustAt(t, m, 0, 0))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3i)

	require.Equal(t, complex128(1), MustAt(t, m, 0, 0))
	require.Equal(t, 3i, MustAt(t, clone, 0, 0))
}

// TestNewFromRows covers the literal constructor.
func TestNewFromRows(t *testing.T) {
	src := [][]complex128{{1, 2i}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99 // input is copied
	require.Equal(t, complex128(1), MustAt(t, m, 0, 0))
	require.Equal(t, 2i, MustAt(t, m, 0, 1))

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows([][]complex128{{complex(math.Inf(1), 0)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowCopy checks Row returns an independent copy.
func TestRowCopy(t *testing.T) {
	m := MustFromRows(t, [][]complex128{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []complex128{3, 4}, row)
	row[0] = 0
	require.Equal(t, complex128(3), MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]complex128{{1, 2i}, {-0.5, 4}})
	expected := "[(1+0i), (0+2i)]\n[(-0.5+0i), (4+0i)]\n"
	require.Equal(t, expected, m.String())
}
