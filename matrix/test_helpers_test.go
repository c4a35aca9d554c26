// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (Pauli/Hadamard gates) and utilities.

package matrix_test

import (
	"math"
	"testing"

	"github.com/Cornell-QCA/tqc-emu/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the materialization path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts a ≈ b entry-wise within 1e-9.
func RequireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

func pauliX(t *testing.T) *matrix.Dense {
	return MustFromRows(t, [][]complex128{{0, 1}, {1, 0}})
}

func pauliZ(t *testing.T) *matrix.Dense {
	return MustFromRows(t, [][]complex128{{1, 0}, {0, -1}})
}

func hadamard(t *testing.T) *matrix.Dense {
	s := complex(1/math.Sqrt2, 0)

	return MustFromRows(t, [][]complex128{{s, s}, {s, -s}})
}
