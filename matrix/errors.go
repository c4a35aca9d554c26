// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (wrapped with an operation tag) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf component in a value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when no usable pivot (|p| > eps) exists during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotUnitary is returned by ValidateUnitary when U·U† deviates from I beyond eps.
	ErrNotUnitary = errors.New("matrix: matrix is not unitary within eps")

	// ErrRaggedRows is returned by NewFromRows when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
