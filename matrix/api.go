// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical kernel; no loop duplication
//     beyond the comparisons that have no kernel of their own.

package matrix

import "math/cmplx"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ChangeOfBasis returns p⁻¹·a·p.
// Fails with ErrSingular (wrapped) when p cannot be inverted within eps,
// and with ErrDimensionMismatch when shapes do not chain.
//
// Complexity: O(n^3).
func ChangeOfBasis(a, p Matrix, opts ...Option) (*Dense, error) {
	pInv, err := Inverse(p, opts...)
	if err != nil {
		return nil, matrixErrorf("ChangeOfBasis", err)
	}
	out, err := MulAll(pInv, a, p)
	if err != nil {
		return nil, matrixErrorf("ChangeOfBasis", err)
	}

	return out, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ eps for every entry.
// Returns (false, err) when shapes differ or an operand is nil.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	o := gatherOptions(opts...)
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for k := range da.data {
		if cmplx.Abs(da.data[k]-db.data[k]) > o.eps {
			return false, nil
		}
	}

	return true, nil
}

// IsUnitary reports whether U·U† ≈ I within eps.
// Returns (false, err) for nil or non-square input.
//
// Complexity: O(n^3).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf("IsUnitary", err)
	}
	adj, err := ConjTranspose(m)
	if err != nil {
		return false, matrixErrorf("IsUnitary", err)
	}
	prod, err := Mul(m, adj)
	if err != nil {
		return false, matrixErrorf("IsUnitary", err)
	}
	I, err := NewIdentity(m.Rows())
	if err != nil {
		return false, matrixErrorf("IsUnitary", err)
	}

	return AllClose(prod, I, opts...)
}
