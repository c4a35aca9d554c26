// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix and Kronecker products,
// conjugate transpose, scalar scaling and inversion. All functions perform
// strict fail-fast validation and return wrapped sentinels.
//
// Notes:
//   - Non-*Dense operands are materialized once through asDense, so every
//     kernel runs a single flat-slice loop.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opConjTranspose = "ConjTranspose"
	opKronecker     = "Kronecker"
	opInverse       = "Inverse"
	opMatVec        = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a − b. Shapes must match.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Classic i→k→j product over flat row-major buffers.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: accumulate res[i,j] += a[i,k]*b[k,j], skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * da.c
		rowOffsetR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulAll folds Mul left to right: ms[0] × ms[1] × … × ms[n-1].
// Requires at least one operand.
func MulAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc, err := asDense(ms[0].Clone())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// ConjTranspose returns the Hermitian adjoint m† (transpose with every entry conjugated).
// Complexity: O(r*c).
func ConjTranspose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*res.c+i] = cmplx.Conj(dm.data[i*dm.c+j])
		}
	}

	return res, nil
}

// Kronecker returns the tensor product a ⊗ b.
// MAIN DESCRIPTION:
//   - Block matrix whose (i,j) block is a[i,j]·b.
//
// Implementation:
//   - Stage 1: validate both operands non-nil.
//   - Stage 2: out[i*br+k, j*bc+l] = a[i,j]*b[k,l] in fixed i→j→k→l order.
//
// Complexity:
//   - Time O(ar*ac*br*bc), Space O(ar*ac*br*bc).
func Kronecker(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	res, err := NewDense(da.r*db.r, da.c*db.c)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	var (
		i, j, k, l int
		av         complex128
	)
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			if av == 0 {
				continue // block stays zero
			}
			for k = 0; k < db.r; k++ {
				for l = 0; l < db.c; l++ {
					res.data[(i*db.r+k)*res.c+(j*db.c+l)] = av * db.data[k*db.c+l]
				}
			}
		}
	}

	return res, nil
}

// KroneckerAll folds Kronecker left to right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[n-1].
// Requires at least one operand. The left-most factor owns the most
// significant index, matching big-endian qubit ordering.
func KroneckerAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKronecker, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	acc, err := asDense(ms[0].Clone())
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	for _, m := range ms[1:] {
		if acc, err = Kronecker(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// MatVec returns y = m·x.
// Complexity: O(r*c).
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, dm.r)
	var i, j, base int
	for i = 0; i < dm.r; i++ {
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			y[i] += dm.data[base+j] * x[j]
		}
	}

	return y, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce [m | I] to [I | m⁻¹] in place on two flat buffers.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into a work buffer, seed inv = I.
//   - Stage 2: for each column pick the row with the largest |pivot|
//     (lowest index on ties); |pivot| ≤ eps → ErrSingular.
//   - Stage 3: swap rows, normalize the pivot row, eliminate the column
//     from every other row.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Fixed column order and tie-breaking; identical inputs give identical bits.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Pivoting is required here: permutation-like basis changes such as
//     [[0,1],[1,0]] have a zero leading entry.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := dm.r
	work := dm.clone()
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, row, k, p int
		best, mag      float64
		pivot, factor  complex128
	)
	for col = 0; col < n; col++ {
		// Stage 2: partial pivot search.
		p, best = -1, o.eps
		for row = col; row < n; row++ {
			mag = cmplx.Abs(work.data[row*n+col])
			if mag > best {
				p, best = row, mag
			}
		}
		if p < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			swapRows(work, p, col)
			swapRows(inv, p, col)
		}

		// Stage 3: normalize and eliminate.
		pivot = work.data[col*n+col]
		for k = 0; k < n; k++ {
			work.data[col*n+k] /= pivot
			inv.data[col*n+k] /= pivot
		}
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = work.data[row*n+col]
			if factor == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				work.data[row*n+k] -= factor * work.data[col*n+k]
				inv.data[row*n+k] -= factor * inv.data[col*n+k]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *Dense, a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}
