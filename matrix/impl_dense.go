// SPDX-License-Identifier: MIT

// Package matrix - complex128 Dense storage and bounds-checked accessors.
//
// Layout: one flat buffer, row-major, element (i, j) at offset i*cols + j.
// Accessors report ErrOutOfRange instead of panicking; writes reject NaN
// and ±Inf components.
//
// Cost: NewDense and Clone O(r*c); At and Set O(1).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

const (
	opAt  = "At"
	opSet = "Set"
)

// elemErrorf tags err with the accessor name and the offending coordinates.
func elemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major complex matrix with r, c > 0 and len(data) == r*c.
type Dense struct {
	r, c int
	data []complex128
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a rows×cols zero matrix.
//
// Errors: ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewFromRows copies a rectangular slice of rows into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows or its first row is empty.
//   - ErrRaggedRows when a row length differs from the first.
//   - ErrNaNInf when a component is NaN or ±Inf.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	out := &Dense{r: len(rows), c: cols, data: make([]complex128, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, fmt.Errorf("NewFromRows: %w", elemErrorf(opSet, i, j, ErrNaNInf))
			}
		}
		out.data = append(out.data, row...)
	}

	return out, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At returns element (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, elemErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). On error the matrix is unchanged.
//
// Errors: ErrOutOfRange, or ErrNaNInf when either component of v is not
// finite.
func (m *Dense) Set(row, col int, v complex128) error {
	off, ok := m.offset(row, col)
	if !ok {
		return elemErrorf(opSet, row, col, ErrOutOfRange)
	}
	if !isFinite(v) {
		return elemErrorf(opSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]complex128(nil), m.data...)}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}

	return append([]complex128(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// String prints one bracketed line per row, entries as "(<re>+<im>i)"
// separated by ", ".
func (m *Dense) String() string {
	var sb strings.Builder
	cells := make([]string, m.c)
	for i := 0; i < m.r; i++ {
		for j := range cells {
			cells[j] = strconv.FormatComplex(m.data[i*m.c+j], 'g', -1, 128)
		}
		sb.WriteByte('[')
		sb.WriteString(strings.Join(cells, ", "))
		sb.WriteString("]\n")
	}

	return sb.String()
}

func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}
