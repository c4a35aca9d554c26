package model

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/matrix"
)

// Model is the capability object engines are parameterized over.
// Matrix getters return independent copies.
type Model interface {
	Name() string
	RMatrix() *matrix.Dense
	FMatrix() *matrix.Dense
	FusionTable() anyon.FusionTable
}

// IsingName is the name reported by Ising().
const IsingName = "ising"

type fixed struct {
	name  string
	r, f  *matrix.Dense
	table anyon.FusionTable
}

func (m *fixed) Name() string                   { return m.name }
func (m *fixed) RMatrix() *matrix.Dense         { return m.r.Clone().(*matrix.Dense) }
func (m *fixed) FMatrix() *matrix.Dense         { return m.f.Clone().(*matrix.Dense) }
func (m *fixed) FusionTable() anyon.FusionTable { return m.table }
func (m *fixed) String() string                 { return "model(" + m.name + ")" }

var ising = newIsing()

// Ising returns the Ising model: R = diag(e^{-iπ/8}, e^{3iπ/8}) in the
// {1, ψ} channel basis of σ⊗σ, F = (1/√2)[[1, 1], [1, −1]] and
// IsingFusionTable.
func Ising() Model { return ising }

func newIsing() *fixed {
	s := complex(1/math.Sqrt2, 0)
	r, err := matrix.NewFromRows([][]complex128{
		{cmplx.Exp(complex(0, -math.Pi/8)), 0},
		{0, cmplx.Exp(complex(0, 3*math.Pi/8))},
	})
	if err != nil {
		panic(fmt.Sprintf("model: building Ising R: %v", err))
	}
	f, err := matrix.NewFromRows([][]complex128{{s, s}, {s, -s}})
	if err != nil {
		panic(fmt.Sprintf("model: building Ising F: %v", err))
	}

	return &fixed{name: IsingName, r: r, f: f, table: anyon.IsingFusionTable}
}

// New validates and returns a model built from explicit data.
// R and F must be square, of equal size and unitary within eps
// (matrix.DefaultEpsilon unless overridden). Inputs are copied.
func New(name string, r, f matrix.Matrix, table anyon.FusionTable, opts ...matrix.Option) (Model, error) {
	if err := matrix.ValidateSquare(r); err != nil {
		return nil, fmt.Errorf("model.New(%s): R: %w: %w", name, ErrMatrixShape, err)
	}
	if err := matrix.ValidateSquare(f); err != nil {
		return nil, fmt.Errorf("model.New(%s): F: %w: %w", name, ErrMatrixShape, err)
	}
	if r.Rows() != f.Rows() {
		return nil, fmt.Errorf("model.New(%s): R is %d×%d, F is %d×%d: %w",
			name, r.Rows(), r.Cols(), f.Rows(), f.Cols(), ErrMatrixShape)
	}
	for _, m := range []struct {
		tag string
		mat matrix.Matrix
	}{{"R", r}, {"F", f}} {
		if err := matrix.ValidateUnitary(m.mat, opts...); err != nil {
			return nil, fmt.Errorf("model.New(%s): %s: %w: %w", name, m.tag, ErrNotUnitary, err)
		}
	}
	rd, err := copyDense(r)
	if err != nil {
		return nil, fmt.Errorf("model.New(%s): %w", name, err)
	}
	fd, err := copyDense(f)
	if err != nil {
		return nil, fmt.Errorf("model.New(%s): %w", name, err)
	}

	return &fixed{name: name, r: rd, f: fd, table: table}, nil
}

// copyDense materializes any Matrix into an independent *Dense.
func copyDense(m matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
