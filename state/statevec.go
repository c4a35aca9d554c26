package state

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/Cornell-QCA/tqc-emu/matrix"
)

// MaxQubits bounds StateVec sizes; 2^MaxQubits amplitudes is already 16 GiB.
const MaxQubits = 30

// StateVec holds the 2^n complex amplitudes of an n-qubit register.
type StateVec struct {
	qubits int
	amps   []complex128
}

// NewStateVec returns a register of the given width. A nil amps selects
// the basis state |0…0⟩; otherwise amps is copied and must have length
// 2^qubits. Amplitudes are stored as given; call Normalize if needed.
func NewStateVec(qubits int, amps []complex128) (*StateVec, error) {
	if qubits < 0 || qubits > MaxQubits {
		return nil, fmt.Errorf("NewStateVec(%d): %w", qubits, ErrAmplitudeCount)
	}
	dim := 1 << qubits
	if amps == nil {
		v := &StateVec{qubits: qubits, amps: make([]complex128, dim)}
		v.amps[0] = 1

		return v, nil
	}
	if len(amps) != dim {
		return nil, fmt.Errorf("NewStateVec(%d): got %d amplitudes, want %d: %w", qubits, len(amps), dim, ErrAmplitudeCount)
	}
	cp := make([]complex128, dim)
	copy(cp, amps)

	return &StateVec{qubits: qubits, amps: cp}, nil
}

// Qubits returns the register width n.
func (v *StateVec) Qubits() int { return v.qubits }

// Len returns 2^n.
func (v *StateVec) Len() int { return len(v.amps) }

// Amplitudes returns a copy of the amplitudes.
func (v *StateVec) Amplitudes() []complex128 {
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// Norm returns the Euclidean norm.
func (v *StateVec) Norm() float64 {
	var sum float64
	for _, a := range v.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(sum)
}

// Probability returns |amp_i|².
func (v *StateVec) Probability(i int) (float64, error) {
	if i < 0 || i >= len(v.amps) {
		return 0, fmt.Errorf("Probability(%d): %w", i, matrix.ErrOutOfRange)
	}
	a := cmplx.Abs(v.amps[i])

	return a * a, nil
}

// Normalize rescales v to unit norm in place.
func (v *StateVec) Normalize() error {
	n := v.Norm()
	if n == 0 {
		return ErrZeroNorm
	}
	inv := complex(1/n, 0)
	for i := range v.amps {
		v.amps[i] *= inv
	}

	return nil
}

// Apply replaces v with op·v. op must be Len()×Len().
func (v *StateVec) Apply(op matrix.Matrix) error {
	if err := matrix.ValidateSquare(op); err != nil {
		return fmt.Errorf("StateVec.Apply: %w", err)
	}
	out, err := matrix.MatVec(op, v.amps)
	if err != nil {
		return fmt.Errorf("StateVec.Apply: %w", err)
	}
	v.amps = out

	return nil
}

// String renders one "<re> + <im>i" line per amplitude inside brackets.
func (v *StateVec) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, a := range v.amps {
		sb.WriteByte('\t')
		sb.WriteString(strconv.FormatFloat(real(a), 'f', -1, 64))
		sb.WriteString(" + ")
		sb.WriteString(strconv.FormatFloat(imag(a), 'f', -1, 64))
		sb.WriteString("i\n")
	}
	sb.WriteByte(']')

	return sb.String()
}
