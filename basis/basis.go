// Package basis validates that a fusion schedule describes a well-formed
// fusion basis: a binary fusion tree over adjacent anyons in which every
// anyon but the root is absorbed exactly once.
//
// Validation is fail-fast and checks, in order:
//
//  1. times never decrease (ErrTimeOrder)
//  2. the op count is anyonCount-1 (ErrOpCount)
//  3. each pair satisfies a < b < anyonCount (ErrPairRange)
//  4. neither a nor b was absorbed by an earlier op (ErrAlreadyFused)
//  5. every index strictly between a and b was absorbed by an earlier op
//     (ErrNotAdjacent)
//
// For op (a, b), b is absorbed and a carries the fused charge forward.
package basis

import (
	"errors"
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/state"
)

var (
	// ErrTimeOrder indicates an op earlier than its predecessor.
	ErrTimeOrder = errors.New("basis: fusion times decrease")

	// ErrOpCount indicates a schedule whose length is not anyonCount-1.
	ErrOpCount = errors.New("basis: fusion count must be one less than anyon count")

	// ErrPairRange indicates a pair violating a < b < anyonCount.
	ErrPairRange = errors.New("basis: fusion pair out of range")

	// ErrAlreadyFused indicates an anyon that an earlier op already absorbed.
	ErrAlreadyFused = errors.New("basis: anyon already fused")

	// ErrNotAdjacent indicates an unfused anyon between the pair's indices.
	ErrNotAdjacent = errors.New("basis: fusion pair is not adjacent")
)

// Basis is an ordered fusion schedule under test.
type Basis struct {
	ops []state.FusionNode
}

// New copies ops into a Basis.
func New(ops []state.FusionNode) *Basis {
	return &Basis{ops: append([]state.FusionNode(nil), ops...)}
}

// FromState is New(st.FusionOps()).
func FromState(st *state.State) *Basis {
	return &Basis{ops: st.FusionOps()}
}

// Ops returns a copy of the schedule.
func (b *Basis) Ops() []state.FusionNode {
	return append([]state.FusionNode(nil), b.ops...)
}

// Verify reports whether Validate(anyonCount) succeeds.
func (b *Basis) Verify(anyonCount int) bool {
	return b.Validate(anyonCount) == nil
}

// Validate returns nil for a well-formed basis over anyonCount anyons, or
// the first rule violated (see the package doc).
//
// Complexity: O(len(ops) · anyonCount).
func (b *Basis) Validate(anyonCount int) error {
	for i := 1; i < len(b.ops); i++ {
		if b.ops[i].Time < b.ops[i-1].Time {
			return fmt.Errorf("op %d: time %d after %d: %w", i, b.ops[i].Time, b.ops[i-1].Time, ErrTimeOrder)
		}
	}
	if len(b.ops) != anyonCount-1 {
		return fmt.Errorf("%d ops for %d anyons: %w", len(b.ops), anyonCount, ErrOpCount)
	}

	absorbed := make([]bool, anyonCount)
	for i, op := range b.ops {
		p := op.Pair
		if p.A < 0 || p.A >= p.B || p.B >= anyonCount {
			return fmt.Errorf("op %d %s: %w", i, p, ErrPairRange)
		}
		if absorbed[p.A] || absorbed[p.B] {
			return fmt.Errorf("op %d %s: %w", i, p, ErrAlreadyFused)
		}
		for k := p.A + 1; k < p.B; k++ {
			if !absorbed[k] {
				return fmt.Errorf("op %d %s: anyon %d unfused: %w", i, p, k, ErrNotAdjacent)
			}
		}
		absorbed[p.B] = true
	}

	return nil
}
