// File: state.go
// Role: SystemState: anyon list plus fusion schedule.
// Determinism:
//   - Events() preserves recording order inside each time step.
// Concurrency:
//   - None; callers serialize access. Engines snapshot via Clone.

package state

import (
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/anyon"
)

// State is the owning container for anyons and their fusion schedule.
// The zero value is an empty, usable state.
type State struct {
	anyons []anyon.Anyon
	ops    []FusionNode
}

// New returns a state holding the given anyons and an empty schedule.
func New(anyons ...anyon.Anyon) *State {
	s := &State{}
	s.anyons = append(s.anyons, anyons...)

	return s
}

// FromSchedule builds a state and records ops in order through AddFusionOp.
// The first invalid op aborts construction.
func FromSchedule(anyons []anyon.Anyon, ops []FusionNode) (*State, error) {
	s := New(anyons...)
	for _, op := range ops {
		if err := s.AddFusionOp(op.Time, op.Pair.A, op.Pair.B); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AddAnyon appends a and returns its index.
func (s *State) AddAnyon(a anyon.Anyon) int {
	s.anyons = append(s.anyons, a)

	return len(s.anyons) - 1
}

// AddFusionOp records the fusion of anyons a and b at time.
// On error the schedule is unchanged; see the package doc for the rules.
//
// Complexity: O(k) where k is the number of ops already at time.
func (s *State) AddFusionOp(time uint32, a, b int) error {
	const op = "AddFusionOp"
	if time == 0 {
		return constructionErrorf(op, ErrZeroTime)
	}
	if n := len(s.ops); n > 0 && time < s.ops[n-1].Time {
		return constructionErrorf(op, fmt.Errorf("time %d after %d: %w", time, s.ops[n-1].Time, ErrTimeOrder))
	}
	for _, idx := range [2]int{a, b} {
		if idx < 0 || idx >= len(s.anyons) {
			return constructionErrorf(op, fmt.Errorf("index %d with %d anyons: %w", idx, len(s.anyons), ErrAnyonIndex))
		}
	}
	if a == b {
		return constructionErrorf(op, fmt.Errorf("pair (%d %d): %w", a, b, ErrSelfFusion))
	}
	for i := len(s.ops) - 1; i >= 0 && s.ops[i].Time == time; i-- {
		p := s.ops[i].Pair
		if p.Contains(a) || p.Contains(b) {
			return constructionErrorf(op, fmt.Errorf("pair (%d %d) overlaps %s at time %d: %w", a, b, p, time, ErrIndexReused))
		}
	}
	s.ops = append(s.ops, FusionNode{Time: time, Pair: FusionPair{A: a, B: b}})

	return nil
}

// SwapAnyons exchanges the anyons at positions i and j. The fusion
// schedule is not touched: it refers to fusion identity, not position.
func (s *State) SwapAnyons(i, j int) error {
	for _, idx := range [2]int{i, j} {
		if idx < 0 || idx >= len(s.anyons) {
			return fmt.Errorf("SwapAnyons(%d, %d): %w", i, j, ErrAnyonIndex)
		}
	}
	s.anyons[i], s.anyons[j] = s.anyons[j], s.anyons[i]

	return nil
}

// Len returns the number of anyons.
func (s *State) Len() int { return len(s.anyons) }

// Anyon returns the anyon at position i.
func (s *State) Anyon(i int) (anyon.Anyon, error) {
	if i < 0 || i >= len(s.anyons) {
		return anyon.Anyon{}, fmt.Errorf("Anyon(%d): %w", i, ErrAnyonIndex)
	}

	return s.anyons[i], nil
}

// Anyons returns a copy of the anyon list.
func (s *State) Anyons() []anyon.Anyon {
	out := make([]anyon.Anyon, len(s.anyons))
	copy(out, s.anyons)

	return out
}

// FusionOps returns a copy of the fusion schedule in recording order.
func (s *State) FusionOps() []FusionNode {
	out := make([]FusionNode, len(s.ops))
	copy(out, s.ops)

	return out
}

// Events groups the schedule by equal time, in time order.
// Times with no ops produce no event.
//
// Complexity: O(len(ops)).
func (s *State) Events() []FusionEvent {
	var events []FusionEvent
	for i, node := range s.ops {
		if i == 0 || node.Time != s.ops[i-1].Time {
			events = append(events, FusionEvent{})
		}
		last := len(events) - 1
		events[last] = append(events[last], node.Pair)
	}

	return events
}

// Clone returns an independent deep copy.
func (s *State) Clone() *State {
	return &State{anyons: s.Anyons(), ops: s.FusionOps()}
}
