package braid

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/Cornell-QCA/tqc-emu/fusion"
	"github.com/Cornell-QCA/tqc-emu/matrix"
	"github.com/Cornell-QCA/tqc-emu/model"
	"github.com/Cornell-QCA/tqc-emu/state"
)

// MinAnyons is the smallest state New accepts.
const MinAnyons = 3

// qubitDim is the dimension of one logical qubit.
const qubitDim = 2

// Swap exchanges the anyons at positions A and B.
type Swap struct {
	A int
	B int
}

// String renders the swap as "(a b)".
func (s Swap) String() string {
	return "(" + strconv.Itoa(s.A) + " " + strconv.Itoa(s.B) + ")"
}

func (s Swap) lo() int { return min(s.A, s.B) }

// Engine records braids over a private state snapshot.
type Engine struct {
	id       uuid.UUID
	st       *state.State
	schedule []state.FusionNode
	fusion   *fusion.Engine
	model    model.Model
	matOpts  []matrix.Option
	logger   *slog.Logger
	history  [][]Swap
}

// New snapshots st and builds the engine's fusion view with the same model
// and policy.
//
// Errors: ErrTooFewAnyons (also ErrConstruction) when st is nil or holds
// fewer than MinAnyons anyons.
func New(st *state.State, opts ...Option) (*Engine, error) {
	if st == nil || st.Len() < MinAnyons {
		n := 0
		if st != nil {
			n = st.Len()
		}

		return nil, fmt.Errorf("braid.New: %d anyons: %w: %w", n, ErrConstruction, ErrTooFewAnyons)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	id := uuid.New()
	logger := cfg.logger.With(slog.String("braid_id", id.String()))
	snap := st.Clone()
	e := &Engine{
		id:       id,
		st:       snap,
		schedule: snap.FusionOps(),
		fusion: fusion.New(snap,
			fusion.WithModel(cfg.model),
			fusion.WithPolicy(cfg.policy),
			fusion.WithLogger(logger),
		),
		model:   cfg.model,
		matOpts: cfg.matOpts,
		logger:  logger,
	}
	logger.Debug("braid engine constructed",
		slog.Int("anyons", snap.Len()),
		slog.String("model", cfg.model.Name()),
	)

	return e, nil
}

// ID returns the engine's correlation id.
func (e *Engine) ID() uuid.UUID { return e.id }

// Model returns the anyon model in use.
func (e *Engine) Model() model.Model { return e.model }

// Fusion returns the engine's fusion view of the original schedule.
func (e *Engine) Fusion() *fusion.Engine { return e.fusion }

// State returns a copy of the current (swapped) state.
func (e *Engine) State() *state.State { return e.st.Clone() }

// Time returns the number of recorded steps.
func (e *Engine) Time() int { return len(e.history) }

// History returns a deep copy of the recorded swap sets.
func (e *Engine) History() [][]Swap {
	out := make([][]Swap, len(e.history))
	for i, step := range e.history {
		out[i] = append([]Swap(nil), step...)
	}

	return out
}

// Swap validates swaps as one time step, applies every exchange and
// appends the set to the history. Nothing changes on error.
//
// Errors (all also ErrBraiding): ErrNotAdjacent, ErrIndexReused,
// ErrAnyonIndex.
func (e *Engine) Swap(swaps []Swap) error {
	const op = "Swap"
	n := e.st.Len()
	seen := make(map[int]struct{}, 2*len(swaps))
	for _, s := range swaps {
		if d := s.A - s.B; d != 1 && d != -1 {
			return braidingErrorf(op, fmt.Errorf("%s: %w", s, ErrNotAdjacent))
		}
		for _, idx := range [2]int{s.A, s.B} {
			if _, dup := seen[idx]; dup {
				return braidingErrorf(op, fmt.Errorf("%s: index %d: %w", s, idx, ErrIndexReused))
			}
			if idx < 0 || idx >= n {
				return braidingErrorf(op, fmt.Errorf("%s: %d anyons: %w", s, n, ErrAnyonIndex))
			}
		}
		seen[s.A], seen[s.B] = struct{}{}, struct{}{}
	}

	for _, s := range swaps {
		if err := e.st.SwapAnyons(s.A, s.B); err != nil {
			// Unreachable after validation.
			return braidingErrorf(op, err)
		}
	}
	e.history = append(e.history, append([]Swap(nil), swaps...))
	e.logger.Debug("swap applied",
		slog.Int("time", len(e.history)),
		slog.Any("swaps", swaps),
	)

	return nil
}

// swapAt resolves a 1-based time and 0-based index to a recorded swap.
func (e *Engine) swapAt(op string, time, swapIndex int) (Swap, error) {
	if time < 1 || time > len(e.history) {
		return Swap{}, braidingErrorf(op, fmt.Errorf("time %d with %d steps: %w", time, len(e.history), ErrTimeOutOfRange))
	}
	step := e.history[time-1]
	if swapIndex < 0 || swapIndex >= len(step) {
		return Swap{}, braidingErrorf(op, fmt.Errorf("index %d with %d swaps at time %d: %w", swapIndex, len(step), time, ErrSwapIndexOutOfRange))
	}

	return step[swapIndex], nil
}

// SwapToQubit returns the position in the qubit encoding of the pair
// exchanged by swap swapIndex at time (1-based). ok is false when the pair
// is not an encoding pair.
//
// Errors: ErrTimeOutOfRange, ErrSwapIndexOutOfRange (ErrBraiding), or the
// fusion view's encoding error (fusion.ErrFusion).
func (e *Engine) SwapToQubit(time, swapIndex int) (qubit int, ok bool, err error) {
	_, _, qubit, ok, err = e.locate("SwapToQubit", time, swapIndex)

	return qubit, ok, err
}

// locate resolves a recorded swap together with the encoding and the
// encoding position of its pair.
func (e *Engine) locate(op string, time, swapIndex int) (s Swap, enc []state.FusionPair, qubit int, ok bool, err error) {
	s, err = e.swapAt(op, time, swapIndex)
	if err != nil {
		return Swap{}, nil, 0, false, err
	}
	enc, err = e.fusion.QubitEncoding()
	if err != nil {
		return Swap{}, nil, 0, false, fmt.Errorf("%s: %w", op, err)
	}
	for i, p := range enc {
		if p.Matches(s.A, s.B) {
			return s, enc, i, true, nil
		}
	}

	return s, enc, 0, false, nil
}

// direct reports whether a and b were fused with each other at time 1.
func (e *Engine) direct(a, b int) bool {
	for _, node := range e.schedule {
		if node.Time != 1 {
			continue
		}
		if node.Pair.Matches(a, b) {
			return true
		}
	}

	return false
}

// SwapMatrix returns the exchange matrix of swap swapIndex at time: a copy
// of R for a pair fused directly at time 1, else F⁻¹·R·F.
//
// Errors (ErrBraiding): ErrTimeOutOfRange, ErrSwapIndexOutOfRange,
// ErrAnyonIndex, ErrSingularBasis.
func (e *Engine) SwapMatrix(time, swapIndex int) (*matrix.Dense, error) {
	const op = "SwapMatrix"
	s, err := e.swapAt(op, time, swapIndex)
	if err != nil {
		return nil, err
	}
	if n := e.st.Len(); s.A < 0 || s.B < 0 || s.A >= n || s.B >= n {
		return nil, braidingErrorf(op, fmt.Errorf("%s: %d anyons: %w", s, n, ErrAnyonIndex))
	}
	r := e.model.RMatrix()
	if e.direct(s.A, s.B) {
		return r.Clone().(*matrix.Dense), nil
	}
	m, err := matrix.ChangeOfBasis(r, e.model.FMatrix(), e.matOpts...)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, braidingErrorf(op, fmt.Errorf("%w: %w", ErrSingularBasis, err))
		}

		return nil, braidingErrorf(op, err)
	}

	return m, nil
}

// Unitary returns the register operator of swap swapIndex at time:
// the Kronecker product, in encoding order, of SwapMatrix on the swap's
// qubit and 2×2 identities elsewhere. The result is 2^n × 2^n.
//
// Errors: ErrNoQubit (ErrBraiding) when the swap maps to no qubit,
// ErrGateShape (ErrBraiding) when the model's gate is not 2×2, plus
// everything SwapToQubit and SwapMatrix return.
//
// Complexity: O(4^n) time and memory for n qubits.
func (e *Engine) Unitary(time, swapIndex int) (*matrix.Dense, error) {
	const op = "Unitary"
	s, enc, qubit, ok, err := e.locate(op, time, swapIndex)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, braidingErrorf(op, fmt.Errorf("swap %s at time %d: %w", s, time, ErrNoQubit))
	}
	gate, err := e.SwapMatrix(time, swapIndex)
	if err != nil {
		return nil, err
	}
	if r, c := gate.Shape(); r != qubitDim || c != qubitDim {
		return nil, braidingErrorf(op, fmt.Errorf("model %s: %dx%d gate: %w", e.model.Name(), r, c, ErrGateShape))
	}
	id, err := matrix.NewIdentity(qubitDim)
	if err != nil {
		return nil, braidingErrorf(op, err)
	}
	factors := make([]matrix.Matrix, len(enc))
	for i := range factors {
		factors[i] = id
		if i == qubit {
			factors[i] = gate
		}
	}
	u, err := matrix.KroneckerAll(factors...)
	if err != nil {
		return nil, braidingErrorf(op, err)
	}
	e.logger.Debug("unitary assembled",
		slog.Int("time", time),
		slog.Int("swap_index", swapIndex),
		slog.Int("qubit", qubit),
		slog.Int("dim", u.Rows()),
	)

	return u, nil
}

// ApplyTo replaces v with Unitary(time, swapIndex)·v.
func (e *Engine) ApplyTo(v *state.StateVec, time, swapIndex int) error {
	u, err := e.Unitary(time, swapIndex)
	if err != nil {
		return err
	}
	if err = v.Apply(u); err != nil {
		return braidingErrorf("ApplyTo", err)
	}

	return nil
}
