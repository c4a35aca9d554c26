package fusion

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/state"
)

// PairCharge is the charge vector recorded for a fusion pair.
type PairCharge struct {
	Pair   state.FusionPair
	Charge anyon.ChargeVector
}

// Engine derives fusion events and the qubit encoding from a state snapshot.
type Engine struct {
	st     *state.State
	events []state.FusionEvent
	table  anyon.FusionTable
	policy EncodingPolicy
	logger *slog.Logger

	// Lazily filled by propagate.
	propagated bool
	charges    []PairCharge
	terminal   anyon.ChargeVector
	root       state.FusionPair
	hasRoot    bool

	encoded  bool
	encoding []state.FusionPair
	encErr   error
}

// New snapshots st and groups its schedule into events.
// Defaults: Ising fusion rules, DefaultPolicy, slog.Default().
func New(st *state.State, opts ...Option) *Engine {
	if st == nil {
		st = state.New()
	}
	e := &Engine{
		st:     st.Clone(),
		table:  anyon.IsingFusionTable,
		policy: DefaultPolicy(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.events = e.st.Events()
	e.logger.Debug("fusion engine constructed",
		slog.Int("anyons", e.st.Len()),
		slog.Int("events", len(e.events)),
	)

	return e
}

// Events returns a deep copy of the time-grouped events.
func (e *Engine) Events() []state.FusionEvent {
	out := make([]state.FusionEvent, len(e.events))
	for i, ev := range e.events {
		out[i] = append(state.FusionEvent(nil), ev...)
	}

	return out
}

// State returns a copy of the engine's snapshot.
func (e *Engine) State() *state.State { return e.st.Clone() }

// Policy returns the encoding policy in effect.
func (e *Engine) Policy() EncodingPolicy { return e.policy }

// Table returns the fusion rules in effect.
func (e *Engine) Table() anyon.FusionTable { return e.table }

// Fuse applies the engine's fusion rules to a and b.
func (e *Engine) Fuse(a, b anyon.ChargeVector) anyon.ChargeVector {
	return e.table.Fuse(a, b)
}

// propagate walks the events once, filling charges and terminal.
// A pair fused more than once keeps its last recorded vector and its first
// position in charges.
func (e *Engine) propagate() {
	if e.propagated {
		return
	}
	e.propagated = true

	anyons := e.st.Anyons()
	work := make([]anyon.ChargeVector, len(anyons))
	for i, a := range anyons {
		work[i] = a.Charge().Vector()
	}
	pos := make(map[state.FusionPair]int)
	var last state.FusionPair
	for _, ev := range e.events {
		for _, p := range ev {
			tc := e.table.Fuse(work[p.A], work[p.B])
			work[p.A] = tc
			if i, ok := pos[p]; ok {
				e.charges[i].Charge = tc
			} else {
				pos[p] = len(e.charges)
				e.charges = append(e.charges, PairCharge{Pair: p, Charge: tc})
			}
			last = p
			e.hasRoot = true
		}
	}
	if e.hasRoot {
		e.root = last
		e.terminal = work[last.A]
	}
}

// PairCharges returns the recorded vector of every fused pair in first-fusion
// order.
func (e *Engine) PairCharges() []PairCharge {
	e.propagate()

	return append([]PairCharge(nil), e.charges...)
}

// TerminalCharge returns the working vector of the last op's surviving
// anyon. ok is false when the schedule is empty.
func (e *Engine) TerminalCharge() (tc anyon.ChargeVector, ok bool) {
	e.propagate()

	return e.terminal, e.hasRoot
}

// QubitEncoding returns the sorted pairs whose recorded charge has no Sigma
// component. An empty schedule yields an empty encoding. The result (or
// error) is computed once; callers receive a copy.
//
// Errors: ErrInvalidEncoding (also ErrFusion) when the policy rejects the
// terminal charge.
func (e *Engine) QubitEncoding() ([]state.FusionPair, error) {
	if !e.encoded {
		e.encoding, e.encErr = e.deriveEncoding()
		e.encoded = true
	}
	if e.encErr != nil {
		return nil, e.encErr
	}

	return append([]state.FusionPair{}, e.encoding...), nil
}

func (e *Engine) deriveEncoding() ([]state.FusionPair, error) {
	e.propagate()
	if !e.hasRoot {
		return []state.FusionPair{}, nil
	}
	if e.policy.RejectSigmaTerminal && e.terminal.Has(anyon.Sigma) {
		e.logger.Warn("terminal charge rejected",
			slog.String("terminal", e.terminal.String()),
		)

		return nil, fusionErrorf("QubitEncoding", fmt.Errorf("terminal charge %s: %w", e.terminal, ErrInvalidEncoding))
	}
	enc := make([]state.FusionPair, 0, len(e.charges))
	for _, pc := range e.charges {
		if !pc.Charge.Has(anyon.Sigma) {
			enc = append(enc, pc.Pair)
		}
	}
	if e.policy.DropTrailingPair {
		enc = slices.DeleteFunc(enc, func(p state.FusionPair) bool { return p == e.root })
	}
	state.SortPairs(enc)
	e.logger.Debug("qubit encoding derived",
		slog.Int("qubits", len(enc)),
		slog.Any("pairs", enc),
	)

	return enc, nil
}

// VerifyFusionResult folds Fuse over every anyon's charge in list order and
// reports whether each charge present in initial is present in the result.
// An empty anyon list yields false.
func (e *Engine) VerifyFusionResult(initial anyon.Charge) bool {
	anyons := e.st.Anyons()
	vs := make([]anyon.ChargeVector, len(anyons))
	for i, a := range anyons {
		vs[i] = a.Charge().Vector()
	}
	overall, ok := e.table.FuseAll(vs...)
	if !ok {
		return false
	}

	return overall.Contains(initial.Vector())
}

// MinimumPossibleAnyons is PossibleSigmaCounts(qubits).
func (e *Engine) MinimumPossibleAnyons(qubits uint32) []uint32 {
	return PossibleSigmaCounts(qubits)
}

// PossibleSigmaCounts returns the Sigma counts that realize exactly qubits
// logical qubits in the Ising model: {2q+1, 2q+2}.
func PossibleSigmaCounts(qubits uint32) []uint32 {
	return []uint32{2*qubits + 1, 2*qubits + 2}
}

// String renders the fusion tree, one line per event. Fused spans are drawn
// with '─' and the absorbed anyon's track ends.
func (e *Engine) String() string {
	anyons := e.st.Anyons()
	n := len(anyons)
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	var sb strings.Builder
	for _, a := range anyons {
		sb.WriteString(a.Name())
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("| ", n))
	sb.WriteByte('\n')

	cells := make([]string, 2*n)
	for _, ev := range e.events {
		for i := range cells {
			cells[i] = " "
			if i%2 == 0 && active[i/2] {
				cells[i] = "|"
			}
		}
		for _, p := range ev {
			for i := 2*p.A + 1; i < 2*p.B; i++ {
				cells[i] = "─"
			}
			active[p.B] = false
		}
		sb.WriteString(strings.Join(cells, ""))
		sb.WriteByte('\n')
	}

	for _, on := range active {
		if on {
			sb.WriteString("| ")
		} else {
			sb.WriteString("  ")
		}
	}

	return sb.String()
}
