package fusion

import (
	"log/slog"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/model"
)

// EncodingPolicy decides how the terminal charge and root pair are treated
// by QubitEncoding.
type EncodingPolicy struct {
	// RejectSigmaTerminal fails QubitEncoding with ErrInvalidEncoding when
	// the terminal charge has a non-zero Sigma component.
	RejectSigmaTerminal bool

	// DropTrailingPair removes the root pair (the last op's pair) from the
	// encoding when it is present.
	DropTrailingPair bool
}

// DefaultPolicy rejects a Sigma terminal charge and keeps every pair.
func DefaultPolicy() EncodingPolicy {
	return EncodingPolicy{RejectSigmaTerminal: true}
}

// Option configures an Engine.
type Option func(*Engine)

// WithFusionTable overrides the Ising fusion rules.
func WithFusionTable(t anyon.FusionTable) Option {
	return func(e *Engine) { e.table = t }
}

// WithModel takes the fusion rules from m.
func WithModel(m model.Model) Option {
	return func(e *Engine) {
		if m != nil {
			e.table = m.FusionTable()
		}
	}
}

// WithPolicy sets the encoding policy.
func WithPolicy(p EncodingPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
