package braid

import (
	"log/slog"

	"github.com/Cornell-QCA/tqc-emu/fusion"
	"github.com/Cornell-QCA/tqc-emu/matrix"
	"github.com/Cornell-QCA/tqc-emu/model"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	model   model.Model
	policy  fusion.EncodingPolicy
	logger  *slog.Logger
	matOpts []matrix.Option
}

func defaultConfig() config {
	return config{
		model:  model.Ising(),
		policy: fusion.DefaultPolicy(),
		logger: slog.Default(),
	}
}

// WithModel sets the anyon model (R, F and fusion rules); nil keeps Ising.
func WithModel(m model.Model) Option {
	return func(c *config) {
		if m != nil {
			c.model = m
		}
	}
}

// WithEncodingPolicy sets the policy of the engine's fusion view.
func WithEncodingPolicy(p fusion.EncodingPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEpsilon sets the pivot tolerance used when inverting F.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	opt := matrix.WithEpsilon(eps)

	return func(c *config) { c.matOpts = append(c.matOpts, opt) }
}
