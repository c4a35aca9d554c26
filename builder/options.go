// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// DefaultSpacing is the X distance between consecutive anyons.
const DefaultSpacing = 1.0

// BuilderOption mutates builderConfig before construction.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	spacing float64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn, spacing: DefaultSpacing}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithIDScheme sets the anyon naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the X distance between anyons. Panics on NaN, ±Inf or
// a negative value.
func WithSpacing(d float64) BuilderOption {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		panic("builder: WithSpacing requires a finite non-negative distance")
	}

	return func(c *builderConfig) { c.spacing = d }
}
