// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - BuildState creates a state, resolves options once and runs
//     constructors in order; Extend does the same on an existing state.
//   - Same options, seed and constructor order give identical states.

package builder

import (
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/state"
)

// Constructor applies one deterministic mutation to st.
type Constructor func(st *state.State, cfg builderConfig) error

// BuildState returns a new state built by cons under bopts.
// The first failing constructor aborts construction.
func BuildState(bopts []BuilderOption, cons ...Constructor) (*state.State, error) {
	st := state.New()
	if err := Extend(st, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildState: %w", err)
	}

	return st, nil
}

// Extend runs cons against st. st may be partially mutated on error.
func Extend(st *state.State, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(st, cfg); err != nil {
			return err
		}
	}

	return nil
}
