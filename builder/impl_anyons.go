// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// impl_anyons.go - anyon row constructors.
//
// Anyons are named by cfg.idFn(index) and placed at (index·spacing, 0),
// where index is the position in the state.

package builder

import (
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/state"
)

const (
	methodAnyons  = "Anyons"
	methodCharges = "Charges"
)

// Anyons appends n anyons of the given charge. n ≥ 1.
func Anyons(n int, charge anyon.Charge) Constructor {
	return func(st *state.State, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodAnyons, n, ErrTooFewAnyons)
		}
		if !charge.Valid() {
			return fmt.Errorf("%s: %s: %w", methodAnyons, charge, anyon.ErrUnknownCharge)
		}
		for i := 0; i < n; i++ {
			appendAnyon(st, cfg, charge)
		}

		return nil
	}
}

// Charges appends one anyon per listed charge, in order.
func Charges(cs ...anyon.Charge) Constructor {
	return func(st *state.State, cfg builderConfig) error {
		if len(cs) == 0 {
			return fmt.Errorf("%s: no charges: %w", methodCharges, ErrTooFewAnyons)
		}
		for _, c := range cs {
			if !c.Valid() {
				return fmt.Errorf("%s: %s: %w", methodCharges, c, anyon.ErrUnknownCharge)
			}
		}
		for _, c := range cs {
			appendAnyon(st, cfg, c)
		}

		return nil
	}
}

func appendAnyon(st *state.State, cfg builderConfig, c anyon.Charge) {
	idx := st.Len()
	st.AddAnyon(anyon.New(cfg.idFn(idx), c, anyon.Position{X: float64(idx) * cfg.spacing}))
}
