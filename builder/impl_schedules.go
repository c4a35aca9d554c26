// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// impl_schedules.go - fusion schedule constructors.
//
// Contract:
//   - The state must hold ≥ 2 anyons (else ErrTooFewAnyons).
//   - The first op is recorded one step after the last existing op.
//   - Every schedule fuses the n anyons present into one root with n-1 ops,
//     always joining a pair of adjacent survivors (a valid basis).
//
// Complexity: O(n) ops; Balanced and Random are O(n log n) and O(n²) in
// bookkeeping respectively.

package builder

import (
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/state"
)

const (
	methodChain     = "Chain"
	methodRightFold = "RightFold"
	methodBalanced  = "Balanced"
	methodRandom    = "Random"
	minScheduled    = 2
)

// startTime returns the first free time step of st.
func startTime(st *state.State) uint32 {
	ops := st.FusionOps()
	if len(ops) == 0 {
		return 1
	}

	return ops[len(ops)-1].Time + 1
}

func checkScheduled(method string, st *state.State) error {
	if st.Len() < minScheduled {
		return fmt.Errorf("%s: %d anyons < min=%d: %w", method, st.Len(), minScheduled, ErrTooFewAnyons)
	}

	return nil
}

// Chain fuses every anyon into anyon 0, one per step: (0 1), (0 2), ….
func Chain() Constructor {
	return func(st *state.State, _ builderConfig) error {
		if err := checkScheduled(methodChain, st); err != nil {
			return err
		}
		t := startTime(st)
		for i := 1; i < st.Len(); i++ {
			if err := st.AddFusionOp(t, 0, i); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			t++
		}

		return nil
	}
}

// RightFold fuses from the right end inward: (n-2 n-1), (n-3 n-2), … (0 1).
func RightFold() Constructor {
	return func(st *state.State, _ builderConfig) error {
		if err := checkScheduled(methodRightFold, st); err != nil {
			return err
		}
		t := startTime(st)
		for a := st.Len() - 2; a >= 0; a-- {
			if err := st.AddFusionOp(t, a, a+1); err != nil {
				return fmt.Errorf("%s: %w", methodRightFold, err)
			}
			t++
		}

		return nil
	}
}

// Balanced fuses adjacent survivors pairwise, all pairs of one level in the
// same step. An odd survivor is carried to the next level.
func Balanced() Constructor {
	return func(st *state.State, _ builderConfig) error {
		if err := checkScheduled(methodBalanced, st); err != nil {
			return err
		}
		t := startTime(st)
		alive := survivors(st.Len())
		for len(alive) > 1 {
			next := make([]int, 0, (len(alive)+1)/2)
			for i := 0; i+1 < len(alive); i += 2 {
				if err := st.AddFusionOp(t, alive[i], alive[i+1]); err != nil {
					return fmt.Errorf("%s: %w", methodBalanced, err)
				}
				next = append(next, alive[i])
			}
			if len(alive)%2 == 1 {
				next = append(next, alive[len(alive)-1])
			}
			alive = next
			t++
		}

		return nil
	}
}

// Random fuses one uniformly chosen adjacent pair of survivors per step.
// Requires WithSeed or WithRand.
func Random() Constructor {
	return func(st *state.State, cfg builderConfig) error {
		if err := checkScheduled(methodRandom, st); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		t := startTime(st)
		alive := survivors(st.Len())
		for len(alive) > 1 {
			i := cfg.rng.Intn(len(alive) - 1)
			if err := st.AddFusionOp(t, alive[i], alive[i+1]); err != nil {
				return fmt.Errorf("%s: %w", methodRandom, err)
			}
			alive = append(alive[:i+1], alive[i+2:]...)
			t++
		}

		return nil
	}
}

func survivors(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
