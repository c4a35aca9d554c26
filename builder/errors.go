// SPDX-License-Identifier: MIT
// Package: tqc-emu/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

var (
	// ErrTooFewAnyons indicates a count or state too small for the constructor.
	ErrTooFewAnyons = errors.New("builder: too few anyons")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
