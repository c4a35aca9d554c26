package braid

import (
	"errors"
	"fmt"
)

// Kinds.
var (
	// ErrConstruction is the kind of every New failure.
	ErrConstruction = errors.New("braid: construction error")

	// ErrBraiding is the kind of every swap, lookup and matrix failure.
	ErrBraiding = errors.New("braid: braiding error")
)

var (
	// ErrTooFewAnyons indicates a state with fewer than MinAnyons anyons.
	ErrTooFewAnyons = errors.New("braid: state must have at least 3 anyons")

	// ErrNotAdjacent indicates a swap with |a−b| ≠ 1.
	ErrNotAdjacent = errors.New("braid: indices are not adjacent")

	// ErrIndexReused indicates an index swapped twice in one call.
	ErrIndexReused = errors.New("braid: index already swapped in this step")

	// ErrAnyonIndex indicates an index outside the anyon list.
	ErrAnyonIndex = errors.New("braid: anyon index out of range")

	// ErrTimeOutOfRange indicates time 0 or past the last recorded step.
	ErrTimeOutOfRange = errors.New("braid: time out of range")

	// ErrSwapIndexOutOfRange indicates a swap index past the step's swap count.
	ErrSwapIndexOutOfRange = errors.New("braid: swap index out of range")

	// ErrSingularBasis indicates an F-matrix that cannot be inverted.
	ErrSingularBasis = errors.New("braid: F-matrix is singular")

	// ErrGateShape indicates a swap matrix that is not 2×2.
	ErrGateShape = errors.New("braid: swap matrix is not a single-qubit gate")

	// ErrNoQubit indicates a swap that maps to no logical qubit.
	ErrNoQubit = errors.New("braid: swap does not act on a logical qubit")
)

func braidingErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBraiding, err)
}
