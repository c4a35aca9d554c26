package model

import "errors"

var (
	// ErrInvalidConfig indicates a model configuration that failed struct
	// validation or could not be decoded.
	ErrInvalidConfig = errors.New("model: invalid configuration")

	// ErrIncompleteTable indicates a fusion table with an uncovered or
	// duplicated (left, right) pair.
	ErrIncompleteTable = errors.New("model: incomplete fusion table")

	// ErrMatrixShape indicates R or F is not square, or their sizes differ.
	ErrMatrixShape = errors.New("model: R and F must be square and of equal size")

	// ErrNotUnitary indicates R or F failed the unitarity check.
	ErrNotUnitary = errors.New("model: matrix is not unitary")
)
