package state

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is the kind shared by every schedule-building failure.
	ErrConstruction = errors.New("state: construction error")

	// ErrZeroTime indicates a fusion op with time 0; times start at 1.
	ErrZeroTime = errors.New("state: fusion time must be >= 1")

	// ErrTimeOrder indicates a fusion op earlier than the last recorded one.
	ErrTimeOrder = errors.New("state: fusion time decreases")

	// ErrAnyonIndex indicates an index outside the current anyon list.
	ErrAnyonIndex = errors.New("state: anyon index out of range")

	// ErrSelfFusion indicates a pair (a, a).
	ErrSelfFusion = errors.New("state: anyon cannot fuse with itself")

	// ErrIndexReused indicates an anyon fused twice in one time step.
	ErrIndexReused = errors.New("state: anyon index reused within a time step")

	// ErrParsePair indicates text that is not of the form "(a b)".
	ErrParsePair = errors.New("state: malformed fusion pair")

	// ErrAmplitudeCount indicates an amplitude slice whose length is not 2^qubits.
	ErrAmplitudeCount = errors.New("state: amplitude count must be 2^qubits")

	// ErrZeroNorm indicates normalization of the zero vector.
	ErrZeroNorm = errors.New("state: cannot normalize zero vector")
)

// constructionErrorf tags err with ErrConstruction and the failing operation.
func constructionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConstruction, err)
}
