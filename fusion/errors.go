package fusion

import (
	"errors"
	"fmt"
)

var (
	// ErrFusion is the kind shared by every fusion-engine failure.
	ErrFusion = errors.New("fusion: fusion error")

	// ErrInvalidEncoding indicates a terminal charge that is not a valid
	// qubit encoding under the engine's policy.
	ErrInvalidEncoding = errors.New("fusion: final topological charge is not a valid qubit encoding")
)

func fusionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrFusion, err)
}
