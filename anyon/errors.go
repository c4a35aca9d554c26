package anyon

import "errors"

var (
	// ErrUnknownCharge indicates a charge name or index outside {Psi, Vacuum, Sigma}.
	ErrUnknownCharge = errors.New("anyon: unknown topological charge")
)
