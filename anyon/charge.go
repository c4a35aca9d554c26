package anyon

import (
	"fmt"
	"strings"
)

// Charge is a topological charge label of the Ising-type model.
// The numeric value is the component index inside a ChargeVector.
type Charge uint8

const (
	// Psi is the fermion ψ.
	Psi Charge = iota
	// Vacuum is the trivial charge 1.
	Vacuum
	// Sigma is the non-abelian charge σ.
	Sigma
)

// NumCharges is the length of every ChargeVector.
const NumCharges = 3

// Charges lists every label in canonical vector order.
var Charges = [NumCharges]Charge{Psi, Vacuum, Sigma}

var chargeNames = [NumCharges]string{"Psi", "Vacuum", "Sigma"}

// Index returns the component index of c inside a ChargeVector.
func (c Charge) Index() int { return int(c) }

// Valid reports whether c is one of the three labels.
func (c Charge) Valid() bool { return c < NumCharges }

// String renders the label as "Psi", "Vacuum" or "Sigma".
func (c Charge) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Charge(%d)", uint8(c))
	}

	return chargeNames[c]
}

// Vector returns the canonical one-hot vector of c.
// Invalid labels map to the zero vector.
func (c Charge) Vector() ChargeVector {
	var v ChargeVector
	if c.Valid() {
		v[c] = 1
	}

	return v
}

// ParseCharge is the inverse of Charge.String. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseCharge(s string) (Charge, error) {
	name := strings.TrimSpace(s)
	for _, c := range Charges {
		if strings.EqualFold(name, chargeNames[c]) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("ParseCharge(%q): %w", s, ErrUnknownCharge)
}

// MarshalText implements encoding.TextMarshaler (used by YAML model configs).
func (c Charge) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(c), ErrUnknownCharge)
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Charge) UnmarshalText(text []byte) error {
	parsed, err := ParseCharge(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
