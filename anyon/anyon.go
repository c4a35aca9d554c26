package anyon

import (
	"fmt"
	"strconv"
)

// Position is a 2D coordinate. It is informational only; no spatial engine
// consumes it.
type Position struct {
	X, Y float64
}

// String renders the coordinate as "(x, y)".
func (p Position) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Anyon is a quasiparticle with a name, a topological charge and a position.
// Fields are unexported so a value never changes after New.
type Anyon struct {
	name     string
	charge   Charge
	position Position
}

// New returns an Anyon. The charge is not validated here; use
// Charge.Valid or ParseCharge at the input boundary.
func New(name string, charge Charge, position Position) Anyon {
	return Anyon{name: name, charge: charge, position: position}
}

// Name returns the anyon's label.
func (a Anyon) Name() string { return a.name }

// Charge returns the anyon's topological charge.
func (a Anyon) Charge() Charge { return a.charge }

// Position returns the anyon's coordinate.
func (a Anyon) Position() Position { return a.position }

// String renders "Anyon: name=<n>, charge=<c>, position=(<x>, <y>)".
func (a Anyon) String() string {
	return fmt.Sprintf("Anyon: name=%s, charge=%s, position=%s", a.name, a.charge, a.position)
}
