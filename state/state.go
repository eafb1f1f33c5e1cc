// Package state holds a vehicle's time-stamped orbital elements and the
// system context they are defined against, plus the chronologically
// ordered history of such states that a propagation run accumulates.
package state

import (
	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/units"
)

// State is an epoch, an element set, and a non-owning reference to the
// system it was computed against. The system reference is constant for
// the life of the State; switching central bodies means constructing a
// new State, not mutating System in place.
type State struct {
	Epoch    units.JulianDate
	Elements elements.Elements
	System   bodies.System
}

// New builds a State.
func New(epoch units.JulianDate, el elements.Elements, sys bodies.System) State {
	return State{Epoch: epoch, Elements: el, System: sys}
}

// As returns this state's elements converted to kind, against the state's
// own system's gravitational parameter.
func (s State) As(kind elements.Kind) (elements.Elements, error) {
	return elements.As(s.Elements, kind, s.System.Central.Mu)
}
