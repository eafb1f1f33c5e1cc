package state

import "github.com/astrolib/smd/units"

// Vehicle is the interface force models and the integrator consume: a
// named body with mass and surface properties, whose state is gettable
// and settable by the propagation loop. Implementations that don't care
// about a given property (e.g. a ballistic vehicle with no solar panels)
// may simply return zero for it.
type Vehicle interface {
	Name() string

	State() State
	SetState(State)

	// Mass is the vehicle's total mass at the given epoch.
	Mass(epoch units.JulianDate) units.Mass

	// RamArea, LiftArea, SolarArea are the cross-sectional areas drag,
	// lift, and SRP act against, respectively.
	RamArea() units.Length2
	LiftArea() units.Length2
	SolarArea() units.Length2

	// Cd, Cl, Cr are the drag, lift, and reflectivity coefficients.
	Cd() float64
	Cl() float64
	Cr() float64
}

// Basic is the zero-configuration Vehicle: a named point mass with no
// drag, lift, or SRP cross-section. Embedding it lets a caller override
// only the properties they care about.
type Basic struct {
	VehicleName string
	Dry         units.Mass
	S           State
}

// Name implements Vehicle.
func (b *Basic) Name() string { return b.VehicleName }

// State implements Vehicle.
func (b *Basic) State() State { return b.S }

// SetState implements Vehicle.
func (b *Basic) SetState(s State) { b.S = s }

// Mass implements Vehicle.
func (b *Basic) Mass(units.JulianDate) units.Mass { return b.Dry }

// RamArea implements Vehicle.
func (b *Basic) RamArea() units.Length2 { return 0 }

// LiftArea implements Vehicle.
func (b *Basic) LiftArea() units.Length2 { return 0 }

// SolarArea implements Vehicle.
func (b *Basic) SolarArea() units.Length2 { return 0 }

// Cd implements Vehicle.
func (b *Basic) Cd() float64 { return 0 }

// Cl implements Vehicle.
func (b *Basic) Cl() float64 { return 0 }

// Cr implements Vehicle.
func (b *Basic) Cr() float64 { return 0 }

// NewBasic returns a Basic vehicle with the given name, dry mass, and
// initial state.
func NewBasic(name string, dry units.Mass, s State) *Basic {
	return &Basic{VehicleName: name, Dry: dry, S: s}
}
