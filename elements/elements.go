package elements

import "github.com/astrolib/smd/units"

// Elements is the sum type over the three orbital-element representations.
// Every concrete value (Cartesian, Keplerian, Equinoctial; see the
// like-named files) implements it. Arithmetic that mixes concrete kinds
// (Add/Sub) fails with ErrKindMismatch; scalar multiply/divide and
// conversion are polymorphic and preserve the concrete kind.
type Elements interface {
	// Kind reports which concrete representation this value holds.
	Kind() Kind
	// Add returns the elementwise sum. Fails if other is a different Kind.
	Add(other Elements) (Elements, error)
	// Sub returns the elementwise difference. Fails if other is a different Kind.
	Sub(other Elements) (Elements, error)
	// Scale returns every component multiplied by a dimensionless scalar.
	Scale(s float64) Elements
	// DivTime returns the partial derivative implied by dividing every
	// component by a duration.
	DivTime(dt units.Duration) Partials
	// Vector6 reduces the element set to a unit-normalized 6-vector of
	// plain float64s, the representation the integrator's error norm
	// operates on.
	Vector6() [6]float64
	// ToCartesian converts to the Cartesian representation given the
	// system's gravitational parameter.
	ToCartesian(mu units.GravParam) Cartesian
	// ToKeplerian converts to the Keplerian representation given the
	// system's gravitational parameter.
	ToKeplerian(mu units.GravParam) Keplerian
	// ToEquinoctial converts to the Equinoctial representation given the
	// system's gravitational parameter.
	ToEquinoctial(mu units.GravParam) Equinoctial
}

// As converts el to the representation selected by kind. Returns
// ErrUnknownKind if kind is not one of {Cartesian, Keplerian, Equinoctial}.
func As(el Elements, kind Kind, mu units.GravParam) (Elements, error) {
	switch kind {
	case KindCartesian:
		return el.ToCartesian(mu), nil
	case KindKeplerian:
		return el.ToKeplerian(mu), nil
	case KindEquinoctial:
		return el.ToEquinoctial(mu), nil
	default:
		return nil, ErrUnknownKind
	}
}

// FromVector6 reconstructs an element set of the given kind from its
// Vector6 representation -- the inverse of Elements.Vector6. A generic
// numerical integrator only ever sees the flat []float64 form; this is
// the bridge back to the dimensioned, kind-specific type once a step
// has been taken. Angles are not re-wrapped here (unlike NewKeplerian/
// NewEquinoctial), so a derivative that accumulates an angle past 2*pi
// round-trips exactly rather than being silently wrapped every step.
func FromVector6(kind Kind, v [6]float64) (Elements, error) {
	switch kind {
	case KindCartesian:
		return Cartesian{R: [3]float64{v[0], v[1], v[2]}, V: [3]float64{v[3], v[4], v[5]}}, nil
	case KindKeplerian:
		return Keplerian{
			A: units.Length(v[0]), E: units.Unitless(v[1]),
			I: units.Angle(v[2]), RAAN: units.Angle(v[3]),
			ArgPeri: units.Angle(v[4]), TrueAnomaly: units.Angle(v[5]),
		}, nil
	case KindEquinoctial:
		return Equinoctial{
			P: units.Length(v[0]), F: units.Unitless(v[1]), G: units.Unitless(v[2]),
			H: units.Unitless(v[3]), K: units.Unitless(v[4]), L: units.Angle(v[5]),
		}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Partials mirrors Elements, storing the per-element time derivative (i.e.
// the result of Elements.DivTime) with the correct dimension on each
// component. It is intentionally a much narrower interface than Elements:
// partials are a terminal value fed into the variation-of-parameters
// equations of motion, not something further converted or interpolated.
type Partials interface {
	Kind() Kind
	// Vector6PerSecond returns the six component rates in SI-consistent
	// units per second (km/s, 1/s, rad/s as appropriate per component).
	Vector6PerSecond() [6]float64
}
