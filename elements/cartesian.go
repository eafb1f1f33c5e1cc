package elements

import (
	"math"

	"github.com/astrolib/smd/units"
)

// Cartesian holds a position and velocity, expressed in the central body's
// inertial frame (km, km/s).
type Cartesian struct {
	R [3]float64 // km
	V [3]float64 // km/s
}

// NewCartesian builds a Cartesian element set from raw km / km/s components.
func NewCartesian(r, v [3]float64) Cartesian { return Cartesian{R: r, V: v} }

// Kind implements Elements.
func (c Cartesian) Kind() Kind { return KindCartesian }

// Add implements Elements.
func (c Cartesian) Add(other Elements) (Elements, error) {
	o, ok := other.(Cartesian)
	if !ok {
		return nil, kindMismatchError(c.Kind(), other.Kind())
	}
	return Cartesian{addVec(c.R, o.R), addVec(c.V, o.V)}, nil
}

// Sub implements Elements.
func (c Cartesian) Sub(other Elements) (Elements, error) {
	o, ok := other.(Cartesian)
	if !ok {
		return nil, kindMismatchError(c.Kind(), other.Kind())
	}
	return Cartesian{subVec(c.R, o.R), subVec(c.V, o.V)}, nil
}

// Scale implements Elements.
func (c Cartesian) Scale(s float64) Elements {
	return Cartesian{scaleVec(c.R, s), scaleVec(c.V, s)}
}

// DivTime implements Elements.
func (c Cartesian) DivTime(dt units.Duration) Partials {
	s := 1 / dt.Seconds()
	return CartesianPartials{V: scaleVec(c.R, s), A: scaleVec(c.V, s)}
}

// Vector6 implements Elements.
func (c Cartesian) Vector6() [6]float64 {
	return [6]float64{c.R[0], c.R[1], c.R[2], c.V[0], c.V[1], c.V[2]}
}

// ToCartesian implements Elements (identity).
func (c Cartesian) ToCartesian(mu units.GravParam) Cartesian { return c }

// ToKeplerian implements Elements.
func (c Cartesian) ToKeplerian(mu units.GravParam) Keplerian {
	return KeplerianFromCartesian(c, mu)
}

// ToEquinoctial implements Elements.
func (c Cartesian) ToEquinoctial(mu units.GravParam) Equinoctial {
	return KeplerianFromCartesian(c, mu).ToEquinoctial(mu)
}

// RNorm returns the magnitude of the position vector, in km.
func (c Cartesian) RNorm() float64 { return norm(c.R) }

// VNorm returns the magnitude of the velocity vector, in km/s.
func (c Cartesian) VNorm() float64 { return norm(c.V) }

// CartesianPartials is the time-derivative of a Cartesian element set:
// velocity (partial of position) and acceleration (partial of velocity).
type CartesianPartials struct {
	V [3]float64 // km/s
	A [3]float64 // km/s^2
}

// Kind implements Partials.
func (CartesianPartials) Kind() Kind { return KindCartesian }

// Vector6PerSecond implements Partials.
func (p CartesianPartials) Vector6PerSecond() [6]float64 {
	return [6]float64{p.V[0], p.V[1], p.V[2], p.A[0], p.A[1], p.A[2]}
}

func addVec(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func subVec(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scaleVec(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(a [3]float64) float64 {
	return math.Sqrt(dot(a, a))
}
