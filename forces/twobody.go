// Package forces implements the acceleration models (two-body, oblateness,
// atmospheric drag, solar radiation pressure, third-body) that the
// equations-of-motion layer sums to produce total perturbing acceleration,
// all expressed as plain [3]float64 vectors in the central body's inertial
// frame -- the same representation package elements uses for Cartesian
// state, since the central body (and therefore "the" inertial frame) is a
// runtime value, not a compile-time frame.Tag.
package forces

import (
	"math"

	"github.com/astrolib/smd/units"
)

// Model computes a perturbing (or primary) acceleration, in km/s^2, given
// the current position (km) and velocity (km/s) in the central body's
// inertial frame, and the epoch.
type Model interface {
	Acceleration(r, v [3]float64, jd units.JulianDate) [3]float64
	Name() string
}

// TwoBody is Newtonian point-mass gravity: a = -mu*r/|r|^3.
type TwoBody struct {
	Mu units.GravParam
}

// Name implements Model.
func (TwoBody) Name() string { return "two-body" }

// Acceleration implements Model.
func (t TwoBody) Acceleration(r, _ [3]float64, _ units.JulianDate) [3]float64 {
	rn := norm(r)
	f := -t.Mu.Value() / (rn * rn * rn)
	return [3]float64{f * r[0], f * r[1], f * r[2]}
}

func norm(a [3]float64) float64 { return math.Sqrt(dot(a, a)) }

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func scale(a [3]float64, s float64) [3]float64 { return [3]float64{a[0] * s, a[1] * s, a[2] * s} }

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func add(a, b [3]float64) [3]float64 { return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
