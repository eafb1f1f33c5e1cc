package elements

import (
	"math"

	"github.com/astrolib/smd/units"
)

// Equinoctial holds the modified equinoctial elements (p, f, g, h, k, L).
// Unlike Keplerian, every component is continuous through e=0 and i=0, which
// makes this representation the better-conditioned choice for near-circular,
// near-equatorial orbits where Keplerian's angles are ill-conditioned.
//
// This implements only the prograde (I = +1) convention; retrograde orbits
// (i very near pi) are handled by PreserveInclinationPiBug in the Keplerian
// conversion path rather than by a second equinoctial branch, matching the
// source.
type Equinoctial struct {
	P units.Length // semi-latus rectum
	F units.Unitless
	G units.Unitless
	H units.Unitless
	K units.Unitless
	L units.Angle // true longitude
}

// NewEquinoctial builds an Equinoctial element set.
func NewEquinoctial(p units.Length, f, g, h, k units.Unitless, l units.Angle) Equinoctial {
	return Equinoctial{P: p, F: f, G: g, H: h, K: k, L: l.Wrap()}
}

// Kind implements Elements.
func (e Equinoctial) Kind() Kind { return KindEquinoctial }

// Add implements Elements.
func (e Equinoctial) Add(other Elements) (Elements, error) {
	o, ok := other.(Equinoctial)
	if !ok {
		return nil, kindMismatchError(e.Kind(), other.Kind())
	}
	return Equinoctial{
		P: e.P + o.P, F: e.F + o.F, G: e.G + o.G,
		H: e.H + o.H, K: e.K + o.K, L: e.L + o.L,
	}, nil
}

// Sub implements Elements.
func (e Equinoctial) Sub(other Elements) (Elements, error) {
	o, ok := other.(Equinoctial)
	if !ok {
		return nil, kindMismatchError(e.Kind(), other.Kind())
	}
	return Equinoctial{
		P: e.P - o.P, F: e.F - o.F, G: e.G - o.G,
		H: e.H - o.H, K: e.K - o.K, L: e.L - o.L,
	}, nil
}

// Scale implements Elements.
func (e Equinoctial) Scale(s float64) Elements {
	return Equinoctial{
		P: e.P * units.Length(s), F: e.F * units.Unitless(s), G: e.G * units.Unitless(s),
		H: e.H * units.Unitless(s), K: e.K * units.Unitless(s), L: e.L * units.Angle(s),
	}
}

// DivTime implements Elements.
func (e Equinoctial) DivTime(dt units.Duration) Partials {
	s := 1 / dt.Seconds()
	return EquinoctialPartials{
		PDot: units.Velocity(e.P.Km() * s),
		FDot: units.Unitless(e.F.Value() * s), GDot: units.Unitless(e.G.Value() * s),
		HDot: units.Unitless(e.H.Value() * s), KDot: units.Unitless(e.K.Value() * s),
		LDot: units.AngularRate(e.L.Rad() * s),
	}
}

// Vector6 implements Elements.
func (e Equinoctial) Vector6() [6]float64 {
	return [6]float64{e.P.Km(), e.F.Value(), e.G.Value(), e.H.Value(), e.K.Value(), e.L.Rad()}
}

// ToEquinoctial implements Elements (identity).
func (e Equinoctial) ToEquinoctial(mu units.GravParam) Equinoctial { return e }

// ToKeplerian converts back to classical elements via the closed-form
// inverse of Keplerian.ToEquinoctial.
func (e Equinoctial) ToKeplerian(mu units.GravParam) Keplerian {
	p, f, g, h, k, l := e.P.Km(), e.F.Value(), e.G.Value(), e.H.Value(), e.K.Value(), e.L.Rad()
	ecc := math.Hypot(f, g)
	a := p / (1 - ecc*ecc)
	i := 2 * math.Atan(math.Hypot(h, k))
	raan := math.Atan2(k, h)
	argPeriPlusRaan := math.Atan2(g, f)
	argPeri := argPeriPlusRaan - raan
	nu := l - argPeriPlusRaan
	return NewKeplerian(units.Length(a), units.Unitless(ecc),
		units.Angle(i), units.Angle(raan), units.Angle(argPeri), units.Angle(nu))
}

// ToCartesian converts directly to position/velocity using the standard
// (Walker, Ireland & Owens 1985; I=+1 prograde) modified-equinoctial
// closed-form relations, avoiding a round trip through the singular
// Keplerian angles.
func (e Equinoctial) ToCartesian(mu units.GravParam) Cartesian {
	p, f, g, h, k, l := e.P.Km(), e.F.Value(), e.G.Value(), e.H.Value(), e.K.Value(), e.L.Rad()
	sinL, cosL := math.Sincos(l)
	alpha2 := h*h - k*k
	s2 := 1 + h*h + k*k
	w := 1 + f*cosL + g*sinL
	r := p / w
	sqrtMuOverP := math.Sqrt(mu.Value() / p)

	rX := r / s2 * (cosL + alpha2*cosL + 2*h*k*sinL)
	rY := r / s2 * (sinL - alpha2*sinL + 2*h*k*cosL)
	rZ := 2 * r / s2 * (h*sinL - k*cosL)

	vX := -1 / s2 * sqrtMuOverP * (sinL + alpha2*sinL - 2*h*k*cosL + g - 2*f*h*k + alpha2*g)
	vY := -1 / s2 * sqrtMuOverP * (-cosL + alpha2*cosL + 2*h*k*sinL - f + 2*g*h*k + alpha2*f)
	vZ := 2 / s2 * sqrtMuOverP * (h*cosL + k*sinL + f*h + g*k)

	return Cartesian{R: [3]float64{rX, rY, rZ}, V: [3]float64{vX, vY, vZ}}
}

// EquinoctialPartials is the time-derivative of an Equinoctial element set.
type EquinoctialPartials struct {
	PDot             units.Velocity
	FDot, GDot       units.Unitless
	HDot, KDot       units.Unitless
	LDot             units.AngularRate
}

// Kind implements Partials.
func (EquinoctialPartials) Kind() Kind { return KindEquinoctial }

// Vector6PerSecond implements Partials.
func (p EquinoctialPartials) Vector6PerSecond() [6]float64 {
	return [6]float64{p.PDot.KmS(), p.FDot.Value(), p.GDot.Value(), p.HDot.Value(), p.KDot.Value(), p.LDot.RadS()}
}
