package elements

import (
	"math"

	"github.com/astrolib/smd/units"
)

// Keplerian holds the six classical orbital elements. Angles are stored in
// radians and normalized to their canonical ranges on construction.
type Keplerian struct {
	A                  units.Length  // semimajor axis
	E                  units.Unitless // eccentricity
	I, RAAN, ArgPeri   units.Angle
	TrueAnomaly        units.Angle
}

// NewKeplerian builds a Keplerian element set, wrapping every angle into
// [0, 2*pi).
func NewKeplerian(a units.Length, e units.Unitless, i, raan, argPeri, nu units.Angle) Keplerian {
	return Keplerian{
		A:           a,
		E:           e,
		I:           i.Wrap(),
		RAAN:        raan.Wrap(),
		ArgPeri:     argPeri.Wrap(),
		TrueAnomaly: nu.Wrap(),
	}
}

// Kind implements Elements.
func (k Keplerian) Kind() Kind { return KindKeplerian }

// Add implements Elements.
func (k Keplerian) Add(other Elements) (Elements, error) {
	o, ok := other.(Keplerian)
	if !ok {
		return nil, kindMismatchError(k.Kind(), other.Kind())
	}
	return Keplerian{
		A: k.A + o.A, E: k.E + o.E,
		I: k.I + o.I, RAAN: k.RAAN + o.RAAN,
		ArgPeri: k.ArgPeri + o.ArgPeri, TrueAnomaly: k.TrueAnomaly + o.TrueAnomaly,
	}, nil
}

// Sub implements Elements.
func (k Keplerian) Sub(other Elements) (Elements, error) {
	o, ok := other.(Keplerian)
	if !ok {
		return nil, kindMismatchError(k.Kind(), other.Kind())
	}
	return Keplerian{
		A: k.A - o.A, E: k.E - o.E,
		I: k.I - o.I, RAAN: k.RAAN - o.RAAN,
		ArgPeri: k.ArgPeri - o.ArgPeri, TrueAnomaly: k.TrueAnomaly - o.TrueAnomaly,
	}, nil
}

// Scale implements Elements.
func (k Keplerian) Scale(s float64) Elements {
	return Keplerian{
		A: k.A * units.Length(s), E: k.E * units.Unitless(s),
		I: k.I * units.Angle(s), RAAN: k.RAAN * units.Angle(s),
		ArgPeri: k.ArgPeri * units.Angle(s), TrueAnomaly: k.TrueAnomaly * units.Angle(s),
	}
}

// DivTime implements Elements.
//
// Per the design notes, the variation-of-parameters formulation this core
// uses carries angular momentum h = sqrt(mu*a*(1-e^2)) as its first
// element, not a directly -- so the "semimajor-axis rate" produced by the
// Keplerian equations of motion is really h-dot. DivTime here is the plain
// elementwise quotient (used for e.g. finite-difference checks), which IS
// in terms of a; the equations-of-motion layer (eom's
// gaussVariationOfParameters) is what returns the h-based rates.
func (k Keplerian) DivTime(dt units.Duration) Partials {
	s := 1 / dt.Seconds()
	return KeplerianPartials{
		ADot: units.Velocity(k.A.Km() * s), EDot: units.Unitless(k.E.Value() * s),
		IDot: units.AngularRate(k.I.Rad() * s), RAANDot: units.AngularRate(k.RAAN.Rad() * s),
		ArgPeriDot: units.AngularRate(k.ArgPeri.Rad() * s), TrueAnomalyDot: units.AngularRate(k.TrueAnomaly.Rad() * s),
	}
}

// Vector6 implements Elements.
func (k Keplerian) Vector6() [6]float64 {
	return [6]float64{k.A.Km(), k.E.Value(), k.I.Rad(), k.RAAN.Rad(), k.ArgPeri.Rad(), k.TrueAnomaly.Rad()}
}

// ToKeplerian implements Elements (identity).
func (k Keplerian) ToKeplerian(mu units.GravParam) Keplerian { return k }

// ToCartesian converts via perifocal coordinates and the 3-1-3 Euler
// rotation (-ArgPeri, -I, -RAAN), matching Vallado's COE2RV algorithm as
// ported in the source.
func (k Keplerian) ToCartesian(mu units.GravParam) Cartesian {
	a, e := k.A.Km(), k.E.Value()
	p := a * (1 - e*e)
	muOp := math.Sqrt(mu.Value() / p)
	sinNu, cosNu := math.Sincos(k.TrueAnomaly.Rad())
	rPQW := [3]float64{p * cosNu / (1 + e*cosNu), p * sinNu / (1 + e*cosNu), 0}
	vPQW := [3]float64{-muOp * sinNu, muOp * (e + cosNu), 0}
	m := rot313(-k.ArgPeri.Rad(), -k.I.Rad(), -k.RAAN.Rad())
	return Cartesian{R: mulMat(m, rPQW), V: mulMat(m, vPQW)}
}

// ToEquinoctial converts via the closed-form relations
// p = a(1-e^2), f = e*cos(omega+Omega), g = e*sin(omega+Omega),
// h = tan(i/2)*cos(Omega), k = tan(i/2)*sin(Omega), L = omega+Omega+nu.
func (kep Keplerian) ToEquinoctial(mu units.GravParam) Equinoctial {
	a, e := kep.A.Km(), kep.E.Value()
	raan, argp, nu := kep.RAAN.Rad(), kep.ArgPeri.Rad(), kep.TrueAnomaly.Rad()
	p := a * (1 - e*e)
	sinWO, cosWO := math.Sincos(argp + raan)
	tanHalfI := math.Tan(kep.I.Rad() / 2)
	sinO, cosO := math.Sincos(raan)
	return Equinoctial{
		P: units.Length(p),
		F: units.Unitless(e * cosWO),
		G: units.Unitless(e * sinWO),
		H: units.Unitless(tanHalfI * cosO),
		K: units.Unitless(tanHalfI * sinO),
		L: units.Angle(argp + raan + nu),
	}
}

// KeplerianFromCartesian converts a Cartesian state to Keplerian elements.
// Ported from Vallado's RV2COE (4th ed., p. 113), including the source's
// singularity policy (see singularity.go): near-zero eccentricity and
// near-singular inclination collapse to an exact canonical value, and the
// arguments that depend on them fall back to argument of latitude / true
// longitude as appropriate.
func KeplerianFromCartesian(c Cartesian, mu units.GravParam) Keplerian {
	r, v := c.R, c.V
	h := cross(r, v)
	n := cross([3]float64{0, 0, 1}, h)
	rNorm, vNorm := norm(r), norm(v)
	xi := vNorm*vNorm/2 - mu.Value()/rNorm
	a := -mu.Value() / (2 * xi)

	var eVec [3]float64
	for i := 0; i < 3; i++ {
		eVec[i] = ((vNorm*vNorm-mu.Value()/rNorm)*r[i] - dot(r, v)*v[i]) / mu.Value()
	}
	e := norm(eVec)
	if e < eccentricitySingularity {
		e = 0
	}

	i := math.Acos(clamp(h[2] / norm(h)))
	i = snapInclination(i)

	var raan float64
	nNorm := norm(n)
	if nNorm < 1e-12 {
		raan = 0
	} else {
		raan = math.Acos(clamp(n[0] / nNorm))
		if n[1] < 0 {
			raan = 2*math.Pi - raan
		}
	}

	var argPeri float64
	if e < eccentricitySingularity {
		argPeri = 0
	} else if nNorm < 1e-12 {
		argPeri = 0
	} else {
		argPeri = math.Acos(clamp(dot(n, eVec) / (nNorm * e)))
		if eVec[2] < 0 {
			argPeri = 2*math.Pi - argPeri
		}
	}

	var nu float64
	switch {
	case e < eccentricitySingularity && i == 0:
		// Circular equatorial: true anomaly measured from +X, sign from vx.
		nu = math.Acos(clamp(r[0] / rNorm))
		if v[0] > 0 {
			nu = 2*math.Pi - nu
		}
	case e < eccentricitySingularity:
		// Circular inclined: use argument of latitude in place of true anomaly.
		nu = math.Acos(clamp(dot(n, r) / (nNorm * rNorm)))
		if r[2] < 0 {
			nu = 2*math.Pi - nu
		}
	default:
		nu = math.Acos(clamp(dot(eVec, r) / (e * rNorm)))
		if dot(r, v) < 0 {
			nu = 2*math.Pi - nu
		}
	}

	// Angles within angleWrapSingularity of 2*pi collapse to exactly 0.
	for _, ang := range []*float64{&raan, &argPeri, &nu} {
		if 2*math.Pi-*ang < angleWrapSingularity {
			*ang = 0
		}
	}

	return NewKeplerian(units.Length(a), units.Unitless(e),
		units.Angle(i), units.Angle(raan), units.Angle(argPeri), units.Angle(nu))
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func rot313(t1, t2, t3 float64) [3][3]float64 {
	s1, c1 := math.Sincos(t1)
	s2, c2 := math.Sincos(t2)
	s3, c3 := math.Sincos(t3)
	return [3][3]float64{
		{c3*c1 - s3*c2*s1, c3*s1 + s3*c2*c1, s3 * s2},
		{-s3*c1 - c3*c2*s1, -s3*s1 + c3*c2*c1, c3 * s2},
		{s2 * s1, -s2 * c1, c2},
	}
}

func mulMat(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// KeplerianPartials is the time-derivative of a Keplerian element set.
// ADot is in km/s even though the element it mirrors (A) is a length,
// matching DivTime's plain elementwise quotient; the Gauss variation-of-
// parameters derivative used by the equations-of-motion layer is returned
// as a plain [6]float64 whose first component is h-dot, not a-dot (see the
// doc comment on Keplerian.DivTime).
type KeplerianPartials struct {
	ADot                                     units.Velocity
	EDot                                     units.Unitless
	IDot, RAANDot, ArgPeriDot, TrueAnomalyDot units.AngularRate
}

// Kind implements Partials.
func (KeplerianPartials) Kind() Kind { return KindKeplerian }

// Vector6PerSecond implements Partials.
func (p KeplerianPartials) Vector6PerSecond() [6]float64 {
	return [6]float64{p.ADot.KmS(), p.EDot.Value(), p.IDot.RadS(), p.RAANDot.RadS(), p.ArgPeriDot.RadS(), p.TrueAnomalyDot.RadS()}
}
