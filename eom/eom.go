// Package eom assembles the right-hand side the integrator steps: it
// converts a vehicle's state to whichever element kind the equations of
// motion are configured for, sums every enabled force model's
// acceleration in the central body's inertial frame, and emits the
// per-kind derivative (Cowell for Cartesian, Gauss variation of parameters
// for Keplerian and Equinoctial).
package eom

import (
	"math"

	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/forces"
	"github.com/astrolib/smd/units"
)

// EquationsOfMotion couples an AstrodynamicsSystem, a set of enabled force
// models, and the element kind its derivative is expressed in.
type EquationsOfMotion struct {
	System       bodies.System
	Forces       []forces.Model
	Kind         elements.Kind
	CrashRadius  units.Length
	CrashVelocity units.Velocity
}

// Derivative evaluates d(elements)/dt at (t, state), returning the six
// component rates in the configured Kind's native representation. state is
// converted to the configured Kind first (a no-op if it already is), and
// every force model is evaluated against the Cartesian form regardless of
// Kind, per the force-model contract.
func (e EquationsOfMotion) Derivative(jd units.JulianDate, state elements.Elements) [6]float64 {
	cart := state.ToCartesian(e.System.Central.Mu)

	// For Cartesian (Cowell), every enabled force contributes directly to
	// v-dot. For Keplerian and Equinoctial (Gauss VoP), two-body motion is
	// already carried by the unperturbed terms (h/r^2, vis-viva); only the
	// *perturbing* acceleration is projected onto the orbit basis, so
	// TwoBody is excluded from that sum to avoid double-counting it.
	var accel [3]float64
	for _, model := range e.Forces {
		if e.Kind != elements.KindCartesian {
			if _, isTwoBody := model.(forces.TwoBody); isTwoBody {
				continue
			}
		}
		a := model.Acceleration(cart.R, cart.V, jd)
		accel[0] += a[0]
		accel[1] += a[1]
		accel[2] += a[2]
	}

	switch e.Kind {
	case elements.KindCartesian:
		return cowell(cart, accel)
	case elements.KindKeplerian:
		kep := state.ToKeplerian(e.System.Central.Mu)
		return gaussVariationOfParameters(kep, cart, accel, e.System.Central.Mu)
	case elements.KindEquinoctial:
		equi := state.ToEquinoctial(e.System.Central.Mu)
		return modifiedEquinoctialVOP(equi, cart, accel, e.System.Central.Mu)
	default:
		panic(elements.ErrUnknownKind)
	}
}

// cowell implements dx/dt = v, dv/dt = a, the Cartesian equations of
// motion (Cowell's method): total acceleration is simply summed.
func cowell(cart elements.Cartesian, accel [3]float64) [6]float64 {
	return [6]float64{cart.V[0], cart.V[1], cart.V[2], accel[0], accel[1], accel[2]}
}

// rswBasis returns the radial, along-track (transverse), and cross-track
// unit vectors of the local orbit frame, the basis the Gauss/VoP equations
// project perturbing acceleration onto.
func rswBasis(r, v [3]float64) (rHat, sHat, wHat [3]float64) {
	rn := norm(r)
	rHat = scale(r, 1/rn)
	h := cross(r, v)
	wHat = scale(h, 1/norm(h))
	sHat = cross(wHat, rHat)
	return
}

// gaussVariationOfParameters returns the Keplerian-element rates under a
// perturbing acceleration, using Gauss's planetary equations in the
// h = sqrt(mu*a*(1-e^2)) formulation rather than the textbook a-dot form
// (see the design notes on this core's Keplerian EoM): the first returned
// component is ḣ, not ȧ, even though it occupies the "semimajor axis"
// slot of the six-vector so it lines up with Keplerian.Vector6's layout.
func gaussVariationOfParameters(kep elements.Keplerian, cart elements.Cartesian, accel [3]float64, mu units.GravParam) [6]float64 {
	rHat, sHat, wHat := rswBasis(cart.R, cart.V)
	aR := dot(accel, rHat)
	aS := dot(accel, sHat)
	aW := dot(accel, wHat)

	a := kep.A.Km()
	e := kep.E.Value()
	i := kep.I.Rad()
	argPeri := kep.ArgPeri.Rad()
	nu := kep.TrueAnomaly.Rad()

	p := a * (1 - e*e)
	h := math.Sqrt(mu.Value() * p)
	r := p / (1 + e*math.Cos(nu))
	u := argPeri + nu // argument of latitude

	hDot := r * aS
	eDot := (p*math.Sin(nu)*aR + ((p+r)*math.Cos(nu)+r*e)*aS) / h
	iDot := r * math.Cos(u) * aW / h
	raanDot := r * math.Sin(u) * aW / (h * math.Sin(i))
	argPeriDot := (-p*math.Cos(nu)*aR+(p+r)*math.Sin(nu)*aS)/(h*e) - r*math.Sin(u)*math.Cos(i)*aW/(h*math.Sin(i))
	nuDot := h/(r*r) + (p*math.Cos(nu)*aR-(p+r)*math.Sin(nu)*aS)/(h*e)

	return [6]float64{hDot, eDot, iDot, raanDot, argPeriDot, nuDot}
}

// modifiedEquinoctialVOP returns the equinoctial-element rates under a
// perturbing acceleration, the Walker/Kechichian variation-of-parameters
// equations for the (p, f, g, h, k, L) set.
func modifiedEquinoctialVOP(equi elements.Equinoctial, cart elements.Cartesian, accel [3]float64, mu units.GravParam) [6]float64 {
	rHat, sHat, wHat := rswBasis(cart.R, cart.V)
	aR := dot(accel, rHat)
	aS := dot(accel, sHat)
	aW := dot(accel, wHat)

	p, f, g, h, k, l := equi.P.Km(), equi.F.Value(), equi.G.Value(), equi.H.Value(), equi.K.Value(), equi.L.Rad()
	sinL, cosL := math.Sincos(l)
	w := 1 + f*cosL + g*sinL
	s2 := 1 + h*h + k*k
	sqrtPOverMu := math.Sqrt(p / mu.Value())

	pDot := sqrtPOverMu * (2 * p / w) * aS
	fDot := sqrtPOverMu * (aR*sinL + ((w+1)*cosL+f)*aS/w - (h*sinL-k*cosL)*g*aW/w)
	gDot := sqrtPOverMu * (-aR*cosL + ((w+1)*sinL+g)*aS/w + (h*sinL-k*cosL)*f*aW/w)
	hDot := sqrtPOverMu * s2 * cosL * aW / (2 * w)
	kDot := sqrtPOverMu * s2 * sinL * aW / (2 * w)
	lDot := math.Sqrt(mu.Value()*p)*(w/p)*(w/p) + sqrtPOverMu*(h*sinL-k*cosL)*aW/w

	return [6]float64{pDot, fDot, gDot, hDot, kDot, lDot}
}

// CheckCrash implements the terminal crash condition: true iff |r| is at
// or below the central body's crash radius, |v| is below the configured
// crash velocity, or any component of the Cartesian state is non-finite.
func (e EquationsOfMotion) CheckCrash(state elements.Elements) bool {
	cart := state.ToCartesian(e.System.Central.Mu)
	for _, v := range cart.Vector6() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	if e.CrashRadius != 0 && cart.RNorm() <= e.CrashRadius.Km() {
		return true
	}
	if e.CrashVelocity != 0 && cart.VNorm() < e.CrashVelocity.KmS() {
		return true
	}
	return false
}

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(a [3]float64) float64 { return math.Sqrt(dot(a, a)) }

func scale(a [3]float64, s float64) [3]float64 { return [3]float64{a[0] * s, a[1] * s, a[2] * s} }
