package forces

import (
	"math"

	"github.com/astrolib/smd/units"
)

// ShadowState is the three-state conical shadow classification used by SRP:
// a vehicle in Umbra sees no solar flux, Penumbra sees half the sunlit
// flux, and Sunlit sees full flux.
type ShadowState uint8

const (
	Sunlit ShadowState = iota
	Penumbra
	Umbra
)

// String implements fmt.Stringer.
func (s ShadowState) String() string {
	switch s {
	case Sunlit:
		return "sunlit"
	case Penumbra:
		return "penumbra"
	case Umbra:
		return "umbra"
	default:
		return "unknown"
	}
}

// SRP is solar radiation pressure on a flat plate (or sphere, with
// Reflectivity folding in any shape factor), with a conical shadow model
// against the occluding body at the origin of the working frame.
type SRP struct {
	SolarPressureAtOneAU units.Acceleration // pressure*Area/Mass normalizes out; this is P at 1 AU in km/s^2 per km^2/kg
	Reflectivity         float64            // Cr, typically 1.0-2.0
	Area                 units.Length2
	Mass                 units.Mass
	OccultingRadius      units.Length
	SunRadius            units.Length
}

// DefaultSolarPressureAtOneAU is the solar radiation pressure at 1 AU,
// expressed as force per unit area over c (4.57e-6 N/m^2), in the library's
// km/kg/s unit system.
const DefaultSolarPressureAtOneAU = 4.57e-3 // kg*km/s^2 per km^2: 4.57e-6 N/m^2 * 1e6 m^2/km^2 = 4.57 N/km^2, and 1 N = 1e-3 kg*km/s^2

// AU is one astronomical unit, in kilometers.
const AU = 1.49597870700e8

// Name implements Model.
func (SRP) Name() string { return "srp" }

// Acceleration computes the SRP acceleration. It does not satisfy Model
// directly -- SRP needs the Sun's position and the precomputed shadow
// state, not just r, v and the epoch -- so it is called directly rather
// than through the Model interface; the equations-of-motion layer, which
// only sums Model values, does not call it.
//
// sunPos is the position of the Sun relative to the same origin as r (the
// occulting body center), in km; Acceleration does not fetch it itself so
// that SRP stays agnostic of which Ephemeris produced it.
func (s SRP) Acceleration(r, sunPos [3]float64, shadow ShadowState) [3]float64 {
	if shadow == Umbra {
		return [3]float64{}
	}
	sunToSC := sub(r, sunPos)
	d := norm(sunToSC)
	flux := s.SolarPressureAtOneAU.KmS2() * (AU * AU) / (d * d)
	if shadow == Penumbra {
		flux *= 0.5
	}
	mag := flux * s.Reflectivity * s.Area.Km2() / s.Mass.Kg()
	return scale(sunToSC, mag/d)
}

// Shadow classifies the vehicle's position r (relative to the occulting
// body) given the Sun's position sunPos (relative to the same body),
// using the standard conical (not cylindrical) shadow geometry: the
// vehicle is in umbra/penumbra only if it is on the far side of the
// occulting body from the Sun and within the respective cone's angular
// half-width.
func Shadow(r, sunPos [3]float64, occultingRadius, sunRadius units.Length) ShadowState {
	sunToBody := scale(sunPos, -1)
	bodyToSCAlongSunLine := dot(r, sunToBody) / norm(sunToBody)
	if bodyToSCAlongSunLine <= 0 {
		// Vehicle is on the sun-facing side; cannot be shadowed.
		return Sunlit
	}
	d := norm(sunPos)
	perpDist := perpendicularDistance(r, sunPos)

	// Umbra half-angle and penumbra half-angle, from similar triangles
	// between the Sun's disk, the occulting body's disk, and their
	// common internal/external tangent lines.
	umbraHalfAngle := math.Asin((sunRadius.Km() - occultingRadius.Km()) / d)
	penumbraHalfAngle := math.Asin((sunRadius.Km() + occultingRadius.Km()) / d)

	umbraRadiusAtSC := occultingRadius.Km() - bodyToSCAlongSunLine*math.Tan(umbraHalfAngle)
	penumbraRadiusAtSC := occultingRadius.Km() + bodyToSCAlongSunLine*math.Tan(penumbraHalfAngle)

	switch {
	case perpDist < umbraRadiusAtSC:
		return Umbra
	case perpDist < penumbraRadiusAtSC:
		return Penumbra
	default:
		return Sunlit
	}
}

func perpendicularDistance(r, axis [3]float64) float64 {
	axisUnit := scale(axis, 1/norm(axis))
	along := dot(r, axisUnit)
	proj := scale(axisUnit, along)
	perp := sub(r, proj)
	return norm(perp)
}
