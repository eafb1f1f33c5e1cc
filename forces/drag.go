package forces

import (
	"math"
	"sort"

	"github.com/astrolib/smd/frame"
	"github.com/astrolib/smd/units"
)

// AtmosphereLayer is one piecewise-exponential band of an atmosphere
// density table: density(h) = RefDensity * exp(-(h-RefAltitude)/ScaleHeight)
// for RefAltitude <= h < the next layer's RefAltitude.
type AtmosphereLayer struct {
	RefAltitude units.Length // km, lower bound of this band
	RefDensity  float64      // kg/km^3
	ScaleHeight units.Length // km
}

// Atmosphere is a sorted table of exponential layers, the standard way
// drag models approximate a body's density profile piecewise (Vallado
// table 8-4 for Earth).
type Atmosphere struct {
	Layers []AtmosphereLayer
}

// Density returns the atmospheric density (kg/km^3) at the given altitude
// above the reference ellipsoid. Altitudes below the lowest layer use the
// lowest layer's law; altitudes above the highest use the highest.
func (a Atmosphere) Density(altitude units.Length) float64 {
	if len(a.Layers) == 0 {
		return 0
	}
	layers := a.Layers
	idx := sort.Search(len(layers), func(i int) bool { return layers[i].RefAltitude > altitude })
	if idx > 0 {
		idx--
	}
	l := layers[idx]
	return l.RefDensity * math.Exp(-(altitude.Km()-l.RefAltitude.Km())/l.ScaleHeight.Km())
}

// EarthAtmosphere is the standard exponential atmosphere used absent a
// higher-fidelity model, ported from Vallado's Earth density table.
var EarthAtmosphere = Atmosphere{Layers: []AtmosphereLayer{
	{RefAltitude: 0, RefDensity: 1.225e9, ScaleHeight: 7.249},
	{RefAltitude: 25, RefDensity: 3.899e7, ScaleHeight: 6.349},
	{RefAltitude: 100, RefDensity: 5.297e2, ScaleHeight: 5.877},
	{RefAltitude: 150, RefDensity: 2.076, ScaleHeight: 25.2},
	{RefAltitude: 200, RefDensity: 2.541e-1, ScaleHeight: 37.5},
	{RefAltitude: 300, RefDensity: 1.916e-2, ScaleHeight: 53.3},
	{RefAltitude: 500, RefDensity: 5.010e-4, ScaleHeight: 60.8},
	{RefAltitude: 750, RefDensity: 1.906e-5, ScaleHeight: 101.0},
	{RefAltitude: 1000, RefDensity: 3.561e-6, ScaleHeight: 268.0},
}}

// Drag is atmospheric drag and lift on a vehicle with ballistic/lift
// coefficients Cd, Cl and exposed area Area (km^2), evaluated against the
// rotating atmosphere (relative velocity accounts for co-rotation at
// RotationRate about the z-axis). Altitude is derived from the body's
// reference ellipsoid (EquatorialRadius/PolarRadius), not a spherical
// radius -- for Earth's ~21 km equatorial/polar difference, a spherical
// approximation is comparable to the atmosphere's own scale height at
// LEO and would corrupt the exponential density lookup above.
type Drag struct {
	EquatorialRadius units.Length
	PolarRadius      units.Length
	Atmosphere       Atmosphere
	RotationRate     units.AngularRate
	Cd, Cl           float64
	Area             units.Length2
	Mass             units.Mass
}

// Name implements Model.
func (Drag) Name() string { return "drag" }

// Acceleration implements Model.
func (d Drag) Acceleration(r, v [3]float64, _ units.JulianDate) [3]float64 {
	// ECEFToEllipsoid's geodetic latitude/altitude depend only on the
	// cylindrical radius sqrt(x^2+y^2) and z, both invariant under the
	// pure z-axis rotation separating the inertial and body-fixed frames,
	// so the inertial r can be passed directly without first rotating it.
	geo := frame.ECEFToEllipsoid(r, d.EquatorialRadius.Km(), d.PolarRadius.Km())
	rho := d.Atmosphere.Density(units.Length(geo.AltKm))
	if rho == 0 {
		return [3]float64{}
	}
	// Velocity relative to the co-rotating atmosphere.
	atmoV := cross([3]float64{0, 0, d.RotationRate.RadS()}, r)
	vRel := sub(v, atmoV)
	vRelNorm := norm(vRel)
	if vRelNorm == 0 {
		return [3]float64{}
	}

	dragCoeff := -0.5 * rho * d.Cd * d.Area.Km2() / d.Mass.Kg() * vRelNorm
	drag := scale(vRel, dragCoeff)

	if d.Cl == 0 {
		return drag
	}
	// Lift acts along (r x vRel) x vRel: perpendicular to the relative
	// velocity, within the plane spanned by r and vRel (toward the body
	// when vRel is horizontal).
	liftDir := cross(cross(r, vRel), vRel)
	liftDirNorm := norm(liftDir)
	if liftDirNorm == 0 {
		return drag
	}
	liftCoeff := 0.5 * rho * d.Cl * d.Area.Km2() / d.Mass.Kg() * vRelNorm * vRelNorm / liftDirNorm
	lift := scale(liftDir, liftCoeff)
	return add(drag, lift)
}
