// Package bodies defines the celestial bodies a system can be built around,
// their gravitational and shape constants, and their heliocentric ephemeris.
package bodies

import (
	"fmt"
	"strings"

	"github.com/astrolib/smd/units"
)

// Body is a celestial object: a central attractor with gravity harmonics,
// shape, and orientation constants. Bodies are shared, read-only values --
// none of their methods mutate state -- so a single Body may be referenced
// concurrently from many goroutines without synchronization.
type Body struct {
	Name           string
	EquatorialRadius units.Length
	PolarRadius      units.Length
	Mu             units.GravParam
	J2, J3, J4     float64
	AxialTilt      units.Angle
	OrbitalIncl    units.Angle // inclination of this body's heliocentric orbit to the ecliptic
	SemimajorAxis  units.Length
	SOI            units.Length // sphere of influence w.r.t. the Sun
	RotationRate   units.AngularRate
}

// J returns the zonal harmonic coefficient J_n, or 0 for unsupported n.
// Only J2, J3, J4 are modeled; anything beyond that belongs in the
// general N x M harmonics table (see package forces).
func (b Body) J(n uint8) float64 {
	switch n {
	case 2:
		return b.J2
	case 3:
		return b.J3
	case 4:
		return b.J4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (b Body) String() string { return b.Name }

// FromName returns the well-known Body matching name (case-insensitive).
func FromName(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return Body{}, fmt.Errorf("bodies: undefined body %q", name)
	}
}

// AU is one astronomical unit, in kilometers.
const AU = 1.49597870700e8

var (
	// Sun is the system barycenter's dominant mass.
	Sun = Body{Name: "Sun", EquatorialRadius: 695700, PolarRadius: 695700, Mu: 1.32712440017987e11}

	// Venus.
	Venus = Body{
		Name: "Venus", EquatorialRadius: 6051.8, PolarRadius: 6051.8, Mu: 3.24858599e5,
		AxialTilt: units.AngleFromDeg(117.36), OrbitalIncl: units.AngleFromDeg(3.39458),
		SemimajorAxis: 108208601, SOI: 0.616e6, J2: 0.000027,
		RotationRate: -2.99239e-7,
	}

	// Earth is home.
	Earth = Body{
		Name: "Earth", EquatorialRadius: 6378.1363, PolarRadius: 6356.7516, Mu: 3.98600433e5,
		AxialTilt: units.AngleFromDeg(23.4), OrbitalIncl: units.AngleFromDeg(0.00005),
		SemimajorAxis: 149598023, SOI: 924645.0,
		J2: 1082.6269e-6, J3: -2.5324e-6, J4: -1.6204e-6,
		RotationRate: 7.292115146706979e-5,
	}

	// Mars.
	Mars = Body{
		Name: "Mars", EquatorialRadius: 3396.19, PolarRadius: 3376.20, Mu: 4.28283100e4,
		AxialTilt: units.AngleFromDeg(25.19), OrbitalIncl: units.AngleFromDeg(1.85),
		SemimajorAxis: 227939282.5616, SOI: 576000,
		J2: 1964e-6, J3: 36e-6, J4: -18e-6,
		RotationRate: 7.088218e-5,
	}

	// Jupiter.
	Jupiter = Body{
		Name: "Jupiter", EquatorialRadius: 71492.0, PolarRadius: 66854.0, Mu: 1.266865361e8,
		AxialTilt: units.AngleFromDeg(3.13), OrbitalIncl: units.AngleFromDeg(1.30326966),
		SemimajorAxis: 778298361, SOI: 48.2e6,
		J2: 0.01475, J4: -0.00058,
	}

	// Saturn. SOI unused (TODO: not yet computed).
	Saturn = Body{
		Name: "Saturn", EquatorialRadius: 60268.0, PolarRadius: 54364.0, Mu: 3.7931208e7,
		AxialTilt: units.AngleFromDeg(0.93), OrbitalIncl: units.AngleFromDeg(2.485),
		SemimajorAxis: 1429394133, J2: 0.01645, J4: -0.001,
	}

	// Uranus. SOI unused (TODO: not yet computed).
	Uranus = Body{
		Name: "Uranus", EquatorialRadius: 25559.0, PolarRadius: 24973.0, Mu: 5.7939513e6,
		AxialTilt: units.AngleFromDeg(1.02), OrbitalIncl: units.AngleFromDeg(0.773),
		SemimajorAxis: 2875038615, J2: 0.012,
	}

	// Pluto is not a planet and had that down ranking coming. SOI undefined.
	Pluto = Body{
		Name: "Pluto", EquatorialRadius: 1151.0, PolarRadius: 1151.0, Mu: 9.0e2,
		AxialTilt: units.AngleFromDeg(118.0), OrbitalIncl: units.AngleFromDeg(17.14216667),
		SemimajorAxis: 5915799000, SOI: 1,
	}
)
