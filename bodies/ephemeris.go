package bodies

import (
	"fmt"
	"math"
	"sync"

	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/units"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

// Ephemeris supplies the heliocentric Cartesian state of a Body at a given
// epoch. There are two implementations: one backed by the VSOP87 series via
// soniakeys/meeus (HeliocentricEphemeris), and one using a single
// linear-mean-element analytical approximation valid for Earth only
// (AnalyticalEarthEphemeris), used when the VSOP87 data files are not
// available. Both are safe for concurrent use.
type Ephemeris interface {
	HelioState(body Body, jd units.JulianDate) (elements.Cartesian, error)
}

// HeliocentricEphemeris evaluates VSOP87 planetary theory through
// soniakeys/meeus, loading each planet's series file from Dir on first use.
type HeliocentricEphemeris struct {
	Dir string

	mu      sync.Mutex
	planets map[string]*planetposition.V87Planet
}

func vsopIndex(name string) (int, error) {
	switch name {
	case "Venus":
		return 2, nil
	case "Earth":
		return 3, nil
	case "Mars":
		return 4, nil
	case "Jupiter":
		return 5, nil
	case "Saturn":
		return 6, nil
	case "Uranus":
		return 7, nil
	default:
		return 0, fmt.Errorf("bodies: %s has no VSOP87 series", name)
	}
}

// HelioState implements Ephemeris.
func (h *HeliocentricEphemeris) HelioState(body Body, jd units.JulianDate) (elements.Cartesian, error) {
	if body.Name == "Sun" {
		return elements.NewCartesian([3]float64{0, 0, 0}, [3]float64{0, 0, 0}), nil
	}
	if body.Name == "Pluto" {
		l, b, r := pluto.Heliocentric(float64(jd))
		return sphericalToHelioState(l.Rad(), b.Rad(), r*AU, body), nil
	}
	idx, err := vsopIndex(body.Name)
	if err != nil {
		return elements.Cartesian{}, err
	}
	h.mu.Lock()
	if h.planets == nil {
		h.planets = make(map[string]*planetposition.V87Planet)
	}
	planet, found := h.planets[body.Name]
	if !found {
		planet, err = planetposition.LoadPlanetPath(idx-1, h.Dir)
		if err != nil {
			h.mu.Unlock()
			return elements.Cartesian{}, fmt.Errorf("bodies: loading VSOP87 series for %s: %w", body.Name, err)
		}
		h.planets[body.Name] = planet
	}
	h.mu.Unlock()

	l, b, r := planet.Position2000(float64(jd))
	return sphericalToHelioState(l.Rad(), b.Rad(), r*AU, body), nil
}

// sphericalToHelioState converts VSOP87 heliocentric ecliptic longitude l,
// latitude b, and radius r (km) into a Cartesian state. Velocity direction
// is derived from the instantaneous vis-viva speed and the orbit-normal
// cross product, matching the source's approximation (it does not
// differentiate the series).
func sphericalToHelioState(l, b, r float64, body Body) elements.Cartesian {
	v := math.Sqrt(2*Sun.Mu.Value()/r - Sun.Mu.Value()/body.SemimajorAxis.Km())
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	R := [3]float64{r * cB * cL, r * cB * sL, r * sB}
	vDir := cross(R, [3]float64{0, 0, -1})
	n := norm(vDir)
	V := [3]float64{v * vDir[0] / n, v * vDir[1] / n, v * vDir[2] / n}
	return elements.NewCartesian(R, V)
}

// AnalyticalEarthEphemeris approximates Earth's heliocentric state from a
// single linear-in-time mean-element model (Standish 1992-era constants),
// for use when no VSOP87 data directory is configured. It does not support
// any body other than Earth.
type AnalyticalEarthEphemeris struct{}

// HelioState implements Ephemeris.
func (AnalyticalEarthEphemeris) HelioState(body Body, jd units.JulianDate) (elements.Cartesian, error) {
	if body.Name != "Earth" {
		return elements.Cartesian{}, fmt.Errorf("bodies: analytical ephemeris only supports Earth, got %s", body.Name)
	}
	t := jd.JulianCenturiesSinceJ2000()
	tVec := [4]float64{1, t, t * t, t * t * t}
	dot4 := func(c [4]float64) float64 { return c[0]*tVec[0] + c[1]*tVec[1] + c[2]*tVec[2] + c[3]*tVec[3] }

	L := dot4([4]float64{100.466449, 35999.3728519, -0.00000568, 0.0}) * units.AngleFromDeg(1).Rad()
	a := dot4([4]float64{1.000001018, 0, 0, 0}) * AU
	e := dot4([4]float64{0.01670862, -0.000042037, -0.0000001236, 0.00000000004})
	incl := dot4([4]float64{0, 0.0130546, -0.00000931, -0.000000034}) * units.AngleFromDeg(1).Rad()
	W := dot4([4]float64{174.873174, -0.2410908, 0.00004067, -0.000001327}) * units.AngleFromDeg(1).Rad()
	P := dot4([4]float64{102.937348, 0.3225557, 0.00015026, 0.000000478}) * units.AngleFromDeg(1).Rad()

	argPeri := P - W
	meanAnomaly := L - P
	center := (2*e-math.Pow(e, 3)/4+5./96*math.Pow(e, 5))*math.Sin(meanAnomaly) +
		(5./4*math.Pow(e, 2)-11./24*math.Pow(e, 4))*math.Sin(2*meanAnomaly) +
		(13./12*math.Pow(e, 3)-43./64*math.Pow(e, 5))*math.Sin(3*meanAnomaly) +
		103./96*math.Pow(e, 4)*math.Sin(4*meanAnomaly) +
		1097./960*math.Pow(e, 5)*math.Sin(5*meanAnomaly)
	nu := meanAnomaly + center

	kep := elements.NewKeplerian(units.Length(a), units.Unitless(e),
		units.Angle(incl), units.Angle(W), units.Angle(argPeri), units.Angle(nu))
	return kep.ToCartesian(Sun.Mu), nil
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}
