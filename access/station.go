package access

import (
	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/frame"
	"github.com/astrolib/smd/units"
)

// GroundStation is an Earth-fixed platform, located by geodetic
// coordinates and converted to an inertial position on demand via the
// frame package's ECEF/ECI rotation.
type GroundStation struct {
	Name string
	Geo  frame.Geodetic
	Body bodies.Body
}

// NewGroundStation builds a station from a geodetic fix against body.
func NewGroundStation(name string, latDeg, lonDeg, altKm float64, body bodies.Body) GroundStation {
	return GroundStation{
		Name: name,
		Geo:  frame.Geodetic{LatRad: units.AngleFromDeg(latDeg).Rad(), LonRad: units.AngleFromDeg(lonDeg).Rad(), AltKm: altKm},
		Body: body,
	}
}

// PositionAt implements Platform: the station's ECEF fix rotated into the
// Earth-centered inertial frame at jd via Greenwich Mean Sidereal Time.
func (g GroundStation) PositionAt(jd units.JulianDate) [3]float64 {
	ecef := frame.EllipsoidToECEF(g.Geo, g.Body.EquatorialRadius.Km(), g.Body.PolarRadius.Km())
	theta := frame.GMSTRadians(jd)
	return frame.ECEF2ECI(ecef, theta)
}

// NadirSensor returns a ConeSensor boresighted on the station's local
// zenith direction (straight away from the body's center, the spherical
// approximation of the ENU "up" vector), with half-angle set from a
// minimum elevation above the local horizon. The boresight tracks the
// Earth's rotation since it is recomputed from the station's inertial
// position at each jd.
func NadirSensor(g GroundStation, minElevationDeg float64) ConeSensor {
	return ConeSensor{
		BoresightAt: g.zenithECI,
		HalfAngle:   units.AngleFromDeg(90 - minElevationDeg),
	}
}

func (g GroundStation) zenithECI(jd units.JulianDate) [3]float64 {
	p := g.PositionAt(jd)
	n := norm(p)
	if n == 0 {
		return p
	}
	return scale(p, 1/n)
}
