package frame

import (
	"math"

	"github.com/astrolib/smd/units"
)

// EarthRotationRate is Earth's mean angular rotation rate, in rad/s
// (Vallado, WGS-84 value).
const EarthRotationRate = 7.292115146706979e-5

// GMSTRadians returns the Greenwich Mean Sidereal Time in radians at the
// given date, via the IAU-1982 polynomial expansion on Julian centuries
// since J2000 (Vallado eq. 3-45).
func GMSTRadians(jd units.JulianDate) float64 {
	t := jd.JulianCenturiesSinceJ2000()
	// Seconds of time.
	gstSec := 67310.54841 +
		(876600*3600+8640184.812866)*t +
		0.093104*t*t -
		6.2e-6*t*t*t
	// 86400 sidereal seconds in a day of 1.0027379093 solar days.
	gstRad := math.Mod(gstSec, 86400) / 240 * deg2rad
	if gstRad < 0 {
		gstRad += 2 * math.Pi
	}
	return math.Mod(gstRad, 2*math.Pi)
}

const deg2rad = math.Pi / 180

func init() {
	RegisterDCM[EarthICRF, EarthFixed](func(jd units.JulianDate) DCM[EarthICRF, EarthFixed] {
		theta := GMSTRadians(jd)
		return DCM[EarthICRF, EarthFixed]{m: raw3x3(RotZ(theta))}
	})
}

// ECI2ECEF rotates a raw position/velocity-style 3-vector from EarthICRF
// into EarthFixed at the given GMST angle (radians). It is the
// component-free helper the ground-station geometry uses directly when it
// already has theta rather than a date.
func ECI2ECEF(v [3]float64, thetaGMST float64) [3]float64 {
	return raw3x3(RotZ(thetaGMST)).mulVec(v)
}

// ECEF2ECI is the inverse of ECI2ECEF.
func ECEF2ECI(v [3]float64, thetaGMST float64) [3]float64 {
	return raw3x3(RotZ(thetaGMST)).transpose().mulVec(v)
}
