package frame

import "math"

// Geodetic is a latitude/longitude/altitude triple above a reference
// ellipsoid. Latitude and longitude are in radians, altitude in kilometers.
type Geodetic struct {
	LatRad, LonRad, AltKm float64
}

// EllipsoidToECEF converts geodetic coordinates to an ECEF position, given
// the body's equatorial and polar radii (kilometers).
func EllipsoidToECEF(g Geodetic, equatorialRadiusKm, polarRadiusKm float64) [3]float64 {
	f := 1 - polarRadiusKm/equatorialRadiusKm
	eSq := 2*f - f*f
	sinLat, cosLat := math.Sincos(g.LatRad)
	sinLon, cosLon := math.Sincos(g.LonRad)
	n := equatorialRadiusKm / math.Sqrt(1-eSq*sinLat*sinLat)
	return [3]float64{
		(n + g.AltKm) * cosLat * cosLon,
		(n + g.AltKm) * cosLat * sinLon,
		(n*(1-eSq) + g.AltKm) * sinLat,
	}
}

// ECEFToEllipsoid converts an ECEF position to geodetic coordinates via
// Vallado's iterative algorithm (algorithm 12), bounded to 1000 iterations
// with a 1e-9 radian convergence tolerance on latitude, given the body's
// equatorial and polar radii (kilometers).
func ECEFToEllipsoid(r [3]float64, equatorialRadiusKm, polarRadiusKm float64) Geodetic {
	f := 1 - polarRadiusKm/equatorialRadiusKm
	eSq := 2*f - f*f
	x, y, z := r[0], r[1], r[2]
	lon := math.Atan2(y, x)
	rDelta := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, rDelta)
	const tol = 1e-9
	const maxIter = 1000
	for i := 0; i < maxIter; i++ {
		sinLat := math.Sin(lat)
		n := equatorialRadiusKm / math.Sqrt(1-eSq*sinLat*sinLat)
		newLat := math.Atan2(z+n*eSq*sinLat, rDelta)
		if math.Abs(newLat-lat) < tol {
			lat = newLat
			break
		}
		lat = newLat
	}
	sinLat := math.Sin(lat)
	n := equatorialRadiusKm / math.Sqrt(1-eSq*sinLat*sinLat)
	var alt float64
	if math.Abs(math.Cos(lat)) > 1e-12 {
		alt = rDelta/math.Cos(lat) - n
	} else {
		alt = math.Abs(z) - n*(1-eSq)
	}
	return Geodetic{LatRad: lat, LonRad: lon, AltKm: alt}
}

// GeocentricLatLon returns the geocentric (not geodetic) latitude and
// longitude of an ECEF position -- the angles the spherical-harmonic
// potential expansion is evaluated against.
func GeocentricLatLon(r [3]float64) (latRad, lonRad float64) {
	n := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	if n == 0 {
		return 0, 0
	}
	return math.Asin(r[2] / n), math.Atan2(r[1], r[0])
}
