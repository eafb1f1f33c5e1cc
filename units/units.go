// Package units provides compile-time-checked dimensioned quantities for the
// lengths, durations, angles, masses and rates used throughout the
// astrodynamics core. Every exported type wraps a single float64 so that the
// Go compiler -- not a runtime check -- rejects mixing a Length where a
// Velocity is expected.
//
// All quantities are stored internally in SI-adjacent base units: kilometers
// for length, seconds for duration, radians for angle, kilograms for mass.
// Degree and other unit conversions happen only at the package boundary.
package units

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Length is a dimensioned distance, stored in kilometers.
type Length float64

// Km returns the length in kilometers.
func (l Length) Km() float64 { return float64(l) }

// Meters returns the length in meters.
func (l Length) Meters() float64 { return float64(l) * 1000 }

// LengthFromMeters builds a Length from a value in meters.
func LengthFromMeters(m float64) Length { return Length(m / 1000) }

// Length2 is a dimensioned area, stored in square kilometers.
type Length2 float64

// Km2 returns the area in square kilometers.
func (a Length2) Km2() float64 { return float64(a) }

// Meters2 returns the area in square meters.
func (a Length2) Meters2() float64 { return float64(a) * 1e6 }

// Length2FromMeters2 builds a Length2 from a value in square meters.
func Length2FromMeters2(m2 float64) Length2 { return Length2(m2 / 1e6) }

// Duration is a dimensioned span of time, stored in seconds.
type Duration float64

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 { return float64(d) }

// Days returns the duration in days.
func (d Duration) Days() float64 { return float64(d) / 86400 }

// DurationFromDays builds a Duration from a value in days.
func DurationFromDays(days float64) Duration { return Duration(days * 86400) }

// Angle is a dimensioned angle, stored in radians.
type Angle float64

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return float64(a) }

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 { return float64(a) * rad2deg }

// AngleFromDeg builds an Angle from a value in degrees.
func AngleFromDeg(deg float64) Angle { return Angle(deg * deg2rad) }

// Wrap returns the angle normalized into [0, 2*pi).
func (a Angle) Wrap() Angle {
	v := math.Mod(float64(a), 2*math.Pi)
	if v < 0 {
		v += 2 * math.Pi
	}
	return Angle(v)
}

// Mass is a dimensioned mass, stored in kilograms.
type Mass float64

// Kg returns the mass in kilograms.
func (m Mass) Kg() float64 { return float64(m) }

// GravParam is a gravitational parameter mu = G*M, stored in km^3/s^2.
type GravParam float64

// Value returns mu in km^3/s^2.
func (g GravParam) Value() float64 { return float64(g) }

// Velocity is a dimensioned rate of length, stored in km/s.
type Velocity float64

// KmS returns the velocity in kilometers per second.
func (v Velocity) KmS() float64 { return float64(v) }

// Acceleration is a dimensioned rate of velocity, stored in km/s^2.
type Acceleration float64

// KmS2 returns the acceleration in kilometers per second squared.
func (a Acceleration) KmS2() float64 { return float64(a) }

// AngularRate is a dimensioned rate of angle, stored in rad/s.
type AngularRate float64

// RadS returns the angular rate in radians per second.
func (r AngularRate) RadS() float64 { return float64(r) }

// Unitless wraps a dimensionless scalar. It is the target type of any
// quantity divided by another quantity of the same dimension, and is what
// Eccentricity and the equinoctial f/g/h/k components use.
type Unitless float64

// Value returns the bare float64.
func (u Unitless) Value() float64 { return float64(u) }

// JulianDate is a continuous day count, noon UT on 2000-01-01 being J2000.
type JulianDate float64

// J2000 is the reference epoch: 2000-01-01T12:00:00 UT.
const J2000 JulianDate = 2451545.0

// Sub returns the Duration between two Julian dates (jd - other).
func (jd JulianDate) Sub(other JulianDate) Duration {
	return Duration((float64(jd) - float64(other)) * 86400)
}

// Add returns the JulianDate offset by the given Duration.
func (jd JulianDate) Add(d Duration) JulianDate {
	return jd + JulianDate(d.Seconds()/86400)
}

// Before reports whether jd occurs strictly before other.
func (jd JulianDate) Before(other JulianDate) bool { return jd < other }

// After reports whether jd occurs strictly after other.
func (jd JulianDate) After(other JulianDate) bool { return jd > other }

// JulianCenturiesSinceJ2000 returns the number of Julian centuries (36525
// days) elapsed since J2000, the standard argument for secular rate
// polynomials (GST, precession, mean-element propagation).
func (jd JulianDate) JulianCenturiesSinceJ2000() float64 {
	return float64(jd-J2000) / 36525.0
}
