// Package access computes line-of-sight visibility between platforms: the
// Earth-limb occlusion test, sensor field-of-view containment, and the
// rise/set intervals produced by walking a time grid with both tests
// applied. It is grounded on the ground-station range/elevation geometry
// this module's teacher carried in station.go, generalized from a single
// Earth-fixed station to any pair of inertial platform positions.
package access

import (
	"math"
	"sort"

	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/units"
)

// Platform is anything access analysis can locate at a date: a propagated
// vehicle, a fixed ground station, anything with an inertial position.
type Platform interface {
	PositionAt(jd units.JulianDate) [3]float64
}

// Sensor is a field-of-view test attached to a platform: given the
// inertial line-of-sight vector from the platform to the target and the
// date, it reports whether the target falls inside the sensor's cone.
// Implementations absent a real sensor may use AlwaysVisible.
type Sensor interface {
	// Contains reports whether losInertial, the line-of-sight vector from
	// the platform to the target in the inertial frame, lies inside this
	// sensor's field of view at jd.
	Contains(losInertial [3]float64, jd units.JulianDate) bool
}

// ConeSensor is a circular field of view about a boresight direction that
// may itself move with time (e.g. a ground station's local zenith, which
// rotates with the Earth) -- the common case for a nadir- or
// zenith-pointing antenna.
type ConeSensor struct {
	// BoresightAt returns the boresight's inertial unit vector at jd.
	BoresightAt func(jd units.JulianDate) [3]float64
	HalfAngle   units.Angle
}

// FixedCone returns a ConeSensor whose boresight does not depend on time.
func FixedCone(boresight [3]float64, halfAngle units.Angle) ConeSensor {
	return ConeSensor{BoresightAt: func(units.JulianDate) [3]float64 { return boresight }, HalfAngle: halfAngle}
}

// Contains implements Sensor: true iff the angle between the boresight and
// the line of sight is within HalfAngle.
func (c ConeSensor) Contains(losInertial [3]float64, jd units.JulianDate) bool {
	ln := norm(losInertial)
	if ln == 0 {
		return false
	}
	boresight := c.BoresightAt(jd)
	bn := norm(boresight)
	if bn == 0 {
		return false
	}
	cosAngle := dot(boresight, losInertial) / (bn * ln)
	cosAngle = clamp(cosAngle, -1, 1)
	return math.Acos(cosAngle) <= c.HalfAngle.Rad()
}

// AlwaysVisible is a Sensor with no field-of-view restriction: only Earth
// occlusion gates visibility.
var AlwaysVisible Sensor = alwaysVisible{}

type alwaysVisible struct{}

func (alwaysVisible) Contains([3]float64, units.JulianDate) bool { return true }

// Direction selects which platform's field of view must contain the other
// for a time to count as "in access".
type Direction int

const (
	// OneWay requires only platform 1's sensor to see platform 2.
	OneWay Direction = iota
	// TwoWay requires both platforms' sensors to see each other.
	TwoWay
)

// Occluded implements the Earth-limb test: given platform 1's position,
// platform 2's position, and the occluding body, it reports whether the
// body's limb (equatorial radius plus a 100 km buffer) blocks the
// line of sight from platform 1 to platform 2.
//
// The test computes the half-angle subtended by the limb sphere as seen
// from platform 1, compares it to the angle between platform 1's nadir
// direction and the line to platform 2, and -- if platform 2 falls inside
// that cone -- checks whether its range exceeds the tangent distance to the
// limb. Both conditions holding means the body's bulk lies between the two
// platforms.
func Occluded(r1, r2 [3]float64, body bodies.Body) bool {
	const limbBuffer = 100.0 // km
	limbRadius := body.EquatorialRadius.Km() + limbBuffer

	r1n := norm(r1)
	if r1n <= limbRadius {
		// Platform 1 is inside the limb sphere; occlusion is undefined by
		// this test, treat the pair as not visible.
		return true
	}

	// Angle subtended by the limb sphere from platform 1 (tangent-line half-angle).
	limbHalfAngle := math.Asin(clamp(limbRadius/r1n, -1, 1))

	nadir := scale(r1, -1/r1n)
	toR2 := sub(r2, r1)
	toR2n := norm(toR2)
	if toR2n == 0 {
		return false
	}
	cosSep := clamp(dot(nadir, toR2)/toR2n, -1, 1)
	separation := math.Acos(cosSep)

	if separation > limbHalfAngle {
		// Platform 2 lies outside the limb cone: no occlusion possible.
		return false
	}

	// Platform 2 is within the limb cone; Earth occludes iff its range
	// exceeds the tangent distance from platform 1 to the limb sphere.
	tangentDistance := math.Sqrt(r1n*r1n - limbRadius*limbRadius)
	return toR2n > tangentDistance
}

// Visible reports whether platform 1 (with sensor s1) and platform 2 (with
// sensor s2) see each other at jd, per dir. Earth occlusion (against body)
// is always checked first and gates both directions.
func Visible(jd units.JulianDate, p1, p2 Platform, s1, s2 Sensor, body bodies.Body, dir Direction) bool {
	r1 := p1.PositionAt(jd)
	r2 := p2.PositionAt(jd)

	if Occluded(r1, r2, body) {
		return false
	}

	toP2 := sub(r2, r1)
	if !s1.Contains(toP2, jd) {
		return false
	}
	if dir == OneWay {
		return true
	}
	toP1 := sub(r1, r2)
	return s2.Contains(toP1, jd)
}

// Interval is a closed [Rise, Set] access window.
type Interval struct {
	Rise, Set units.JulianDate
}

// Windows walks grid (a sorted copy is used if it is not ascending) and emits the access intervals
// between p1/p2 per dir, gated by Earth occlusion against body. A window
// still open at the end of the grid is closed at the grid's last sample.
func Windows(grid []units.JulianDate, p1, p2 Platform, s1, s2 Sensor, body bodies.Body, dir Direction) []Interval {
	if !sort.SliceIsSorted(grid, func(i, j int) bool { return grid[i] < grid[j] }) {
		sorted := make([]units.JulianDate, len(grid))
		copy(sorted, grid)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		grid = sorted
	}

	var windows []Interval
	inAccess := false
	var riseAt units.JulianDate

	for _, jd := range grid {
		visible := Visible(jd, p1, p2, s1, s2, body, dir)
		switch {
		case visible && !inAccess:
			inAccess = true
			riseAt = jd
		case !visible && inAccess:
			inAccess = false
			windows = append(windows, Interval{Rise: riseAt, Set: jd})
		}
	}
	if inAccess && len(grid) > 0 {
		windows = append(windows, Interval{Rise: riseAt, Set: grid[len(grid)-1]})
	}
	return windows
}

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func norm(a [3]float64) float64 { return math.Sqrt(dot(a, a)) }

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func scale(a [3]float64, s float64) [3]float64 { return [3]float64{a[0] * s, a[1] * s, a[2] * s} }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
