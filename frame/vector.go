package frame

import (
	"errors"
	"math"

	"github.com/astrolib/smd/units"
)

// PositionVector is a length-dimensioned 3-vector tagged by its frame. Two
// PositionVectors of different frames are distinct Go types and cannot be
// added, compared, or otherwise mixed without an explicit rotation.
type PositionVector[F Tag] struct{ x, y, z units.Length }

// NewPositionVector builds a PositionVector from kilometer components.
func NewPositionVector[F Tag](x, y, z units.Length) PositionVector[F] {
	return PositionVector[F]{x, y, z}
}

// XYZ returns the raw kilometer components.
func (v PositionVector[F]) XYZ() (units.Length, units.Length, units.Length) { return v.x, v.y, v.z }

// Raw returns the components as a plain [3]float64 in kilometers.
func (v PositionVector[F]) Raw() [3]float64 {
	return [3]float64{v.x.Km(), v.y.Km(), v.z.Km()}
}

// Add returns the elementwise sum.
func (v PositionVector[F]) Add(o PositionVector[F]) PositionVector[F] {
	return PositionVector[F]{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns the elementwise difference.
func (v PositionVector[F]) Sub(o PositionVector[F]) PositionVector[F] {
	return PositionVector[F]{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Negate returns the vector with every component negated.
func (v PositionVector[F]) Negate() PositionVector[F] {
	return PositionVector[F]{-v.x, -v.y, -v.z}
}

// Scale returns the vector multiplied by a dimensionless scalar.
func (v PositionVector[F]) Scale(s float64) PositionVector[F] {
	return PositionVector[F]{v.x * units.Length(s), v.y * units.Length(s), v.z * units.Length(s)}
}

// Equal reports exact equality. Per the design, equality between different
// Go frame types does not typecheck at all (the caller cannot even write
// the comparison), which satisfies the "equality across frames is false"
// requirement more strongly than a runtime check would.
func (v PositionVector[F]) Equal(o PositionVector[F]) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}

// Norm returns the Euclidean length.
func (v PositionVector[F]) Norm() units.Length {
	return units.Length(math.Sqrt(v.x.Km()*v.x.Km() + v.y.Km()*v.y.Km() + v.z.Km()*v.z.Km()))
}

// Unit returns the dimensionless unit vector, or the zero vector if Norm is
// zero.
func (v PositionVector[F]) Unit() UnitVector[F] {
	n := v.Norm().Km()
	if n == 0 {
		return UnitVector[F]{}
	}
	return UnitVector[F]{v.x.Km() / n, v.y.Km() / n, v.z.Km() / n}
}

// Dot returns the scalar product, in km^2.
func (v PositionVector[F]) Dot(o PositionVector[F]) float64 {
	return v.x.Km()*o.x.Km() + v.y.Km()*o.y.Km() + v.z.Km()*o.z.Km()
}

// Cross returns the vector product, in km^2, still tagged F.
func (v PositionVector[F]) Cross(o PositionVector[F]) PositionVector[F] {
	a, b := v.Raw(), o.Raw()
	c := cross3(a, b)
	return PositionVector[F]{units.Length(c[0]), units.Length(c[1]), units.Length(c[2])}
}

// OffsetAngle returns the angle between two non-zero vectors. It is a
// caller error (and panics) to call this with a zero-magnitude vector.
func (v PositionVector[F]) OffsetAngle(o PositionVector[F]) units.Angle {
	nv, no := v.Norm().Km(), o.Norm().Km()
	if nv == 0 || no == 0 {
		panic(errors.New("frame: OffsetAngle is undefined for a zero-magnitude vector"))
	}
	cosTheta := v.Dot(o) / (nv * no)
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return units.Angle(math.Acos(cosTheta))
}

// InFrame rotates (but does not translate) this vector into frame G at the
// given date.
func InFrame[F, G Tag](v PositionVector[F], jd units.JulianDate) PositionVector[G] {
	d := GetDCM[F, G](jd)
	r := d.m.mulVec(v.Raw())
	return PositionVector[G]{units.Length(r[0]), units.Length(r[1]), units.Length(r[2])}
}

// WithRespectToFrame rotates and translates this vector into frame G, given
// the origin-to-origin offset (expressed in G) supplied by an ephemeris
// lookup. The library cannot infer which ephemeris call produces a
// semantically correct offset for an arbitrary pair of origins, so the
// caller supplies it explicitly.
func WithRespectToFrame[F, G Tag](v PositionVector[F], jd units.JulianDate, originOffsetInG PositionVector[G]) PositionVector[G] {
	rotated := InFrame[F, G](v, jd)
	return rotated.Add(originOffsetInG)
}

// VelocityVector is a velocity-dimensioned 3-vector tagged by frame.
type VelocityVector[F Tag] struct{ x, y, z units.Velocity }

// NewVelocityVector builds a VelocityVector from km/s components.
func NewVelocityVector[F Tag](x, y, z units.Velocity) VelocityVector[F] {
	return VelocityVector[F]{x, y, z}
}

// XYZ returns the raw km/s components.
func (v VelocityVector[F]) XYZ() (units.Velocity, units.Velocity, units.Velocity) { return v.x, v.y, v.z }

// Raw returns the components as a plain [3]float64 in km/s.
func (v VelocityVector[F]) Raw() [3]float64 {
	return [3]float64{v.x.KmS(), v.y.KmS(), v.z.KmS()}
}

// Add returns the elementwise sum.
func (v VelocityVector[F]) Add(o VelocityVector[F]) VelocityVector[F] {
	return VelocityVector[F]{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns the elementwise difference.
func (v VelocityVector[F]) Sub(o VelocityVector[F]) VelocityVector[F] {
	return VelocityVector[F]{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Negate returns the vector with every component negated.
func (v VelocityVector[F]) Negate() VelocityVector[F] {
	return VelocityVector[F]{-v.x, -v.y, -v.z}
}

// Scale returns the vector multiplied by a dimensionless scalar.
func (v VelocityVector[F]) Scale(s float64) VelocityVector[F] {
	return VelocityVector[F]{v.x * units.Velocity(s), v.y * units.Velocity(s), v.z * units.Velocity(s)}
}

// Norm returns the Euclidean speed.
func (v VelocityVector[F]) Norm() units.Velocity {
	return units.Velocity(math.Sqrt(v.x.KmS()*v.x.KmS() + v.y.KmS()*v.y.KmS() + v.z.KmS()*v.z.KmS()))
}

// Unit returns the dimensionless unit vector, or zero if the norm is zero.
func (v VelocityVector[F]) Unit() UnitVector[F] {
	n := v.Norm().KmS()
	if n == 0 {
		return UnitVector[F]{}
	}
	return UnitVector[F]{v.x.KmS() / n, v.y.KmS() / n, v.z.KmS() / n}
}

// Dot returns the scalar product, in (km/s)^2.
func (v VelocityVector[F]) Dot(o VelocityVector[F]) float64 {
	return v.x.KmS()*o.x.KmS() + v.y.KmS()*o.y.KmS() + v.z.KmS()*o.z.KmS()
}

// CrossPosition returns r x v style products where one side is a position: used by
// angular-momentum computations. Returns a raw [3]float64 in km^2/s since
// the result frame/dimension is context-dependent on the caller.
func (v VelocityVector[F]) CrossPosition(r PositionVector[F]) [3]float64 {
	return cross3(r.Raw(), v.Raw())
}

// VelocityInFrame rotates (but does not translate) this velocity into frame G.
// Velocity rotation ignores the frame's own angular rate (a rigorous
// co-rotating transport term belongs to the force-model layer, which
// applies it explicitly where needed, e.g. drag's atmosphere co-rotation).
func VelocityInFrame[F, G Tag](v VelocityVector[F], jd units.JulianDate) VelocityVector[G] {
	d := GetDCM[F, G](jd)
	r := d.m.mulVec(v.Raw())
	return VelocityVector[G]{units.Velocity(r[0]), units.Velocity(r[1]), units.Velocity(r[2])}
}

// AccelerationVector is an acceleration-dimensioned 3-vector tagged by
// frame. Force models return accelerations in the central body's inertial
// frame exclusively; this type lets the equations-of-motion layer sum them
// without risking a unit or frame mismatch.
type AccelerationVector[F Tag] struct{ x, y, z units.Acceleration }

// NewAccelerationVector builds an AccelerationVector from km/s^2 components.
func NewAccelerationVector[F Tag](x, y, z units.Acceleration) AccelerationVector[F] {
	return AccelerationVector[F]{x, y, z}
}

// XYZ returns the raw km/s^2 components.
func (v AccelerationVector[F]) XYZ() (units.Acceleration, units.Acceleration, units.Acceleration) {
	return v.x, v.y, v.z
}

// Raw returns the components as a plain [3]float64 in km/s^2.
func (v AccelerationVector[F]) Raw() [3]float64 {
	return [3]float64{v.x.KmS2(), v.y.KmS2(), v.z.KmS2()}
}

// Add returns the elementwise sum.
func (v AccelerationVector[F]) Add(o AccelerationVector[F]) AccelerationVector[F] {
	return AccelerationVector[F]{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Scale returns the vector multiplied by a dimensionless scalar.
func (v AccelerationVector[F]) Scale(s float64) AccelerationVector[F] {
	return AccelerationVector[F]{v.x * units.Acceleration(s), v.y * units.Acceleration(s), v.z * units.Acceleration(s)}
}

// Norm returns the magnitude of the acceleration.
func (v AccelerationVector[F]) Norm() units.Acceleration {
	return units.Acceleration(math.Sqrt(v.x.KmS2()*v.x.KmS2() + v.y.KmS2()*v.y.KmS2() + v.z.KmS2()*v.z.KmS2()))
}

// ZeroAcceleration returns the additive identity, tagged F.
func ZeroAcceleration[F Tag]() AccelerationVector[F] { return AccelerationVector[F]{} }

// UnitVector is a dimensionless 3-vector tagged by frame -- the result of
// normalizing a dimensioned vector, or of forming a rotation axis.
type UnitVector[F Tag] struct{ X, Y, Z float64 }

// Raw returns the plain [3]float64 components.
func (v UnitVector[F]) Raw() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// ScaleLength multiplies the unit vector by a length, recovering a PositionVector.
func (v UnitVector[F]) ScaleLength(l units.Length) PositionVector[F] {
	return PositionVector[F]{units.Length(v.X) * l, units.Length(v.Y) * l, units.Length(v.Z) * l}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
