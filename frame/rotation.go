package frame

import "math"

// RotX returns the raw direction-cosine matrix for a rotation of theta
// radians about the first axis.
func RotX(theta float64) [3][3]float64 {
	s, c := math.Sincos(theta)
	return [3][3]float64{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// RotY returns the raw direction-cosine matrix for a rotation of theta
// radians about the second axis.
func RotY(theta float64) [3][3]float64 {
	s, c := math.Sincos(theta)
	return [3][3]float64{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
}

// RotZ returns the raw direction-cosine matrix for a rotation of theta
// radians about the third axis.
func RotZ(theta float64) [3][3]float64 {
	s, c := math.Sincos(theta)
	return [3][3]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// Rot313 performs the composite 3-1-3 Euler rotation used throughout to go
// between perifocal and inertial axes (Vallado's PQW -> IJK via -Omega,
// -i, -omega uses this with negated angles). Ported from Schaub & Junkins,
// which the source notes disagrees with (and corrects) Vallado's printed
// version.
func Rot313(theta1, theta2, theta3 float64) [3][3]float64 {
	s1, c1 := math.Sincos(theta1)
	s2, c2 := math.Sincos(theta2)
	s3, c3 := math.Sincos(theta3)
	return [3][3]float64{
		{c3*c1 - s3*c2*s1, c3*s1 + s3*c2*c1, s3 * s2},
		{-s3*c1 - c3*c2*s1, -s3*s1 + c3*c2*c1, c3 * s2},
		{s2 * s1, -s2 * c1, c2},
	}
}

func mulRaw(m [3][3]float64, v [3]float64) [3]float64 {
	return raw3x3(m).mulVec(v)
}

// XZX composes a rotation about X, then Z, then X by the given angles,
// applied in that order to a vector (matching the registry's row-vector
// convention used by Rot313).
func XZX(alpha, beta, gamma float64) [3][3]float64 {
	return raw3x3(RotX(gamma)).mul(raw3x3(RotZ(beta))).mul(raw3x3(RotX(alpha)))
}

// FromOrthonormalVectors builds a DCM whose rows are the three provided
// orthonormal axes of To expressed in From.
func FromOrthonormalVectors(x, y, z [3]float64) [3][3]float64 {
	return [3][3]float64{x, y, z}
}
