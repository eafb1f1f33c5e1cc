package frame

import "math"

// RICFromState builds the runtime DCM rotating frame F into the RIC frame
// of a specific vehicle, given its position and velocity (both expressed in
// F) at the frame's reference date. RIC depends on a specific vehicle's
// instantaneous state rather than solely on date, so it cannot be a
// pre-registered static provider; this is the dynamic-frame fallback the
// design notes call for.
func RICFromState[F Tag](r PositionVector[F], v VelocityVector[F]) DCM[F, RIC] {
	rHat := r.Unit().Raw()
	h := cross3(r.Raw(), v.Raw())
	hNorm := math.Sqrt(h[0]*h[0] + h[1]*h[1] + h[2]*h[2])
	var cHat [3]float64
	if hNorm > 0 {
		cHat = [3]float64{h[0] / hNorm, h[1] / hNorm, h[2] / hNorm}
	}
	iHat := cross3(cHat, rHat)
	return DCM[F, RIC]{m: raw3x3(FromOrthonormalVectors(rHat, iHat, cHat))}
}
