package access

import (
	"math"
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"

	"github.com/astrolib/smd/frame"
)

const rad2deg = 180 / math.Pi

// Measurement is a simulated range/range-rate observation of a vehicle
// from a ground station, with Gaussian noise drawn from the NoiseModel
// passed to Measure. Grounded on the teacher's station/measurement pair:
// the station-side geometry moved to GroundStation in this package, and
// the noise model/H-tilde Jacobian kept in their original mat64/distmv
// form here.
type Measurement struct {
	Visible                  bool
	Range, RangeRate         float64 // noisy, km and km/s
	TrueRange, TrueRangeRate float64
	ThetaGMST                float64
	VehiclePos, VehicleVel   [3]float64
	StationPos, StationVel   [3]float64
	Station                  GroundStation
}

// NoiseModel samples zero-mean Gaussian range and range-rate noise. Built
// from per-station variances via distmv.Normal, matching the teacher's
// DSS34Canberra/DSS65Madrid/DSS13Goldstone station noise figures.
type NoiseModel struct {
	rangeNoise, rangeRateNoise *distmv.Normal
}

// NewNoiseModel builds a NoiseModel from range and range-rate variances
// (km^2 and (km/s)^2 respectively). Two zero variances give a noiseless
// model.
func NewNoiseModel(sigmaRange2, sigmaRangeRate2 float64, seed *rand.Rand) (NoiseModel, bool) {
	if sigmaRange2 == 0 && sigmaRangeRate2 == 0 {
		return NoiseModel{}, true
	}
	rn, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{sigmaRange2}), seed)
	if !ok {
		return NoiseModel{}, false
	}
	rrn, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{sigmaRangeRate2}), seed)
	if !ok {
		return NoiseModel{}, false
	}
	return NoiseModel{rangeNoise: rn, rangeRateNoise: rrn}, true
}

// Measure returns the range/range-rate measurement of a vehicle at
// (vehiclePos, vehicleVel), both inertial, from gs at thetaGMST, with
// visibility gated by minElevationDeg above the local horizon. thetaGMST
// is passed directly (rather than via a date) so a caller already walking
// a sidereal-time sequence need not round-trip through a Julian date.
func Measure(gs GroundStation, thetaGMST, minElevationDeg float64, vehiclePos, vehicleVel [3]float64, noise NoiseModel) Measurement {
	stationECEF := frame.EllipsoidToECEF(gs.Geo, gs.Body.EquatorialRadius.Km(), gs.Body.PolarRadius.Km())
	stationPos := frame.ECEF2ECI(stationECEF, thetaGMST)
	stationVel := cross([3]float64{0, 0, frame.EarthRotationRate}, stationPos)

	rho := sub(vehiclePos, stationPos)
	rhoN := norm(rho)
	vRel := sub(vehicleVel, stationVel)
	rangeRate := dot(rho, vRel) / rhoN

	elevationDeg := elevationAboveHorizon(stationPos, rho, rhoN)

	m := Measurement{
		Visible:       elevationDeg >= minElevationDeg,
		TrueRange:     rhoN,
		TrueRangeRate: rangeRate,
		ThetaGMST:     thetaGMST,
		VehiclePos:    vehiclePos,
		VehicleVel:    vehicleVel,
		StationPos:    stationPos,
		StationVel:    stationVel,
		Station:       gs,
		Range:         rhoN,
		RangeRate:     rangeRate,
	}
	if noise.rangeNoise != nil {
		m.Range += noise.rangeNoise.Rand(nil)[0]
		m.RangeRate += noise.rangeRateNoise.Rand(nil)[0]
	}
	return m
}

// elevationAboveHorizon returns the elevation, in degrees, of rho (the
// station-to-vehicle vector) above the station's local horizon, treating
// the station's own inertial position as its zenith direction.
func elevationAboveHorizon(stationPos, rho [3]float64, rhoN float64) float64 {
	if rhoN == 0 {
		return 90
	}
	zn := norm(stationPos)
	if zn == 0 {
		return 90
	}
	cosZenithAngle := clamp(dot(stationPos, rho)/(zn*rhoN), -1, 1)
	return 90 - math.Acos(cosZenithAngle)*rad2deg
}

// HTilde returns the 2xrows partial-derivatives matrix of (range, range
// rate) with respect to the vehicle's Cartesian state (and, if rows == 7,
// a zero column for a trailing Cr parameter) -- a direct port of the
// teacher's HTilde, generalized to this package's Measurement.
func (m Measurement) HTilde(rows int) *mat64.Dense {
	x, y, z := m.VehiclePos[0], m.VehiclePos[1], m.VehiclePos[2]
	xDot, yDot, zDot := m.VehicleVel[0], m.VehicleVel[1], m.VehicleVel[2]
	xS, yS, zS := m.StationPos[0], m.StationPos[1], m.StationPos[2]
	xSDot, ySDot, zSDot := m.StationVel[0], m.StationVel[1], m.StationVel[2]

	rho := m.TrueRange
	rhoDot := m.TrueRangeRate

	h := mat64.NewDense(2, rows, nil)
	h.Set(0, 0, (x-xS)/rho)
	h.Set(0, 1, (y-yS)/rho)
	h.Set(0, 2, (z-zS)/rho)
	h.Set(1, 0, (xDot-xSDot)/rho+(rhoDot/(rho*rho))*(x-xS))
	h.Set(1, 1, (yDot-ySDot)/rho+(rhoDot/(rho*rho))*(y-yS))
	h.Set(1, 2, (zDot-zSDot)/rho+(rhoDot/(rho*rho))*(z-zS))
	h.Set(1, 3, (x-xS)/rho)
	h.Set(1, 4, (y-yS)/rho)
	h.Set(1, 5, (z-zS)/rho)
	return h
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
