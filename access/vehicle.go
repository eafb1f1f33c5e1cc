package access

import (
	"github.com/astrolib/smd/state"
	"github.com/astrolib/smd/units"
)

// VehiclePlatform adapts a propagated state.History to the Platform
// interface, looking up (and interpolating, via History.Closest) the
// vehicle's inertial position at each requested date.
type VehiclePlatform struct {
	History *state.History
	Mu      units.GravParam
}

// PositionAt implements Platform.
func (v VehiclePlatform) PositionAt(jd units.JulianDate) [3]float64 {
	s, ok := v.History.Closest(jd)
	if !ok {
		return [3]float64{}
	}
	return s.Elements.ToCartesian(v.Mu).R
}
