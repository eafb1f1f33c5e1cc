package forces

import "github.com/astrolib/smd/units"

// ThirdBody is a third-body gravitational perturbation: the direct pull of
// a perturbing body on the vehicle, minus the indirect term (the pull of
// that same body on the central body, which the central-body-relative
// equations of motion must subtract out so the two direct terms don't
// double count the central body's own acceleration toward the perturber).
type ThirdBody struct {
	Mu units.GravParam
	// Position relative to the central body, in km, at the current epoch.
	// The caller (equations-of-motion layer) is responsible for evaluating
	// the perturbing body's ephemeris and differencing it from the central
	// body's, since that requires a bodies.Ephemeris and this package has
	// no ephemeris dependency.
	Position [3]float64
}

// Name implements Model.
func (ThirdBody) Name() string { return "third-body" }

// Acceleration implements Model.
func (t ThirdBody) Acceleration(r, _ [3]float64, _ units.JulianDate) [3]float64 {
	d := sub(t.Position, r)
	dNorm := norm(d)
	sNorm := norm(t.Position)

	direct := scale(d, t.Mu.Value()/(dNorm*dNorm*dNorm))
	indirect := scale(t.Position, t.Mu.Value()/(sNorm*sNorm*sNorm))
	return sub(direct, indirect)
}
