package elements

import "github.com/astrolib/smd/units"

// Interpolate returns the componentwise linear interpolation between a and b
// at fraction frac in [0, 1]: a + frac*(b-a). Both operands must be the same
// concrete Kind.
//
// For Keplerian angles only, a jump of more than 300 degrees between a and b
// is assumed to be wraparound rather than genuine motion, and b's angle is
// shifted by +-360 degrees before interpolating -- matching the source's
// handling of, e.g., RAAN crossing from 359 degrees to 1 degree. Cartesian
// components and the Equinoctial true longitude L are interpolated as-is;
// equinoctial elements are designed to stay continuous through such
// crossings, so no unwrap correction applies there.
func Interpolate(a, b Elements, frac float64) (Elements, error) {
	if a.Kind() != b.Kind() {
		return nil, kindMismatchError(a.Kind(), b.Kind())
	}
	if ka, ok := a.(Keplerian); ok {
		kb := b.(Keplerian)
		kb.I = unwrapNear(ka.I, kb.I)
		kb.RAAN = unwrapNear(ka.RAAN, kb.RAAN)
		kb.ArgPeri = unwrapNear(ka.ArgPeri, kb.ArgPeri)
		kb.TrueAnomaly = unwrapNear(ka.TrueAnomaly, kb.TrueAnomaly)
		return lerpElements(ka, kb, frac), nil
	}
	return lerpElements(a, b, frac), nil
}

const angleWrapThreshold = 300 * (3.141592653589793 / 180)

// unwrapNear shifts to by a multiple of 2*pi, if doing so brings it within
// angleWrapThreshold of from; otherwise returns to unchanged.
func unwrapNear(from, to units.Angle) units.Angle {
	const twoPi = 2 * 3.141592653589793
	delta := to.Rad() - from.Rad()
	switch {
	case delta > angleWrapThreshold:
		return to - units.Angle(twoPi)
	case delta < -angleWrapThreshold:
		return to + units.Angle(twoPi)
	default:
		return to
	}
}

func lerpElements(a, b Elements, frac float64) Elements {
	diff, err := b.Sub(a)
	if err != nil {
		panic(err) // unreachable: caller already checked Kind equality
	}
	scaled := diff.Scale(frac)
	sum, err := a.Add(scaled)
	if err != nil {
		panic(err) // unreachable: Scale preserves Kind
	}
	return sum
}
