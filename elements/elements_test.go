package elements

import (
	"math"
	"testing"

	"github.com/gonum/floats"

	"github.com/astrolib/smd/units"
)

const earthMu = units.GravParam(398600.4418)

func almostEqual(a, b, tol float64) bool {
	return floats.EqualWithinAbs(a, b, tol)
}

func TestCartesianKeplerianRoundTrip(t *testing.T) {
	kep := NewKeplerian(units.Length(7000), units.Unitless(0.01),
		units.AngleFromDeg(28.5), units.AngleFromDeg(120), units.AngleFromDeg(60), units.AngleFromDeg(15))

	cart := kep.ToCartesian(earthMu)
	back := cart.ToKeplerian(earthMu)

	if !almostEqual(kep.A.Km(), back.A.Km(), 1e-6) {
		t.Errorf("semimajor axis mismatch: %v vs %v", kep.A.Km(), back.A.Km())
	}
	if !almostEqual(kep.E.Value(), back.E.Value(), 1e-9) {
		t.Errorf("eccentricity mismatch: %v vs %v", kep.E.Value(), back.E.Value())
	}
	if !almostEqual(kep.I.Rad(), back.I.Rad(), 1e-9) {
		t.Errorf("inclination mismatch: %v vs %v", kep.I.Rad(), back.I.Rad())
	}
	if !almostEqual(kep.RAAN.Rad(), back.RAAN.Rad(), 1e-9) {
		t.Errorf("RAAN mismatch: %v vs %v", kep.RAAN.Rad(), back.RAAN.Rad())
	}
	if !almostEqual(kep.ArgPeri.Rad(), back.ArgPeri.Rad(), 1e-9) {
		t.Errorf("arg peri mismatch: %v vs %v", kep.ArgPeri.Rad(), back.ArgPeri.Rad())
	}
	if !almostEqual(kep.TrueAnomaly.Rad(), back.TrueAnomaly.Rad(), 1e-9) {
		t.Errorf("true anomaly mismatch: %v vs %v", kep.TrueAnomaly.Rad(), back.TrueAnomaly.Rad())
	}
}

func TestKeplerianEquinoctialRoundTrip(t *testing.T) {
	kep := NewKeplerian(units.Length(7000), units.Unitless(0.02),
		units.AngleFromDeg(51.6), units.AngleFromDeg(200), units.AngleFromDeg(80), units.AngleFromDeg(300))

	equi := kep.ToEquinoctial(earthMu)
	back := equi.ToKeplerian(earthMu)

	if !almostEqual(kep.A.Km(), back.A.Km(), 1e-6) {
		t.Errorf("semimajor axis mismatch: %v vs %v", kep.A.Km(), back.A.Km())
	}
	if !almostEqual(kep.E.Value(), back.E.Value(), 1e-9) {
		t.Errorf("eccentricity mismatch: %v vs %v", kep.E.Value(), back.E.Value())
	}
}

func TestEquinoctialCartesianRoundTrip(t *testing.T) {
	cart := Cartesian{R: [3]float64{6800, 500, 200}, V: [3]float64{-0.5, 7.5, 0.2}}
	equi := cart.ToEquinoctial(earthMu)
	back := equi.ToCartesian(earthMu)

	for i := 0; i < 3; i++ {
		if !almostEqual(cart.R[i], back.R[i], 1e-6) {
			t.Errorf("R[%d] mismatch: %v vs %v", i, cart.R[i], back.R[i])
		}
		if !almostEqual(cart.V[i], back.V[i], 1e-9) {
			t.Errorf("V[%d] mismatch: %v vs %v", i, cart.V[i], back.V[i])
		}
	}
}

func TestAddSubKindMismatch(t *testing.T) {
	c := Cartesian{R: [3]float64{1, 2, 3}, V: [3]float64{1, 1, 1}}
	k := NewKeplerian(units.Length(7000), units.Unitless(0), 0, 0, 0, 0)

	if _, err := c.Add(k); err == nil {
		t.Fatal("expected ErrKindMismatch, got nil")
	}
	if _, err := k.Sub(c); err == nil {
		t.Fatal("expected ErrKindMismatch, got nil")
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := Cartesian{R: [3]float64{0, 0, 0}, V: [3]float64{0, 0, 0}}
	b := Cartesian{R: [3]float64{10, 20, 30}, V: [3]float64{2, 2, 2}}

	mid, err := Interpolate(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	got := mid.(Cartesian)
	want := [3]float64{5, 10, 15}
	for i := range want {
		if !almostEqual(got.R[i], want[i], 1e-12) {
			t.Errorf("R[%d] = %v, want %v", i, got.R[i], want[i])
		}
	}
}

func TestInterpolateAngleWrap(t *testing.T) {
	a := NewKeplerian(units.Length(7000), units.Unitless(0.01), units.AngleFromDeg(0),
		units.AngleFromDeg(359), units.AngleFromDeg(0), units.AngleFromDeg(0))
	b := NewKeplerian(units.Length(7000), units.Unitless(0.01), units.AngleFromDeg(0),
		units.AngleFromDeg(1), units.AngleFromDeg(0), units.AngleFromDeg(0))

	mid, err := Interpolate(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	got := mid.(Keplerian).RAAN.Deg()
	if !almostEqual(got, 0, 1e-6) && !almostEqual(got, 360, 1e-6) {
		t.Errorf("expected RAAN near 0/360 deg after unwrap, got %v", got)
	}
}

func TestSnapInclinationPiBug(t *testing.T) {
	old := PreserveInclinationPiBug
	defer func() { PreserveInclinationPiBug = old }()

	PreserveInclinationPiBug = true
	if got := snapInclination(math.Pi - 1e-12); got != 0 {
		t.Errorf("expected snap to 0 near pi, got %v", got)
	}

	PreserveInclinationPiBug = false
	if got := snapInclination(1e-12); got != 0 {
		t.Errorf("expected snap to 0 near 0, got %v", got)
	}
	if got := snapInclination(math.Pi - 1e-12); almostEqual(got, 0, 1e-6) {
		t.Errorf("did not expect snap near pi when PreserveInclinationPiBug is false")
	}
}

func TestCircularEquatorialSingularity(t *testing.T) {
	// Circular equatorial orbit: e == 0, i == 0. Both RAAN and ArgPeri are
	// undefined and should snap to the canonical 0, with true anomaly
	// measured from +X per the source's fallback.
	r := [3]float64{7000, 0, 0}
	v := [3]float64{0, math.Sqrt(earthMu.Value() / 7000), 0}
	kep := KeplerianFromCartesian(Cartesian{R: r, V: v}, earthMu)

	if kep.E.Value() != 0 {
		t.Errorf("expected zero eccentricity, got %v", kep.E.Value())
	}
	if kep.RAAN.Rad() != 0 {
		t.Errorf("expected zero RAAN, got %v", kep.RAAN.Rad())
	}
	if kep.ArgPeri.Rad() != 0 {
		t.Errorf("expected zero arg peri, got %v", kep.ArgPeri.Rad())
	}
}

func TestVector6RoundTrip(t *testing.T) {
	c := Cartesian{R: [3]float64{1, 2, 3}, V: [3]float64{4, 5, 6}}
	v := c.Vector6()
	want := [6]float64{1, 2, 3, 4, 5, 6}
	if v != want {
		t.Errorf("Vector6 = %v, want %v", v, want)
	}
}
