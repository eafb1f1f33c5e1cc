package eom

import (
	"math"
	"testing"

	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/forces"
	"github.com/astrolib/smd/units"
)

func TestCowellTwoBodyMatchesAnalyticAcceleration(t *testing.T) {
	e := EquationsOfMotion{
		System: bodies.System{Central: bodies.Earth},
		Forces: []forces.Model{forces.TwoBody{Mu: bodies.Earth.Mu}},
		Kind:   elements.KindCartesian,
	}
	state := elements.NewCartesian([3]float64{7000, 0, 0}, [3]float64{0, 7.5461, 0})
	d := e.Derivative(units.J2000, state)

	if d[0] != 0 || d[1] != 7.5461 || d[2] != 0 {
		t.Errorf("expected velocity-derivative to equal velocity, got %v", d[:3])
	}
	expectedAx := -bodies.Earth.Mu.Value() / (7000 * 7000)
	if math.Abs(d[3]-expectedAx) > 1e-9 {
		t.Errorf("ax = %v, want %v", d[3], expectedAx)
	}
}

func TestCheckCrash(t *testing.T) {
	e := EquationsOfMotion{
		System:      bodies.System{Central: bodies.Earth},
		Kind:        elements.KindCartesian,
		CrashRadius: bodies.Earth.EquatorialRadius,
	}
	crashed := elements.NewCartesian([3]float64{1000, 0, 0}, [3]float64{0, 1, 0})
	if !e.CheckCrash(crashed) {
		t.Error("expected crash below crash radius")
	}

	safe := elements.NewCartesian([3]float64{7000, 0, 0}, [3]float64{0, 7.5, 0})
	if e.CheckCrash(safe) {
		t.Error("did not expect crash for nominal LEO state")
	}
}

func TestCheckCrashNonFinite(t *testing.T) {
	e := EquationsOfMotion{System: bodies.System{Central: bodies.Earth}, Kind: elements.KindCartesian}
	nanState := elements.NewCartesian([3]float64{math.NaN(), 0, 0}, [3]float64{0, 1, 0})
	if !e.CheckCrash(nanState) {
		t.Error("expected NaN state to be treated as a crash/terminal condition")
	}
}

func TestGaussVOPZeroPerturbationLeavesElementsNearConstant(t *testing.T) {
	e := EquationsOfMotion{
		System: bodies.System{Central: bodies.Earth},
		Forces: []forces.Model{forces.TwoBody{Mu: bodies.Earth.Mu}},
		Kind:   elements.KindKeplerian,
	}
	kep := elements.NewKeplerian(units.Length(7000), units.Unitless(0.01),
		units.AngleFromDeg(45), units.AngleFromDeg(30), units.AngleFromDeg(60), units.AngleFromDeg(0))

	d := e.Derivative(units.J2000, kep)
	// For the Keplerian kind TwoBody is left out of the perturbing sum
	// (its motion is carried by the h/r^2 term), so the projected
	// perturbation is zero and inclination and RAAN stay undisturbed.
	if math.Abs(d[2]) > 1e-12 {
		t.Errorf("expected no inclination rate from an in-plane force, got %v", d[2])
	}
	if math.Abs(d[3]) > 1e-12 {
		t.Errorf("expected no RAAN rate from an in-plane force, got %v", d[3])
	}
}
