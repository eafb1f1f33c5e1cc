package bodies

import (
	"math"
	"testing"

	"github.com/astrolib/smd/units"
)

func TestFromName(t *testing.T) {
	b, err := FromName("EARTH")
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "Earth" {
		t.Errorf("expected Earth, got %s", b.Name)
	}

	if _, err := FromName("nonexistent"); err == nil {
		t.Fatal("expected error for unknown body")
	}
}

func TestJHarmonics(t *testing.T) {
	if Earth.J(2) != Earth.J2 {
		t.Errorf("J(2) = %v, want %v", Earth.J(2), Earth.J2)
	}
	if Earth.J(5) != 0 {
		t.Errorf("J(5) should be 0 for unsupported order, got %v", Earth.J(5))
	}
}

func TestAnalyticalEarthEphemerisSunDistance(t *testing.T) {
	eph := AnalyticalEarthEphemeris{}
	state, err := eph.HelioState(Earth, units.J2000)
	if err != nil {
		t.Fatal(err)
	}
	r := math.Sqrt(state.R[0]*state.R[0] + state.R[1]*state.R[1] + state.R[2]*state.R[2])
	if r < 1.4e8 || r > 1.6e8 {
		t.Errorf("expected Earth-Sun distance near 1 AU, got %v km", r)
	}

	if _, err := eph.HelioState(Mars, units.J2000); err == nil {
		t.Fatal("expected error for unsupported body")
	}
}
