package state

import (
	"testing"

	"github.com/astrolib/smd/bodies"
	"github.com/astrolib/smd/elements"
	"github.com/astrolib/smd/units"
)

func TestHistoryOrderingAndClosest(t *testing.T) {
	sys := bodies.System{Central: bodies.Earth}
	h := NewHistory()

	mk := func(jd units.JulianDate, x float64) State {
		return New(jd, elements.NewCartesian([3]float64{x, 0, 0}, [3]float64{0, 0, 0}), sys)
	}

	h.Put(mk(units.J2000+2, 20))
	h.Put(mk(units.J2000, 0))
	h.Put(mk(units.J2000+1, 10))

	first, ok := h.First()
	if !ok || first.Epoch != units.J2000 {
		t.Fatalf("expected first epoch J2000, got %v", first.Epoch)
	}
	last, ok := h.Last()
	if !ok || last.Epoch != units.J2000+2 {
		t.Fatalf("expected last epoch J2000+2, got %v", last.Epoch)
	}

	mid, ok := h.Closest(units.J2000 + 0.5)
	if !ok {
		t.Fatal("expected closest to succeed")
	}
	x := mid.Elements.(elements.Cartesian).R[0]
	if x != 5 {
		t.Errorf("expected interpolated x=5, got %v", x)
	}
}

func TestHistoryOverwriteSameEpoch(t *testing.T) {
	sys := bodies.System{Central: bodies.Earth}
	h := NewHistory()
	h.Put(New(units.J2000, elements.NewCartesian([3]float64{1, 0, 0}, [3]float64{}), sys))
	h.Put(New(units.J2000, elements.NewCartesian([3]float64{2, 0, 0}, [3]float64{}), sys))

	if h.Len() != 1 {
		t.Fatalf("expected a single entry for duplicate epoch, got %d", h.Len())
	}
	s, _ := h.At(units.J2000)
	if s.Elements.(elements.Cartesian).R[0] != 2 {
		t.Error("expected later write to win")
	}
}

func TestBasicVehicleDefaults(t *testing.T) {
	v := NewBasic("probe", 500, State{})
	if v.RamArea() != 0 || v.LiftArea() != 0 || v.SolarArea() != 0 {
		t.Error("expected zero-area defaults")
	}
	if v.Cd() != 0 || v.Cl() != 0 || v.Cr() != 0 {
		t.Error("expected zero-coefficient defaults")
	}
	if v.Mass(units.J2000) != 500 {
		t.Errorf("expected dry mass 500, got %v", v.Mass(units.J2000))
	}
}
