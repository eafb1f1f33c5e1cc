package access

import (
	"math"
	"math/rand"
	"testing"

	"github.com/astrolib/smd/bodies"
)

func TestMeasureOverheadIsHighElevation(t *testing.T) {
	gs := NewGroundStation("equator", 0, 0, 0, bodies.Earth)
	noise, ok := NewNoiseModel(0, 0, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("expected noise model construction to succeed")
	}

	// At thetaGMST=0 the station sits on the +X axis; a vehicle directly
	// overhead (further out along +X) should read ~90 degrees elevation.
	r := bodies.Earth.EquatorialRadius.Km() + 500
	m := Measure(gs, 0, 0, [3]float64{r, 0, 0}, [3]float64{0, 1, 0}, noise)

	if !m.Visible {
		t.Error("expected overhead vehicle to be visible")
	}
	if math.Abs(m.Range-500) > 1e-6 {
		t.Errorf("expected range ~500 km, got %v", m.Range)
	}
}

func TestMeasureBelowHorizonNotVisible(t *testing.T) {
	gs := NewGroundStation("equator", 0, 0, 0, bodies.Earth)
	noise, _ := NewNoiseModel(0, 0, rand.New(rand.NewSource(1)))

	// A vehicle on the opposite side of Earth, behind the station's local
	// horizon, must read a negative elevation and be marked not visible.
	stationRadius := bodies.Earth.EquatorialRadius.Km()
	far := stationRadius + 500
	m := Measure(gs, 0, 5, [3]float64{-far, 0, 0}, [3]float64{0, -1, 0}, noise)

	if m.Visible {
		t.Error("expected far-side vehicle to be below the horizon")
	}
}

func TestHTildeRangeRow(t *testing.T) {
	gs := NewGroundStation("equator", 0, 0, 0, bodies.Earth)
	noise, _ := NewNoiseModel(0, 0, rand.New(rand.NewSource(1)))
	m := Measure(gs, 0, 0, [3]float64{bodies.Earth.EquatorialRadius.Km() + 500, 0, 0}, [3]float64{0, 1, 0}, noise)

	h := m.HTilde(6)
	rows, cols := h.Dims()
	if rows != 2 || cols != 6 {
		t.Fatalf("expected a 2x6 HTilde, got %dx%d", rows, cols)
	}
	// d(range)/dx should be a unit vector component, i.e. in [-1, 1].
	if v := h.At(0, 0); v < -1 || v > 1 {
		t.Errorf("expected d(range)/dx in [-1,1], got %v", v)
	}
}
