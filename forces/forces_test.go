package forces

import (
	"math"
	"strings"
	"testing"

	"github.com/astrolib/smd/frame"
	"github.com/astrolib/smd/units"
)

func TestTwoBodyPointsTowardOrigin(t *testing.T) {
	tb := TwoBody{Mu: 398600.4418}
	a := tb.Acceleration([3]float64{7000, 0, 0}, [3]float64{0, 0, 0}, units.J2000)
	if a[0] >= 0 {
		t.Errorf("expected acceleration pointing toward origin (negative x), got %v", a[0])
	}
	if a[1] != 0 || a[2] != 0 {
		t.Errorf("expected no y/z component, got %v %v", a[1], a[2])
	}
}

func TestOblatenessJ2MatchesClosedForm(t *testing.T) {
	o := Oblateness[frame.EarthICRF, frame.EarthFixed]{Mu: 398600.4418, EquatorialRadius: 6378.1363, J2: 1082.6269e-6}
	r := [3]float64{7000, 100, 200}
	a := o.Acceleration(r, [3]float64{}, units.J2000)
	if norm(a) == 0 {
		t.Fatal("expected nonzero J2 acceleration")
	}
}

func TestOblatenessDegreeAboveTwoRotatesIntoFixedFrame(t *testing.T) {
	// n=3 introduces a tesseral (m>0) term, which only makes sense evaluated
	// against the body-fixed longitude -- exercising the N x M path the
	// closed-form J2 branch never reaches.
	csv := "n,m,Cnm,Snm\n2,0,-0.001082,0\n3,1,0.0000020,0.0000003\n"
	table, err := LoadHarmonicsTable(strings.NewReader(csv), false)
	if err != nil {
		t.Fatal(err)
	}
	if table.Degree() != 3 {
		t.Fatalf("expected degree 3, got %d", table.Degree())
	}

	o := Oblateness[frame.EarthICRF, frame.EarthFixed]{
		Mu: 398600.4418, EquatorialRadius: 6378.1363, J2: 1082.6269e-6, Harmonics: table,
	}
	r := [3]float64{7000, 100, 200}
	a1 := o.Acceleration(r, [3]float64{}, units.J2000)
	if norm(a1) == 0 {
		t.Fatal("expected nonzero acceleration from the N x M path")
	}

	// Evaluated at a different epoch, Earth's rotation moves the body-fixed
	// longitude under the same inertial r, so a tesseral term's contribution
	// must differ -- a spherical (non-rotating) longitude would give the
	// same acceleration at every epoch.
	later := units.JulianDate(units.J2000 + 0.25)
	a2 := o.Acceleration(r, [3]float64{}, later)
	if a1 == a2 {
		t.Error("expected the tesseral term to vary with Earth's rotation between epochs")
	}
}

func TestNormalizationFactorMatchesKnownValues(t *testing.T) {
	// N_20 = sqrt(5), N_11 = sqrt(3).
	if got := normalizationFactor(2, 0); math.Abs(got-math.Sqrt(5)) > 1e-12 {
		t.Errorf("N_20 = %v, want sqrt(5)", got)
	}
	if got := normalizationFactor(1, 1); math.Abs(got-math.Sqrt(3)) > 1e-12 {
		t.Errorf("N_11 = %v, want sqrt(3)", got)
	}
}

func TestHarmonicsTableGetConvertsUnnormalized(t *testing.T) {
	csv := "n,m,Cnm,Snm\n2,0,-0.001082,0\n"
	table, err := LoadHarmonicsTable(strings.NewReader(csv), false)
	if err != nil {
		t.Fatal(err)
	}
	c := table.Get(2, 0)
	want := -0.001082 / math.Sqrt(5)
	if math.Abs(c.Cnm-want) > 1e-12 {
		t.Errorf("expected unnormalized C20 converted by N_20, got %v want %v", c.Cnm, want)
	}

	normalizedTable, err := LoadHarmonicsTable(strings.NewReader(csv), true)
	if err != nil {
		t.Fatal(err)
	}
	cn := normalizedTable.Get(2, 0)
	if cn.Cnm != -0.001082 {
		t.Errorf("expected already-normalized table to pass Cnm through unchanged, got %v", cn.Cnm)
	}
}

func TestAtmosphereDensityDecreasesWithAltitude(t *testing.T) {
	low := EarthAtmosphere.Density(200)
	high := EarthAtmosphere.Density(500)
	if high >= low {
		t.Errorf("expected density to decrease with altitude: %v at 200km, %v at 500km", low, high)
	}
}

func TestHarmonicsTableLoad(t *testing.T) {
	csv := "n,m,Cnm,Snm\n2,0,-0.001082,0\n2,2,0.0000024,0.0000014\n"
	table, err := LoadHarmonicsTable(strings.NewReader(csv), true)
	if err != nil {
		t.Fatal(err)
	}
	if table.Degree() != 2 {
		t.Errorf("expected degree 2, got %d", table.Degree())
	}
	c := table.Get(2, 2)
	if c.Cnm != 0.0000024 {
		t.Errorf("expected Cnm 0.0000024, got %v", c.Cnm)
	}
}

func TestDragUsesGeodeticAltitude(t *testing.T) {
	d := Drag{
		EquatorialRadius: 6378.1363,
		PolarRadius:      6356.7516,
		Atmosphere:       EarthAtmosphere,
		Cd:               2.2,
		Area:             units.Length2FromMeters2(10),
		Mass:             100,
	}

	// Same spherical |r| (7000 km), but one near the equator (where the
	// ellipsoid's equatorial bulge shortens the true altitude relative to
	// a sphere) and one near the pole (where it lengthens it) -- a
	// spherical altitude model would treat both identically.
	equatorial := [3]float64{7000, 0, 0}
	polar := [3]float64{0, 0, 7000}
	v := [3]float64{0, 7.5, 0}

	aEq := d.Acceleration(equatorial, v, units.J2000)
	aPolar := d.Acceleration(polar, v, units.J2000)
	if norm(aEq) == norm(aPolar) {
		t.Error("expected geodetic altitude to differ between equatorial and polar points at the same |r|")
	}
}

func TestShadowClassification(t *testing.T) {
	sunPos := [3]float64{-1.496e8, 0, 0} // Sun far in -x direction
	occultingRadius := units.Length(6378.1363)
	sunRadius := units.Length(695700)

	// Deep behind Earth on the anti-sun side, close to the shadow axis.
	behind := [3]float64{7000, 0, 0}
	if s := Shadow(behind, sunPos, occultingRadius, sunRadius); s != Umbra {
		t.Errorf("expected Umbra directly behind Earth, got %v", s)
	}

	// On the sun-facing side.
	front := [3]float64{-7000, 0, 0}
	if s := Shadow(front, sunPos, occultingRadius, sunRadius); s != Sunlit {
		t.Errorf("expected Sunlit on sun-facing side, got %v", s)
	}
}

func TestThirdBodyZeroAtCentral(t *testing.T) {
	tb := ThirdBody{Mu: 4902.800066, Position: [3]float64{384400, 0, 0}}
	a := tb.Acceleration([3]float64{0, 0, 0}, [3]float64{}, units.J2000)
	if math.Abs(a[0])+math.Abs(a[1])+math.Abs(a[2]) > 1e-15 {
		t.Errorf("expected ~zero net perturbation at the central body itself, got %v", a)
	}
}
