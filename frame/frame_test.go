package frame

import (
	"math"
	"testing"

	"github.com/astrolib/smd/units"
)

func TestIdentityDCM(t *testing.T) {
	d := GetDCM[EarthICRF, EarthICRF](units.J2000)
	r := d.Raw()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if r[i][j] != want {
				t.Fatalf("identity[%d][%d] = %f, want %f", i, j, r[i][j], want)
			}
		}
	}
}

func TestGetDCMReverseTranspose(t *testing.T) {
	fwd := GetDCM[EarthICRF, EarthFixed](units.J2000)
	rev := GetDCM[EarthFixed, EarthICRF](units.J2000)
	prod := fwd.m.mul(rev.m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod[i][j]-want) > 1e-12 {
				t.Fatalf("fwd*rev[%d][%d] = %f, want %f", i, j, prod[i][j], want)
			}
		}
	}
}

func TestVectorAddNegateZero(t *testing.T) {
	v := NewPositionVector[EarthICRF](1, 2, 3)
	sum := v.Add(v.Negate())
	if sum.Norm().Km() != 0 {
		t.Fatalf("v + (-v) should be zero, got norm %f", sum.Norm().Km())
	}
}

func TestCrossOrthogonalToOperands(t *testing.T) {
	v := NewPositionVector[EarthICRF](1, 0, 0)
	w := NewPositionVector[EarthICRF](0, 1, 0)
	c := v.Cross(w)
	if math.Abs(c.Dot(v)) > 1e-12 || math.Abs(c.Dot(w)) > 1e-12 {
		t.Fatalf("cross product not orthogonal to operands")
	}
}

func TestUnitVectorNorm(t *testing.T) {
	v := NewPositionVector[EarthICRF](3, 4, 0)
	u := v.Unit()
	n := math.Sqrt(u.X*u.X + u.Y*u.Y + u.Z*u.Z)
	if math.Abs(n-1) > 1e-12 {
		t.Fatalf("unit vector norm = %f, want 1", n)
	}
}

func TestGMSTMonotonic(t *testing.T) {
	a := GMSTRadians(units.J2000)
	b := GMSTRadians(units.J2000.Add(units.Duration(3600)))
	if a == b {
		t.Fatalf("GMST did not advance over one hour")
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	const eq, pol = 6378.1363, 6356.7516
	want := Geodetic{LatRad: units.AngleFromDeg(33).Rad(), LonRad: units.AngleFromDeg(-12).Rad(), AltKm: 500}
	ecef := EllipsoidToECEF(want, eq, pol)
	got := ECEFToEllipsoid(ecef, eq, pol)
	if math.Abs(got.LatRad-want.LatRad) > 1e-8 || math.Abs(got.LonRad-want.LonRad) > 1e-8 || math.Abs(got.AltKm-want.AltKm) > 1e-6 {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}
