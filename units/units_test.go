package units

import (
	"math"
	"testing"
)

func TestLengthMeters(t *testing.T) {
	l := LengthFromMeters(1500)
	if math.Abs(l.Km()-1.5) > 1e-12 {
		t.Fatalf("expected 1.5 km, got %f", l.Km())
	}
}

func TestAngleWrap(t *testing.T) {
	a := Angle(-0.1).Wrap()
	if a.Rad() < 0 || a.Rad() >= 2*math.Pi {
		t.Fatalf("wrap out of range: %f", a.Rad())
	}
	b := AngleFromDeg(370).Wrap()
	if math.Abs(b.Deg()-10) > 1e-9 {
		t.Fatalf("expected 10 deg, got %f", b.Deg())
	}
}

func TestJulianDateArithmetic(t *testing.T) {
	d := Duration(86400)
	jd := J2000.Add(d)
	if math.Abs(float64(jd)-float64(J2000)-1) > 1e-9 {
		t.Fatalf("expected J2000+1, got %f", float64(jd))
	}
	back := jd.Sub(J2000)
	if math.Abs(back.Days()-1) > 1e-9 {
		t.Fatalf("expected 1 day duration, got %f", back.Days())
	}
}

func TestJulianCenturies(t *testing.T) {
	jd := J2000.Add(DurationFromDays(36525))
	c := jd.JulianCenturiesSinceJ2000()
	if math.Abs(c-1) > 1e-9 {
		t.Fatalf("expected 1 century, got %f", c)
	}
}
