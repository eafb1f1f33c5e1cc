package forces

import (
	"math"

	"github.com/astrolib/smd/frame"
	"github.com/astrolib/smd/units"
)

// Oblateness is the non-spherical-gravity perturbation. When Harmonics is
// nil or has degree <= 2, it takes the closed-form J2-only expression
// (matching the source's Cartesian perturbation path); when a higher-degree
// table is loaded, it sums the full n,m spherical-harmonic series instead.
//
// The n,m (tesseral, m>0) terms are longitude-dependent, and longitude is
// only meaningful in a frame that rotates with the body -- so the full
// series is evaluated in the [From,To] body-fixed frame and its resulting
// acceleration rotated back, per Acceleration's inertial-frame contract.
// From is the central body's inertial frame and To its body-fixed frame
// (e.g. frame.EarthICRF, frame.EarthFixed); the closed-form J2 branch needs
// no such rotation, since it is symmetric about the rotation axis.
type Oblateness[From, To frame.Tag] struct {
	Mu               units.GravParam
	EquatorialRadius units.Length
	J2               float64
	Harmonics        *HarmonicsTable
}

// Name implements Model.
func (Oblateness[From, To]) Name() string { return "oblateness" }

// Acceleration implements Model.
func (o Oblateness[From, To]) Acceleration(r, _ [3]float64, jd units.JulianDate) [3]float64 {
	if o.Harmonics.Degree() <= 2 {
		return o.j2Closed(r)
	}
	dcm := frame.GetDCM[From, To](jd).Raw()
	rFixed := mulVec(dcm, r)
	aFixed := o.spherical(rFixed)
	return mulVec(transposeMat(dcm), aFixed)
}

// mulVec applies the row-major 3x3 matrix m to v.
func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func transposeMat(m [3][3]float64) [3][3]float64 {
	var t [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// j2Closed is the standard closed-form J2 acceleration (Vallado eq. 8-24),
// ported directly from the source's Perturbations.Perturb Cartesian branch.
func (o Oblateness[From, To]) j2Closed(r [3]float64) [3]float64 {
	rn := norm(r)
	z2 := r[2] * r[2]
	re := o.EquatorialRadius.Km()
	acc := -(3 * o.Mu.Value() * o.J2 * re * re) / (2 * math.Pow(rn, 5))
	return [3]float64{
		acc * r[0] * (1 - 5*z2/(rn*rn)),
		acc * r[1] * (1 - 5*z2/(rn*rn)),
		acc * r[2] * (3 - 5*z2/(rn*rn)),
	}
}

// spherical sums the gradient of the n,m spherical-harmonic disturbing
// potential up to the table's degree, using central finite differences of
// the potential along the body-fixed Cartesian x, y and z axes (the
// potential itself is evaluated in geocentric latitude, longitude and
// radius) -- an approach that trades closed-form partials (error-prone to
// transcribe correctly for every n,m) for a formula any reader can verify
// against the potential expression itself.
func (o Oblateness[From, To]) spherical(r [3]float64) [3]float64 {
	const h = 1e-3 // km, central-difference step
	gradient := func(i int) float64 {
		rp := r
		rm := r
		rp[i] += h
		rm[i] -= h
		return (o.potential(rp) - o.potential(rm)) / (2 * h)
	}
	// Acceleration is the gradient of the disturbing potential (the n >= 2
	// terms of U = GM/r + disturbing terms; the central GM/r term is left
	// to the two-body model), and force = +grad(U) in this sign convention
	// (U defined so that gravity pulls toward increasing U).
	return [3]float64{gradient(0), gradient(1), gradient(2)}
}

// potential evaluates the spherical-harmonic disturbing potential at r,
// expressed in the body-fixed frame (so that lon is the body-fixed
// longitude the tesseral terms are defined against), excluding the
// central GM/r term, using fully normalized associated Legendre functions
// against the table's own normalized-equivalent coefficients (see
// HarmonicsTable.Get).
func (o Oblateness[From, To]) potential(r [3]float64) float64 {
	rn := norm(r)
	re := o.EquatorialRadius.Km()
	lat := math.Asin(r[2] / rn)
	lon := math.Atan2(r[1], r[0])
	sinLat := math.Sin(lat)

	u := 0.0
	for n := 2; n <= o.Harmonics.Degree(); n++ {
		for m := 0; m <= n; m++ {
			c := o.Harmonics.Get(n, m)
			if c.Cnm == 0 && c.Snm == 0 {
				continue
			}
			p := normalizedAssociatedLegendre(n, m, sinLat)
			term := math.Pow(re/rn, float64(n)) * p * (c.Cnm*math.Cos(float64(m)*lon) + c.Snm*math.Sin(float64(m)*lon))
			u += (o.Mu.Value() / rn) * term
		}
	}
	return u
}

// normalizedAssociatedLegendre evaluates the fully normalized associated
// Legendre function Pbar_n^m(x) = N_nm * P_n^m(x), so it can be paired
// directly with coefficients already converted to the same normalized
// convention (HarmonicsTable.Get).
func normalizedAssociatedLegendre(n, m int, x float64) float64 {
	return normalizationFactor(n, m) * associatedLegendre(n, m, x)
}

// normalizationFactor returns N_nm = sqrt((2n+1)*(2-delta_m0)*(n-m)!/(n+m)!),
// computed as a running product over the ratio's surviving factors rather
// than the factorials themselves, since (n+m)! overflows long before N_nm
// does for any degree this table format is used at.
func normalizationFactor(n, m int) float64 {
	factor := 2.0
	if m == 0 {
		factor = 1.0
	}
	ratio := 1.0
	for k := n - m + 1; k <= n+m; k++ {
		ratio *= float64(k)
	}
	return math.Sqrt(float64(2*n+1) * factor / ratio)
}

// associatedLegendre evaluates the unnormalized associated Legendre
// function P_n^m(x) via the standard upward recursion on n for fixed m,
// seeded from the closed forms for P_m^m and P_{m+1}^m: a sectoral seed
// (n==m), the semi-sectoral step (n==m+1), and the three-term recurrence
// for n >= m+2.
func associatedLegendre(n, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if n == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if n == m+1 {
		return pmmp1
	}
	var pnn float64
	pll, plm1 := pmmp1, pmm
	for ll := m + 2; ll <= n; ll++ {
		pnn = (x*float64(2*ll-1)*pll - float64(ll+m-1)*plm1) / float64(ll-m)
		plm1 = pll
		pll = pnn
	}
	return pnn
}
