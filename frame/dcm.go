package frame

import (
	"fmt"

	"github.com/astrolib/smd/units"
)

// raw3x3 is an unexported row-major 3x3 matrix, the payload behind every
// tagged DCM.
type raw3x3 [3][3]float64

func (m raw3x3) mulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m raw3x3) transpose() raw3x3 {
	var t raw3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func (m raw3x3) mul(n raw3x3) raw3x3 {
	var out raw3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

func identity3() raw3x3 {
	return raw3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// DCM is a direction-cosine matrix rotating vectors expressed in From into
// vectors expressed in To.
type DCM[From, To Tag] struct {
	m raw3x3
}

// Identity returns the identity DCM (From == To).
func Identity[From, To Tag]() DCM[From, To] {
	return DCM[From, To]{m: identity3()}
}

// Transpose returns the inverse rotation, tagged in the opposite direction.
func (d DCM[From, To]) Transpose() DCM[To, From] {
	return DCM[To, From]{m: d.m.transpose()}
}

// Raw returns the matrix rows, mostly for testing and diagnostics.
func (d DCM[From, To]) Raw() [3][3]float64 { return d.m }

// dcmProvider is a date-dependent source of rotation matrices. Stored
// type-erased in the registry; recovered with the correct tags by GetDCM.
type dcmProvider func(jd units.JulianDate) raw3x3

type registryKey struct{ from, to string }

var registry = map[registryKey]dcmProvider{}

// RegisterDCM installs a date-dependent provider rotating From into To. It
// panics if a provider for the reverse pair (To, From) is already
// registered -- the source's "static error" on double registration,
// reproduced here as an init-time panic since Go has no compile-time
// equivalent.
func RegisterDCM[From, To Tag](provider func(jd units.JulianDate) DCM[From, To]) {
	from, to := nameOf[From](), nameOf[To]()
	if from == to {
		panic(fmt.Sprintf("frame: cannot register a DCM from %s to itself", from))
	}
	if _, exists := registry[registryKey{to, from}]; exists {
		panic(fmt.Sprintf("frame: DCM already registered in the reverse direction (%s -> %s)", to, from))
	}
	if _, exists := registry[registryKey{from, to}]; exists {
		panic(fmt.Sprintf("frame: DCM already registered (%s -> %s)", from, to))
	}
	registry[registryKey{from, to}] = func(jd units.JulianDate) raw3x3 {
		return provider(jd).m
	}
}

// GetDCM resolves the rotation from From to To at the given date.
//
//   - From == To: identity.
//   - A direct registration exists: call it.
//   - Only the reverse registration exists: call it and transpose.
//   - Neither exists: panic (the "static error" of the source, performed
//     here at first use instead of at compile time).
func GetDCM[From, To Tag](jd units.JulianDate) DCM[From, To] {
	from, to := nameOf[From](), nameOf[To]()
	if from == to {
		return Identity[From, To]()
	}
	if p, ok := registry[registryKey{from, to}]; ok {
		return DCM[From, To]{m: p(jd)}
	}
	if p, ok := registry[registryKey{to, from}]; ok {
		return DCM[From, To]{m: p(jd).transpose()}
	}
	mismatchPanic(from, to)
	panic("unreachable")
}
