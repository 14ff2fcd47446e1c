package bessel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/stretchr/testify/assert"
)

// TestI_ReferenceValues checks Iν against tabulated values.
func TestI_ReferenceValues(t *testing.T) {
	cases := []struct {
		nu   int
		x    float64
		want float64
	}{
		{0, 0, 1},
		{1, 0, 0},
		{3, 0, 0},
		{0, 1, 1.2660658777520084},
		{1, 1, 0.5651591039924851},
		{0, 5, 27.239871823604442},
	}
	for _, tc := range cases {
		got := bessel.I(tc.nu, tc.x)
		assert.InDelta(t, tc.want, got, math.Abs(tc.want)*1e-12+1e-14,
			"I(%d, %g)", tc.nu, tc.x)
	}
}

// TestK_ReferenceValues checks Kν against tabulated values on both sides
// of the series/quadrature crossover at x=1.
func TestK_ReferenceValues(t *testing.T) {
	cases := []struct {
		nu   int
		x    float64
		want float64
	}{
		{0, 1, 0.42102443824070834},
		{1, 1, 0.6019072301972346},
		{0, 5, 0.003691098334042594},
	}
	for _, tc := range cases {
		got := bessel.K(tc.nu, tc.x)
		assert.InDelta(t, tc.want, got, math.Abs(tc.want)*1e-11,
			"K(%d, %g)", tc.nu, tc.x)
	}
	assert.True(t, math.IsInf(bessel.K(0, 0), 1), "K diverges at the origin")
	assert.True(t, math.IsNaN(bessel.K(0, -1)), "K undefined for negative arguments")
}

// TestModified_Wronskian verifies Iν(x)Kν₊₁(x) + Iν₊₁(x)Kν(x) = 1/x,
// an exact identity that exercises every code path of I and K together.
func TestModified_Wronskian(t *testing.T) {
	for _, nu := range []int{0, 1, 2, 5, 9} {
		for _, x := range []float64{0.05, 0.4, 0.999, 1.001, 2.2, 7.3, 18, 45} {
			w := bessel.I(nu, x)*bessel.K(nu+1, x) + bessel.I(nu+1, x)*bessel.K(nu, x)
			assert.InDelta(t, 1/x, w, math.Abs(1/x)*1e-11,
				"Wronskian at nu=%d x=%g", nu, x)
		}
	}
}

// TestModified_Recurrence verifies Kν₊₁ − Kν₋₁ = (2ν/x)Kν and the
// symmetric I recurrence Iν₋₁ − Iν₊₁ = (2ν/x)Iν.
func TestModified_Recurrence(t *testing.T) {
	for _, nu := range []int{1, 2, 4} {
		for _, x := range []float64{0.3, 1.7, 6.5} {
			lhsK := bessel.K(nu+1, x) - bessel.K(nu-1, x)
			assert.InDelta(t, 2*float64(nu)/x*bessel.K(nu, x), lhsK,
				math.Abs(lhsK)*1e-10, "K recurrence nu=%d x=%g", nu, x)

			lhsI := bessel.I(nu-1, x) - bessel.I(nu+1, x)
			assert.InDelta(t, 2*float64(nu)/x*bessel.I(nu, x), lhsI,
				math.Abs(lhsI)*1e-10+1e-16, "I recurrence nu=%d x=%g", nu, x)
		}
	}
}

// TestDerivatives_LowOrder pins the ν=0 special cases.
func TestDerivatives_LowOrder(t *testing.T) {
	x := 1.3
	assert.InDelta(t, -math.J1(x), bessel.JPrime(0, x), 1e-15, "J0' = -J1")
	assert.InDelta(t, -math.Y1(x), bessel.YPrime(0, x), 1e-15, "Y0' = -Y1")
	assert.InDelta(t, bessel.I(1, x), bessel.IPrime(0, x), 1e-15, "I0' = I1")
	assert.InDelta(t, -bessel.K(1, x), bessel.KPrime(0, x), 1e-15, "K0' = -K1")
}

// TestDerivatives_FiniteDifference cross-checks all four derivatives
// against a central difference.
func TestDerivatives_FiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, nu := range []int{0, 1, 3} {
		for _, x := range []float64{0.8, 2.5, 6.0} {
			fd := func(f func(int, float64) float64) float64 {
				return (f(nu, x+h) - f(nu, x-h)) / (2 * h)
			}
			assert.InDelta(t, fd(bessel.J), bessel.JPrime(nu, x), 1e-6, "J' nu=%d x=%g", nu, x)
			assert.InDelta(t, fd(bessel.Y), bessel.YPrime(nu, x), 1e-6, "Y' nu=%d x=%g", nu, x)
			assert.InDelta(t, fd(bessel.I), bessel.IPrime(nu, x), math.Abs(bessel.IPrime(nu, x))*1e-6+1e-8, "I' nu=%d x=%g", nu, x)
			assert.InDelta(t, fd(bessel.K), bessel.KPrime(nu, x), math.Abs(bessel.KPrime(nu, x))*1e-6+1e-8, "K' nu=%d x=%g", nu, x)
		}
	}
}

// TestBasisFor selects the pair from the effective-index comparison.
func TestBasisFor(t *testing.T) {
	b := bessel.BasisFor(1.446, 1.448918, 1)
	assert.Equal(t, bessel.Oscillatory, b.Kind, "neff below layer index oscillates")
	assert.Equal(t, bessel.J(1, 2.0), b.First(2.0))
	assert.Equal(t, bessel.Y(1, 2.0), b.Second(2.0))
	assert.Equal(t, bessel.JPrime(1, 2.0), b.FirstPrime(2.0))

	b = bessel.BasisFor(1.446, 1.444418, 2)
	assert.Equal(t, bessel.Evanescent, b.Kind, "neff above layer index decays")
	assert.Equal(t, bessel.I(2, 2.0), b.First(2.0))
	assert.Equal(t, bessel.K(2, 2.0), b.Second(2.0))
	assert.Equal(t, bessel.KPrime(2, 2.0), b.SecondPrime(2.0))
}
