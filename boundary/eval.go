// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/katalvlaran/fibermodes/fiber"
)

// EvalFields evaluates the tangential field sample at radius r inside
// layer l from the layer's coefficient vector c. The coefficients are
// normalized against the basis values at rnorm (the interface radius the
// matcher solved them at), so the same ratio conditioning used during
// propagation applies here.
//
// On the fiber axis the ν ≠ 0 basis members vanish and the azimuthal
// components are taken from the exact small-argument limits; Jν(u)/u and
// J'ν(u) both tend to 1/2 for ν = 1 and to 0 for higher orders.
func EvalFields(l fiber.Layer, rnorm, r, neff float64, w fiber.Wavelength, nu int, c [4]float64) (fiber.FieldSample, error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return fiber.FieldSample{}, ErrUndefinedIndex
	}
	uR, err := UParameter(l, r, neff, w)
	if err != nil {
		return fiber.FieldSample{}, err
	}
	uN, err := UParameter(l, rnorm, neff, w)
	if err != nil {
		return fiber.FieldSample{}, err
	}
	if uN == 0 {
		// Degenerate normalization radius: only the axial limits survive.
		return fiber.FieldSample{Ez: c[0] + c[1], Hz: c[2] + c[3]}, nil
	}
	bs := bessel.BasisFor(neff, n, nu)

	c1 := w.K0() * rnorm / uN
	if bs.Kind == bessel.Evanescent {
		c1 = -c1
	}
	c3 := fiber.Eta0 * c1
	c4 := fiber.Y0 * n * n * c1

	if uR == 0 && nu != 0 {
		b1n := bs.First(uN)
		if b1n == 0 {
			return fiber.FieldSample{}, ErrSingularBasis
		}
		lim := 0.0
		if nu == 1 {
			lim = 0.5
		}
		f3 := lim / b1n
		cross := neff * float64(nu) * c1 * lim / b1n
		return fiber.FieldSample{
			EPhi: cross*c[0] - c3*f3*c[2],
			HPhi: c4*f3*c[0] - cross*c[2],
		}, nil
	}

	var f1, f2, f3, f4 float64
	if c[0] != 0 || c[2] != 0 {
		b1n := bs.First(uN)
		if b1n == 0 {
			return fiber.FieldSample{}, ErrSingularBasis
		}
		f1 = bs.First(uR) / b1n
		f3 = bs.FirstPrime(uR) / b1n
	}
	if c[1] != 0 || c[3] != 0 {
		b2n := bs.Second(uN)
		if b2n == 0 {
			return fiber.FieldSample{}, ErrSingularBasis
		}
		f2 = bs.Second(uR) / b2n
		f4 = bs.SecondPrime(uR) / b2n
	}

	c2 := 0.0
	if nu != 0 {
		c2 = neff * float64(nu) / uR * c1
	}

	var s fiber.FieldSample
	s.Ez = f1*c[0] + f2*c[1]
	s.Hz = f1*c[2] + f2*c[3]
	s.EPhi = c2*s.Ez - c3*(f3*c[2]+f4*c[3])
	s.HPhi = c4*(f3*c[0]+f4*c[1]) - c2*s.Hz
	return s, nil
}
