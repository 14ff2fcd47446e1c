// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/katalvlaran/fibermodes/fiber"
)

// UParameter computes the dimensionless radial argument of layer l at
// radius r for a trial effective index:
//
//	u = k₀ · r · sqrt(|n² − neff²|)
//
// (the U parameter in the oscillatory regime, W in the evanescent one).
// An undefined layer index is reported, not defaulted.
func UParameter(l fiber.Layer, r, neff float64, w fiber.Wavelength) (float64, error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return 0, ErrUndefinedIndex
	}
	return w.K0() * r * math.Sqrt(math.Abs(n*n-neff*neff)), nil
}

// Psi evaluates the scalar radial function ψ and its scaled derivative
// ψ̇ = u·dψ/du at radius r of layer l, for the LP coefficient pair c over
// the layer's basis:
//
//	ψ  = c₀·B₁(u) + c₁·B₂(u)
//	ψ̇ = u·(c₀·B₁'(u) + c₁·B₂'(u))
//
// with (B₁,B₂) = (Jν,Yν) or (Iν,Kν) per regime. A zero c₁ skips the
// singular member entirely, so the innermost layer never touches Y or K.
func Psi(l fiber.Layer, r, neff float64, w fiber.Wavelength, nu int, c [2]float64) (psi, psip float64, err error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return 0, 0, ErrUndefinedIndex
	}
	u, err := UParameter(l, r, neff, w)
	if err != nil {
		return 0, 0, err
	}
	bs := bessel.BasisFor(neff, n, nu)
	if c[1] != 0 {
		psi = c[0]*bs.First(u) + c[1]*bs.Second(u)
		psip = u * (c[0]*bs.FirstPrime(u) + c[1]*bs.SecondPrime(u))
		return psi, psip, nil
	}
	psi = c[0] * bs.First(u)
	psip = u * c[0] * bs.FirstPrime(u)
	return psi, psip, nil
}

// LPTransfer maps the scalar continuity pair a = (ψ, ψ̇) imposed at layer
// l's inner interface (radius r) into l's own coefficient pair, using the
// closed-form inverse of the 2×2 basis system. The Wronskians of the two
// basis pairs reduce the inversion to:
//
//	oscillatory: c₀ = π/2·(u·Y'·a₀ − Y·a₁),  c₁ = π/2·(J·a₁ − u·J'·a₀)
//	evanescent:  c₀ = u·K'·a₀ − K·a₁,        c₁ = I·a₁ − u·I'·a₀
//
// The π/2 factor cancels the oscillatory Wronskian exactly; the
// evanescent branch reproduces the pair scaled by −1 (its Wronskian is
// −1/x), which the characteristic's roots are insensitive to.
func LPTransfer(l fiber.Layer, r, neff float64, w fiber.Wavelength, nu int, a [2]float64) ([2]float64, error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return [2]float64{}, ErrUndefinedIndex
	}
	u, err := UParameter(l, r, neff, w)
	if err != nil {
		return [2]float64{}, err
	}
	bs := bessel.BasisFor(neff, n, nu)
	if bs.Kind == bessel.Oscillatory {
		return [2]float64{
			math.Pi / 2 * (u*bs.SecondPrime(u)*a[0] - bs.Second(u)*a[1]),
			math.Pi / 2 * (bs.First(u)*a[1] - u*bs.FirstPrime(u)*a[0]),
		}, nil
	}
	return [2]float64{
		u*bs.SecondPrime(u)*a[0] - bs.Second(u)*a[1],
		bs.First(u)*a[1] - u*bs.FirstPrime(u)*a[0],
	}, nil
}
