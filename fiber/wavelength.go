package fiber

import "math"

// Wavelength is an immutable vacuum wavelength with its derived wavenumber
// k₀ = 2π/λ, computed once at construction. Created once per solve request
// and passed by value through the evaluator chain.
type Wavelength struct {
	lambda float64
	k0     float64
}

// NewWavelength builds a Wavelength from a vacuum wavelength in meters.
// Non-positive or non-finite inputs yield a Wavelength whose K0 is NaN;
// solvers reject it up front via Check.
func NewWavelength(lambda float64) Wavelength {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Wavelength{lambda: lambda, k0: math.NaN()}
	}
	return Wavelength{lambda: lambda, k0: 2 * math.Pi / lambda}
}

// Lambda returns the vacuum wavelength in meters.
func (w Wavelength) Lambda() float64 { return w.lambda }

// K0 returns the vacuum wavenumber 2π/λ in rad/m.
func (w Wavelength) K0() float64 { return w.k0 }

// Check reports ErrNonPositiveWavelength when the wavelength is unusable.
func (w Wavelength) Check() error {
	if math.IsNaN(w.k0) {
		return ErrNonPositiveWavelength
	}
	return nil
}
