// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/katalvlaran/fibermodes/boundary"
	"github.com/katalvlaran/fibermodes/fiber"
)

// ReconstructFields materializes the field sample of a solved mode at
// radius r: the boundary matcher is re-run up to the layer containing r
// and the layer's coefficient vector is evaluated there. For the hybrid
// families the two independent solutions are combined with the mode's
// mixing ratio α. LP modes are scalar: ψ(r) is returned in the Ez slot
// with the remaining components zero.
//
// The effective index must lie strictly inside the stack's guided range;
// anything else is ErrInvalidNeff. r = 0 is served by the closed-form
// axis limits, never a division error.
func ReconstructFields(sol ModeSolution, w fiber.Wavelength, s fiber.Stack, r float64) (fiber.FieldSample, error) {
	if err := w.Check(); err != nil {
		return fiber.FieldSample{}, err
	}
	if err := s.Validate(); err != nil {
		return fiber.FieldSample{}, err
	}
	if r < 0 {
		return fiber.FieldSample{}, ErrNegativeRadius
	}
	if !guidedRange(sol.Neff, w, s) {
		return fiber.FieldSample{}, ErrInvalidNeff
	}

	switch sol.Mode.Family {
	case fiber.LP:
		if sol.Mode.Nu < 0 {
			return fiber.FieldSample{}, ErrInvalidMode
		}
		return lpFields(s, w, sol.Mode.Nu, sol.Neff, r)
	case fiber.TE:
		if sol.Mode.Nu != 0 {
			return fiber.FieldSample{}, ErrInvalidMode
		}
		return tetmFields(s, w, sol.Neff, r, false)
	case fiber.TM:
		if sol.Mode.Nu != 0 {
			return fiber.FieldSample{}, ErrInvalidMode
		}
		return tetmFields(s, w, sol.Neff, r, true)
	case fiber.HE, fiber.EH:
		if sol.Mode.Nu < 1 {
			return fiber.FieldSample{}, ErrInvalidMode
		}
		return hybridFields(s, w, sol.Mode.Nu, sol.Neff, sol.Alpha, r)
	}
	return fiber.FieldSample{}, ErrInvalidMode
}

// lpFields evaluates the scalar ψ at radius r, carrying the coefficient
// pair through every interface below the target layer. In the unbounded
// cladding ψ decays on the K member from its last-interface value.
func lpFields(s fiber.Stack, w fiber.Wavelength, nu int, neff, r float64) (fiber.FieldSample, error) {
	idx := s.LayerAt(r)
	c := [2]float64{1, 0}
	for i := 1; i <= idx && i < len(s)-1; i++ {
		ri := s[i].RIn
		psi, psip, err := boundary.Psi(s[i-1], ri, neff, w, nu, c)
		if err != nil {
			return fiber.FieldSample{}, err
		}
		c, err = boundary.LPTransfer(s[i], ri, neff, w, nu, [2]float64{psi, psip})
		if err != nil {
			return fiber.FieldSample{}, err
		}
	}

	if idx < len(s)-1 {
		psi, _, err := boundary.Psi(s[idx], r, neff, w, nu, c)
		if err != nil {
			return fiber.FieldSample{}, err
		}
		return fiber.FieldSample{Ez: psi}, nil
	}

	rn := s[idx].RIn
	psi, _, err := boundary.Psi(s[idx-1], rn, neff, w, nu, c)
	if err != nil {
		return fiber.FieldSample{}, err
	}
	uR, err := boundary.UParameter(s[idx], r, neff, w)
	if err != nil {
		return fiber.FieldSample{}, err
	}
	uN, err := boundary.UParameter(s[idx], rn, neff, w)
	if err != nil {
		return fiber.FieldSample{}, err
	}
	return fiber.FieldSample{Ez: psi * bessel.K(nu, uR) / bessel.K(nu, uN)}, nil
}

// tetmFields rebuilds the ν = 0 coefficient chain down to the layer
// containing r and evaluates the field vector there.
func tetmFields(s fiber.Stack, w fiber.Wavelength, neff, r float64, tm bool) (fiber.FieldSample, error) {
	idx := s.LayerAt(r)
	var (
		eh  boundary.FieldVec
		c   boundary.Coeffs
		err error
	)
	for i := 0; i <= idx && i < len(s)-1; i++ {
		eh, c, err = boundary.PropagateTETM(s[i], s[i].RIn, s[i].ROut, neff, w, tm, eh)
		if err != nil {
			return fiber.FieldSample{}, err
		}
	}

	if idx < len(s)-1 {
		return boundary.EvalFields(s[idx], s[idx].ROut, r, neff, w, 0, [4]float64(c))
	}
	// Cladding: the decaying K member carries the interface amplitudes.
	cc := [4]float64{0, eh[0], 0, eh[1]}
	return boundary.EvalFields(s[idx], s[idx].RIn, r, neff, w, 0, cc)
}

// hybridFields does the same for ν ≠ 0, mixing the two independent
// solutions with α before evaluation.
func hybridFields(s fiber.Stack, w fiber.Wavelength, nu int, neff, alpha, r float64) (fiber.FieldSample, error) {
	idx := s.LayerAt(r)
	var (
		eh  boundary.FieldPair
		cs  boundary.HybridCoeffs
		err error
	)
	for i := 0; i <= idx && i < len(s)-1; i++ {
		eh, cs, err = boundary.PropagateHybrid(s[i], s[i].RIn, s[i].ROut, nu, neff, w, eh)
		if err != nil {
			return fiber.FieldSample{}, err
		}
	}

	if idx < len(s)-1 {
		var c [4]float64
		for k := range c {
			c[k] = cs[k][0] + alpha*cs[k][1]
		}
		return boundary.EvalFields(s[idx], s[idx].ROut, r, neff, w, nu, c)
	}
	c := [4]float64{
		0, eh[0][0] + alpha*eh[0][1],
		0, eh[1][0] + alpha*eh[1][1],
	}
	return boundary.EvalFields(s[idx], s[idx].RIn, r, neff, w, nu, c)
}
