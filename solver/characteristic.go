// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"math"

	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/katalvlaran/fibermodes/boundary"
	"github.com/katalvlaran/fibermodes/fiber"
)

// charError maps evaluator failures onto the numeric sentinels the root
// scan understands: an undefined index is NaN (excluded from sign-change
// detection), a singular boundary system is +Inf (a pole, rejected by the
// discontinuity test).
func charError(err error) float64 {
	if errors.Is(err, boundary.ErrSingularBasis) || errors.Is(err, boundary.ErrSingularSystem) {
		return math.Inf(1)
	}
	return math.NaN()
}

// SolveCharacteristic evaluates the dispersion mismatch of mode m at the
// trial effective index neff. The value is zero exactly when the boundary
// conditions are simultaneously satisfiable at every interface with a
// nontrivial field; NaN flags undefined inputs, ±Inf a pole. Pure: two
// calls with identical inputs are bit-identical.
func SolveCharacteristic(neff float64, w fiber.Wavelength, m fiber.Mode, s fiber.Stack) float64 {
	if w.Check() != nil || s.Validate() != nil {
		return math.NaN()
	}
	switch m.Family {
	case fiber.LP:
		return lpChar(s, w, m.Nu, neff)
	case fiber.TE:
		if m.Nu != 0 {
			return math.NaN()
		}
		return tetmChar(s, w, neff, false)
	case fiber.TM:
		if m.Nu != 0 {
			return math.NaN()
		}
		return tetmChar(s, w, neff, true)
	case fiber.HE, fiber.EH:
		if m.Nu < 1 {
			return math.NaN()
		}
		v, _ := hybridChar(s, w, m.Nu, neff)
		return v
	}
	return math.NaN()
}

// lpChar is the scalar characteristic: the LP coefficient pair is carried
// outward layer by layer (innermost starts on the regular member alone),
// and the mismatch is the defect of ψ̇/ψ continuity against the decaying
// K solution of the unbounded cladding.
func lpChar(s fiber.Stack, w fiber.Wavelength, nu int, neff float64) float64 {
	c := [2]float64{1, 0}
	for i := 1; i < len(s)-1; i++ {
		r := s[i].RIn
		psi, psip, err := boundary.Psi(s[i-1], r, neff, w, nu, c)
		if err != nil {
			return charError(err)
		}
		c, err = boundary.LPTransfer(s[i], r, neff, w, nu, [2]float64{psi, psip})
		if err != nil {
			return charError(err)
		}
	}

	clad := s[len(s)-1]
	r := clad.RIn
	psi, psip, err := boundary.Psi(s[len(s)-2], r, neff, w, nu, c)
	if err != nil {
		return charError(err)
	}
	u, err := boundary.UParameter(clad, r, neff, w)
	if err != nil {
		return charError(err)
	}
	return psip - u*bessel.KPrime(nu, u)/bessel.K(nu, u)*psi
}

// tetmChar is the ν = 0 characteristic for both transverse classes: the
// field vector is propagated to the last finite interface and closed
// against the cladding's K-solution relation for the matched pair.
func tetmChar(s fiber.Stack, w fiber.Wavelength, neff float64, tm bool) float64 {
	var eh boundary.FieldVec
	var err error
	for i := 0; i < len(s)-1; i++ {
		eh, _, err = boundary.PropagateTETM(s[i], s[i].RIn, s[i].ROut, neff, w, tm, eh)
		if err != nil {
			return charError(err)
		}
	}

	clad := s[len(s)-1]
	r := clad.RIn
	n := clad.Index(w)
	if math.IsNaN(n) {
		return math.NaN()
	}
	u, err := boundary.UParameter(clad, r, neff, w)
	if err != nil {
		return charError(err)
	}
	ratio := bessel.K(1, u) / bessel.K(0, u)
	if tm {
		return eh[3] - fiber.Y0*n*n*(w.K0()*r/u)*ratio*eh[0]
	}
	return eh[2] + fiber.Eta0*(w.K0()*r/u)*ratio*eh[1]
}

// hybridChar is the ν ≠ 0 characteristic: both independent solutions are
// propagated to the last finite interface, each column's azimuthal defect
// against the cladding relation is formed, and the mismatch is the
// determinant of the resulting 2×2 defect block. alpha is the column
// mixing ratio annihilating the defect, meaningful at a root.
func hybridChar(s fiber.Stack, w fiber.Wavelength, nu int, neff float64) (char, alpha float64) {
	var eh boundary.FieldPair
	var err error
	for i := 0; i < len(s)-1; i++ {
		eh, _, err = boundary.PropagateHybrid(s[i], s[i].RIn, s[i].ROut, nu, neff, w, eh)
		if err != nil {
			return charError(err), 0
		}
	}

	clad := s[len(s)-1]
	r := clad.RIn
	n := clad.Index(w)
	if math.IsNaN(n) {
		return math.NaN(), 0
	}
	u, err := boundary.UParameter(clad, r, neff, w)
	if err != nil {
		return charError(err), 0
	}
	f4 := bessel.KPrime(nu, u) / bessel.K(nu, u)
	c1 := -w.K0() * r / u
	c2 := neff * float64(nu) / u * c1
	c3 := fiber.Eta0 * c1
	c4 := fiber.Y0 * n * n * c1

	var e, h [2]float64
	for j := 0; j < 2; j++ {
		e[j] = eh[2][j] - (c2*eh[0][j] - c3*f4*eh[1][j])
		h[j] = eh[3][j] - (c4*f4*eh[0][j] - c2*eh[1][j])
	}

	char = e[0]*h[1] - e[1]*h[0]
	if e[1] != 0 {
		alpha = -e[0] / e[1]
	} else if h[1] != 0 {
		alpha = -h[0] / h[1]
	}
	return char, alpha
}
