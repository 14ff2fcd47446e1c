// SPDX-License-Identifier: MIT

package boundary

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fibermodes/bessel"
	"github.com/katalvlaran/fibermodes/fiber"
)

// PropagateTETM carries a ν = 0 field vector across layer l: it derives
// the layer's coefficient vector from the field vector eh imposed at the
// inner interface (or initializes it directly for the innermost layer,
// where the singular basis member is excluded by construction), then
// evaluates the field vector at the outer interface.
//
// tm selects the transverse-magnetic class (Ez/Hφ continuity); otherwise
// the transverse-electric class (Hz/Eφ) is matched.
func PropagateTETM(l fiber.Layer, rin, rout, neff float64, w fiber.Wavelength, tm bool, eh FieldVec) (FieldVec, Coeffs, error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return FieldVec{}, Coeffs{}, ErrUndefinedIndex
	}

	var c Coeffs
	switch {
	case rin == 0:
		// Unit excitation of the regular member only.
		if tm {
			c[0] = 1
		} else {
			c[2] = 1
		}
	case tm:
		sol, err := tetmConstants(l, rin, rout, neff, w, [2]float64{eh[0], eh[3]}, fiber.Y0*n*n)
		if err != nil {
			return FieldVec{}, Coeffs{}, err
		}
		c[0], c[1] = sol[0], sol[1]
	default:
		sol, err := tetmConstants(l, rin, rout, neff, w, [2]float64{eh[1], eh[2]}, -fiber.Eta0)
		if err != nil {
			return FieldVec{}, Coeffs{}, err
		}
		c[2], c[3] = sol[0], sol[1]
	}

	out, err := interfaceFields(l, rout, neff, w, 0, [4]float64(c))
	if err != nil {
		return FieldVec{}, Coeffs{}, err
	}
	return out, c, nil
}

// PropagateHybrid carries the two independent hybrid solutions (ν ≠ 0)
// across layer l. The innermost layer is initialized with the two unit
// excitations (Ez and Hz); any other layer solves the 4×4 continuity
// system against the imposed field block.
func PropagateHybrid(l fiber.Layer, rin, rout float64, nu int, neff float64, w fiber.Wavelength, eh FieldPair) (FieldPair, HybridCoeffs, error) {
	n := l.Index(w)
	if math.IsNaN(n) {
		return FieldPair{}, HybridCoeffs{}, ErrUndefinedIndex
	}

	var c HybridCoeffs
	if rin == 0 {
		c[0][0] = 1 // Ez excitation
		c[2][1] = 1 // Hz excitation
	} else {
		var err error
		c, err = hybridConstants(l, rin, rout, nu, neff, w, eh)
		if err != nil {
			return FieldPair{}, HybridCoeffs{}, err
		}
	}

	var out FieldPair
	for j := 0; j < 2; j++ {
		col, err := interfaceFields(l, rout, neff, w, nu,
			[4]float64{c[0][j], c[1][j], c[2][j], c[3][j]})
		if err != nil {
			return FieldPair{}, HybridCoeffs{}, err
		}
		out[0][j], out[1][j], out[2][j], out[3][j] = col[0], col[1], col[2], col[3]
	}
	return out, c, nil
}

// interfaceFields evaluates the tangential field 4-vector at layer l's
// outer interface from the layer's coefficient vector. Singular-member
// ratios are only formed when a singular-member coefficient is present.
func interfaceFields(l fiber.Layer, rout, neff float64, w fiber.Wavelength, nu int, c [4]float64) (FieldVec, error) {
	n := l.Index(w)
	u, err := UParameter(l, rout, neff, w)
	if err != nil {
		return FieldVec{}, err
	}
	if u == 0 {
		return FieldVec{}, ErrSingularSystem
	}
	bs := bessel.BasisFor(neff, n, nu)

	c1 := w.K0() * rout / u
	if bs.Kind == bessel.Evanescent {
		c1 = -c1
	}
	c2 := 0.0
	if nu != 0 {
		c2 = neff * float64(nu) / u * c1
	}
	c3 := fiber.Eta0 * c1
	c4 := fiber.Y0 * n * n * c1

	var f3t1, f4t1, f3t2, f4t2 float64 // derivative-ratio terms per class
	if c[0] != 0 || c[2] != 0 {
		b1 := bs.First(u)
		if b1 == 0 {
			return FieldVec{}, ErrSingularBasis
		}
		f3 := bs.FirstPrime(u) / b1
		f3t1, f3t2 = f3*c[0], f3*c[2]
	}
	if c[1] != 0 || c[3] != 0 {
		b2 := bs.Second(u)
		if b2 == 0 {
			return FieldVec{}, ErrSingularBasis
		}
		f4 := bs.SecondPrime(u) / b2
		f4t1, f4t2 = f4*c[1], f4*c[3]
	}

	var out FieldVec
	out[0] = c[0] + c[1]
	out[1] = c[2] + c[3]
	out[2] = c2*out[0] - c3*(f3t2+f4t2)
	out[3] = c4*(f3t1+f4t1) - c2*out[1]
	return out, nil
}

// tetmConstants solves the 2×2 continuity system of a ν = 0 interior
// layer: rhs is the (electric, magnetic) pair imposed at the inner radius,
// cc the class constant (Y₀·n² for TM, −η₀ for TE). Basis values are
// ratioed against the outer-radius values for conditioning.
func tetmConstants(l fiber.Layer, rin, rout, neff float64, w fiber.Wavelength, rhs [2]float64, cc float64) ([2]float64, error) {
	n := l.Index(w)
	u, err := UParameter(l, rout, neff, w)
	if err != nil {
		return [2]float64{}, err
	}
	urp, err := UParameter(l, rin, neff, w)
	if err != nil {
		return [2]float64{}, err
	}
	if u == 0 {
		return [2]float64{}, ErrSingularSystem
	}
	bs := bessel.BasisFor(neff, n, 0)
	b1, b2 := bs.First(u), bs.Second(u)
	if b1 == 0 || b2 == 0 {
		return [2]float64{}, ErrSingularBasis
	}

	f1 := bs.First(urp) / b1
	f2 := bs.Second(urp) / b2
	f3 := bs.FirstPrime(urp) / b1
	f4 := bs.SecondPrime(urp) / b2
	c1 := w.K0() * rout / u
	if bs.Kind == bessel.Evanescent {
		c1 = -c1
	}
	c3 := cc * c1

	a := mat.NewDense(2, 2, []float64{
		f1, f2,
		f3 * c3, f4 * c3,
	})
	if !finiteEntries(a) {
		return [2]float64{}, ErrSingularSystem
	}
	b := mat.NewVecDense(2, []float64{rhs[0], rhs[1]})
	var x mat.VecDense
	if err := mapSolveErr(x.SolveVec(a, b)); err != nil {
		return [2]float64{}, err
	}
	return [2]float64{x.AtVec(0), x.AtVec(1)}, nil
}

// hybridConstants solves the 4×4 continuity system of a ν ≠ 0 interior
// layer for both independent hybrid solutions at once (two right-hand
// sides). A vanishing outer-radius argument falls back to the exact
// closed-form limit of the regular-member ratios (ratio → 1) instead of
// dividing by a vanishing basis value.
func hybridConstants(l fiber.Layer, rin, rout float64, nu int, neff float64, w fiber.Wavelength, eh FieldPair) (HybridCoeffs, error) {
	n := l.Index(w)
	u, err := UParameter(l, rout, neff, w)
	if err != nil {
		return HybridCoeffs{}, err
	}
	urp, err := UParameter(l, rin, neff, w)
	if err != nil {
		return HybridCoeffs{}, err
	}
	bs := bessel.BasisFor(neff, n, nu)
	b1, b2 := bs.First(u), bs.Second(u)

	var f1, f2, f3, f4, c1 float64
	if bs.Kind == bessel.Oscillatory {
		if b1 == 0 || b2 == 0 {
			return HybridCoeffs{}, ErrSingularBasis
		}
		f1 = bs.First(urp) / b1
		f2 = bs.Second(urp) / b2
		f3 = bs.FirstPrime(urp) / b1
		f4 = bs.SecondPrime(urp) / b2
		c1 = w.K0() * rout / u
	} else {
		if b2 == 0 {
			return HybridCoeffs{}, ErrSingularBasis
		}
		// u → 0 collapses the I-ratios to their exact limit 1.
		f1, f3 = 1, 1
		if u != 0 {
			if b1 == 0 {
				return HybridCoeffs{}, ErrSingularBasis
			}
			f1 = bs.First(urp) / b1
			f3 = bs.FirstPrime(urp) / b1
		}
		f2 = bs.Second(urp) / b2
		f4 = bs.SecondPrime(urp) / b2
		c1 = -w.K0() * rout / u
	}

	c2 := neff * float64(nu) / urp * c1
	c3 := fiber.Eta0 * c1
	c4 := fiber.Y0 * n * n * c1

	a := mat.NewDense(4, 4, []float64{
		f1, f2, 0, 0,
		0, 0, f1, f2,
		f1 * c2, f2 * c2, -f3 * c3, -f4 * c3,
		f3 * c4, f4 * c4, -f1 * c2, -f2 * c2,
	})
	if !finiteEntries(a) {
		return HybridCoeffs{}, ErrSingularSystem
	}
	b := mat.NewDense(4, 2, []float64{
		eh[0][0], eh[0][1],
		eh[1][0], eh[1][1],
		eh[2][0], eh[2][1],
		eh[3][0], eh[3][1],
	})
	var x mat.Dense
	if err := mapSolveErr(x.Solve(a, b)); err != nil {
		return HybridCoeffs{}, err
	}

	var c HybridCoeffs
	for i := 0; i < 4; i++ {
		c[i][0], c[i][1] = x.At(i, 0), x.At(i, 1)
	}
	return c, nil
}

// finiteEntries reports whether every entry of a is finite.
func finiteEntries(a mat.Matrix) bool {
	r, cols := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// mapSolveErr converts gonum solve failures into ErrSingularSystem. An
// ill-conditioned (mat.Condition) solve still yields a usable result and
// is accepted; an exactly singular one is not.
func mapSolveErr(err error) error {
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		return nil
	}
	return ErrSingularSystem
}
