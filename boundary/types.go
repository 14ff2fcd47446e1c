// SPDX-License-Identifier: MIT

package boundary

import "errors"

// Sentinel errors for field-model and matcher failures.
var (
	// ErrUndefinedIndex indicates the material model returned an undefined
	// refractive index at the evaluation point; surfaced, never defaulted.
	ErrUndefinedIndex = errors.New("boundary: refractive index undefined at evaluation point")

	// ErrSingularBasis indicates a basis function vanishes where its ratio
	// is required and no closed-form limit applies.
	ErrSingularBasis = errors.New("boundary: basis function vanishes at interface")

	// ErrSingularSystem indicates a singular boundary-condition system;
	// fatal for the trial index that produced it.
	ErrSingularSystem = errors.New("boundary: singular boundary-condition system")
)

// FieldVec is the tangential field 4-vector (Ez, Hz, Eφ-term, Hφ-term) at
// one interface, for the ν = 0 transverse classes.
type FieldVec [4]float64

// FieldPair carries the two linearly independent hybrid solutions as
// columns of a 4×2 field block, for ν ≠ 0.
type FieldPair [4][2]float64

// Coeffs is a layer's coefficient vector for ν = 0: the first two entries
// weight the (regular, singular) basis pair of the electric class, the
// last two the magnetic class.
type Coeffs [4]float64

// HybridCoeffs is a layer's 4×2 coefficient block for ν ≠ 0, one column
// per independent hybrid solution.
type HybridCoeffs [4][2]float64
