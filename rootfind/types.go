package rootfind

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search routines.
var (
	// ErrNoRoot indicates the scan exhausted its range or iteration budget
	// without isolating a genuine sign change.
	ErrNoRoot = errors.New("rootfind: no root found within allowed range")

	// ErrInvalidStep indicates a zero, NaN, or wrongly-directed scan step.
	ErrInvalidStep = errors.New("rootfind: invalid scan step")

	// ErrUnbounded indicates an unbounded scan without an iteration budget.
	ErrUnbounded = errors.New("rootfind: unbounded scan requires an iteration budget")

	// ErrBracket indicates the refinement interval does not bracket a root.
	ErrBracket = errors.New("rootfind: interval does not bracket a root")
)

// Func is a scalar function whose zero is sought. It may return NaN on
// regions where it is undefined and ±Inf at poles; the scan treats both
// as non-roots.
type Func func(x float64) float64

// Options parameterizes a first-root scan.
type Options struct {
	// Start is the scan origin.
	Start float64

	// Bound limits the scan; the step sign must point from Start toward
	// Bound. NaN leaves the scan unbounded (MaxIter must then be set).
	Bound float64

	// Delta is the signed scan step.
	Delta float64

	// MaxIter caps the number of scan steps when no bound applies.
	MaxIter int

	// InitialPoints, when non-empty, replaces the uniform scan grid with
	// an explicit sequence of probe abscissae (known near-solutions of a
	// related problem). Consumed before any uniform stepping resumes.
	InitialPoints []float64

	// Tol is the absolute refinement tolerance.
	Tol float64
}

// DefaultOptions returns the canonical scan parameters: an unbounded
// origin-started scan with step 0.25.
func DefaultOptions() Options {
	return Options{
		Bound: math.NaN(),
		Delta: 0.25,
		Tol:   defaultTol,
	}
}

const defaultTol = 1e-16
