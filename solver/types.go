// SPDX-License-Identifier: MIT

package solver

import (
	"errors"

	"github.com/katalvlaran/fibermodes/fiber"
)

// Sentinel errors for the solver surface.
var (
	// ErrInvalidMode indicates an unsupported family / azimuthal-order
	// combination (TE and TM require ν = 0, HE and EH require ν ≥ 1).
	ErrInvalidMode = errors.New("solver: invalid mode family / azimuthal order combination")

	// ErrInvalidNeff indicates an effective index outside the guided range
	// of the layer stack.
	ErrInvalidNeff = errors.New("solver: effective index outside guided range")

	// ErrNegativeRadius indicates a negative field-evaluation radius.
	ErrNegativeRadius = errors.New("solver: negative evaluation radius")
)

// ModeSolution is one guided mode: its descriptor, effective index, and
// for hybrid families the mixing ratio α combining the two independent
// solutions of the boundary system (zero for LP, TE, and TM).
type ModeSolution struct {
	Mode  fiber.Mode
	Neff  float64
	Alpha float64
}

// Options parameterizes mode enumeration.
type Options struct {
	// Delta is the effective-index scan step.
	Delta float64

	// Tol is the root refinement tolerance.
	Tol float64

	// MaxModes caps the number of modes returned per enumeration call
	// (0 means unlimited).
	MaxModes int
}

// DefaultOptions returns the canonical search parameters.
func DefaultOptions() Options {
	return Options{
		Delta: 1e-4,
		Tol:   1e-16,
	}
}
