package fiber

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack and wavelength preconditions.
var (
	// ErrEmptyStack indicates a stack with fewer than two layers.
	ErrEmptyStack = errors.New("fiber: stack requires at least two layers")

	// ErrInnerRadius indicates the innermost layer does not start at radius 0.
	ErrInnerRadius = errors.New("fiber: innermost layer must start at radius 0")

	// ErrRadiiOrder indicates layer radii are not strictly increasing and contiguous.
	ErrRadiiOrder = errors.New("fiber: layer radii must be strictly increasing and contiguous")

	// ErrNilMaterial indicates a layer without a material model.
	ErrNilMaterial = errors.New("fiber: layer material is nil")

	// ErrUnboundedInterior indicates an unbounded layer that is not outermost.
	ErrUnboundedInterior = errors.New("fiber: only the outermost layer may be unbounded")

	// ErrNonPositiveWavelength indicates a wavelength that is not a positive finite value.
	ErrNonPositiveWavelength = errors.New("fiber: wavelength must be positive and finite")
)

// Family identifies a mode family.
//
//   - LP — scalar (linearly-polarized) approximation, weakly-guiding fibers.
//   - TE / TM — transverse families, azimuthal order 0 only.
//   - HE / EH — hybrid vector families, azimuthal order ≥ 1.
type Family uint8

const (
	// LP is the scalar linearly-polarized family.
	LP Family = iota

	// TE is the transverse-electric family (ν = 0).
	TE

	// TM is the transverse-magnetic family (ν = 0).
	TM

	// HE is the hybrid family whose fundamental member is HE(1,1).
	HE

	// EH is the hybrid family interleaved with HE.
	EH
)

// String returns the conventional family name.
func (f Family) String() string {
	switch f {
	case LP:
		return "LP"
	case TE:
		return "TE"
	case TM:
		return "TM"
	case HE:
		return "HE"
	case EH:
		return "EH"
	default:
		return "??"
	}
}

// Mode identifies one guided mode: a family, an azimuthal order Nu ≥ 0 and
// a 1-based radial order M (rank among the roots of the dispersion
// equation). Two Mode values are equal iff all three fields match, so Mode
// is directly usable as a map key.
type Mode struct {
	// Family is the mode family (LP, TE, TM, HE, EH).
	Family Family

	// Nu is the azimuthal order ν ≥ 0.
	Nu int

	// M is the 1-based radial order.
	M int
}

// String renders the conventional mode name, e.g. "HE(1,1)".
func (m Mode) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Family, m.Nu, m.M)
}

// Frequently referenced low-order modes.
var (
	LP01 = Mode{LP, 0, 1}
	LP11 = Mode{LP, 1, 1}
	HE11 = Mode{HE, 1, 1}
	TE01 = Mode{TE, 0, 1}
	TM01 = Mode{TM, 0, 1}
	HE21 = Mode{HE, 2, 1}
	EH11 = Mode{EH, 1, 1}
	HE31 = Mode{HE, 3, 1}
	HE12 = Mode{HE, 1, 2}
)

// FieldSample is the tangential field 4-vector at one radius, produced by
// field reconstruction: (Ez, Hz, Eφ-related term, Hφ-related term).
type FieldSample struct {
	// Ez is the longitudinal electric field term.
	Ez float64

	// Hz is the longitudinal magnetic field term.
	Hz float64

	// EPhi is the azimuthal electric field term.
	EPhi float64

	// HPhi is the azimuthal magnetic field term.
	HPhi float64
}
