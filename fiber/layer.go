package fiber

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Layer is one coaxial material shell of a step-index fiber. Layers are
// ordered innermost-first; the outermost layer may be unbounded, in which
// case ROut is +Inf.
type Layer struct {
	// RIn is the inner radius in meters (0 for the innermost layer).
	RIn float64

	// ROut is the outer radius in meters (+Inf when Unbounded).
	ROut float64

	// Unbounded flags the outermost, infinite cladding.
	Unbounded bool

	// Material supplies the layer's refractive index.
	Material Material
}

// Index returns the layer's refractive index at w, or NaN when the
// material is absent or reports an undefined index.
func (l Layer) Index(w Wavelength) float64 {
	if l.Material == nil {
		return math.NaN()
	}
	return l.Material.RefractiveIndex(w)
}

// Contains reports whether radius r falls inside the layer.
func (l Layer) Contains(r float64) bool {
	if l.Unbounded {
		return r >= l.RIn
	}
	return r >= l.RIn && r <= l.ROut
}

// Stack is an ordered, innermost-first list of layers. It is immutable for
// the duration of one solve: validate once, then share freely across
// concurrent searches.
type Stack []Layer

// StepIndex builds a Stack from interface radii and per-layer indices:
// len(indices) == len(radii)+1, the last layer being the unbounded cladding.
//
// Example: StepIndex([]float64{4.5e-6}, []float64{1.448918, 1.444418})
// describes a standard two-layer fiber with a 4.5 µm core.
func StepIndex(radii []float64, indices []float64) (Stack, error) {
	if len(indices) != len(radii)+1 || len(indices) < 2 {
		return nil, ErrEmptyStack
	}
	s := make(Stack, len(indices))
	rin := 0.0
	for i, n := range indices {
		l := Layer{RIn: rin, Material: FixedIndex(n)}
		if i == len(indices)-1 {
			l.ROut = math.Inf(1)
			l.Unbounded = true
		} else {
			l.ROut = radii[i]
			rin = radii[i]
		}
		s[i] = l
	}
	return s, s.Validate()
}

// Validate checks the stack preconditions: at least two layers, innermost
// starting at radius 0, strictly increasing contiguous radii, non-nil
// materials, and no unbounded interior layer. Solvers call this before any
// search begins (fail fast on malformed input).
func (s Stack) Validate() error {
	if len(s) < 2 {
		return ErrEmptyStack
	}
	if s[0].RIn != 0 {
		return ErrInnerRadius
	}
	for i, l := range s {
		if l.Material == nil {
			return ErrNilMaterial
		}
		if l.Unbounded && i != len(s)-1 {
			return ErrUnboundedInterior
		}
		if !l.Unbounded && !(l.ROut > l.RIn) {
			return ErrRadiiOrder
		}
		if i > 0 && s[i-1].ROut != l.RIn {
			return ErrRadiiOrder
		}
	}
	return nil
}

// LayerAt returns the index of the layer containing radius r ≥ 0.
// The outermost layer absorbs every radius beyond the last interface.
func (s Stack) LayerAt(r float64) int {
	for i := range s {
		if s[i].Contains(r) {
			return i
		}
	}
	return len(s) - 1
}

// MaxIndex returns the maximum refractive index across all layers at w,
// or NaN when any layer's index is undefined.
func (s Stack) MaxIndex(w Wavelength) float64 {
	ns, ok := s.indices(w)
	if !ok {
		return math.NaN()
	}
	return floats.Max(ns)
}

// MinIndex returns the minimum refractive index across all layers at w,
// or NaN when any layer's index is undefined.
func (s Stack) MinIndex(w Wavelength) float64 {
	ns, ok := s.indices(w)
	if !ok {
		return math.NaN()
	}
	return floats.Min(ns)
}

// indices collects per-layer indices; ok is false when any index is NaN.
func (s Stack) indices(w Wavelength) ([]float64, bool) {
	ns := make([]float64, len(s))
	for i := range s {
		ns[i] = s[i].Index(w)
		if math.IsNaN(ns[i]) {
			return nil, false
		}
	}
	return ns, true
}
