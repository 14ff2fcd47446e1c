package bessel

// Kind selects the radial basis pair of a layer.
type Kind uint8

const (
	// Oscillatory selects the (J, Y) pair: the field oscillates radially,
	// which happens when the trial effective index is below the layer index.
	Oscillatory Kind = iota

	// Evanescent selects the (I, K) pair: the field decays or grows
	// exponentially, when the trial effective index reaches the layer index.
	Evanescent
)

// Basis is the per-layer basis selection: an explicit two-variant tag plus
// the azimuthal order, fixed once per evaluation pass. First is the
// solution regular at the origin (J or I), Second its singular companion
// (Y or K).
type Basis struct {
	Kind Kind
	Nu   int
}

// BasisFor selects the basis from the trial effective index and the layer
// index: oscillatory for neff < n, evanescent otherwise.
func BasisFor(neff, n float64, nu int) Basis {
	if neff < n {
		return Basis{Kind: Oscillatory, Nu: nu}
	}
	return Basis{Kind: Evanescent, Nu: nu}
}

// First evaluates the origin-regular member (Jν or Iν) at x.
func (b Basis) First(x float64) float64 {
	if b.Kind == Oscillatory {
		return J(b.Nu, x)
	}
	return I(b.Nu, x)
}

// Second evaluates the singular member (Yν or Kν) at x.
func (b Basis) Second(x float64) float64 {
	if b.Kind == Oscillatory {
		return Y(b.Nu, x)
	}
	return K(b.Nu, x)
}

// FirstPrime evaluates d/dx of the origin-regular member at x.
func (b Basis) FirstPrime(x float64) float64 {
	if b.Kind == Oscillatory {
		return JPrime(b.Nu, x)
	}
	return IPrime(b.Nu, x)
}

// SecondPrime evaluates d/dx of the singular member at x.
func (b Basis) SecondPrime(x float64) float64 {
	if b.Kind == Oscillatory {
		return YPrime(b.Nu, x)
	}
	return KPrime(b.Nu, x)
}
