package fiber

// Material supplies a refractive index at a wavelength. Dispersion models
// live outside this module; implementations must be safe for concurrent
// use and may return NaN to signal an undefined index at the requested
// wavelength (surfaced by the solver as a failed evaluation, never
// silently defaulted).
type Material interface {
	RefractiveIndex(w Wavelength) float64
}

// FixedIndex is a dispersion-free material with a constant refractive index.
type FixedIndex float64

// RefractiveIndex returns the constant index regardless of wavelength.
func (n FixedIndex) RefractiveIndex(Wavelength) float64 { return float64(n) }
