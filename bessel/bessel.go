package bessel

import "math"

// J returns the ordinary Bessel function of the first kind Jν(x).
func J(nu int, x float64) float64 { return math.Jn(nu, x) }

// Y returns the ordinary Bessel function of the second kind Yν(x).
func Y(nu int, x float64) float64 { return math.Yn(nu, x) }

// JPrime returns d/dx Jν(x) via Jν' = (Jν₋₁ − Jν₊₁)/2.
func JPrime(nu int, x float64) float64 {
	if nu == 0 {
		return -math.J1(x)
	}
	return 0.5 * (math.Jn(nu-1, x) - math.Jn(nu+1, x))
}

// YPrime returns d/dx Yν(x) via Yν' = (Yν₋₁ − Yν₊₁)/2.
func YPrime(nu int, x float64) float64 {
	if nu == 0 {
		return -math.Y1(x)
	}
	return 0.5 * (math.Yn(nu-1, x) - math.Yn(nu+1, x))
}

// IPrime returns d/dx Iν(x) via Iν' = (Iν₋₁ + Iν₊₁)/2.
func IPrime(nu int, x float64) float64 {
	if nu == 0 {
		return I(1, x)
	}
	return 0.5 * (I(nu-1, x) + I(nu+1, x))
}

// KPrime returns d/dx Kν(x) via Kν' = −(Kν₋₁ + Kν₊₁)/2.
func KPrime(nu int, x float64) float64 {
	if nu == 0 {
		return -K(1, x)
	}
	return -0.5 * (K(nu-1, x) + K(nu+1, x))
}
