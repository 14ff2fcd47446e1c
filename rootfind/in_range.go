package rootfind

import (
	"math"

	"go.uber.org/zap"
)

// RootInRange isolates a zero of f inside [xLow, xHigh]. While the
// endpoint values share a sign the interval is bisected toward the side
// that preserves the extremum, shrinking until a sign change appears;
// the change is then refined with Brent and subjected to the same
// discontinuity rejection as FirstRoot. o.MaxIter bounds the number of
// bisection updates (20 when unset); o.Tol is the refinement tolerance.
func RootInRange(f Func, xLow, xHigh float64, o Options) (float64, error) {
	maxIter := o.MaxIter
	if maxIter <= 0 {
		maxIter = 20
	}
	tol := o.Tol
	if tol <= 0 {
		tol = defaultTol
	}

	lo, hi := xLow, xHigh
	yLo, yHi := f(lo), f(hi)
	for j := 0; j < maxIter; j++ {
		if (yLo > 0) != (yHi > 0) {
			z, err := Brent(f, lo, hi, tol)
			if err == nil {
				yz := f(z)
				if math.Abs(yLo) > math.Abs(yz) && math.Abs(yz) < math.Abs(yHi) {
					if !(xLow < z && z < xHigh) {
						Logger().Warn("root found at the edge of the requested range",
							zap.Float64("root", z),
							zap.Float64("low", xLow),
							zap.Float64("high", xHigh))
					}
					return z, nil
				}
			}
		}

		// Halve toward the side that keeps the larger residual.
		mid := (lo + hi) / 2
		ym := f(mid)
		if ym > 0 {
			hi, yHi = mid, ym
		} else {
			lo, yLo = mid, ym
		}
	}

	Logger().Warn("range refinement exhausted without isolating a root",
		zap.Float64("low", xLow), zap.Float64("high", xHigh))
	return 0, ErrNoRoot
}
