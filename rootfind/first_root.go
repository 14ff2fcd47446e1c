package rootfind

import (
	"math"

	"go.uber.org/zap"
)

// FirstRoot scans from o.Start in steps of o.Delta and returns the first
// genuine zero of f. Each sign change between consecutive probes is
// refined with Brent; a candidate is accepted only when |f| at the
// refined point is smaller than at both probes, which rejects poles where
// f changes sign through a divergence. NaN probes never participate in a
// sign change, so undefined regions are skipped rather than misread.
//
// A bounded scan that reaches o.Bound without a candidate restarts with
// a tenfold finer step (up to a step budget of 100 probes per pass);
// crossing the bound mid-pass fails immediately with ErrNoRoot.
func FirstRoot(f Func, o Options) (float64, error) {
	if o.Delta == 0 || math.IsNaN(o.Delta) {
		return 0, ErrInvalidStep
	}
	bounded := !math.IsNaN(o.Bound)
	if bounded && (o.Bound-o.Start)*o.Delta < 0 {
		return 0, ErrInvalidStep
	}
	if !bounded && len(o.InitialPoints) == 0 && o.MaxIter <= 0 {
		return 0, ErrUnbounded
	}
	tol := o.Tol
	if tol <= 0 {
		tol = defaultTol
	}

	delta := o.Delta
	next := 0 // probe points consumed so far
	for {
		maxIter := o.MaxIter
		switch {
		case next < len(o.InitialPoints):
			maxIter = len(o.InitialPoints) - next
		case bounded:
			maxIter = int((o.Bound - o.Start) / delta)
		}

		a := o.Start
		fa := f(a)
		if fa == 0 {
			return a, nil
		}

		for i := 0; i < maxIter; i++ {
			var b float64
			if next < len(o.InitialPoints) {
				b = o.InitialPoints[next]
				next++
			} else {
				b = a + delta
			}
			if bounded && ((b > o.Bound && o.Bound > o.Start) || (b < o.Bound && o.Bound < o.Start)) {
				Logger().Debug("scan crossed the bound before any sign change",
					zap.Float64("start", o.Start),
					zap.Float64("bound", o.Bound),
					zap.Float64("delta", delta))
				return 0, ErrNoRoot
			}

			fb := f(b)
			if fb == 0 {
				return b, nil
			}

			if (fa > 0 && fb < 0) || (fa < 0 && fb > 0) {
				z, err := Brent(f, a, b, tol)
				if err == nil {
					fz := f(z)
					if math.Abs(fa) > math.Abs(fz) && math.Abs(fz) < math.Abs(fb) {
						return z, nil
					}
					Logger().Debug("sign change rejected as discontinuity",
						zap.Float64("x", z), zap.Float64("f", fz))
				}
			}
			a, fa = b, fb
		}

		if bounded && maxIter < 100 {
			delta /= 10
			continue
		}
		Logger().Debug("scan budget exhausted",
			zap.Int("maxIter", maxIter),
			zap.Float64("start", o.Start),
			zap.Float64("bound", o.Bound))
		return 0, ErrNoRoot
	}
}
