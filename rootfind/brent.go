package rootfind

import "math"

const (
	brentMaxIter = 100
	brentEps     = 3e-16
)

// Brent refines a bracketed root of f on [x1, x2] to absolute tolerance
// tol using Brent's method: inverse quadratic interpolation guarded by
// secant and bisection steps. The interval must bracket a sign change.
//
// The bisection guard halves the interval whenever interpolation would
// leave it, so the iteration cap is never reached in practice.
func Brent(f Func, x1, x2, tol float64) (float64, error) {
	a, b := x1, x2
	fa, fb := f(a), f(b)
	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return 0, ErrBracket
	}

	c, fc := b, fb
	var d, e float64
	for i := 0; i < brentMaxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, fa = b, fb
			b, fb = c, fc
			c, fc = a, fa
		}

		tol1 := 2*brentEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation: secant when only two points are
			// distinct, inverse quadratic otherwise.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, nil
}
