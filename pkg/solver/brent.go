// Package solver provides the bracketed scalar root finding used by the
// junction model.
package solver

import (
	"errors"
	"math"
)

var (
	// ErrNoSignChange reports that f(a) and f(b) share a sign, so the
	// bracket cannot be guaranteed to contain a root.
	ErrNoSignChange = errors.New("solver: no sign change in bracket")
	// ErrMaxIterations reports that the bracket did not shrink below
	// tolerance within the iteration budget.
	ErrMaxIterations = errors.New("solver: iteration limit exceeded")
)

// Brent finds x in [a, b] with f(x) = 0 by Brent's method: bisection
// interleaved with secant and inverse quadratic interpolation. The root is
// accepted once the bracket half-width drops below xtol/2 + rtol*|x|.
// f(a) and f(b) must differ in sign. The search always terminates: either
// with a root or with one of the sentinel errors, in which case the returned
// value is NaN.
func Brent(f func(float64) float64, a, b, xtol, rtol float64, maxIter int) (float64, error) {
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		// NaN compares false against everything, so it would slip through
		// the sign check below
		return math.NaN(), ErrNoSignChange
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return math.NaN(), ErrNoSignChange
	}

	c, fc := a, fa
	d := b - a
	e := d

	for iter := 0; iter < maxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			// b and c no longer bracket the root, reset c to the far side
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 0.5*xtol + rtol*math.Abs(b)
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is making no progress, bisect
			d = m
			e = m
		} else {
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant step
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// Interpolated step left the bracket or moved too little
				d = m
				e = m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
	}

	return math.NaN(), ErrMaxIterations
}
