// Package solve provides the scalar nonlinear solvers used by the property
// and pipe-flow packages: damped fixed-point iteration and bracketed
// bisection/Newton root finding.
package solve

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence indicates an iteration hit its cap before meeting tolerance.
var ErrNoConvergence = errors.New("solve: iteration did not converge")

// ErrBadBracket indicates a root-finding bracket with no sign change.
var ErrBadBracket = errors.New("solve: no sign change in bracket")

// Result reports a converged solution and the iterations it took.
type Result struct {
	X     float64
	Iters int
}

// FixedPoint iterates x = g(x) from x0 until consecutive iterates differ by
// less than tol, up to maxIter iterations.
func FixedPoint(g func(float64) float64, x0, tol float64, maxIter int) (Result, error) {
	x := x0
	for i := 1; i <= maxIter; i++ {
		next := g(x)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return Result{X: x, Iters: i}, fmt.Errorf("%w: iterate diverged at step %d", ErrNoConvergence, i)
		}
		if math.Abs(next-x) < tol {
			return Result{X: next, Iters: i}, nil
		}
		x = next
	}
	return Result{X: x, Iters: maxIter}, ErrNoConvergence
}

// Bisect finds a root of f in [a, b] by bisection. f(a) and f(b) must differ
// in sign.
func Bisect(f func(float64) float64, a, b, tol float64, maxIter int) (Result, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return Result{X: a}, nil
	}
	if fb == 0 {
		return Result{X: b}, nil
	}
	if fa*fb > 0 {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrBadBracket, a, fa, b, fb)
	}
	for i := 1; i <= maxIter; i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if fm == 0 || 0.5*(b-a) < tol {
			return Result{X: mid, Iters: i}, nil
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return Result{X: 0.5 * (a + b), Iters: maxIter}, ErrNoConvergence
}

// Newton refines a root of f from x0 using the analytic derivative df,
// falling back on a half-step when an iterate leaves [lo, hi].
func Newton(f, df func(float64) float64, x0, lo, hi, tol float64, maxIter int) (Result, error) {
	x := x0
	for i := 1; i <= maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return Result{X: x, Iters: i}, nil
		}
		d := df(x)
		if d == 0 {
			return Result{X: x, Iters: i}, fmt.Errorf("%w: zero derivative at x=%g", ErrNoConvergence, x)
		}
		step := fx / d
		next := x - step
		for next < lo || next > hi {
			step *= 0.5
			next = x - step
			if math.Abs(step) < tol {
				break
			}
		}
		if math.Abs(next-x) < tol {
			return Result{X: next, Iters: i}, nil
		}
		x = next
	}
	return Result{X: x, Iters: maxIter}, ErrNoConvergence
}
