package vortex

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/flowlab/internal/field"
)

// ErrPoissonDiverged indicates the conjugate-gradient solve missed its
// tolerance within the iteration cap.
var ErrPoissonDiverged = errors.New("vortex: Poisson solve did not converge")

const (
	cgTol     = 1e-10
	cgMaxIter = 10000
)

// Streamfunction inverts the Poisson equation lap(psi) = -omega on the
// grid's interior with psi = 0 on the boundary. The 5-point negative
// Laplacian is assembled in CSR form and solved by conjugate gradient
// (the operator is symmetric positive definite).
func Streamfunction(omega *field.Scalar) (*field.Scalar, error) {
	g := omega.Grid
	nxi := g.Nx - 2 // interior nodes per row
	nyi := g.Ny - 2
	n := nxi * nyi

	// interior (i, j) -> unknown index
	idx := func(i, j int) int { return (j-1)*nxi + (i - 1) }

	cx := 1 / (g.Dx * g.Dx)
	cy := 1 / (g.Dy * g.Dy)

	dok := sparse.NewDOK(n, n)
	rhs := make([]float64, n)
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			row := idx(i, j)
			dok.Set(row, row, 2*cx+2*cy)
			if i > 1 {
				dok.Set(row, idx(i-1, j), -cx)
			}
			if i < g.Nx-2 {
				dok.Set(row, idx(i+1, j), -cx)
			}
			if j > 1 {
				dok.Set(row, idx(i, j-1), -cy)
			}
			if j < g.Ny-2 {
				dok.Set(row, idx(i, j+1), -cy)
			}
			rhs[row] = omega.At(i, j)
		}
	}
	csr := dok.ToCSR()

	x, iters, err := conjugateGradient(csr, rhs)
	if err != nil {
		return nil, fmt.Errorf("%w after %d iterations", err, iters)
	}

	psi := field.NewScalar(g)
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			psi.Set(i, j, x[idx(i, j)])
		}
	}
	return psi, nil
}

// conjugateGradient solves A x = b for symmetric positive definite A.
func conjugateGradient(a *sparse.CSR, b []float64) ([]float64, int, error) {
	n := len(b)
	x := make([]float64, n)
	r := make([]float64, n)
	copy(r, b) // x0 = 0 so r0 = b
	p := make([]float64, n)
	copy(p, r)
	ap := make([]float64, n)

	bNorm := floats.Norm(b, 2)
	if bNorm == 0 {
		return x, 0, nil
	}

	rsOld := floats.Dot(r, r)
	for k := 1; k <= cgMaxIter; k++ {
		mulCSRVec(a, p, ap)
		alpha := rsOld / floats.Dot(p, ap)
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		rsNew := floats.Dot(r, r)
		if floats.Norm(r, 2)/bNorm < cgTol {
			return x, k, nil
		}
		beta := rsNew / rsOld
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}
	return x, cgMaxIter, ErrPoissonDiverged
}

// mulCSRVec computes y = A x over the stored non-zeros.
func mulCSRVec(a *sparse.CSR, x, y []float64) {
	for i := range y {
		y[i] = 0
	}
	a.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
}

// VelocityFromStreamfunction recovers u = dpsi/dy, v = -dpsi/dx.
func VelocityFromStreamfunction(psi *field.Scalar) *field.Vector {
	grad := field.Gradient(psi)
	vel := field.NewVector(psi.Grid)
	for k := range grad.U {
		vel.U[k] = grad.V[k]
		vel.V[k] = -grad.U[k]
	}
	return vel
}
