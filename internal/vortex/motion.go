package vortex

import (
	"fmt"
	"math"

	"github.com/san-kum/flowlab/internal/dynamo"
)

// PointVortex is a singular vortex carrying circulation Gamma.
type PointVortex struct {
	X, Y  float64
	Gamma float64
}

// Motion is the N-point-vortex system: each vortex is advected by the
// velocity induced by all the others. State layout is [x0, y0, x1, y1, ...].
type Motion struct {
	Strengths []float64
}

// NewMotion builds the system for the given vortices.
func NewMotion(vortices []PointVortex) (*Motion, dynamo.State) {
	m := &Motion{Strengths: make([]float64, len(vortices))}
	x0 := make(dynamo.State, 2*len(vortices))
	for i, v := range vortices {
		m.Strengths[i] = v.Gamma
		x0[2*i] = v.X
		x0[2*i+1] = v.Y
	}
	return m, x0
}

func (m *Motion) StateDim() int { return 2 * len(m.Strengths) }

func (m *Motion) Derive(x dynamo.State, t float64) dynamo.State {
	n := len(m.Strengths)
	dx := make(dynamo.State, 2*n)
	for i := 0; i < n; i++ {
		xi, yi := x[2*i], x[2*i+1]
		var u, v float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			rx := xi - x[2*j]
			ry := yi - x[2*j+1]
			r2 := rx*rx + ry*ry
			if r2 == 0 {
				continue
			}
			c := m.Strengths[j] / (2 * math.Pi * r2)
			u += -c * ry
			v += c * rx
		}
		dx[2*i] = u
		dx[2*i+1] = v
	}
	return dx
}

// Invariant is the Kirchhoff-Routh Hamiltonian
//
//	H = -(1/4 pi) sum_{i<j} Gamma_i Gamma_j ln r_ij^2
//
// which point-vortex motion conserves exactly; drift measures integrator
// error.
func (m *Motion) Invariant(x dynamo.State) float64 {
	n := len(m.Strengths)
	h := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rx := x[2*i] - x[2*j]
			ry := x[2*i+1] - x[2*j+1]
			r2 := rx*rx + ry*ry
			if r2 > 0 {
				h -= m.Strengths[i] * m.Strengths[j] * math.Log(r2)
			}
		}
	}
	return h / (4 * math.Pi)
}

// Circulation is the total circulation, conserved by construction.
func (m *Motion) Circulation() float64 {
	sum := 0.0
	for _, g := range m.Strengths {
		sum += g
	}
	return sum
}

// Impulse returns the linear impulse components (sum Gamma_i y_i,
// -sum Gamma_i x_i are conserved; we report P = (sum G y, -sum G x)).
func (m *Motion) Impulse(x dynamo.State) (px, py float64) {
	for i, g := range m.Strengths {
		px += g * x[2*i+1]
		py += -g * x[2*i]
	}
	return px, py
}

// Vortices reconstructs the vortex list from a state vector.
func (m *Motion) Vortices(x dynamo.State) ([]PointVortex, error) {
	if len(x) != m.StateDim() {
		return nil, fmt.Errorf("vortex: state length %d, want %d", len(x), m.StateDim())
	}
	out := make([]PointVortex, len(m.Strengths))
	for i, g := range m.Strengths {
		out[i] = PointVortex{X: x[2*i], Y: x[2*i+1], Gamma: g}
	}
	return out, nil
}

// Models converts a state into potential-vortex models for field sampling.
func (m *Motion) Models(x dynamo.State) []Model {
	out := make([]Model, len(m.Strengths))
	for i, g := range m.Strengths {
		out[i] = Potential{X: x[2*i], Y: x[2*i+1], Gamma: g}
	}
	return out
}
