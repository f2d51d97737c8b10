package vortex

import (
	"math"

	"github.com/san-kum/flowlab/internal/field"
)

// Model is an analytic vortex whose induced velocity can be sampled
// anywhere in the plane.
type Model interface {
	// VelocityAt returns the induced velocity at (x, y).
	VelocityAt(x, y float64) (u, v float64)
}

// Potential is a free (irrotational) vortex of circulation Gamma centered
// at (X, Y): u_theta = Gamma/(2 pi r).
type Potential struct {
	X, Y  float64
	Gamma float64
}

func (p Potential) VelocityAt(x, y float64) (float64, float64) {
	dx, dy := x-p.X, y-p.Y
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		return 0, 0
	}
	c := p.Gamma / (2 * math.Pi * r2)
	return -c * dy, c * dx
}

// Rankine is a vortex with a solid-body core of radius Core and a free
// vortex outside it.
type Rankine struct {
	X, Y  float64
	Gamma float64
	Core  float64
}

func (r Rankine) VelocityAt(x, y float64) (float64, float64) {
	dx, dy := x-r.X, y-r.Y
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		return 0, 0
	}
	var c float64
	if r2 < r.Core*r.Core {
		c = r.Gamma / (2 * math.Pi * r.Core * r.Core)
	} else {
		c = r.Gamma / (2 * math.Pi * r2)
	}
	return -c * dy, c * dx
}

// LambOseen is a viscous vortex with Gaussian core of radius Rc.
type LambOseen struct {
	X, Y  float64
	Gamma float64
	Rc    float64
}

func (l LambOseen) VelocityAt(x, y float64) (float64, float64) {
	dx, dy := x-l.X, y-l.Y
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		return 0, 0
	}
	c := l.Gamma / (2 * math.Pi * r2) * (1 - math.Exp(-r2/(l.Rc*l.Rc)))
	return -c * dy, c * dx
}

// Superpose samples the summed induced velocity of several vortices onto a
// grid.
func Superpose(g *field.Grid, models ...Model) *field.Vector {
	return field.SampleVector(g, func(x, y float64) (float64, float64) {
		var u, v float64
		for _, m := range models {
			mu, mv := m.VelocityAt(x, y)
			u += mu
			v += mv
		}
		return u, v
	})
}

// Vorticity is the curl of the sampled velocity field.
func Vorticity(vel *field.Vector) *field.Scalar {
	return field.Curl(vel)
}
