package vortex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/flowlab/internal/field"
)

func TestPotentialVortexSpeed(t *testing.T) {
	p := Potential{Gamma: 2 * math.Pi}
	// At r = 1 the swirl speed is Gamma/(2 pi r) = 1, tangential.
	u, v := p.VelocityAt(1, 0)
	assert.InDelta(t, 0, u, 1e-12)
	assert.InDelta(t, 1, v, 1e-12)

	u, v = p.VelocityAt(0, 2)
	assert.InDelta(t, -0.5, u, 1e-12)
	assert.InDelta(t, 0, v, 1e-12)
}

func TestRankineContinuousAtCore(t *testing.T) {
	r := Rankine{Gamma: 1, Core: 0.5}
	eps := 1e-9
	_, vIn := r.VelocityAt(0.5-eps, 0)
	_, vOut := r.VelocityAt(0.5+eps, 0)
	assert.InDelta(t, vIn, vOut, 1e-6)

	// Solid-body interior: speed grows linearly with r.
	_, vHalf := r.VelocityAt(0.25, 0)
	assert.InDelta(t, vIn/2, vHalf, 1e-6)
}

func TestLambOseenFarField(t *testing.T) {
	l := LambOseen{Gamma: 3, Rc: 0.1}
	p := Potential{Gamma: 3}
	// Far from the core the Gaussian factor is 1.
	lu, lv := l.VelocityAt(2, 1)
	pu, pv := p.VelocityAt(2, 1)
	assert.InDelta(t, pu, lu, 1e-9)
	assert.InDelta(t, pv, lv, 1e-9)
	// At the center the velocity is regular.
	u, v := l.VelocityAt(0, 0)
	assert.Zero(t, u)
	assert.Zero(t, v)
}

func TestStreamfunctionManufactured(t *testing.T) {
	// psi = sin(pi x) sin(pi y) on the unit square satisfies
	// lap(psi) = -2 pi^2 psi, so omega = 2 pi^2 psi with psi=0 boundary.
	g, err := field.NewGrid(33, 33, 0, 0, 1, 1)
	require.NoError(t, err)

	exact := field.SampleScalar(g, func(x, y float64) float64 {
		return math.Sin(math.Pi*x) * math.Sin(math.Pi*y)
	})
	omega := field.SampleScalar(g, func(x, y float64) float64 {
		return 2 * math.Pi * math.Pi * math.Sin(math.Pi*x) * math.Sin(math.Pi*y)
	})

	psi, err := Streamfunction(omega)
	require.NoError(t, err)

	maxErr := 0.0
	for k := range psi.Values {
		if e := math.Abs(psi.Values[k] - exact.Values[k]); e > maxErr {
			maxErr = e
		}
	}
	// Second-order stencil on a 33x33 grid.
	assert.Less(t, maxErr, 2e-3)
}

func TestStreamfunctionVelocityRoundTrip(t *testing.T) {
	g, err := field.NewGrid(41, 41, 0, 0, 1, 1)
	require.NoError(t, err)

	omega := field.SampleScalar(g, func(x, y float64) float64 {
		return 2 * math.Pi * math.Pi * math.Sin(math.Pi*x) * math.Sin(math.Pi*y)
	})
	psi, err := Streamfunction(omega)
	require.NoError(t, err)

	vel := VelocityFromStreamfunction(psi)
	// Streamfunction velocity is divergence-free: check away from edges
	// where the one-sided differences lose accuracy.
	div := field.Divergence(vel)
	for j := 2; j < g.Ny-2; j++ {
		for i := 2; i < g.Nx-2; i++ {
			assert.InDelta(t, 0, div.At(i, j), 5e-2)
		}
	}

	// u = dpsi/dy: compare midpoint against the analytic derivative.
	u, _ := vel.At(20, 20)
	x, y := g.X(20), g.Y(20)
	want := math.Pi * math.Sin(math.Pi*x) * math.Cos(math.Pi*y)
	assert.InDelta(t, want, u, 5e-2)
}

func TestSuperposeAndVorticity(t *testing.T) {
	g, err := field.NewGrid(41, 41, -1, -1, 2, 2)
	require.NoError(t, err)

	vel := Superpose(g, LambOseen{Gamma: 1, Rc: 0.3})
	omega := Vorticity(vel)

	// Total circulation over the domain approximates Gamma.
	sum := 0.0
	for _, w := range omega.Values {
		sum += w * g.Dx * g.Dy
	}
	assert.InDelta(t, 1.0, sum, 0.05)
}
