package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(41, 41, -1, -1, 2, 2)
	require.NoError(t, err)
	return g
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(2, 10, 0, 0, 1, 1)
	assert.Error(t, err)
	_, err = NewGrid(10, 10, 0, 0, -1, 1)
	assert.Error(t, err)
}

func TestGridCoordinates(t *testing.T) {
	g := testGrid(t)
	assert.InDelta(t, -1.0, g.X(0), 1e-14)
	assert.InDelta(t, 1.0, g.X(g.Nx-1), 1e-14)
	assert.InDelta(t, 0.05, g.Dx, 1e-14)
	assert.Equal(t, g.Idx(3, 2), 2*41+3)
}

func TestCurlRigidRotation(t *testing.T) {
	// u = -Omega*y, v = Omega*x has uniform curl 2*Omega.
	const omega = 1.5
	g := testGrid(t)
	vel := SampleVector(g, func(x, y float64) (float64, float64) {
		return -omega * y, omega * x
	})
	curl := Curl(vel)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			assert.InDelta(t, 2*omega, curl.At(i, j), 1e-10)
		}
	}
}

func TestDivergenceOfSolenoidalField(t *testing.T) {
	g := testGrid(t)
	vel := SampleVector(g, func(x, y float64) (float64, float64) {
		return -y, x
	})
	div := Divergence(vel)
	min, max := div.MinMax()
	assert.InDelta(t, 0, min, 1e-10)
	assert.InDelta(t, 0, max, 1e-10)
}

func TestGradientLinearField(t *testing.T) {
	g := testGrid(t)
	s := SampleScalar(g, func(x, y float64) float64 { return 3*x - 2*y })
	grad := Gradient(s)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			u, v := grad.At(i, j)
			assert.InDelta(t, 3, u, 1e-10)
			assert.InDelta(t, -2, v, 1e-10)
		}
	}
}

func TestLaplacianQuadratic(t *testing.T) {
	// lap(x^2 + y^2) = 4, exactly representable by the 5-point stencil.
	g := testGrid(t)
	s := SampleScalar(g, func(x, y float64) float64 { return x*x + y*y })
	lap := Laplacian(s)
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			assert.InDelta(t, 4, lap.At(i, j), 1e-9)
		}
	}
}

func TestBilinearInterpolation(t *testing.T) {
	g := testGrid(t)
	vel := SampleVector(g, func(x, y float64) (float64, float64) {
		return x + y, x - y
	})
	// Bilinear interpolation reproduces linear fields exactly.
	u, v := vel.Bilinear(0.123, -0.456)
	assert.InDelta(t, 0.123-0.456, u, 1e-12)
	assert.InDelta(t, 0.123+0.456, v, 1e-12)

	// Outside the domain: clamped, finite.
	u, v = vel.Bilinear(5, 5)
	assert.False(t, math.IsNaN(u) || math.IsNaN(v))
}

func TestScalarMinMax(t *testing.T) {
	g := testGrid(t)
	s := SampleScalar(g, func(x, y float64) float64 { return x })
	min, max := s.MinMax()
	assert.InDelta(t, -1, min, 1e-14)
	assert.InDelta(t, 1, max, 1e-14)
}
