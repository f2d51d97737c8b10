package field

import (
	"fmt"
	"math"
)

// Grid is a uniform 2D node-centered grid over [X0, X0+Lx] x [Y0, Y0+Ly].
type Grid struct {
	Nx, Ny int
	X0, Y0 float64
	Dx, Dy float64
}

// NewGrid builds a grid of nx by ny nodes spanning the given extents.
func NewGrid(nx, ny int, x0, y0, lx, ly float64) (*Grid, error) {
	if nx < 3 || ny < 3 {
		return nil, fmt.Errorf("field: grid needs at least 3 nodes per axis, got %dx%d", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("field: grid extents must be positive, got %g x %g", lx, ly)
	}
	return &Grid{
		Nx: nx, Ny: ny,
		X0: x0, Y0: y0,
		Dx: lx / float64(nx-1),
		Dy: ly / float64(ny-1),
	}, nil
}

// Idx maps node coordinates to flat storage index.
func (g *Grid) Idx(i, j int) int { return j*g.Nx + i }

// X and Y return the physical coordinates of node (i, j).
func (g *Grid) X(i int) float64 { return g.X0 + float64(i)*g.Dx }
func (g *Grid) Y(j int) float64 { return g.Y0 + float64(j)*g.Dy }

// Len is the node count.
func (g *Grid) Len() int { return g.Nx * g.Ny }

// Scalar is a scalar field sampled at grid nodes, flat-stored row-major.
type Scalar struct {
	Grid   *Grid
	Values []float64
}

// NewScalar allocates a zero scalar field on g.
func NewScalar(g *Grid) *Scalar {
	return &Scalar{Grid: g, Values: make([]float64, g.Len())}
}

// SampleScalar fills a scalar field by evaluating f at every node.
func SampleScalar(g *Grid, f func(x, y float64) float64) *Scalar {
	s := NewScalar(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			s.Values[g.Idx(i, j)] = f(g.X(i), g.Y(j))
		}
	}
	return s
}

// At reads the value at node (i, j).
func (s *Scalar) At(i, j int) float64 { return s.Values[s.Grid.Idx(i, j)] }

// Set writes the value at node (i, j).
func (s *Scalar) Set(i, j int, v float64) { s.Values[s.Grid.Idx(i, j)] = v }

// MinMax scans the field range for rendering.
func (s *Scalar) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Vector is a 2D vector field sampled at grid nodes.
type Vector struct {
	Grid *Grid
	U, V []float64
}

// NewVector allocates a zero vector field on g.
func NewVector(g *Grid) *Vector {
	return &Vector{Grid: g, U: make([]float64, g.Len()), V: make([]float64, g.Len())}
}

// SampleVector fills a vector field by evaluating f at every node.
func SampleVector(g *Grid, f func(x, y float64) (u, v float64)) *Vector {
	vf := NewVector(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			u, v := f(g.X(i), g.Y(j))
			k := g.Idx(i, j)
			vf.U[k] = u
			vf.V[k] = v
		}
	}
	return vf
}

// At reads the vector at node (i, j).
func (v *Vector) At(i, j int) (float64, float64) {
	k := v.Grid.Idx(i, j)
	return v.U[k], v.V[k]
}

// MaxMagnitude is the largest vector magnitude, used to scale rendering.
func (v *Vector) MaxMagnitude() float64 {
	max := 0.0
	for k := range v.U {
		m := math.Hypot(v.U[k], v.V[k])
		if m > max {
			max = m
		}
	}
	return max
}

// Bilinear interpolates the vector field at a physical point, clamping to
// the grid boundary.
func (v *Vector) Bilinear(x, y float64) (float64, float64) {
	g := v.Grid
	fx := (x - g.X0) / g.Dx
	fy := (y - g.Y0) / g.Dy
	i := int(math.Floor(fx))
	j := int(math.Floor(fy))
	if i < 0 {
		i, fx = 0, 0
	} else if i >= g.Nx-1 {
		i, fx = g.Nx-2, float64(g.Nx-1)
	}
	if j < 0 {
		j, fy = 0, 0
	} else if j >= g.Ny-1 {
		j, fy = g.Ny-2, float64(g.Ny-1)
	}
	tx := fx - float64(i)
	ty := fy - float64(j)
	if tx < 0 {
		tx = 0
	} else if tx > 1 {
		tx = 1
	}
	if ty < 0 {
		ty = 0
	} else if ty > 1 {
		ty = 1
	}

	u00, v00 := v.At(i, j)
	u10, v10 := v.At(i+1, j)
	u01, v01 := v.At(i, j+1)
	u11, v11 := v.At(i+1, j+1)

	u := (1-tx)*(1-ty)*u00 + tx*(1-ty)*u10 + (1-tx)*ty*u01 + tx*ty*u11
	w := (1-tx)*(1-ty)*v00 + tx*(1-ty)*v10 + (1-tx)*ty*v01 + tx*ty*v11
	return u, w
}
