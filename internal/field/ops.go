package field

// Differential operators by central differences, one-sided at the edges.

func (s *Scalar) ddx(i, j int) float64 {
	g := s.Grid
	switch {
	case i == 0:
		return (s.At(1, j) - s.At(0, j)) / g.Dx
	case i == g.Nx-1:
		return (s.At(g.Nx-1, j) - s.At(g.Nx-2, j)) / g.Dx
	default:
		return (s.At(i+1, j) - s.At(i-1, j)) / (2 * g.Dx)
	}
}

func (s *Scalar) ddy(i, j int) float64 {
	g := s.Grid
	switch {
	case j == 0:
		return (s.At(i, 1) - s.At(i, 0)) / g.Dy
	case j == g.Ny-1:
		return (s.At(i, g.Ny-1) - s.At(i, g.Ny-2)) / g.Dy
	default:
		return (s.At(i, j+1) - s.At(i, j-1)) / (2 * g.Dy)
	}
}

// Gradient returns (ds/dx, ds/dy) as a vector field.
func Gradient(s *Scalar) *Vector {
	g := s.Grid
	out := NewVector(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			k := g.Idx(i, j)
			out.U[k] = s.ddx(i, j)
			out.V[k] = s.ddy(i, j)
		}
	}
	return out
}

// Curl returns the z-component dv/dx - du/dy of a 2D vector field.
func Curl(v *Vector) *Scalar {
	g := v.Grid
	u := &Scalar{Grid: g, Values: v.U}
	w := &Scalar{Grid: g, Values: v.V}
	out := NewScalar(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			out.Values[g.Idx(i, j)] = w.ddx(i, j) - u.ddy(i, j)
		}
	}
	return out
}

// Divergence returns du/dx + dv/dy.
func Divergence(v *Vector) *Scalar {
	g := v.Grid
	u := &Scalar{Grid: g, Values: v.U}
	w := &Scalar{Grid: g, Values: v.V}
	out := NewScalar(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			out.Values[g.Idx(i, j)] = u.ddx(i, j) + w.ddy(i, j)
		}
	}
	return out
}

// Laplacian applies the 5-point stencil to interior nodes; edge values are
// copied from the nearest interior result.
func Laplacian(s *Scalar) *Scalar {
	g := s.Grid
	out := NewScalar(g)
	dx2 := g.Dx * g.Dx
	dy2 := g.Dy * g.Dy
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			d2x := (s.At(i+1, j) - 2*s.At(i, j) + s.At(i-1, j)) / dx2
			d2y := (s.At(i, j+1) - 2*s.At(i, j) + s.At(i, j-1)) / dy2
			out.Set(i, j, d2x+d2y)
		}
	}
	for i := 0; i < g.Nx; i++ {
		out.Set(i, 0, out.At(i, 1))
		out.Set(i, g.Ny-1, out.At(i, g.Ny-2))
	}
	for j := 0; j < g.Ny; j++ {
		out.Set(0, j, out.At(1, j))
		out.Set(g.Nx-1, j, out.At(g.Nx-2, j))
	}
	return out
}
