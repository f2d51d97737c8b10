package viz

import (
	"math"

	"github.com/san-kum/flowlab/internal/field"
)

// Projection maps a physical rectangle onto canvas sub-pixel coordinates.
// Canvas y grows downward, so the world y-axis is flipped.
type Projection struct {
	X0, Y0 float64 // world lower-left
	X1, Y1 float64 // world upper-right
	W, H   int     // canvas sub-pixel dimensions
}

// NewProjection covers the world rect with the whole canvas.
func NewProjection(c *Canvas, x0, y0, x1, y1 float64) Projection {
	return Projection{X0: x0, Y0: y0, X1: x1, Y1: y1, W: c.Width * 2, H: c.Height * 4}
}

// ToCanvas converts world coordinates to sub-pixel coordinates.
func (p Projection) ToCanvas(x, y float64) (int, int) {
	px := (x - p.X0) / (p.X1 - p.X0) * float64(p.W-1)
	py := (1 - (y-p.Y0)/(p.Y1-p.Y0)) * float64(p.H-1)
	return int(math.Round(px)), int(math.Round(py))
}

// DrawContours marks level crossings of a scalar field on the canvas:
// for each grid cell edge whose endpoint values straddle a contour level,
// the crossing point is plotted. With evenly spaced levels this renders the
// familiar contour-band picture of a streamfunction.
func DrawContours(c *Canvas, s *field.Scalar, proj Projection, nLevels int) {
	min, max := s.MinMax()
	if nLevels < 1 || max <= min {
		return
	}
	g := s.Grid
	step := (max - min) / float64(nLevels+1)

	mark := func(xa, ya, va, xb, yb, vb float64) {
		for l := 1; l <= nLevels; l++ {
			level := min + float64(l)*step
			if (va-level)*(vb-level) < 0 {
				t := (level - va) / (vb - va)
				px, py := proj.ToCanvas(xa+t*(xb-xa), ya+t*(yb-ya))
				c.Set(px, py)
			}
		}
	}

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if i+1 < g.Nx {
				mark(g.X(i), g.Y(j), s.At(i, j), g.X(i+1), g.Y(j), s.At(i+1, j))
			}
			if j+1 < g.Ny {
				mark(g.X(i), g.Y(j), s.At(i, j), g.X(i), g.Y(j+1), s.At(i, j+1))
			}
		}
	}
}

// DrawStreamline traces the velocity field from a seed point with midpoint
// steps, plotting each position until it leaves the projection rect or the
// step budget runs out.
func DrawStreamline(c *Canvas, vel *field.Vector, proj Projection, x, y, ds float64, steps int) {
	for n := 0; n < steps; n++ {
		if x < proj.X0 || x > proj.X1 || y < proj.Y0 || y > proj.Y1 {
			return
		}
		px, py := proj.ToCanvas(x, y)
		c.Set(px, py)

		u, v := vel.Bilinear(x, y)
		speed := math.Hypot(u, v)
		if speed < 1e-12 {
			return
		}
		// Midpoint step at fixed arc length.
		mx := x + 0.5*ds*u/speed
		my := y + 0.5*ds*v/speed
		um, vm := vel.Bilinear(mx, my)
		sm := math.Hypot(um, vm)
		if sm < 1e-12 {
			return
		}
		x += ds * um / sm
		y += ds * vm / sm
	}
}

// DrawMarker plots a small cross at a world position.
func DrawMarker(c *Canvas, proj Projection, x, y float64) {
	px, py := proj.ToCanvas(x, y)
	c.Set(px, py)
	c.Set(px-1, py)
	c.Set(px+1, py)
	c.Set(px, py-1)
	c.Set(px, py+1)
}
