package hydro

import (
	"math"

	"github.com/san-kum/flowlab/internal/units"
)

// Shape describes the geometry a plane-surface force calculation needs:
// area and the second moment of area about the horizontal centroidal axis.
type Shape interface {
	Area() units.Area
	SecondMoment() float64 // m^4, about the centroidal axis
}

// Rectangle of width b (horizontal) and height h (along the plate).
type Rectangle struct {
	Width  units.Length
	Height units.Length
}

func (r Rectangle) Area() units.Area {
	return units.AreaFromSquareMeters(r.Width.Meters() * r.Height.Meters())
}

func (r Rectangle) SecondMoment() float64 {
	b, h := r.Width.Meters(), r.Height.Meters()
	return b * h * h * h / 12
}

// Circle of the given diameter.
type Circle struct {
	Diameter units.Length
}

func (c Circle) Area() units.Area {
	d := c.Diameter.Meters()
	return units.AreaFromSquareMeters(math.Pi * d * d / 4)
}

func (c Circle) SecondMoment() float64 {
	d := c.Diameter.Meters()
	return math.Pi * d * d * d * d / 64
}

// Triangle with horizontal base b and height h, apex pointing down the plate.
type Triangle struct {
	Base   units.Length
	Height units.Length
}

func (t Triangle) Area() units.Area {
	return units.AreaFromSquareMeters(t.Base.Meters() * t.Height.Meters() / 2)
}

func (t Triangle) SecondMoment() float64 {
	b, h := t.Base.Meters(), t.Height.Meters()
	return b * h * h * h / 36
}
