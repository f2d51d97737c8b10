package hydro

import (
	"math"

	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/units"
)

// Gravity is the standard acceleration used throughout, m/s².
const Gravity = 9.80665

// PressureAtDepth is the gauge pressure rho*g*h a depth h below the free
// surface of a liquid.
func PressureAtDepth(l liquid.Liquid, depth units.Length) units.Pressure {
	return units.PressureFromPascals(l.Density.KgPerCubicMeter() * Gravity * depth.Meters())
}

// AbsolutePressureAtDepth adds the surface (atmospheric) pressure.
func AbsolutePressureAtDepth(l liquid.Liquid, depth units.Length, surface units.Pressure) units.Pressure {
	return units.PressureFromPascals(surface.Pascals() + PressureAtDepth(l, depth).Pascals())
}

// PiezometricHead converts a gauge pressure to metres of the given liquid.
func PiezometricHead(l liquid.Liquid, p units.Pressure) units.Head {
	return units.HeadFromMeters(p.Pascals() / (l.Density.KgPerCubicMeter() * Gravity))
}

// ManometerLeg is one fluid column in a manometer chain. Drop is positive
// when the traverse moves down through the fluid (pressure increases).
type ManometerLeg struct {
	Fluid liquid.Liquid
	Drop  units.Length
}

// Manometer walks a chain of legs from a known starting pressure and returns
// the pressure at the far end: p_end = p_start + sum(rho_i g drop_i).
func Manometer(start units.Pressure, legs []ManometerLeg) units.Pressure {
	p := start.Pascals()
	for _, leg := range legs {
		p += leg.Fluid.Density.KgPerCubicMeter() * Gravity * leg.Drop.Meters()
	}
	return units.PressureFromPascals(p)
}

// Buoyancy is the upward force on a body of the given displaced volume.
func Buoyancy(l liquid.Liquid, displaced units.Volume) units.Force {
	return units.ForceFromNewtons(l.Density.KgPerCubicMeter() * Gravity * displaced.CubicMeters())
}

// MetacentricHeight computes GM for a rectangular barge of the given beam,
// draft, and height of the center of gravity above the keel. Positive GM
// means the barge is stable in roll.
func MetacentricHeight(beam, draft, kg units.Length) units.Length {
	b := beam.Meters()
	d := draft.Meters()
	kb := d / 2         // center of buoyancy of a box hull
	bm := b * b / (12 * d) // I/V per unit length: (b^3/12)/(b d)
	return units.LengthFromMeters(kb + bm - kg.Meters())
}

// planeResult carries the resultant of a pressure distribution over a plane
// submerged surface.
type PlaneResult struct {
	Force            units.Force
	CentroidDepth    units.Length
	CenterOfPressure units.Length // slant distance from the free surface along the plate
}

// PlaneSurface computes the resultant hydrostatic force on a plane surface
// inclined at angle theta from the horizontal (pi/2 = vertical), with its
// centroid a slant distance yc from the free surface measured along the
// plate. The center of pressure lies below the centroid by I_xc/(yc*A).
func PlaneSurface(l liquid.Liquid, s Shape, theta float64, yc units.Length) PlaneResult {
	area := s.Area().SquareMeters()
	ycm := yc.Meters()
	hc := ycm * math.Sin(theta)
	f := l.Density.KgPerCubicMeter() * Gravity * hc * area
	ycp := ycm + s.SecondMoment()/(ycm*area)
	return PlaneResult{
		Force:            units.ForceFromNewtons(f),
		CentroidDepth:    units.LengthFromMeters(hc),
		CenterOfPressure: units.LengthFromMeters(ycp),
	}
}
