package pipeflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/solve"
	"github.com/san-kum/flowlab/internal/units"
)

const (
	gravity = 9.80665

	// ReLaminar is the upper Reynolds number of the laminar regime used by
	// FrictionFactor. Transitional flow is treated as turbulent.
	ReLaminar = 2300

	frictionTol     = 1e-8
	frictionMaxIter = 100
)

// ErrNotConverged wraps friction-factor and velocity iterations that hit
// their caps.
var ErrNotConverged = errors.New("pipeflow: iteration did not converge")

// Pipe is a circular pipe segment.
type Pipe struct {
	Length    units.Length
	Diameter  units.Length
	Roughness units.Length // absolute roughness epsilon
}

// RelativeRoughness is epsilon/D.
func (p Pipe) RelativeRoughness() float64 {
	return p.Roughness.Meters() / p.Diameter.Meters()
}

// Area is the flow cross-section.
func (p Pipe) Area() units.Area {
	d := p.Diameter.Meters()
	return units.AreaFromSquareMeters(math.Pi * d * d / 4)
}

// Velocity converts a volume flow to mean velocity in this pipe.
func (p Pipe) Velocity(q units.VolumeFlow) units.Velocity {
	return units.VelocityFromMetersPerSecond(q.CubicMetersPerSecond() / p.Area().SquareMeters())
}

// Flow converts a mean velocity to volume flow in this pipe.
func (p Pipe) Flow(v units.Velocity) units.VolumeFlow {
	return units.VolumeFlowFromCubicMetersPerSecond(v.MetersPerSecond() * p.Area().SquareMeters())
}

// Reynolds is V*D/nu.
func Reynolds(v units.Velocity, d units.Length, nu units.KinematicViscosity) float64 {
	return v.MetersPerSecond() * d.Meters() / nu.SquareMetersPerSecond()
}

// Colebrook solves the Colebrook-White equation
//
//	1/sqrt(f) = -2 log10( (eps/D)/3.7 + 2.51/(Re sqrt(f)) )
//
// by fixed-point iteration on x = 1/sqrt(f), to a fixed tolerance.
// Valid for turbulent flow (Re > ReLaminar).
func Colebrook(relRough, re float64) (f float64, iters int, err error) {
	if re <= ReLaminar {
		return 0, 0, fmt.Errorf("pipeflow: Colebrook needs turbulent Re, got %g", re)
	}
	g := func(x float64) float64 {
		return -2 * math.Log10(relRough/3.7+2.51*x/re)
	}
	res, err := solve.FixedPoint(g, 7.0, frictionTol, frictionMaxIter)
	if err != nil {
		return 0, res.Iters, fmt.Errorf("%w: Colebrook at Re=%g, eps/D=%g", ErrNotConverged, re, relRough)
	}
	return 1 / (res.X * res.X), res.Iters, nil
}

// SwameeJain is the explicit approximation to Colebrook, good to a few
// percent for 5e3 < Re < 1e8.
func SwameeJain(relRough, re float64) float64 {
	den := math.Log10(relRough/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (den * den)
}

// Haaland is the explicit Haaland approximation.
func Haaland(relRough, re float64) float64 {
	den := -1.8 * math.Log10(math.Pow(relRough/3.7, 1.11)+6.9/re)
	return 1 / (den * den)
}

// FrictionFactor selects the regime: 64/Re for laminar flow, Colebrook
// otherwise.
func FrictionFactor(relRough, re float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("pipeflow: Reynolds number must be positive, got %g", re)
	}
	if re <= ReLaminar {
		return 64 / re, nil
	}
	f, _, err := Colebrook(relRough, re)
	return f, err
}

// DarcyHeadLoss is hf = f (L/D) V^2/(2g).
func DarcyHeadLoss(f float64, p Pipe, v units.Velocity) units.Head {
	vm := v.MetersPerSecond()
	return units.HeadFromMeters(f * p.Length.Meters() / p.Diameter.Meters() * vm * vm / (2 * gravity))
}

// MinorLoss is hm = K V^2/(2g).
func MinorLoss(k float64, v units.Velocity) units.Head {
	vm := v.MetersPerSecond()
	return units.HeadFromMeters(k * vm * vm / (2 * gravity))
}

// Loss coefficients for common fittings.
var MinorLossCoefficients = map[string]float64{
	"entrance-sharp":    0.5,
	"entrance-rounded":  0.04,
	"exit":              1.0,
	"elbow-90":          0.9,
	"elbow-45":          0.4,
	"tee-line":          0.2,
	"tee-branch":        1.8,
	"gate-valve-open":   0.15,
	"globe-valve-open":  10.0,
	"check-valve-swing": 2.5,
	"return-bend":       2.2,
}

// TotalHeadLoss sums the friction loss and the minor losses of the named
// fittings at flow q of the given liquid.
func TotalHeadLoss(l liquid.Liquid, p Pipe, q units.VolumeFlow, fittings []string) (units.Head, error) {
	v := p.Velocity(q)
	re := Reynolds(v, p.Diameter, l.KinematicViscosity())
	f, err := FrictionFactor(p.RelativeRoughness(), re)
	if err != nil {
		return 0, err
	}
	total := DarcyHeadLoss(f, p, v).Meters()
	for _, name := range fittings {
		k, ok := MinorLossCoefficients[name]
		if !ok {
			return 0, fmt.Errorf("pipeflow: unknown fitting %q", name)
		}
		total += MinorLoss(k, v).Meters()
	}
	return units.HeadFromMeters(total), nil
}
