package pipeflow

import (
	"fmt"
	"math"

	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/solve"
	"github.com/san-kum/flowlab/internal/units"
)

// VelocitySolution reports a converged energy-equation velocity solve.
type VelocitySolution struct {
	Velocity       units.Velocity
	Flow           units.VolumeFlow
	FrictionFactor float64
	Reynolds       float64
	Iterations     int
}

// SolveVelocity finds the velocity driven through a pipe by an available
// head H between two reservoirs:
//
//	H = (f L/D + sum K) V^2 / (2g)
//
// Since f depends on V through the Reynolds number, the solve alternates:
// guess f, compute V from the energy equation, recompute Re and f from the
// Colebrook correlation, and repeat until consecutive f guesses differ by
// less than tol.
func SolveVelocity(l liquid.Liquid, p Pipe, head units.Head, sumK float64) (VelocitySolution, error) {
	h := head.Meters()
	if h <= 0 {
		return VelocitySolution{}, fmt.Errorf("pipeflow: available head must be positive, got %g", h)
	}
	ld := p.Length.Meters() / p.Diameter.Meters()
	nu := l.KinematicViscosity()

	velocityFor := func(f float64) float64 {
		return math.Sqrt(2 * gravity * h / (f*ld + sumK))
	}

	const tol = 1e-6
	f := 0.02 // typical turbulent starting guess
	var v, re float64
	for i := 1; i <= frictionMaxIter; i++ {
		v = velocityFor(f)
		re = Reynolds(units.VelocityFromMetersPerSecond(v), p.Diameter, nu)
		next, err := FrictionFactor(p.RelativeRoughness(), re)
		if err != nil {
			return VelocitySolution{}, err
		}
		if math.Abs(next-f) < tol {
			v = velocityFor(next)
			vel := units.VelocityFromMetersPerSecond(v)
			return VelocitySolution{
				Velocity:       vel,
				Flow:           p.Flow(vel),
				FrictionFactor: next,
				Reynolds:       re,
				Iterations:     i,
			}, nil
		}
		f = next
	}
	return VelocitySolution{}, fmt.Errorf("%w: velocity solve for H=%g m", ErrNotConverged, h)
}

// SolveDiameter finds the smallest diameter that passes flow q with no more
// than the allowed head loss over the pipe length, holding roughness fixed.
func SolveDiameter(l liquid.Liquid, length units.Length, roughness units.Length, q units.VolumeFlow, allowed units.Head) (units.Length, error) {
	residual := func(d float64) float64 {
		p := Pipe{Length: length, Diameter: units.LengthFromMeters(d), Roughness: roughness}
		hf, err := TotalHeadLoss(l, p, q, nil)
		if err != nil {
			// Force the bracket away from regimes the correlation rejects.
			return math.Inf(1)
		}
		return hf.Meters() - allowed.Meters()
	}
	// Bracket from 5 mm to 5 m covers every teaching problem.
	res, err := solve.Bisect(residual, 0.005, 5.0, 1e-7, 200)
	if err != nil {
		return 0, fmt.Errorf("pipeflow: diameter solve: %w", err)
	}
	return units.LengthFromMeters(res.X), nil
}

// PumpHead returns the head a pump must add to move flow q through the pipe
// against a static lift and the line's losses.
func PumpHead(l liquid.Liquid, p Pipe, q units.VolumeFlow, lift units.Head, fittings []string) (units.Head, error) {
	hf, err := TotalHeadLoss(l, p, q, fittings)
	if err != nil {
		return 0, err
	}
	return units.HeadFromMeters(lift.Meters() + hf.Meters()), nil
}

// PumpPower is the hydraulic power rho g Q H for a pump of the given
// efficiency (1 = ideal), in watts.
func PumpPower(l liquid.Liquid, q units.VolumeFlow, h units.Head, efficiency float64) (float64, error) {
	if efficiency <= 0 || efficiency > 1 {
		return 0, fmt.Errorf("pipeflow: efficiency must be in (0, 1], got %g", efficiency)
	}
	return l.Density.KgPerCubicMeter() * gravity * q.CubicMetersPerSecond() * h.Meters() / efficiency, nil
}
