package gas

import (
	"fmt"
	"math"

	"github.com/san-kum/flowlab/internal/solve"
)

// IsentropicRatios holds the static-to-stagnation ratios at a Mach number.
type IsentropicRatios struct {
	Mach      float64
	TRatio    float64 // T/T0
	PRatio    float64 // p/p0
	RhoRatio  float64 // rho/rho0
	AreaRatio float64 // A/A*
}

// Isentropic evaluates the isentropic flow ratios at Mach number m.
func (g Gas) Isentropic(m float64) IsentropicRatios {
	k := g.Gamma
	base := 1 + (k-1)/2*m*m
	r := IsentropicRatios{
		Mach:     m,
		TRatio:   1 / base,
		PRatio:   math.Pow(base, -k/(k-1)),
		RhoRatio: math.Pow(base, -1/(k-1)),
	}
	if m > 0 {
		// A/A* = (1/M) [ (2/(k+1)) (1 + (k-1)/2 M^2) ]^((k+1)/(2(k-1)))
		exp := (k + 1) / (2 * (k - 1))
		r.AreaRatio = math.Pow(2/(k+1)*base, exp) / m
	}
	return r
}

// MachFromAreaRatio inverts the area-Mach relation for A/A* >= 1.
// The subsonic root is returned when supersonic is false, the supersonic
// root otherwise.
func (g Gas) MachFromAreaRatio(areaRatio float64, supersonic bool) (float64, error) {
	if areaRatio < 1 {
		return 0, fmt.Errorf("gas: area ratio %g below throat value 1", areaRatio)
	}
	f := func(m float64) float64 { return g.Isentropic(m).AreaRatio - areaRatio }
	var lo, hi float64
	if supersonic {
		lo, hi = 1, 100
	} else {
		lo, hi = 1e-6, 1
	}
	res, err := solve.Bisect(f, lo, hi, 1e-10, 200)
	if err != nil {
		return 0, fmt.Errorf("gas: area-ratio inversion failed: %w", err)
	}
	return res.X, nil
}
