package hydro

import (
	"fmt"

	"github.com/san-kum/flowlab/internal/dynamo"
	"github.com/san-kum/flowlab/internal/gas"
	"github.com/san-kum/flowlab/internal/integrators"
	"github.com/san-kum/flowlab/internal/units"
)

// International Standard Atmosphere reference values.
const (
	SeaLevelPressure    = 101325.0 // Pa
	SeaLevelTemperature = 288.15   // K
	MaxAltitude         = 32000.0  // m, top of the modelled layers
)

// ISA lapse-rate layers up to 32 km.
var isaLayers = []struct {
	base  float64 // m
	tBase float64 // K at layer base
	lapse float64 // K/m, positive = cooling with altitude handled via sign
}{
	{0, 288.15, -0.0065},
	{11000, 216.65, 0},
	{20000, 216.65, 0.001},
}

// ISATemperature returns the standard-atmosphere temperature at altitude z.
func ISATemperature(z units.Length) units.Temperature {
	zm := z.Meters()
	if zm > MaxAltitude {
		zm = MaxAltitude
	}
	layer := isaLayers[0]
	for _, l := range isaLayers {
		if zm >= l.base {
			layer = l
		}
	}
	return units.TemperatureFromKelvin(layer.tBase + layer.lapse*(zm-layer.base))
}

// atmosphereODE integrates dp/dz = -rho g = -(p/(R T(z))) g. The single
// state variable is pressure; the independent variable is altitude.
type atmosphereODE struct {
	g gas.Gas
}

func (a *atmosphereODE) Derive(x dynamo.State, z float64) dynamo.State {
	p := x[0]
	t := ISATemperature(units.LengthFromMeters(z)).Kelvin()
	rho := p / (a.g.R * t)
	return dynamo.State{-rho * Gravity}
}

func (a *atmosphereODE) StateDim() int { return 1 }

// AtmospherePoint is one row of an integrated standard-atmosphere profile.
type AtmospherePoint struct {
	Altitude    units.Length
	Temperature units.Temperature
	Pressure    units.Pressure
	Density     units.Density
}

// AtmosphereProfile integrates the hydrostatic equation through the ISA
// temperature layers from sea level to top with the given altitude step,
// returning sampled points. Air is the working gas.
func AtmosphereProfile(top units.Length, dz units.Length) ([]AtmospherePoint, error) {
	zTop := top.Meters()
	step := dz.Meters()
	if step <= 0 {
		return nil, fmt.Errorf("hydro: altitude step must be positive, got %g", step)
	}
	if zTop <= 0 || zTop > MaxAltitude {
		return nil, fmt.Errorf("hydro: top altitude must be in (0, %g] m, got %g", MaxAltitude, zTop)
	}

	ode := &atmosphereODE{g: gas.Air}
	integ := integrators.NewRK4()

	x := dynamo.State{SeaLevelPressure}
	points := make([]AtmospherePoint, 0, int(zTop/step)+1)
	for z := 0.0; ; z += step {
		if z > zTop {
			break
		}
		t := ISATemperature(units.LengthFromMeters(z))
		p := units.PressureFromPascals(x[0])
		points = append(points, AtmospherePoint{
			Altitude:    units.LengthFromMeters(z),
			Temperature: t,
			Pressure:    p,
			Density:     gas.Air.Density(p, t),
		})
		x = integ.Step(ode, x, z, step)
		if !x.IsValid() {
			return points, dynamo.ErrUnstable
		}
	}
	return points, nil
}
