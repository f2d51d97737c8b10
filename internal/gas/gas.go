package gas

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/flowlab/internal/units"
)

// Gas bundles the constants needed to evaluate ideal-gas properties:
// specific-heat ratio, specific gas constant, and the Sutherland viscosity
// reference state.
type Gas struct {
	Name  string
	Gamma float64 // cp/cv
	R     float64 // J/(kg·K)

	// Sutherland law reference: mu(T) = Mu0 * (T/T0)^1.5 * (T0+S)/(T+S)
	Mu0 float64 // Pa·s at T0
	T0  float64 // K
	S   float64 // K
}

var catalog = map[string]Gas{
	"air":      {Name: "air", Gamma: 1.400, R: 287.05, Mu0: 1.716e-5, T0: 273.15, S: 110.4},
	"nitrogen": {Name: "nitrogen", Gamma: 1.400, R: 296.80, Mu0: 1.663e-5, T0: 273.15, S: 107.0},
	"oxygen":   {Name: "oxygen", Gamma: 1.395, R: 259.84, Mu0: 1.919e-5, T0: 273.15, S: 139.0},
	"helium":   {Name: "helium", Gamma: 1.667, R: 2077.1, Mu0: 1.870e-5, T0: 273.15, S: 79.4},
	"hydrogen": {Name: "hydrogen", Gamma: 1.405, R: 4124.2, Mu0: 8.411e-6, T0: 273.15, S: 97.0},
	"co2":      {Name: "co2", Gamma: 1.289, R: 188.92, Mu0: 1.370e-5, T0: 273.15, S: 222.0},
	"methane":  {Name: "methane", Gamma: 1.299, R: 518.28, Mu0: 1.024e-5, T0: 273.15, S: 198.0},
}

// Air is the workhorse gas of the lessons.
var Air = catalog["air"]

// Lookup returns a catalog gas by name.
func Lookup(name string) (Gas, error) {
	g, ok := catalog[name]
	if !ok {
		return Gas{}, fmt.Errorf("gas: unknown gas %q", name)
	}
	return g, nil
}

// Names lists the catalog gases in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Density evaluates the ideal gas law rho = p/(R T). Pressure is absolute.
func (g Gas) Density(p units.Pressure, t units.Temperature) units.Density {
	return units.DensityFromKgPerCubicMeter(p.Pascals() / (g.R * t.Kelvin()))
}

// SpecificWeight is rho*g at the given state.
func (g Gas) SpecificWeight(p units.Pressure, t units.Temperature) units.SpecificWeight {
	return units.SpecificWeightFromNPerCubicMeter(g.Density(p, t).KgPerCubicMeter() * gravity)
}

// Cp is the specific heat at constant pressure, J/(kg·K).
func (g Gas) Cp() float64 { return g.Gamma * g.R / (g.Gamma - 1) }

// Cv is the specific heat at constant volume, J/(kg·K).
func (g Gas) Cv() float64 { return g.R / (g.Gamma - 1) }

// SoundSpeed is sqrt(gamma R T).
func (g Gas) SoundSpeed(t units.Temperature) units.Velocity {
	return units.VelocityFromMetersPerSecond(math.Sqrt(g.Gamma * g.R * t.Kelvin()))
}

// Viscosity evaluates the Sutherland correlation at temperature t.
func (g Gas) Viscosity(t units.Temperature) units.DynamicViscosity {
	tk := t.Kelvin()
	mu := g.Mu0 * math.Pow(tk/g.T0, 1.5) * (g.T0 + g.S) / (tk + g.S)
	return units.DynamicViscosityFromPascalSeconds(mu)
}

// KinematicViscosity is mu/rho at the given state.
func (g Gas) KinematicViscosity(p units.Pressure, t units.Temperature) units.KinematicViscosity {
	nu := g.Viscosity(t).PascalSeconds() / g.Density(p, t).KgPerCubicMeter()
	return units.KinematicViscosityFromSquareMetersPerSecond(nu)
}

const gravity = 9.80665 // m/s², standard
