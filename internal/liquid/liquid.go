// Package liquid provides the liquid property tables used throughout the
// lessons: density, dynamic viscosity, vapor pressure, and surface tension
// for common working fluids, with water interpolated over temperature.
package liquid

import (
	"fmt"
	"sort"

	"github.com/san-kum/flowlab/internal/units"
)

// Liquid is a fluid state at a fixed reference temperature.
type Liquid struct {
	Name           string
	Density        units.Density
	Viscosity      units.DynamicViscosity
	VaporPressure  units.Pressure
	SurfaceTension float64 // N/m against air
}

// KinematicViscosity is mu/rho.
func (l Liquid) KinematicViscosity() units.KinematicViscosity {
	nu := l.Viscosity.PascalSeconds() / l.Density.KgPerCubicMeter()
	return units.KinematicViscosityFromSquareMetersPerSecond(nu)
}

// SpecificWeight is rho*g.
func (l Liquid) SpecificWeight() units.SpecificWeight {
	return units.SpecificWeightFromNPerCubicMeter(l.Density.KgPerCubicMeter() * 9.80665)
}

// SpecificGravity is relative to water at 4 C.
func (l Liquid) SpecificGravity() float64 {
	return l.Density.KgPerCubicMeter() / 1000.0
}

// Fixed-temperature catalog (20 C unless noted).
var catalog = map[string]Liquid{
	"seawater": {Name: "seawater", Density: 1025, Viscosity: 1.08e-3, VaporPressure: 2340, SurfaceTension: 0.0734},
	"glycerin": {Name: "glycerin", Density: 1260, Viscosity: 1.49, VaporPressure: 0.014, SurfaceTension: 0.0633},
	"mercury":  {Name: "mercury", Density: 13546, Viscosity: 1.55e-3, VaporPressure: 0.17, SurfaceTension: 0.484},
	"sae30":    {Name: "sae30", Density: 891, Viscosity: 0.29, VaporPressure: 0, SurfaceTension: 0.035},
	"gasoline": {Name: "gasoline", Density: 680, Viscosity: 2.9e-4, VaporPressure: 5.5e4, SurfaceTension: 0.022},
	"ethanol":  {Name: "ethanol", Density: 789, Viscosity: 1.19e-3, VaporPressure: 5870, SurfaceTension: 0.0228},
}

// Lookup returns a catalog liquid by name. "water" is served from the
// temperature table at 20 C.
func Lookup(name string) (Liquid, error) {
	if name == "water" {
		return Water(units.TemperatureFromCelsius(20)), nil
	}
	l, ok := catalog[name]
	if !ok {
		return Liquid{}, fmt.Errorf("liquid: unknown liquid %q", name)
	}
	return l, nil
}

// Names lists the catalog liquids, water included, in sorted order.
func Names() []string {
	names := []string{"water"}
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Water property table, 0-100 C at atmospheric pressure.
var waterTable = []struct {
	tC    float64
	rho   float64 // kg/m3
	mu    float64 // Pa·s
	pv    float64 // Pa
	sigma float64 // N/m
}{
	{0, 999.9, 1.792e-3, 611, 0.0756},
	{5, 1000.0, 1.519e-3, 872, 0.0749},
	{10, 999.7, 1.307e-3, 1228, 0.0742},
	{15, 999.1, 1.139e-3, 1705, 0.0735},
	{20, 998.2, 1.002e-3, 2338, 0.0728},
	{25, 997.1, 0.890e-3, 3169, 0.0720},
	{30, 995.7, 0.798e-3, 4246, 0.0712},
	{40, 992.2, 0.653e-3, 7384, 0.0696},
	{50, 988.1, 0.547e-3, 12350, 0.0679},
	{60, 983.2, 0.466e-3, 19940, 0.0662},
	{70, 977.8, 0.404e-3, 31190, 0.0644},
	{80, 971.8, 0.354e-3, 47390, 0.0626},
	{90, 965.3, 0.315e-3, 70140, 0.0608},
	{100, 958.4, 0.282e-3, 101325, 0.0589},
}

// Water interpolates water properties at temperature t. Temperatures are
// clamped to the table range 0-100 C.
func Water(t units.Temperature) Liquid {
	tc := t.Celsius()
	n := len(waterTable)
	if tc <= waterTable[0].tC {
		r := waterTable[0]
		return Liquid{Name: "water", Density: units.Density(r.rho), Viscosity: units.DynamicViscosity(r.mu), VaporPressure: units.Pressure(r.pv), SurfaceTension: r.sigma}
	}
	if tc >= waterTable[n-1].tC {
		r := waterTable[n-1]
		return Liquid{Name: "water", Density: units.Density(r.rho), Viscosity: units.DynamicViscosity(r.mu), VaporPressure: units.Pressure(r.pv), SurfaceTension: r.sigma}
	}
	i := sort.Search(n, func(i int) bool { return waterTable[i].tC >= tc }) - 1
	a, b := waterTable[i], waterTable[i+1]
	f := (tc - a.tC) / (b.tC - a.tC)
	lerp := func(x, y float64) float64 { return x + f*(y-x) }
	return Liquid{
		Name:           "water",
		Density:        units.Density(lerp(a.rho, b.rho)),
		Viscosity:      units.DynamicViscosity(lerp(a.mu, b.mu)),
		VaporPressure:  units.Pressure(lerp(a.pv, b.pv)),
		SurfaceTension: lerp(a.sigma, b.sigma),
	}
}
