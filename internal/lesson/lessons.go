package lesson

import (
	"math"

	"github.com/san-kum/flowlab/internal/field"
	"github.com/san-kum/flowlab/internal/gas"
	"github.com/san-kum/flowlab/internal/hydro"
	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/pipeflow"
	"github.com/san-kum/flowlab/internal/units"
	"github.com/san-kum/flowlab/internal/viz"
	"github.com/san-kum/flowlab/internal/vortex"
)

func init() {
	register(unitsLesson())
	register(gasLesson())
	register(hydrostaticsLesson())
	register(atmosphereLesson())
	register(pipeFlowLesson())
	register(vortexLesson())
}

func unitsLesson() *Lesson {
	return &Lesson{
		Name:  "units",
		Title: "Working with unit-tagged quantities",
		Cells: []Cell{
			{
				Prose: "Every physical quantity in this lab carries its dimension in " +
					"its type. A pressure is a Pressure, not a bare float, so a pipe " +
					"diameter can never end up where a head loss belongs. Values are " +
					"stored in SI and converted on the way in and out.",
				Compute: func() (*Output, error) {
					out := &Output{}
					p := units.PressureFromPSI(14.696)
					out.Printf("p = %.4g Pa = %.4g kPa = %.4g atm", p.Pascals(), p.Kilopascals(), p.Atm())
					t := units.TemperatureFromFahrenheit(68)
					out.Printf("T = %.4g K = %.4g C", t.Kelvin(), t.Celsius())
					q := units.VolumeFlowFromGPM(100)
					out.Printf("Q = %.4g m3/s = %.4g L/s", q.CubicMetersPerSecond(), q.LitersPerSecond())
					return out, nil
				},
			},
			{
				Prose: "Parsing accepts \"value unit\" strings, the form the YAML case " +
					"files use.",
				Compute: func() (*Output, error) {
					out := &Output{}
					p, err := units.ParsePressure("2.5 bar")
					if err != nil {
						return nil, err
					}
					out.Printf("\"2.5 bar\" -> %.4g Pa", p.Pascals())
					l, err := units.ParseLength("6 in")
					if err != nil {
						return nil, err
					}
					out.Printf("\"6 in\" -> %.4g m", l.Meters())
					return out, nil
				},
			},
		},
	}
}

func gasLesson() *Lesson {
	return &Lesson{
		Name:  "gas-properties",
		Title: "Ideal-gas properties and compressibility",
		Cells: []Cell{
			{
				Prose: "For a perfect gas the density follows from the equation of " +
					"state rho = p/(R T). Air at standard sea-level conditions:",
				Compute: func() (*Output, error) {
					out := &Output{}
					p := units.PressureFromAtm(1)
					t := units.TemperatureFromCelsius(15)
					rho := gas.Air.Density(p, t)
					out.Printf("rho = %.4g kg/m3", rho.KgPerCubicMeter())
					out.Printf("cp  = %.1f J/(kg K), cv = %.1f J/(kg K)", gas.Air.Cp(), gas.Air.Cv())
					out.Printf("a   = %.1f m/s (speed of sound)", gas.Air.SoundSpeed(t).MetersPerSecond())
					return out, nil
				},
			},
			{
				Prose: "Sutherland's correlation gives the viscosity growth with " +
					"temperature. Plotted from -50 C to 500 C:",
				Compute: func() (*Output, error) {
					out := &Output{}
					for tc := -50.0; tc <= 500; tc += 10 {
						mu := gas.Air.Viscosity(units.TemperatureFromCelsius(tc))
						out.Series = append(out.Series, mu.PascalSeconds()*1e5)
					}
					out.SeriesCaption = "air viscosity, 1e-5 Pa s, -50..500 C"
					return out, nil
				},
			},
			{
				Prose: "Isentropic flow ratios collapse onto functions of the Mach " +
					"number alone. At M = 2 in air:",
				Compute: func() (*Output, error) {
					out := &Output{}
					r := gas.Air.Isentropic(2)
					out.Printf("T/T0 = %.4f  p/p0 = %.4f  rho/rho0 = %.4f  A/A* = %.4f",
						r.TRatio, r.PRatio, r.RhoRatio, r.AreaRatio)
					m, err := gas.Air.MachFromAreaRatio(r.AreaRatio, true)
					if err != nil {
						return nil, err
					}
					out.Printf("inverting A/A* = %.4f (supersonic branch) -> M = %.4f", r.AreaRatio, m)
					return out, nil
				},
			},
		},
	}
}

func hydrostaticsLesson() *Lesson {
	return &Lesson{
		Name:  "hydrostatics",
		Title: "Pressure, manometers, and submerged surfaces",
		Cells: []Cell{
			{
				Prose: "Pressure in a static liquid grows linearly with depth, " +
					"p = rho g h. Ten metres of water is close to one atmosphere:",
				Compute: func() (*Output, error) {
					out := &Output{}
					w := liquid.Water(units.TemperatureFromCelsius(20))
					p := hydro.PressureAtDepth(w, units.LengthFromMeters(10))
					out.Printf("p(10 m) = %.4g kPa = %.4f atm", p.Kilopascals(), p.Atm())
					return out, nil
				},
			},
			{
				Prose: "A U-tube manometer is walked leg by leg: down a column adds " +
					"rho g h, up subtracts it. Water over mercury, a classic gauge:",
				Compute: func() (*Output, error) {
					out := &Output{}
					w := liquid.Water(units.TemperatureFromCelsius(20))
					hg, err := liquid.Lookup("mercury")
					if err != nil {
						return nil, err
					}
					p := hydro.Manometer(units.PressureFromPascals(0), []hydro.ManometerLeg{
						{Fluid: w, Drop: units.LengthFromMeters(0.6)},
						{Fluid: hg, Drop: units.LengthFromMeters(-0.25)},
					})
					out.Printf("p_A = %.4g kPa (gauge)", p.Kilopascals())
					return out, nil
				},
			},
			{
				Prose: "The resultant force on a submerged plane surface acts below " +
					"its centroid. A vertical 2 m x 3 m gate with centroid 5 m down:",
				Compute: func() (*Output, error) {
					out := &Output{}
					w := liquid.Water(units.TemperatureFromCelsius(20))
					gate := hydro.Rectangle{Width: units.LengthFromMeters(2), Height: units.LengthFromMeters(3)}
					res := hydro.PlaneSurface(w, gate, math.Pi/2, units.LengthFromMeters(5))
					out.Printf("F   = %.4g kN", res.Force.Kilonewtons())
					out.Printf("ycp = %.4f m (centroid at 5 m)", res.CenterOfPressure.Meters())
					return out, nil
				},
			},
		},
	}
}

func atmosphereLesson() *Lesson {
	return &Lesson{
		Name:  "standard-atmosphere",
		Title: "Integrating the standard atmosphere",
		Cells: []Cell{
			{
				Prose: "Gas columns are compressible, so pressure falls exponentially " +
					"rather than linearly. Integrating dp/dz = -rho g with the ISA " +
					"lapse-rate layers reproduces the standard atmosphere tables.",
				Compute: func() (*Output, error) {
					out := &Output{}
					points, err := hydro.AtmosphereProfile(units.LengthFromKilometers(20), units.LengthFromMeters(100))
					if err != nil {
						return nil, err
					}
					for _, pt := range points {
						out.Series = append(out.Series, pt.Pressure.Kilopascals())
					}
					out.SeriesCaption = "pressure, kPa, 0..20 km"

					for _, km := range []float64{0, 5, 11, 20} {
						for _, pt := range points {
							if math.Abs(pt.Altitude.Kilometers()-km) < 1e-9 {
								out.Printf("z = %5.1f km  T = %6.2f K  p = %8.1f Pa  rho = %.4f kg/m3",
									km, pt.Temperature.Kelvin(), pt.Pressure.Pascals(), pt.Density.KgPerCubicMeter())
							}
						}
					}
					return out, nil
				},
			},
		},
	}
}

func pipeFlowLesson() *Lesson {
	return &Lesson{
		Name:  "pipe-flow",
		Title: "Friction factors and the energy equation",
		Cells: []Cell{
			{
				Prose: "Turbulent pipe friction follows the implicit Colebrook-White " +
					"equation. Writing it as a fixed-point problem in 1/sqrt(f) " +
					"converges in a handful of iterations:",
				Compute: func() (*Output, error) {
					out := &Output{}
					f, iters, err := pipeflow.Colebrook(0.002, 1e5)
					if err != nil {
						return nil, err
					}
					out.Printf("eps/D = 0.002, Re = 1e5:  f = %.5f  (%d iterations)", f, iters)
					out.Printf("Swamee-Jain explicit:     f = %.5f", pipeflow.SwameeJain(0.002, 1e5))
					out.Printf("Haaland explicit:         f = %.5f", pipeflow.Haaland(0.002, 1e5))
					return out, nil
				},
			},
			{
				Prose: "Sweeping Re at fixed roughness traces one curve of the Moody " +
					"chart:",
				Compute: func() (*Output, error) {
					out := &Output{}
					for lg := 3.5; lg <= 8; lg += 0.1 {
						f, _, err := pipeflow.Colebrook(0.0005, math.Pow(10, lg))
						if err != nil {
							return nil, err
						}
						out.Series = append(out.Series, f)
					}
					out.SeriesCaption = "f vs log10(Re) in 3.5..8, eps/D = 5e-4"
					return out, nil
				},
			},
			{
				Prose: "When the head is known and the velocity is not, friction " +
					"factor and velocity must be solved together: guess f, get V " +
					"from the energy equation, update Re and f, repeat.",
				Compute: func() (*Output, error) {
					out := &Output{}
					w := liquid.Water(units.TemperatureFromCelsius(20))
					p := pipeflow.Pipe{
						Length:    units.LengthFromMeters(100),
						Diameter:  units.LengthFromMeters(0.1),
						Roughness: units.LengthFromMillimeters(0.26),
					}
					sol, err := pipeflow.SolveVelocity(w, p, units.HeadFromMeters(5), 1.5)
					if err != nil {
						return nil, err
					}
					out.Printf("V  = %.4f m/s   Q = %.4g L/s", sol.Velocity.MetersPerSecond(), sol.Flow.LitersPerSecond())
					out.Printf("f  = %.5f   Re = %.4g   (%d outer iterations)", sol.FrictionFactor, sol.Reynolds, sol.Iterations)
					return out, nil
				},
			},
		},
	}
}

func vortexLesson() *Lesson {
	return &Lesson{
		Name:  "vortex-streamfunction",
		Title: "Vortices, vorticity, and the streamfunction",
		Cells: []Cell{
			{
				Prose: "A counter-rotating vortex pair induces a velocity field whose " +
					"curl is the vorticity. Solving the Poisson equation " +
					"del2 psi = -omega with psi = 0 on the boundary recovers the " +
					"streamfunction; its contours are the streamlines.",
				Compute: func() (*Output, error) {
					g, err := field.NewGrid(41, 41, -1, -1, 2, 2)
					if err != nil {
						return nil, err
					}
					pair := []vortex.Model{
						vortex.Rankine{X: 0, Y: 0.35, Gamma: 1, Core: 0.15},
						vortex.Rankine{X: 0, Y: -0.35, Gamma: -1, Core: 0.15},
					}
					vel := vortex.Superpose(g, pair...)
					omega := vortex.Vorticity(vel)
					psi, err := vortex.Streamfunction(omega)
					if err != nil {
						return nil, err
					}

					out := &Output{}
					lo, hi := psi.MinMax()
					out.Printf("psi range: [%.4g, %.4g]", lo, hi)

					c := viz.NewCanvas(60, 24)
					proj := viz.NewProjection(c, -1, -1, 1, 1)
					viz.DrawContours(c, psi, proj, 9)
					viz.DrawMarker(c, proj, 0, 0.35)
					viz.DrawMarker(c, proj, 0, -0.35)
					out.Canvas = c
					return out, nil
				},
			},
			{
				Prose: "Differentiating back, u = dpsi/dy and v = -dpsi/dx should " +
					"reproduce the velocity away from the vortex cores:",
				Compute: func() (*Output, error) {
					g, err := field.NewGrid(41, 41, -1, -1, 2, 2)
					if err != nil {
						return nil, err
					}
					vel := vortex.Superpose(g,
						vortex.Rankine{X: 0, Y: 0.35, Gamma: 1, Core: 0.15},
						vortex.Rankine{X: 0, Y: -0.35, Gamma: -1, Core: 0.15},
					)
					psi, err := vortex.Streamfunction(vortex.Vorticity(vel))
					if err != nil {
						return nil, err
					}
					rec := vortex.VelocityFromStreamfunction(psi)

					out := &Output{}
					u0, _ := vel.Bilinear(0.5, 0)
					u1, _ := rec.Bilinear(0.5, 0)
					out.Printf("u(0.5, 0): sampled %.4f, from psi %.4f", u0, u1)
					return out, nil
				},
			},
		},
	}
}
