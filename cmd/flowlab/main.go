package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flowlab/internal/config"
	"github.com/san-kum/flowlab/internal/dynamo"
	"github.com/san-kum/flowlab/internal/export"
	"github.com/san-kum/flowlab/internal/field"
	"github.com/san-kum/flowlab/internal/gas"
	"github.com/san-kum/flowlab/internal/hydro"
	"github.com/san-kum/flowlab/internal/integrators"
	"github.com/san-kum/flowlab/internal/lesson"
	"github.com/san-kum/flowlab/internal/liquid"
	"github.com/san-kum/flowlab/internal/metrics"
	"github.com/san-kum/flowlab/internal/pipeflow"
	"github.com/san-kum/flowlab/internal/storage"
	"github.com/san-kum/flowlab/internal/tui"
	"github.com/san-kum/flowlab/internal/units"
	"github.com/san-kum/flowlab/internal/viz"
	"github.com/san-kum/flowlab/internal/vortex"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	gasName    string
	tempStr    string
	pressStr   string
	mach       float64
	areaRatio  float64
	supersonic bool

	headStr string
	flowStr string
	sumK    float64

	topStr string
	dzStr  string
	csvOut string

	svgOut    string
	live      bool
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowlab",
		Short: "instructional fluid mechanics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".flowlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "case file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset case")

	lessonCmd := &cobra.Command{
		Use:   "lesson",
		Short: "built-in teaching sequences",
	}
	lessonCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list lessons",
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range lesson.Names() {
					l, err := lesson.Get(name)
					if err != nil {
						return err
					}
					fmt.Printf("  %-24s %s\n", name, l.Title)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "run [name]",
			Short: "run a lesson",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := lesson.Get(args[0])
				if err != nil {
					return err
				}
				return lesson.NewRunner(os.Stdout).Run(l)
			},
		},
	)

	gasCmd := &cobra.Command{
		Use:   "gas",
		Short: "gas property calculations",
	}
	gasPropsCmd := &cobra.Command{
		Use:   "props",
		Short: "state properties of a catalog gas",
		RunE:  gasProps,
	}
	gasPropsCmd.Flags().StringVar(&gasName, "gas", "air", "catalog gas")
	gasPropsCmd.Flags().StringVar(&tempStr, "temp", "15 C", "temperature")
	gasPropsCmd.Flags().StringVar(&pressStr, "pressure", "1 atm", "absolute pressure")

	gasIsenCmd := &cobra.Command{
		Use:   "isentropic",
		Short: "isentropic flow ratios",
		RunE:  gasIsentropic,
	}
	gasIsenCmd.Flags().StringVar(&gasName, "gas", "air", "catalog gas")
	gasIsenCmd.Flags().Float64Var(&mach, "mach", 0, "Mach number")
	gasIsenCmd.Flags().Float64Var(&areaRatio, "area-ratio", 0, "invert A/A* instead of evaluating at Mach")
	gasIsenCmd.Flags().BoolVar(&supersonic, "supersonic", false, "supersonic branch of the inversion")
	gasCmd.AddCommand(gasPropsCmd, gasIsenCmd)

	hydroCmd := &cobra.Command{
		Use:   "hydro",
		Short: "hydrostatics calculations",
	}
	hydroForceCmd := &cobra.Command{
		Use:   "force",
		Short: "resultant force on a submerged plane surface",
		RunE:  hydroForce,
	}
	hydroAtmCmd := &cobra.Command{
		Use:   "atmosphere",
		Short: "integrate the standard atmosphere",
		RunE:  hydroAtmosphere,
	}
	hydroAtmCmd.Flags().StringVar(&topStr, "top", "20 km", "top altitude")
	hydroAtmCmd.Flags().StringVar(&dzStr, "dz", "100 m", "altitude step")
	hydroAtmCmd.Flags().StringVar(&csvOut, "csv", "", "write profile CSV to path")
	hydroCmd.AddCommand(hydroForceCmd, hydroAtmCmd)

	pipeCmd := &cobra.Command{
		Use:   "pipe",
		Short: "pipe flow calculations",
	}
	pipeSolveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the energy equation for velocity and flow",
		RunE:  pipeSolve,
	}
	pipeSolveCmd.Flags().StringVar(&headStr, "head", "", "available head (overrides case)")
	pipeSolveCmd.Flags().Float64Var(&sumK, "sum-k", -1, "total minor loss coefficient (overrides case)")

	pipeHeadlossCmd := &cobra.Command{
		Use:   "headloss",
		Short: "head loss at a known flow",
		RunE:  pipeHeadloss,
	}
	pipeHeadlossCmd.Flags().StringVar(&flowStr, "flow", "", "volume flow (overrides case)")
	pipeCmd.AddCommand(pipeSolveCmd, pipeHeadlossCmd)

	vortexCmd := &cobra.Command{
		Use:   "vortex",
		Short: "vortex fields and point-vortex motion",
	}
	vortexFieldCmd := &cobra.Command{
		Use:   "field",
		Short: "solve the streamfunction and draw its contours",
		RunE:  vortexField,
	}
	vortexFieldCmd.Flags().StringVar(&svgOut, "svg", "", "write contour SVG to path")

	vortexRunCmd := &cobra.Command{
		Use:   "run",
		Short: "advect point vortices and save the run",
		RunE:  vortexRun,
	}
	vortexRunCmd.Flags().BoolVar(&live, "live", false, "live terminal view")
	vortexRunCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --live")
	vortexCmd.AddCommand(vortexFieldCmd, vortexRunCmd)

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "saved runs",
	}
	runsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list saved runs",
			RunE:  listRuns,
		},
		&cobra.Command{
			Use:   "export [run_id]",
			Short: "export a saved run as JSON",
			Args:  cobra.ExactArgs(1),
			RunE:  exportRun,
		},
	)

	rootCmd.AddCommand(lessonCmd, gasCmd, hydroCmd, pipeCmd, vortexCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCase resolves the active case config: preset, then config file, then
// defaults.
func loadCase(caseName string) (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(caseName, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets(caseName))
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.DefaultConfig()
	cfg.Case = caseName
	return cfg, nil
}

// caseLiquid resolves the case's working liquid at its temperature.
func caseLiquid(cfg *config.Config) (liquid.Liquid, error) {
	name := cfg.Fluid.Liquid
	if name == "" {
		name = config.DefaultLiquid
	}
	tempText := cfg.Fluid.Temperature
	if tempText == "" {
		tempText = config.DefaultTemperature
	}
	t, err := units.ParseTemperature(tempText)
	if err != nil {
		return liquid.Liquid{}, err
	}
	if name == "water" {
		return liquid.Water(t), nil
	}
	return liquid.Lookup(name)
}

func casePipe(cfg *config.Config) (pipeflow.Pipe, error) {
	length, err := units.ParseLength(cfg.Pipe.Length)
	if err != nil {
		return pipeflow.Pipe{}, fmt.Errorf("pipe length: %w", err)
	}
	diameter, err := units.ParseLength(cfg.Pipe.Diameter)
	if err != nil {
		return pipeflow.Pipe{}, fmt.Errorf("pipe diameter: %w", err)
	}
	roughness, err := units.ParseLength(cfg.Pipe.Roughness)
	if err != nil {
		return pipeflow.Pipe{}, fmt.Errorf("pipe roughness: %w", err)
	}
	return pipeflow.Pipe{Length: length, Diameter: diameter, Roughness: roughness}, nil
}

func caseShape(cfg *config.Config) (hydro.Shape, error) {
	h := cfg.Hydro
	switch h.Shape {
	case "rectangle":
		w, err := units.ParseLength(h.Width)
		if err != nil {
			return nil, fmt.Errorf("shape width: %w", err)
		}
		ht, err := units.ParseLength(h.Height)
		if err != nil {
			return nil, fmt.Errorf("shape height: %w", err)
		}
		return hydro.Rectangle{Width: w, Height: ht}, nil
	case "circle":
		d, err := units.ParseLength(h.Diameter)
		if err != nil {
			return nil, fmt.Errorf("shape diameter: %w", err)
		}
		return hydro.Circle{Diameter: d}, nil
	case "triangle":
		b, err := units.ParseLength(h.Width)
		if err != nil {
			return nil, fmt.Errorf("shape base: %w", err)
		}
		ht, err := units.ParseLength(h.Height)
		if err != nil {
			return nil, fmt.Errorf("shape height: %w", err)
		}
		return hydro.Triangle{Base: b, Height: ht}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", h.Shape)
	}
}

func caseModels(cfg *config.Config) ([]vortex.Model, error) {
	models := make([]vortex.Model, 0, len(cfg.Vortex.Vortices))
	for _, v := range cfg.Vortex.Vortices {
		switch v.Model {
		case "", "potential":
			models = append(models, vortex.Potential{X: v.X, Y: v.Y, Gamma: v.Gamma})
		case "rankine":
			core := v.Core
			if core == 0 {
				core = 0.1
			}
			models = append(models, vortex.Rankine{X: v.X, Y: v.Y, Gamma: v.Gamma, Core: core})
		case "lamb-oseen":
			core := v.Core
			if core == 0 {
				core = 0.1
			}
			models = append(models, vortex.LambOseen{X: v.X, Y: v.Y, Gamma: v.Gamma, Rc: core})
		default:
			return nil, fmt.Errorf("unknown vortex model %q", v.Model)
		}
	}
	return models, nil
}

func gasProps(cmd *cobra.Command, args []string) error {
	g, err := gas.Lookup(gasName)
	if err != nil {
		return err
	}
	t, err := units.ParseTemperature(tempStr)
	if err != nil {
		return err
	}
	p, err := units.ParsePressure(pressStr)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "gas\t%s\n", g.Name)
	fmt.Fprintf(w, "state\t%.6g Pa, %.6g K\n", p.Pascals(), t.Kelvin())
	fmt.Fprintf(w, "density\t%.6g kg/m3\n", g.Density(p, t).KgPerCubicMeter())
	fmt.Fprintf(w, "specific weight\t%.6g N/m3\n", g.SpecificWeight(p, t).NPerCubicMeter())
	fmt.Fprintf(w, "cp\t%.6g J/(kg K)\n", g.Cp())
	fmt.Fprintf(w, "cv\t%.6g J/(kg K)\n", g.Cv())
	fmt.Fprintf(w, "sound speed\t%.6g m/s\n", g.SoundSpeed(t).MetersPerSecond())
	fmt.Fprintf(w, "viscosity\t%.6g Pa s\n", g.Viscosity(t).PascalSeconds())
	fmt.Fprintf(w, "kinematic viscosity\t%.6g m2/s\n", g.KinematicViscosity(p, t).SquareMetersPerSecond())
	return w.Flush()
}

func gasIsentropic(cmd *cobra.Command, args []string) error {
	g, err := gas.Lookup(gasName)
	if err != nil {
		return err
	}

	m := mach
	if areaRatio > 0 {
		m, err = g.MachFromAreaRatio(areaRatio, supersonic)
		if err != nil {
			return err
		}
		fmt.Printf("A/A* = %.6g  ->  M = %.6g\n\n", areaRatio, m)
	}
	if m <= 0 {
		return fmt.Errorf("need --mach or --area-ratio")
	}

	r := g.Isentropic(m)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "M\t%.6g\n", r.Mach)
	fmt.Fprintf(w, "T/T0\t%.6g\n", r.TRatio)
	fmt.Fprintf(w, "p/p0\t%.6g\n", r.PRatio)
	fmt.Fprintf(w, "rho/rho0\t%.6g\n", r.RhoRatio)
	fmt.Fprintf(w, "A/A*\t%.6g\n", r.AreaRatio)
	return w.Flush()
}

func hydroForce(cmd *cobra.Command, args []string) error {
	cfg, err := loadCase("hydro")
	if err != nil {
		return err
	}
	l, err := caseLiquid(cfg)
	if err != nil {
		return err
	}
	shape, err := caseShape(cfg)
	if err != nil {
		return err
	}
	yc, err := units.ParseLength(cfg.Hydro.CentroidSlant)
	if err != nil {
		return fmt.Errorf("centroid slant: %w", err)
	}
	theta := cfg.Hydro.AngleDeg * math.Pi / 180

	res := hydro.PlaneSurface(l, shape, theta, yc)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "liquid\t%s\n", l.Name)
	fmt.Fprintf(w, "shape\t%s\n", cfg.Hydro.Shape)
	fmt.Fprintf(w, "area\t%.6g m2\n", shape.Area().SquareMeters())
	fmt.Fprintf(w, "centroid depth\t%.6g m\n", res.CentroidDepth.Meters())
	fmt.Fprintf(w, "force\t%.6g kN\n", res.Force.Kilonewtons())
	fmt.Fprintf(w, "center of pressure\t%.6g m (slant)\n", res.CenterOfPressure.Meters())
	return w.Flush()
}

func hydroAtmosphere(cmd *cobra.Command, args []string) error {
	top, err := units.ParseLength(topStr)
	if err != nil {
		return err
	}
	dz, err := units.ParseLength(dzStr)
	if err != nil {
		return err
	}

	points, err := hydro.AtmosphereProfile(top, dz)
	if err != nil {
		return err
	}

	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = pt.Pressure.Kilopascals()
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("pressure, kPa, 0..%.3g km", top.Kilometers())),
	)
	fmt.Println(graph)
	fmt.Println()

	last := points[len(points)-1]
	fmt.Printf("at %.4g km: T = %.2f K, p = %.1f Pa, rho = %.4f kg/m3\n",
		last.Altitude.Kilometers(), last.Temperature.Kelvin(), last.Pressure.Pascals(), last.Density.KgPerCubicMeter())

	if csvOut != "" {
		if err := export.WriteAtmosphereCSV(csvOut, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	return nil
}

func pipeSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadCase("pipe")
	if err != nil {
		return err
	}
	l, err := caseLiquid(cfg)
	if err != nil {
		return err
	}
	p, err := casePipe(cfg)
	if err != nil {
		return err
	}

	headText := cfg.Pipe.Head
	if headStr != "" {
		headText = headStr
	}
	if headText == "" {
		return fmt.Errorf("no available head: set pipe.head in the case or pass --head")
	}
	hLen, err := units.ParseLength(headText)
	if err != nil {
		return fmt.Errorf("head: %w", err)
	}
	head := units.HeadFromMeters(hLen.Meters())

	k := cfg.Pipe.SumK
	if sumK >= 0 {
		k = sumK
	}

	sol, err := pipeflow.SolveVelocity(l, p, head, k)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "liquid\t%s\n", l.Name)
	fmt.Fprintf(w, "pipe\tL = %.6g m, D = %.6g m, eps/D = %.3g\n",
		p.Length.Meters(), p.Diameter.Meters(), p.RelativeRoughness())
	fmt.Fprintf(w, "head\t%.6g m, sum K = %.3g\n", head.Meters(), k)
	fmt.Fprintf(w, "velocity\t%.6g m/s\n", sol.Velocity.MetersPerSecond())
	fmt.Fprintf(w, "flow\t%.6g L/s\n", sol.Flow.LitersPerSecond())
	fmt.Fprintf(w, "friction factor\t%.6g\n", sol.FrictionFactor)
	fmt.Fprintf(w, "Reynolds\t%.6g\n", sol.Reynolds)
	fmt.Fprintf(w, "iterations\t%d\n", sol.Iterations)
	return w.Flush()
}

func pipeHeadloss(cmd *cobra.Command, args []string) error {
	cfg, err := loadCase("pipe")
	if err != nil {
		return err
	}
	l, err := caseLiquid(cfg)
	if err != nil {
		return err
	}
	p, err := casePipe(cfg)
	if err != nil {
		return err
	}

	flowText := cfg.Pipe.Flow
	if flowStr != "" {
		flowText = flowStr
	}
	if flowText == "" {
		return fmt.Errorf("no flow: set pipe.flow in the case or pass --flow")
	}
	q, err := units.ParseVolumeFlow(flowText)
	if err != nil {
		return fmt.Errorf("flow: %w", err)
	}

	v := p.Velocity(q)
	re := pipeflow.Reynolds(v, p.Diameter, l.KinematicViscosity())
	f, err := pipeflow.FrictionFactor(p.RelativeRoughness(), re)
	if err != nil {
		return err
	}
	total, err := pipeflow.TotalHeadLoss(l, p, q, cfg.Pipe.Fittings)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "liquid\t%s\n", l.Name)
	fmt.Fprintf(w, "flow\t%.6g L/s\n", q.LitersPerSecond())
	fmt.Fprintf(w, "velocity\t%.6g m/s\n", v.MetersPerSecond())
	fmt.Fprintf(w, "Reynolds\t%.6g\n", re)
	fmt.Fprintf(w, "friction factor\t%.6g\n", f)
	fmt.Fprintf(w, "friction loss\t%.6g m\n", pipeflow.DarcyHeadLoss(f, p, v).Meters())
	if len(cfg.Pipe.Fittings) > 0 {
		fmt.Fprintf(w, "fittings\t%v\n", cfg.Pipe.Fittings)
	}
	fmt.Fprintf(w, "total head loss\t%.6g m\n", total.Meters())
	return w.Flush()
}

func vortexField(cmd *cobra.Command, args []string) error {
	cfg, err := loadCase("vortex")
	if err != nil {
		return err
	}
	models, err := caseModels(cfg)
	if err != nil {
		return err
	}
	if len(models) == 0 {
		return fmt.Errorf("case has no vortices")
	}

	ext := cfg.Vortex.Extent
	n := cfg.Vortex.GridNodes
	g, err := field.NewGrid(n, n, -ext, -ext, 2*ext, 2*ext)
	if err != nil {
		return err
	}

	vel := vortex.Superpose(g, models...)
	omega := vortex.Vorticity(vel)
	psi, err := vortex.Streamfunction(omega)
	if err != nil {
		return err
	}

	c := viz.NewCanvas(72, 28)
	proj := viz.NewProjection(c, -ext, -ext, ext, ext)
	viz.DrawContours(c, psi, proj, 11)
	for _, v := range cfg.Vortex.Vortices {
		viz.DrawMarker(c, proj, v.X, v.Y)
	}
	fmt.Print(c.String())

	lo, hi := psi.MinMax()
	fmt.Printf("\npsi in [%.4g, %.4g], %d vortices on a %dx%d grid\n", lo, hi, len(models), n, n)

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.CanvasToSVG(c, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func vortexRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadCase("vortex")
	if err != nil {
		return err
	}
	if len(cfg.Vortex.Vortices) == 0 {
		return fmt.Errorf("case has no vortices")
	}

	vortices := make([]vortex.PointVortex, len(cfg.Vortex.Vortices))
	for i, v := range cfg.Vortex.Vortices {
		vortices[i] = vortex.PointVortex{X: v.X, Y: v.Y, Gamma: v.Gamma}
	}
	motion, x0 := vortex.NewMotion(vortices)
	integ := integrators.NewRK4()

	if live {
		m := tui.NewModel(motion, integ, x0, cfg.Vortex.Dt, cfg.Vortex.Extent, frameRate)
		p := tea.NewProgram(m)
		_, err := p.Run()
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim := dynamo.New(motion, integ)
	sim.AddMetric(metrics.NewInvariantDrift(motion))
	sim.AddMetric(metrics.NewImpulseDrift(motion.Strengths))
	sim.AddMetric(metrics.NewExcursion(4 * cfg.Vortex.Extent))

	runCfg := dynamo.Config{
		Dt:            cfg.Vortex.Dt,
		Duration:      cfg.Vortex.Duration,
		ValidateState: true,
	}

	fmt.Printf("advecting %d vortices for %.3gs (dt = %.3g)...\n", len(vortices), runCfg.Duration, runCfg.Dt)
	start := time.Now()
	result, err := sim.Run(context.Background(), x0, runCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save("vortex", runCfg.Dt, runCfg.Duration, "rk4", result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASE\tTIME\tDURATION\tDT\tVORTICES\tDRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%.2e\n",
			run.ID,
			run.Case,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Vortices,
			run.InvariantDrift,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &dynamo.Result{
		States:         make([]dynamo.State, len(states)),
		Times:          times,
		Metrics:        meta.Metrics,
		InvariantDrift: meta.InvariantDrift,
	}
	for i, s := range states {
		result.States[i] = s
	}

	return storage.ExportJSONStdout(meta.Case, meta.Integrator, meta.Dt, meta.Duration, result)
}
