package config

var Presets = map[string]map[string]*Config{
	"pipe": {
		"reservoir": {
			Case:  "pipe",
			Fluid: FluidConfig{Liquid: "water", Temperature: "20 C"},
			Pipe: PipeConfig{
				Length: "100 m", Diameter: "0.1 m", Roughness: "0.26 mm",
				Head: "5 m", SumK: 1.5,
			},
		},
		"oil-line": {
			Case:  "pipe",
			Fluid: FluidConfig{Liquid: "sae30", Temperature: "20 C"},
			Pipe: PipeConfig{
				Length: "50 m", Diameter: "0.05 m", Roughness: "0.046 mm",
				Flow: "2 L/s",
			},
		},
		"fire-main": {
			Case:  "pipe",
			Fluid: FluidConfig{Liquid: "water", Temperature: "15 C"},
			Pipe: PipeConfig{
				Length: "300 m", Diameter: "0.15 m", Roughness: "0.15 mm",
				Flow: "40 L/s", Fittings: []string{"entrance-sharp", "elbow-90", "elbow-90", "gate-valve-open", "exit"},
			},
		},
	},
	"hydro": {
		"gate": {
			Case:  "hydro",
			Fluid: FluidConfig{Liquid: "water", Temperature: "20 C"},
			Hydro: HydroConfig{
				Shape: "rectangle", Width: "2 m", Height: "3 m",
				AngleDeg: 90, CentroidSlant: "5 m",
			},
		},
		"porthole": {
			Case:  "hydro",
			Fluid: FluidConfig{Liquid: "seawater", Temperature: "15 C"},
			Hydro: HydroConfig{
				Shape: "circle", Diameter: "0.6 m",
				AngleDeg: 90, CentroidSlant: "12 m",
			},
		},
		"spillway": {
			Case:  "hydro",
			Fluid: FluidConfig{Liquid: "water", Temperature: "10 C"},
			Hydro: HydroConfig{
				Shape: "rectangle", Width: "4 m", Height: "6 m",
				AngleDeg: 60, CentroidSlant: "8 m",
			},
		},
	},
	"vortex": {
		"pair": {
			Case: "vortex",
			Vortex: VortexConfig{
				GridNodes: 41, Extent: 1.0, Dt: 0.005, Duration: 5,
				Vortices: []VortexSpec{
					{X: 0, Y: 0.25, Gamma: 1},
					{X: 0, Y: -0.25, Gamma: -1},
				},
			},
		},
		"corotating": {
			Case: "vortex",
			Vortex: VortexConfig{
				GridNodes: 41, Extent: 1.0, Dt: 0.005, Duration: 10,
				Vortices: []VortexSpec{
					{X: -0.3, Y: 0, Gamma: 1},
					{X: 0.3, Y: 0, Gamma: 1},
				},
			},
		},
		"leapfrog": {
			Case: "vortex",
			Vortex: VortexConfig{
				GridNodes: 61, Extent: 1.5, Dt: 0.002, Duration: 15,
				Vortices: []VortexSpec{
					{X: -0.5, Y: 0.3, Gamma: 1},
					{X: -0.5, Y: -0.3, Gamma: -1},
					{X: 0.5, Y: 0.3, Gamma: 1},
					{X: 0.5, Y: -0.3, Gamma: -1},
				},
			},
		},
	},
}

func GetPreset(caseName, preset string) *Config {
	casePresets, ok := Presets[caseName]
	if !ok {
		return nil
	}
	cfg, ok := casePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(caseName string) []string {
	casePresets, ok := Presets[caseName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(casePresets))
	for name := range casePresets {
		names = append(names, name)
	}
	return names
}
