package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTemperature = "20 C"
	DefaultLiquid      = "water"
	DefaultGas         = "air"
	DefaultGridNodes   = 41
	DefaultDt          = 0.005
	DefaultDuration    = 5.0
)

// Config describes one computed case. Quantities with units are written as
// "value unit" strings and parsed by the units package on use.
type Config struct {
	Case   string       `yaml:"case"` // pipe | hydro | vortex | atmosphere
	Fluid  FluidConfig  `yaml:"fluid"`
	Pipe   PipeConfig   `yaml:"pipe"`
	Hydro  HydroConfig  `yaml:"hydro"`
	Vortex VortexConfig `yaml:"vortex"`
}

type FluidConfig struct {
	Liquid      string `yaml:"liquid"`
	Gas         string `yaml:"gas"`
	Temperature string `yaml:"temperature"`
}

type PipeConfig struct {
	Length    string   `yaml:"length"`
	Diameter  string   `yaml:"diameter"`
	Roughness string   `yaml:"roughness"`
	Head      string   `yaml:"head"`
	Flow      string   `yaml:"flow"`
	SumK      float64  `yaml:"sum_k"`
	Fittings  []string `yaml:"fittings"`
}

type HydroConfig struct {
	Shape         string  `yaml:"shape"` // rectangle | circle | triangle
	Width         string  `yaml:"width"`
	Height        string  `yaml:"height"`
	Diameter      string  `yaml:"diameter"`
	AngleDeg      float64 `yaml:"angle_deg"`
	CentroidSlant string  `yaml:"centroid_slant"`
}

type VortexSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Gamma float64 `yaml:"gamma"`
	Core  float64 `yaml:"core"`  // 0 = potential vortex
	Model string  `yaml:"model"` // potential | rankine | lamb-oseen
}

type VortexConfig struct {
	GridNodes int          `yaml:"grid_nodes"`
	Extent    float64      `yaml:"extent"` // half-width of the square domain
	Vortices  []VortexSpec `yaml:"vortices"`
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Case: "pipe",
		Fluid: FluidConfig{
			Liquid:      DefaultLiquid,
			Gas:         DefaultGas,
			Temperature: DefaultTemperature,
		},
		Pipe: PipeConfig{
			Length:    "100 m",
			Diameter:  "0.1 m",
			Roughness: "0.26 mm",
			Head:      "5 m",
			SumK:      1.5,
		},
		Hydro: HydroConfig{
			Shape:         "rectangle",
			Width:         "2 m",
			Height:        "3 m",
			AngleDeg:      90,
			CentroidSlant: "5 m",
		},
		Vortex: VortexConfig{
			GridNodes: DefaultGridNodes,
			Extent:    1.0,
			Vortices: []VortexSpec{
				{X: 0, Y: 0.25, Gamma: 1},
				{X: 0, Y: -0.25, Gamma: -1},
			},
			Dt:       DefaultDt,
			Duration: DefaultDuration,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Case {
	case "pipe", "hydro", "vortex", "atmosphere":
	default:
		return fmt.Errorf("config: unknown case %q", c.Case)
	}
	if c.Vortex.GridNodes < 3 {
		return fmt.Errorf("config: vortex grid needs at least 3 nodes, got %d", c.Vortex.GridNodes)
	}
	if c.Vortex.Extent <= 0 {
		return fmt.Errorf("config: vortex extent must be positive, got %g", c.Vortex.Extent)
	}
	if c.Vortex.Dt <= 0 || c.Vortex.Duration <= 0 {
		return fmt.Errorf("config: vortex dt and duration must be positive")
	}
	return nil
}
