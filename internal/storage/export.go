package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/flowlab/internal/dynamo"
)

type ExportData struct {
	Case           string             `json:"case"`
	Integrator     string             `json:"integrator"`
	Dt             float64            `json:"dt"`
	Duration       float64            `json:"duration"`
	Steps          int                `json:"steps"`
	Times          []float64          `json:"times"`
	States         [][]float64        `json:"states"`
	InvariantDrift float64            `json:"invariant_drift"`
	Metrics        map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, caseName, integrator string, dt, duration float64, result *dynamo.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, caseName, integrator, dt, duration, result)
}

func ExportJSONStdout(caseName, integrator string, dt, duration float64, result *dynamo.Result) error {
	return writeJSON(os.Stdout, caseName, integrator, dt, duration, result)
}

func writeJSON(w io.Writer, caseName, integrator string, dt, duration float64, result *dynamo.Result) error {
	data := ExportData{
		Case:           caseName,
		Integrator:     integrator,
		Dt:             dt,
		Duration:       duration,
		Steps:          len(result.Times),
		Times:          result.Times,
		States:         make([][]float64, len(result.States)),
		InvariantDrift: result.InvariantDrift,
		Metrics:        result.Metrics,
	}
	for i, s := range result.States {
		data.States[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
