package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/flowlab/internal/dynamo"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &dynamo.Result{
		States: []dynamo.State{
			{0.0, 0.25, 0.0, -0.25},
			{0.01, 0.25, 0.01, -0.25},
		},
		Times: []float64{0.0, 0.01},
		Metrics: map[string]float64{
			"invariant_drift": 1e-9,
		},
		InvariantDrift: 1e-9,
	}

	runID, err := st.Save("pair", 0.01, 1.0, "rk4", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Case != "pair" {
		t.Errorf("expected case 'pair', got '%s'", meta.Case)
	}

	if meta.Vortices != 2 {
		t.Errorf("expected 2 vortices, got %d", meta.Vortices)
	}

	if meta.Metrics["invariant_drift"] != 1e-9 {
		t.Errorf("expected drift 1e-9, got %g", meta.Metrics["invariant_drift"])
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	if len(states) != 2 {
		t.Errorf("expected 2 states, got %d", len(states))
	}

	if len(times) != 2 {
		t.Errorf("expected 2 times, got %d", len(times))
	}

	if len(states[0]) != 4 {
		t.Errorf("expected 4 state components, got %d", len(states[0]))
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	result := &dynamo.Result{
		States:  []dynamo.State{{1.0, 0.0}},
		Times:   []float64{0.0},
		Metrics: map[string]float64{},
	}

	_, err = st.Save("pair", 0.01, 1.0, "rk4", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &dynamo.Result{
		States:  []dynamo.State{{1.0, 0.0}},
		Times:   []float64{0.0},
		Metrics: map[string]float64{},
	}

	runID, err := st.Save("pair", 0.01, 1.0, "rk4", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "states.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("states.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	result := &dynamo.Result{
		States:         []dynamo.State{{0.0, 0.25}, {0.01, 0.25}},
		Times:          []float64{0.0, 0.01},
		Metrics:        map[string]float64{},
		InvariantDrift: 2e-8,
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, "pair", "rk4", 0.01, 1.0, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if data.Case != "pair" || data.Steps != 2 {
		t.Errorf("unexpected export data: %+v", data)
	}
	if data.InvariantDrift != 2e-8 {
		t.Errorf("expected drift 2e-8, got %g", data.InvariantDrift)
	}
}
