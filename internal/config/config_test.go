package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Case != "pipe" {
		t.Errorf("expected case pipe, got %s", cfg.Case)
	}
	if cfg.Fluid.Liquid != "water" {
		t.Errorf("expected water, got %s", cfg.Fluid.Liquid)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("vortex", "pair")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Vortex.Vortices) != 2 {
		t.Errorf("expected 2 vortices, got %d", len(cfg.Vortex.Vortices))
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("pipe", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "gate"); cfg != nil {
		t.Error("expected nil for nonexistent case")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("hydro")
	if len(presets) == 0 {
		t.Error("expected presets for hydro")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent case")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.yaml")

	cfg := GetPreset("vortex", "leapfrog")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Case != "vortex" {
		t.Errorf("expected vortex case, got %s", loaded.Case)
	}
	if len(loaded.Vortex.Vortices) != 4 {
		t.Errorf("expected 4 vortices, got %d", len(loaded.Vortex.Vortices))
	}
	if loaded.Vortex.Dt != 0.002 {
		t.Errorf("expected dt 0.002, got %f", loaded.Vortex.Dt)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Case = "teleport"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown case")
	}

	cfg = DefaultConfig()
	cfg.Vortex.GridNodes = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tiny grid")
	}

	cfg = DefaultConfig()
	cfg.Vortex.Dt = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero dt")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
