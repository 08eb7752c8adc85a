package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "harmonic" {
		t.Errorf("expected model harmonic, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("chain", "transfer")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.KCoupling != 0.5 {
		t.Errorf("expected k_coupling 0.5, got %f", cfg.Params.KCoupling)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("chain", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "transfer") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("nbody")) == 0 {
		t.Error("expected presets for nbody")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestGetInitState(t *testing.T) {
	tests := []struct {
		model    string
		expected int
	}{
		{"harmonic", 2},
		{"double_pendulum", 4},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Model = tt.model
		state := cfg.GetInitState()
		if len(state) != tt.expected {
			t.Errorf("model %s: expected %d states, got %d", tt.model, tt.expected, len(state))
		}
	}

	cfg := DefaultConfig()
	cfg.Model = "nbody"
	if cfg.GetInitState() != nil {
		t.Error("nbody builds its own default state, expected nil")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "double_pendulum"
	cfg.Dt = 0.005
	cfg.InitState.Theta = 1.5

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Model != "double_pendulum" || loaded.Dt != 0.005 || loaded.InitState.Theta != 1.5 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
