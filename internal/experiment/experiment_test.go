package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/hamlab/internal/config"
)

func TestRegistryKnowsAllPresetModels(t *testing.T) {
	reg := NewRegistry()

	for model, presets := range config.Presets {
		for name, cfg := range presets {
			if _, err := reg.GetModel(cfg); err != nil {
				t.Errorf("preset %s/%s: %v", model, name, err)
			}
			if _, err := reg.GetIntegrator(cfg.Integrator); err != nil {
				t.Errorf("preset %s/%s: %v", model, name, err)
			}
		}
	}
}

func TestRegistryUnknownNames(t *testing.T) {
	reg := NewRegistry()

	cfg := config.DefaultConfig()
	cfg.Model = "lorenz"
	if _, err := reg.GetModel(cfg); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := reg.GetIntegrator("magic"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestExperimentRunHarmonic(t *testing.T) {
	preset := config.GetPreset("harmonic", "unit")
	cfg := *preset
	cfg.Duration = 1.0

	exp, err := New(NewRegistry(), &cfg)
	if err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.StepsTaken == 0 {
		t.Fatal("expected steps to be taken")
	}
	drift, ok := result.Metrics["energy_drift"]
	if !ok {
		t.Fatal("expected energy_drift metric on a Hamiltonian model")
	}
	if drift > 1e-4 {
		t.Errorf("leapfrog drift too large: %e", drift)
	}
}

func TestExperimentDefaultStateModels(t *testing.T) {
	for _, model := range []string{"chain", "nbody"} {
		cfg := config.DefaultConfig()
		cfg.Model = model
		cfg.Duration = 0.1
		cfg.Dt = 0.001

		exp, err := New(NewRegistry(), cfg)
		if err != nil {
			t.Fatalf("%s: %v", model, err)
		}
		x0, err := exp.InitState()
		if err != nil {
			t.Fatalf("%s: %v", model, err)
		}
		if len(x0) != exp.Sys.StateDim() {
			t.Errorf("%s: default state length %d, system wants %d", model, len(x0), exp.Sys.StateDim())
		}

		if _, err := exp.Run(context.Background()); err != nil {
			t.Errorf("%s run failed: %v", model, err)
		}
	}
}
