package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/hamlab/internal/config"
	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/metrics"
	"github.com/san-kum/hamlab/internal/sim"
)

// Experiment assembles a configured run: model, integrator, simulator,
// default conservation metrics.
type Experiment struct {
	Cfg       *config.Config
	Sys       hamilton.System
	Simulator *sim.Simulator
}

// defaulter lets models supply an initial state when the config has no
// natural flat encoding for them (chain, nbody).
type defaulter interface {
	DefaultState() hamilton.State
}

func New(reg *Registry, cfg *config.Config) (*Experiment, error) {
	sys, err := reg.GetModel(cfg)
	if err != nil {
		return nil, err
	}
	integ, err := reg.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	s := sim.New(sys, integ)
	if h, ok := sys.(hamilton.Hamiltonian); ok {
		s.AddMetric(metrics.NewEnergyDrift(h))
	}
	if cfg.Model == "nbody" || cfg.Model == "chain" {
		s.AddMetric(metrics.NewMomentumDrift())
	}

	return &Experiment{Cfg: cfg, Sys: sys, Simulator: s}, nil
}

// InitState resolves the configured or model-default initial state.
func (e *Experiment) InitState() (hamilton.State, error) {
	if x := e.Cfg.GetInitState(); x != nil {
		return hamilton.State(x), nil
	}
	if d, ok := e.Sys.(defaulter); ok {
		return d.DefaultState(), nil
	}
	return nil, fmt.Errorf("no initial state for model %s", e.Cfg.Model)
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	x0, err := e.InitState()
	if err != nil {
		return nil, err
	}
	return e.Simulator.Run(ctx, x0, sim.Config{
		Dt:            e.Cfg.Dt,
		Duration:      e.Cfg.Duration,
		ValidateState: true,
	})
}
