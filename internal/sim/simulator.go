// Package sim runs systems forward in time and records trajectories.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Result holds a recorded trajectory. States are immutable snapshots in
// the system's flat layout; for canonical systems QTraj/PTraj expose
// the split views the conservation diagnostics consume.
type Result struct {
	States      []hamilton.State
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// QTraj returns the coordinate half of each state. Valid only for
// systems using the [q..., p...] layout.
func (r *Result) QTraj() [][]float64 {
	out := make([][]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[:len(s)/2]
	}
	return out
}

// PTraj returns the momentum half of each state.
func (r *Result) PTraj() [][]float64 {
	out := make([][]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[len(s)/2:]
	}
	return out
}

// Series extracts one state component over time, for plotting and
// spectral analysis.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}

type Simulator struct {
	sys        hamilton.System
	integrator hamilton.Integrator
	metrics    []hamilton.Metric
	observers  []hamilton.Observer
}

func New(sys hamilton.System, integrator hamilton.Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

func (s *Simulator) AddMetric(m hamilton.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o hamilton.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() hamilton.System { return s.sys }

// Run integrates from x0 for cfg.Duration, recording every state. A
// NaN/Inf state stops the run early and is recorded in Errors; energy
// non-conservation is never an error, only a number in the result.
func (s *Simulator) Run(ctx context.Context, x0 hamilton.State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: state length %d, system wants %d",
			hamilton.ErrShapeMismatch, len(x0), s.sys.StateDim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]hamilton.State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	initialEnergy := s.energy(x)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		newX := s.integrator.Step(s.sys, x, t, cfg.Dt)

		if cfg.ValidateState && !newX.IsValid() {
			result.Errors = append(result.Errors,
				fmt.Errorf("step %d (t=%.4f): %w", i, t, hamilton.ErrInvalidState))
			break
		}

		x = newX
		t += cfg.Dt
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	if finalEnergy := s.energy(x); initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) energy(x hamilton.State) float64 {
	if h, ok := s.sys.(hamilton.Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// RunWithCallback steps without recording, handing each state to the
// callback; returning false stops the run. Used by the live view.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 hamilton.State, cfg Config, callback func(hamilton.State, float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	x := x0.Clone()
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(x, t) {
			return nil
		}

		x = s.integrator.Step(s.sys, x, t, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !x.IsValid() {
			return fmt.Errorf("t=%.4f: %w", t, hamilton.ErrInvalidState)
		}
	}

	return nil
}
