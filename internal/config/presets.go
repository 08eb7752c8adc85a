package config

import "math"

var Presets = map[string]map[string]*Config{
	"harmonic": {
		"unit": {
			Model: "harmonic", Integrator: "leapfrog", Dt: 0.01, Duration: 62.8,
			InitState: InitStateConfig{Q: 1.0, P: 0.0},
			Params:    ParamsConfig{Mass: 1.0, Omega: 1.0},
		},
		"stiff": {
			Model: "harmonic", Integrator: "leapfrog", Dt: 0.001, Duration: 10.0,
			InitState: InitStateConfig{Q: 1.0, P: 0.0},
			Params:    ParamsConfig{Mass: 1.0, Omega: 10.0},
		},
		"drifty": {
			// Naive Euler on purpose: watch the energy grow.
			Model: "harmonic", Integrator: "euler", Dt: 0.01, Duration: 30.0,
			InitState: InitStateConfig{Q: 1.0, P: 0.0},
			Params:    ParamsConfig{Mass: 1.0, Omega: 1.0},
		},
	},
	"chain": {
		"transfer": {
			Model: "chain", Integrator: "leapfrog", Dt: 0.01, Duration: 60.0,
			InitState: InitStateConfig{ChainLen: 3},
			Params:    ParamsConfig{KSpring: 1.0, KCoupling: 0.5},
		},
		"weak": {
			Model: "chain", Integrator: "leapfrog", Dt: 0.01, Duration: 120.0,
			InitState: InitStateConfig{ChainLen: 5},
			Params:    ParamsConfig{KSpring: 1.0, KCoupling: 0.05},
		},
	},
	"double_pendulum": {
		"chaos": {
			Model: "double_pendulum", Integrator: "rk4", Dt: 0.001, Duration: 30.0,
			InitState: InitStateConfig{Theta: math.Pi / 2, Theta2: math.Pi / 2},
			Params:    ParamsConfig{Gravity: 9.81},
		},
		"gentle": {
			Model: "double_pendulum", Integrator: "rk4", Dt: 0.005, Duration: 30.0,
			InitState: InitStateConfig{Theta: 0.3, Theta2: 0.3},
			Params:    ParamsConfig{Gravity: 9.81},
		},
	},
	"nbody": {
		"ring": {
			Model: "nbody", Integrator: "leapfrog", Dt: 0.001, Duration: 20.0,
			InitState: InitStateConfig{NumBodies: 3},
			Params:    ParamsConfig{G: 1.0, Softening: 0.01},
		},
		"binary": {
			Model: "nbody", Integrator: "leapfrog", Dt: 0.001, Duration: 30.0,
			InitState: InitStateConfig{NumBodies: 2},
			Params:    ParamsConfig{G: 1.0, Softening: 0.01},
		},
		"cluster": {
			Model: "nbody", Integrator: "leapfrog", Dt: 0.0005, Duration: 10.0,
			InitState: InitStateConfig{NumBodies: 32},
			Params:    ParamsConfig{G: 1.0, Softening: 0.05},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	return modelPresets[preset]
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
