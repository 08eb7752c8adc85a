// Package config loads and saves run configuration as YAML, with named
// presets for the built-in models.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultTol      = 1e-6
	DefaultBodies   = 3
)

type Config struct {
	Model      string          `yaml:"model"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	Tolerance  float64         `yaml:"tolerance"`
	Seed       int64           `yaml:"seed"`
	InitState  InitStateConfig `yaml:"init_state"`
	Params     ParamsConfig    `yaml:"params"`
}

type InitStateConfig struct {
	Q         float64 `yaml:"q"`
	P         float64 `yaml:"p"`
	Theta     float64 `yaml:"theta"`
	Omega     float64 `yaml:"omega"`
	Theta2    float64 `yaml:"theta2"`
	Omega2    float64 `yaml:"omega2"`
	NumBodies int     `yaml:"num_bodies"`
	ChainLen  int     `yaml:"chain_len"`
}

type ParamsConfig struct {
	Mass      float64 `yaml:"mass"`
	Omega     float64 `yaml:"omega"`
	KSpring   float64 `yaml:"k_spring"`
	KCoupling float64 `yaml:"k_coupling"`
	G         float64 `yaml:"g"`
	Softening float64 `yaml:"softening"`
	Gravity   float64 `yaml:"gravity"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "harmonic",
		Integrator: "leapfrog",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Tolerance:  DefaultTol,
		InitState: InitStateConfig{
			Q:         1.0,
			Theta:     0.5,
			Theta2:    0.5,
			NumBodies: DefaultBodies,
			ChainLen:  3,
		},
		Params: ParamsConfig{
			Mass:      1.0,
			Omega:     1.0,
			KSpring:   1.0,
			KCoupling: 0.5,
			G:         1.0,
			Softening: 0.01,
			Gravity:   9.81,
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
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// GetInitState assembles the flat initial state for the configured
// model, or nil for models that build their own default layout.
func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "harmonic":
		return []float64{c.InitState.Q, c.InitState.P}
	case "double_pendulum":
		return []float64{c.InitState.Theta, c.InitState.Theta2, c.InitState.Omega, c.InitState.Omega2}
	case "chain", "nbody":
		return nil
	default:
		return []float64{c.InitState.Q, c.InitState.P}
	}
}
