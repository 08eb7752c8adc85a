// Package experiment wires configuration to models, integrators, and
// simulators by name.
package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/hamlab/internal/config"
	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/integrators"
	"github.com/san-kum/hamlab/internal/physics"
)

type Registry struct {
	models      map[string]func(cfg *config.Config) (hamilton.System, error)
	integrators map[string]func() hamilton.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func(cfg *config.Config) (hamilton.System, error)),
		integrators: make(map[string]func() hamilton.Integrator),
	}

	r.models["harmonic"] = func(cfg *config.Config) (hamilton.System, error) {
		h, err := physics.NewHarmonic(1)
		if err != nil {
			return nil, err
		}
		if cfg.Params.Mass != 0 {
			if err := h.SetParam("mass", cfg.Params.Mass); err != nil {
				return nil, err
			}
		}
		if cfg.Params.Omega != 0 {
			if err := h.SetParam("omega", cfg.Params.Omega); err != nil {
				return nil, err
			}
		}
		return h, nil
	}

	r.models["chain"] = func(cfg *config.Config) (hamilton.System, error) {
		n := cfg.InitState.ChainLen
		if n == 0 {
			n = 3
		}
		return physics.NewChain(n, orDefault(cfg.Params.KSpring, 1.0), cfg.Params.KCoupling)
	}

	r.models["nbody"] = func(cfg *config.Config) (hamilton.System, error) {
		n := cfg.InitState.NumBodies
		if n == 0 {
			n = config.DefaultBodies
		}
		nb, err := physics.NewNBody(n, 2, nil)
		if err != nil {
			return nil, err
		}
		nb.G = orDefault(cfg.Params.G, 1.0)
		nb.Softening = cfg.Params.Softening
		return nb, nil
	}

	r.models["double_pendulum"] = func(cfg *config.Config) (hamilton.System, error) {
		dp := physics.NewDoublePendulum()
		if cfg.Params.Gravity != 0 {
			if err := dp.SetParam("gravity", cfg.Params.Gravity); err != nil {
				return nil, err
			}
		}
		return dp, nil
	}

	r.integrators["euler"] = func() hamilton.Integrator { return integrators.NewEuler() }
	r.integrators["symplectic_euler"] = func() hamilton.Integrator { return integrators.NewSymplecticEuler() }
	r.integrators["leapfrog"] = func() hamilton.Integrator { return integrators.NewLeapfrog() }
	r.integrators["rk4"] = func() hamilton.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() hamilton.Integrator { return integrators.NewRK45() }

	return r
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func (r *Registry) GetModel(cfg *config.Config) (hamilton.System, error) {
	fn, ok := r.models[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (have %v)", cfg.Model, r.ListModels())
	}
	return fn(cfg)
}

func (r *Registry) GetIntegrator(name string) (hamilton.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (have %v)", name, r.ListIntegrators())
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
