package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// Ensemble runs many copies of a simulation from perturbed initial
// conditions, one goroutine per run. Each run gets its own Simulator
// so integrator scratch buffers are never shared.
type Ensemble struct {
	newSim  func() *Simulator
	numRuns int
	seed    int64
	spread  float64
}

// NewEnsemble builds an ensemble of numRuns runs. newSim must return a
// fresh Simulator per call; spread is the amplitude of the uniform
// perturbation applied to each initial-state component.
func NewEnsemble(newSim func() *Simulator, numRuns int, seed int64, spread float64) *Ensemble {
	return &Ensemble{newSim: newSim, numRuns: numRuns, seed: seed, spread: spread}
}

func (e *Ensemble) Run(ctx context.Context, x0 hamilton.State, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.seed + int64(idx)))
			xi := x0.Clone()
			if idx > 0 {
				for j := range xi {
					xi[j] += e.spread * (2*rng.Float64() - 1)
				}
			}

			results[idx], errs[idx] = e.newSim().Run(ctx, xi, cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
