// Package metrics provides conservation diagnostics, both as a post-hoc
// trajectory check and as streaming per-step metrics for the simulator.
package metrics

import (
	"fmt"
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// DefaultTol is the relative energy-drift threshold below which a
// trajectory counts as conserving energy.
const DefaultTol = 1e-6

// energyFloor guards the relative-drift division when the initial
// energy is near zero.
const energyFloor = 1e-10

// Report summarizes conservation behavior over a trajectory. It is a
// plain value: failed conservation is information about the run (bad
// dt, chaotic blow-up), never an error.
type Report struct {
	InitialEnergy   float64
	FinalEnergy     float64
	EnergyDrift     float64
	EnergyConserved bool
	MomentumDrift   float64
}

func (r Report) String() string {
	status := "FAIL"
	if r.EnergyConserved {
		status = "ok"
	}
	return fmt.Sprintf("energy %0.6g -> %0.6g (drift %.3e, %s), momentum drift %.3e",
		r.InitialEnergy, r.FinalEnergy, r.EnergyDrift, status, r.MomentumDrift)
}

// HarmonicPotential is V = Σ ½q², the default potential for the
// unit oscillator. It is only correct for that system; every other
// model must pass its own potential function to CheckConservation.
func HarmonicPotential(q []float64) float64 {
	v := 0.0
	for _, qi := range q {
		v += 0.5 * qi * qi
	}
	return v
}

// CheckConservation walks parallel q/p trajectories computing
// E[t] = Σ p²/(2m) + V(q[t]) and reports the maximum relative energy
// deviation and the maximum absolute deviation of Σp. The momentum
// figure is only meaningful for translation-invariant systems.
//
// masses may be shorter than the number of coordinates when several
// coordinates share a body (e.g. x/y components); index i uses
// masses[i % len(masses)]. tol <= 0 selects DefaultTol.
func CheckConservation(qTraj, pTraj [][]float64, masses []float64, potential func(q []float64) float64, tol float64) (Report, error) {
	if len(qTraj) != len(pTraj) {
		return Report{}, fmt.Errorf("%w: %d q states vs %d p states", hamilton.ErrShapeMismatch, len(qTraj), len(pTraj))
	}
	if potential == nil {
		return Report{}, fmt.Errorf("metrics: potential function is required")
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if len(qTraj) == 0 {
		return Report{EnergyConserved: true}, nil
	}

	energy := func(q, p []float64) (float64, error) {
		if len(q) != len(p) {
			return 0, fmt.Errorf("%w: len(q)=%d len(p)=%d", hamilton.ErrShapeMismatch, len(q), len(p))
		}
		ke := 0.0
		for i, pi := range p {
			m := 1.0
			if len(masses) > 0 {
				m = masses[i%len(masses)]
			}
			ke += pi * pi / (2 * m)
		}
		return ke + potential(q), nil
	}

	totalP := func(p []float64) float64 {
		sum := 0.0
		for _, pi := range p {
			sum += pi
		}
		return sum
	}

	e0, err := energy(qTraj[0], pTraj[0])
	if err != nil {
		return Report{}, err
	}
	p0 := totalP(pTraj[0])

	rep := Report{InitialEnergy: e0, FinalEnergy: e0}
	for t := range qTraj {
		et, err := energy(qTraj[t], pTraj[t])
		if err != nil {
			return Report{}, err
		}
		rep.FinalEnergy = et

		drift := math.Abs(et-e0) / (math.Abs(e0) + energyFloor)
		rep.EnergyDrift = math.Max(rep.EnergyDrift, drift)

		pd := math.Abs(totalP(pTraj[t]) - p0)
		rep.MomentumDrift = math.Max(rep.MomentumDrift, pd)
	}
	rep.EnergyConserved = rep.EnergyDrift < tol

	return rep, nil
}
