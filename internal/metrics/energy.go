package metrics

import (
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// EnergyDrift tracks the maximum relative deviation of a system's
// energy from its value at the first observed state.
type EnergyDrift struct {
	sys     hamilton.Hamiltonian
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift(sys hamilton.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{sys: sys}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x hamilton.State, t float64) {
	energy := e.sys.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	drift := math.Abs(energy-e.initial) / (math.Abs(e.initial) + energyFloor)
	e.max = math.Max(e.max, drift)
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum absolute deviation of the summed
// momentum from its initial value, for states in [q..., p...] layout.
// Only meaningful for translation-invariant systems.
type MomentumDrift struct {
	initial float64
	max     float64
	samples int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(x hamilton.State, t float64) {
	total := 0.0
	for _, p := range x[len(x)/2:] {
		total += p
	}
	if m.samples == 0 {
		m.initial = total
	}
	m.samples++
	m.max = math.Max(m.max, math.Abs(total-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.max = 0
	m.samples = 0
}
