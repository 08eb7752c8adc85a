package hamilton

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i]
		if i < len(other) {
			result[i] += other[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i]
		if i < len(other) {
			result[i] -= other[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Phase is a canonical phase-space point (q, p). Q and P always have the
// same length; the pair (Q[i], P[i]) is a conjugate pair.
type Phase struct {
	Q State
	P State
}

// NewPhase builds a phase-space point, enforcing matching q/p shapes.
func NewPhase(q, p []float64) (Phase, error) {
	if len(q) != len(p) {
		return Phase{}, fmt.Errorf("%w: len(q)=%d len(p)=%d", ErrShapeMismatch, len(q), len(p))
	}
	return Phase{Q: State(q).Clone(), P: State(p).Clone()}, nil
}

func (ph Phase) NDof() int { return len(ph.Q) }

func (ph Phase) Clone() Phase {
	return Phase{Q: ph.Q.Clone(), P: ph.P.Clone()}
}

// Join flattens to the [q..., p...] layout used by integrators.
func (ph Phase) Join() State {
	x := make(State, 2*len(ph.Q))
	copy(x, ph.Q)
	copy(x[len(ph.Q):], ph.P)
	return x
}

// SplitState is the inverse of [Phase.Join]. The state length must be even.
func SplitState(x State) (Phase, error) {
	if len(x)%2 != 0 {
		return Phase{}, fmt.Errorf("%w: state length %d is odd", ErrShapeMismatch, len(x))
	}
	half := len(x) / 2
	return Phase{Q: x[:half].Clone(), P: x[half:].Clone()}, nil
}

// System is a first-order ODE x' = f(x, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Hamiltonian systems expose their conserved total energy.
type Hamiltonian interface {
	System
	Energy(x State) float64
}

// Separable is a Hamiltonian of the form H(q,p) = T(p) + V(q), stated in
// the [q..., p...] layout. Velocities returns dq/dt = ∂H/∂p and Forces
// returns dp/dt = -∂H/∂q. Symplectic integrators require this split.
type Separable interface {
	Hamiltonian
	Velocities(p State) State
	Forces(q State) State
}

type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator can additionally adjust its own step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, t float64)
}

// Configurable models allow runtime parameter adjustment by name.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
