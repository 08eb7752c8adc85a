package integrators

import "github.com/san-kum/hamlab/internal/hamilton"

// Euler is the naive first-order step. It is not symplectic: on
// oscillatory systems its energy error grows linearly in time. Kept
// for the compare command, where that drift is the point.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys hamilton.System, x hamilton.State, t, dt float64) hamilton.State {
	dx := sys.Derive(x, t)
	result := make(hamilton.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
