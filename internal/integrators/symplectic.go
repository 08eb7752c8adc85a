package integrators

import "github.com/san-kum/hamlab/internal/hamilton"

// SymplecticEuler is the first-order kick-drift scheme: momenta are
// updated from forces at the current positions, then positions from
// the already-updated momenta. Unlike a naive Euler step on (q, p)
// together, the update preserves the symplectic form, so energy error
// oscillates at O(dt) instead of growing secularly.
//
// Requires a [hamilton.Separable] system; Step panics otherwise, since
// picking a non-symplectic fallback silently would defeat the point of
// asking for this integrator.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (s *SymplecticEuler) Step(sys hamilton.System, x hamilton.State, t, dt float64) hamilton.State {
	sep := mustSeparable(sys)
	half := len(x) / 2
	q, p := x[:half], x[half:]

	result := make(hamilton.State, len(x))
	newP := result[half:]
	newQ := result[:half]

	forces := sep.Forces(q)
	for i := 0; i < half; i++ {
		newP[i] = p[i] + dt*forces[i]
	}

	vel := sep.Velocities(newP)
	for i := 0; i < half; i++ {
		newQ[i] = q[i] + dt*vel[i]
	}

	return result
}

// Leapfrog is velocity Verlet in kick-drift-kick form: half-step kick,
// full-step drift, half-step kick. Second order, symplectic, and
// time-reversible; the integrator of choice for long N-body runs.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys hamilton.System, x hamilton.State, t, dt float64) hamilton.State {
	sep := mustSeparable(sys)
	half := len(x) / 2
	q, p := x[:half], x[half:]

	result := make(hamilton.State, len(x))
	newQ := result[:half]
	newP := result[half:]

	halfDt := 0.5 * dt

	forces := sep.Forces(q)
	for i := 0; i < half; i++ {
		newP[i] = p[i] + halfDt*forces[i]
	}

	vel := sep.Velocities(newP)
	for i := 0; i < half; i++ {
		newQ[i] = q[i] + dt*vel[i]
	}

	forces = sep.Forces(newQ)
	for i := 0; i < half; i++ {
		newP[i] += halfDt * forces[i]
	}

	return result
}

func mustSeparable(sys hamilton.System) hamilton.Separable {
	sep, ok := sys.(hamilton.Separable)
	if !ok {
		panic("integrators: symplectic step requires a separable Hamiltonian system")
	}
	return sep
}
