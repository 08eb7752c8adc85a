// Package physics provides the built-in force models.
//
// Each model implements [hamilton.System]; conservative models also
// implement [hamilton.Hamiltonian] for energy monitoring, and the
// separable ones implement [hamilton.Separable] so the symplectic
// integrators can evolve them:
//
//   - [Harmonic]: simple harmonic oscillator, the reference system for
//     action-angle and conservation tests
//   - [Chain]: coupled oscillator chain with nearest-neighbor springs
//   - [NBody]: N-particle gravity with softening, 2D or 3D
//   - [DoublePendulum]: chaotic two-link pendulum (not separable in
//     (θ, ω) coordinates; integrate with RK4/RK45)
//
// All models use closed-form forces. Callers with an arbitrary scalar
// Hamiltonian should wrap it in a [hamilton.FuncSystem] instead.
package physics
