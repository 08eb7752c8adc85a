// Package hamilton defines the phase-space types and system interfaces
// shared by the whole simulator.
//
// A dynamical system is anything implementing [System], a first-order ODE
// x' = f(x, t) over a flat state vector. Systems with a conserved energy
// additionally implement [Hamiltonian]. Systems whose Hamiltonian splits
// as H = T(p) + V(q) implement [Separable], which is what the symplectic
// integrators in internal/integrators require: they update momenta from
// Forces (-∂H/∂q) and positions from Velocities (∂H/∂p) in alternation.
//
// For canonical systems the flat state layout is always [q..., p...]:
// the first half of the vector holds the generalized coordinates, the
// second half the conjugate momenta. [Phase] is the structured view of
// the same data.
//
// Arbitrary user-supplied Hamiltonians with no closed-form gradients can
// be wrapped in a [FuncSystem], which estimates ∂H/∂q and ∂H/∂p by
// centered finite differences.
package hamilton
