// Package canonical implements coordinate-change machinery for phase
// space: Poisson brackets, action-angle variables for the harmonic
// oscillator, generating-function (F2) transforms, and the matrix
// symplecticity check MᵀJM = J.
//
// Nothing here depends on the integrators; these utilities act on a
// single phase-space point or on a transform matrix.
package canonical
