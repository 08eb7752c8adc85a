package hamilton

import "errors"

// Domain errors. Precondition violations (bad parameters, mismatched
// shapes) fail fast; numerical blow-up in a chaotic system is surfaced
// through diagnostics, not through these errors.
var (
	// ErrShapeMismatch indicates q/p or state/system dimension mismatch.
	ErrShapeMismatch = errors.New("hamilton: shape mismatch")

	// ErrInvalidState indicates NaN or Inf in a state vector.
	ErrInvalidState = errors.New("hamilton: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a physical parameter outside its valid range.
	ErrParameterBounds = errors.New("hamilton: parameter out of valid bounds")

	// ErrStepTooSmall indicates the adaptive timestep fell below its minimum.
	ErrStepTooSmall = errors.New("hamilton: adaptive timestep below minimum")
)
