package canonical

import (
	"fmt"
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// ActionAngle maps a harmonic-oscillator state (mass normalized to 1)
// to action-angle variables:
//
//	I = (p² + ω²·q²) / (2ω)
//	θ = atan2(p, ω·q)
//
// Under free harmonic evolution I is a constant of motion and θ
// advances uniformly at rate ω.
func ActionAngle(q, p, omega float64) (action, angle float64, err error) {
	if omega <= 0 {
		return 0, 0, fmt.Errorf("%w: omega %v", hamilton.ErrParameterBounds, omega)
	}
	action = (p*p + omega*omega*q*q) / (2 * omega)
	angle = math.Atan2(p, omega*q)
	return action, angle, nil
}

// FromActionAngle inverts ActionAngle:
//
//	q = sqrt(2I/ω)·cos θ
//	p = sqrt(2Iω)·sin θ
func FromActionAngle(action, angle, omega float64) (q, p float64, err error) {
	if omega <= 0 {
		return 0, 0, fmt.Errorf("%w: omega %v", hamilton.ErrParameterBounds, omega)
	}
	if action < 0 {
		return 0, 0, fmt.Errorf("%w: action %v", hamilton.ErrParameterBounds, action)
	}
	q = math.Sqrt(2*action/omega) * math.Cos(angle)
	p = math.Sqrt(2*action*omega) * math.Sin(angle)
	return q, p, nil
}
