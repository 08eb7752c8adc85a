package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// DoublePendulum is two point masses on rigid massless rods, the
// classic chaotic system. State: [θ1, θ2, ω1, ω2] — angular
// coordinates and velocities, not a canonical (q, p) pair, so this
// model is integrated with RK4/RK45 rather than the symplectic schemes.
//
// The equations of motion divide by den1 = (m1+m2)·L1 - m2·L1·cos²δ.
// For positive masses den1 > 0 always (m1+m2 > m2 ≥ m2·cos²δ), so the
// degenerate denominator is unreachable; trajectories can still blow
// up numerically at large dt, which the diagnostics report as failed
// energy conservation rather than an error.
type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{M1: 1.0, M2: 1.0, L1: 1.0, L2: 1.0, Gravity: 9.81}
}

func (d *DoublePendulum) StateDim() int { return 4 }

// Derivatives evaluates the Euler-Lagrange equations of motion,
// returning (dθ1, dθ2, dω1, dω2).
func Derivatives(theta1, theta2, omega1, omega2, m1, m2, l1, l2, g float64) (float64, float64, float64, float64) {
	delta := theta2 - theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	alpha1 := (m2*l1*omega1*omega1*sinD*cosD +
		m2*g*math.Sin(theta2)*cosD +
		m2*l2*omega2*omega2*sinD -
		(m1+m2)*g*math.Sin(theta1)) / den1

	alpha2 := (-m2*l2*omega2*omega2*sinD*cosD +
		(m1+m2)*g*math.Sin(theta1)*cosD -
		(m1+m2)*l1*omega1*omega1*sinD -
		(m1+m2)*g*math.Sin(theta2)) / den2

	return omega1, omega2, alpha1, alpha2
}

func (d *DoublePendulum) Derive(x hamilton.State, t float64) hamilton.State {
	d1, d2, a1, a2 := Derivatives(x[0], x[1], x[2], x[3], d.M1, d.M2, d.L1, d.L2, d.Gravity)
	return hamilton.State{d1, d2, a1, a2}
}

// Energy is the total mechanical energy, kinetic plus gravitational
// potential measured from the pivot.
func (d *DoublePendulum) Energy(x hamilton.State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := v1sq + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

func (d *DoublePendulum) DefaultState() hamilton.State {
	return hamilton.State{math.Pi / 2, math.Pi / 2, 0, 0}
}

func (d *DoublePendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"m1": d.M1, "m2": d.M2,
		"l1": d.L1, "l2": d.L2,
		"gravity": d.Gravity,
	}
}

func (d *DoublePendulum) SetParam(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s = %v", hamilton.ErrParameterBounds, name, value)
	}
	switch name {
	case "m1":
		d.M1 = value
	case "m2":
		d.M2 = value
	case "l1":
		d.L1 = value
	case "l2":
		d.L2 = value
	case "gravity":
		d.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
