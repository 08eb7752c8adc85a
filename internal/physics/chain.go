package physics

import (
	"fmt"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// Chain is a line of N unit-mass oscillators, each tied to its rest
// position by a spring of stiffness KSpring and to its immediate
// neighbors by springs of stiffness KCoupling. Boundary oscillators
// have a single neighbor. The potential is
//
//	V = Σ ½·k·qᵢ² + Σ ½·k_c·(qᵢ - qᵢ₊₁)²
//
// State layout: [q..., p...].
type Chain struct {
	N         int
	KSpring   float64
	KCoupling float64
}

func NewChain(n int, kSpring, kCoupling float64) (*Chain, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n %d", hamilton.ErrParameterBounds, n)
	}
	if kSpring <= 0 {
		return nil, fmt.Errorf("%w: k_spring %v", hamilton.ErrParameterBounds, kSpring)
	}
	if kCoupling < 0 {
		return nil, fmt.Errorf("%w: k_coupling %v", hamilton.ErrParameterBounds, kCoupling)
	}
	return &Chain{N: n, KSpring: kSpring, KCoupling: kCoupling}, nil
}

// ChainForces evaluates the restoring plus coupling force on each
// oscillator: -k·qᵢ + k_c·(qᵢ₋₁ - qᵢ) + k_c·(qᵢ₊₁ - qᵢ), with the
// neighbor terms dropped at the ends of the chain.
func ChainForces(q []float64, kSpring, kCoupling float64) []float64 {
	n := len(q)
	forces := make([]float64, n)
	for i := 0; i < n; i++ {
		f := -kSpring * q[i]
		if i > 0 {
			f += kCoupling * (q[i-1] - q[i])
		}
		if i < n-1 {
			f += kCoupling * (q[i+1] - q[i])
		}
		forces[i] = f
	}
	return forces
}

func (c *Chain) StateDim() int { return 2 * c.N }

func (c *Chain) Velocities(p hamilton.State) hamilton.State {
	return p.Clone()
}

func (c *Chain) Forces(q hamilton.State) hamilton.State {
	return ChainForces(q, c.KSpring, c.KCoupling)
}

func (c *Chain) Derive(x hamilton.State, t float64) hamilton.State {
	dx := make(hamilton.State, len(x))
	copy(dx[:c.N], x[c.N:])
	copy(dx[c.N:], ChainForces(x[:c.N], c.KSpring, c.KCoupling))
	return dx
}

func (c *Chain) Energy(x hamilton.State) float64 {
	ke := 0.0
	for _, p := range x[c.N:] {
		ke += 0.5 * p * p
	}
	return ke + c.Potential(x[:c.N])
}

func (c *Chain) Potential(q []float64) float64 {
	v := 0.0
	for i, qi := range q {
		v += 0.5 * c.KSpring * qi * qi
		if i < len(q)-1 {
			d := qi - q[i+1]
			v += 0.5 * c.KCoupling * d * d
		}
	}
	return v
}

// DefaultState displaces the first oscillator and leaves the rest at
// equilibrium, so energy visibly migrates down the chain.
func (c *Chain) DefaultState() hamilton.State {
	x := make(hamilton.State, 2*c.N)
	if c.N > 0 {
		x[0] = 1.0
	}
	return x
}

func (c *Chain) GetParams() map[string]float64 {
	return map[string]float64{"k_spring": c.KSpring, "k_coupling": c.KCoupling}
}

func (c *Chain) SetParam(name string, value float64) error {
	switch name {
	case "k_spring":
		if value <= 0 {
			return fmt.Errorf("%w: k_spring %v", hamilton.ErrParameterBounds, value)
		}
		c.KSpring = value
	case "k_coupling":
		if value < 0 {
			return fmt.Errorf("%w: k_coupling %v", hamilton.ErrParameterBounds, value)
		}
		c.KCoupling = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
