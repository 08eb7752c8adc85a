package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/hamlab/internal/hamilton"
)

func TestChainForcesBoundaries(t *testing.T) {
	q := []float64{1, 0, -1}

	forces := ChainForces(q, 1.0, 0.5)

	// End oscillators have exactly one coupling term.
	if math.Abs(forces[0]-(-1.5)) > 1e-12 {
		t.Errorf("expected forces[0] = -1.5, got %v", forces[0])
	}
	if math.Abs(forces[1]) > 1e-12 {
		t.Errorf("expected forces[1] = 0, got %v", forces[1])
	}
	if math.Abs(forces[2]-1.5) > 1e-12 {
		t.Errorf("expected forces[2] = 1.5, got %v", forces[2])
	}
}

func TestChainForcesSingle(t *testing.T) {
	forces := ChainForces([]float64{2.0}, 3.0, 0.5)
	if math.Abs(forces[0]-(-6.0)) > 1e-12 {
		t.Errorf("lone oscillator should see only its own spring, got %v", forces[0])
	}
}

func TestChainForceIsPotentialGradient(t *testing.T) {
	c, err := NewChain(4, 1.3, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	q := []float64{0.5, -0.2, 0.9, 0.1}

	forces := ChainForces(q, c.KSpring, c.KCoupling)
	grad := hamilton.Gradient(c.Potential, append([]float64(nil), q...), 0)

	for i := range q {
		if math.Abs(forces[i]+grad[i]) > 1e-6 {
			t.Errorf("force[%d] = %v should equal -dV/dq = %v", i, forces[i], -grad[i])
		}
	}
}

func TestChainValidation(t *testing.T) {
	if _, err := NewChain(3, 0, 0.5); !errors.Is(err, hamilton.ErrParameterBounds) {
		t.Error("expected error for k_spring = 0")
	}
	if _, err := NewChain(3, 1.0, -0.1); !errors.Is(err, hamilton.ErrParameterBounds) {
		t.Error("expected error for negative k_coupling")
	}
	if c, err := NewChain(3, 1.0, 0); err != nil || c == nil {
		t.Error("k_coupling = 0 (uncoupled chain) should be allowed")
	}
}

func TestChainEmpty(t *testing.T) {
	c, err := NewChain(0, 1.0, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if e := c.Energy(hamilton.State{}); e != 0 {
		t.Errorf("empty chain should have zero energy, got %v", e)
	}
}
