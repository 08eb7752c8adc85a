package physics

import (
	"math"
	"testing"

	"github.com/san-kum/hamlab/internal/hamilton"
)

func TestDoublePendulumEquilibrium(t *testing.T) {
	dp := NewDoublePendulum()

	// Hanging straight down at rest: nothing moves.
	dx := dp.Derive(hamilton.State{0, 0, 0, 0}, 0)

	for i, v := range dx {
		if math.Abs(v) > 1e-10 {
			t.Errorf("expected zero derivative at equilibrium, dx[%d] = %v", i, v)
		}
	}
}

func TestDoublePendulumSymmetry(t *testing.T) {
	dp := NewDoublePendulum()

	dx1 := dp.Derive(hamilton.State{0.1, 0.1, 0, 0}, 0)
	dx2 := dp.Derive(hamilton.State{-0.1, -0.1, 0, 0}, 0)

	// Mirrored initial angles give mirrored accelerations.
	if math.Abs(dx1[2]+dx2[2]) > 1e-6 {
		t.Errorf("expected symmetric alpha1: %v vs %v", dx1[2], dx2[2])
	}
	if math.Abs(dx1[3]+dx2[3]) > 1e-6 {
		t.Errorf("expected symmetric alpha2: %v vs %v", dx1[3], dx2[3])
	}
}

func TestDoublePendulumEnergyAtRest(t *testing.T) {
	dp := NewDoublePendulum()

	// Both rods horizontal, at rest: KE = 0 and both bobs at pivot
	// height, so E = 0 exactly.
	e := dp.Energy(hamilton.State{math.Pi / 2, math.Pi / 2, 0, 0})
	if math.Abs(e) > 1e-12 {
		t.Errorf("expected zero energy for horizontal rest state, got %v", e)
	}

	// Hanging down: E = -(m1+m2)·g·L1 - m2·g·L2 = -3g for unit params.
	e = dp.Energy(hamilton.State{0, 0, 0, 0})
	want := -3 * dp.Gravity
	if math.Abs(e-want) > 1e-12 {
		t.Errorf("expected energy %v hanging down, got %v", want, e)
	}
}

func TestDoublePendulumSmallAngleFrequency(t *testing.T) {
	dp := NewDoublePendulum()

	// For m1=m2, L1=L2=L the in-phase normal mode has
	// ω² = (g/L)·(2 - √2). Check the EOM linearization via a small
	// in-phase displacement: alpha/theta ≈ -ω².
	eps := 1e-5
	mode := math.Sqrt(2.0) // theta2/theta1 ratio of the slow mode
	_, _, a1, _ := Derivatives(eps, mode*eps, 0, 0, 1, 1, 1, 1, dp.Gravity)

	want := -dp.Gravity * (2 - math.Sqrt2) * eps
	if math.Abs(a1-want) > 1e-8 {
		t.Errorf("expected alpha1 ≈ %v for slow mode, got %v", want, a1)
	}
}
