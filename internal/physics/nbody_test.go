package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/hamlab/internal/hamilton"
)

func TestComputeForcesThirdLaw(t *testing.T) {
	positions := []float64{0, 0, 1.5, 0.3, -0.7, 2.1}
	masses := []float64{1.0, 2.0, 0.5}

	forces, _ := ComputeForces(positions, masses, 2, 1.0, 0.01)

	// With every pair contributing equal and opposite forces, the net
	// force over all bodies must vanish.
	var sumX, sumY float64
	for i := range masses {
		sumX += forces[i*2]
		sumY += forces[i*2+1]
	}
	if math.Abs(sumX) > 1e-12 || math.Abs(sumY) > 1e-12 {
		t.Errorf("net force should be zero, got (%g, %g)", sumX, sumY)
	}
}

func TestComputeForcesTwoBody(t *testing.T) {
	// Two unit masses separated by d=2 along x, no softening.
	positions := []float64{-1, 0, 1, 0}
	masses := []float64{1.0, 1.0}

	forces, potential := ComputeForces(positions, masses, 2, 1.0, 0)

	if math.Abs(potential-(-0.5)) > 1e-12 {
		t.Errorf("expected potential -0.5, got %v", potential)
	}

	// |F| = G·m1·m2/d² = 0.25, attractive.
	if math.Abs(forces[0]-0.25) > 1e-12 {
		t.Errorf("expected Fx on body 0 = +0.25, got %v", forces[0])
	}
	if math.Abs(forces[2]+0.25) > 1e-12 {
		t.Errorf("expected Fx on body 1 = -0.25, got %v", forces[2])
	}
	if forces[1] != 0 || forces[3] != 0 {
		t.Error("expected zero y-forces for x-separated pair")
	}
}

func TestComputeForces3D(t *testing.T) {
	positions := []float64{0, 0, 0, 0, 0, 2}
	masses := []float64{1.0, 1.0}

	forces, potential := ComputeForces(positions, masses, 3, 1.0, 0)

	if math.Abs(potential-(-0.5)) > 1e-12 {
		t.Errorf("expected potential -0.5, got %v", potential)
	}
	if math.Abs(forces[2]-0.25) > 1e-12 {
		t.Errorf("expected Fz on body 0 = +0.25, got %v", forces[2])
	}
}

func TestComputeForcesEmpty(t *testing.T) {
	forces, potential := ComputeForces(nil, nil, 2, 1.0, 0.01)
	if len(forces) != 0 || potential != 0 {
		t.Errorf("expected trivial result for N=0, got %v, %v", forces, potential)
	}
}

func TestComputeForcesParallelMatchesSerial(t *testing.T) {
	n := 17
	positions := make([]float64, n*2)
	masses := make([]float64, n)
	for i := 0; i < n; i++ {
		positions[i*2] = math.Cos(float64(i))
		positions[i*2+1] = math.Sin(float64(i) * 1.7)
		masses[i] = 1.0 + 0.1*float64(i)
	}

	fs, ps := ComputeForces(positions, masses, 2, 1.0, 0.01)
	fp, pp := ComputeForcesParallel(positions, masses, 2, 1.0, 0.01, 4)

	if math.Abs(ps-pp) > 1e-9*math.Abs(ps) {
		t.Errorf("potential mismatch: %v vs %v", ps, pp)
	}
	for i := range fs {
		if math.Abs(fs[i]-fp[i]) > 1e-9 {
			t.Errorf("force[%d] mismatch: %v vs %v", i, fs[i], fp[i])
		}
	}
}

func TestNBodyValidation(t *testing.T) {
	if _, err := NewNBody(2, 4, nil); !errors.Is(err, hamilton.ErrParameterBounds) {
		t.Error("expected error for dim=4")
	}
	if _, err := NewNBody(2, 2, []float64{1.0}); !errors.Is(err, hamilton.ErrShapeMismatch) {
		t.Error("expected error for mass/body count mismatch")
	}
	if _, err := NewNBody(2, 2, []float64{1.0, -1.0}); !errors.Is(err, hamilton.ErrParameterBounds) {
		t.Error("expected error for negative mass")
	}
}

func TestNBodyMomentum(t *testing.T) {
	nb, err := NewNBody(3, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	x := nb.DefaultState()
	p := nb.Momentum(x)

	// Circular default state has tangential momenta summing to zero.
	if math.Abs(p[0]) > 1e-12 || math.Abs(p[1]) > 1e-12 {
		t.Errorf("expected zero total momentum, got %v", p)
	}
}
