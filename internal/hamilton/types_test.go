package hamilton

import (
	"errors"
	"math"
	"testing"
)

func TestPhaseShapeMismatch(t *testing.T) {
	_, err := NewPhase([]float64{1, 2}, []float64{3})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestPhaseJoinSplit(t *testing.T) {
	ph, err := NewPhase([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}

	x := ph.Join()
	if len(x) != 4 {
		t.Fatalf("expected flat length 4, got %d", len(x))
	}

	back, err := SplitState(x)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ph.Q {
		if back.Q[i] != ph.Q[i] || back.P[i] != ph.P[i] {
			t.Errorf("roundtrip mismatch at %d: got (%v,%v)", i, back.Q[i], back.P[i])
		}
	}

	if _, err := SplitState(State{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Error("expected ErrShapeMismatch for odd state length")
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, 2, 3}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{1, math.NaN()}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{math.Inf(1)}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}

func TestGradientQuadratic(t *testing.T) {
	// f(x) = x0² + 3·x1, ∇f = (2·x0, 3)
	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[1] }
	x := []float64{2.0, 5.0}

	grad := Gradient(f, x, 0)

	if math.Abs(grad[0]-4.0) > 1e-6 {
		t.Errorf("expected df/dx0 = 4, got %v", grad[0])
	}
	if math.Abs(grad[1]-3.0) > 1e-6 {
		t.Errorf("expected df/dx1 = 3, got %v", grad[1])
	}
	if x[0] != 2.0 || x[1] != 5.0 {
		t.Error("gradient must not mutate its input point")
	}
}

func TestFuncSystemHarmonic(t *testing.T) {
	// H = p²/2 + q²/2: dq/dt = p, dp/dt = -q
	sys := NewFuncSystem(1, func(q, p []float64) float64 {
		return 0.5*p[0]*p[0] + 0.5*q[0]*q[0]
	})

	dx := sys.Derive(State{1.0, 0.5}, 0)

	if math.Abs(dx[0]-0.5) > 1e-6 {
		t.Errorf("expected dq/dt = 0.5, got %v", dx[0])
	}
	if math.Abs(dx[1]+1.0) > 1e-6 {
		t.Errorf("expected dp/dt = -1.0, got %v", dx[1])
	}

	forces := sys.Forces(State{2.0})
	if math.Abs(forces[0]+2.0) > 1e-6 {
		t.Errorf("expected force -2, got %v", forces[0])
	}
	vel := sys.Velocities(State{3.0})
	if math.Abs(vel[0]-3.0) > 1e-6 {
		t.Errorf("expected velocity 3, got %v", vel[0])
	}
}
