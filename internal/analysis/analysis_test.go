package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/integrators"
	"github.com/san-kum/hamlab/internal/physics"
)

func TestLyapunovRegularSystem(t *testing.T) {
	osc, err := physics.NewHarmonic(1)
	if err != nil {
		t.Fatal(err)
	}

	lam := Lyapunov(osc, integrators.NewLeapfrog(), hamilton.State{1.0, 0.0}, 0.01, 50.0, 1e-8)

	// Harmonic motion: nearby trajectories neither converge nor
	// diverge exponentially.
	if math.Abs(lam) > 0.05 {
		t.Errorf("harmonic oscillator should have near-zero exponent, got %v", lam)
	}
}

func TestLyapunovChaoticPendulum(t *testing.T) {
	dp := physics.NewDoublePendulum()

	lam := Lyapunov(dp, integrators.NewRK4(), hamilton.State{math.Pi / 2, math.Pi / 2, 0, 0}, 0.001, 30.0, 1e-8)

	if lam < 0.5 {
		t.Errorf("large-amplitude double pendulum should be chaotic, got exponent %v", lam)
	}
}

func TestLyapunovDegenerateInputs(t *testing.T) {
	osc, _ := physics.NewHarmonic(1)
	if lam := Lyapunov(osc, integrators.NewLeapfrog(), hamilton.State{}, 0.01, 1, 1e-8); lam != 0 {
		t.Errorf("empty state should give 0, got %v", lam)
	}
	if lam := Lyapunov(osc, integrators.NewLeapfrog(), hamilton.State{1, 0}, 0, 1, 1e-8); lam != 0 {
		t.Errorf("zero dt should give 0, got %v", lam)
	}
}

func TestDominantFrequencySine(t *testing.T) {
	omega := 2.0
	dt := 0.01
	series := make([]float64, 4096)
	for i := range series {
		series[i] = math.Sin(omega * dt * float64(i))
	}

	got := DominantFrequency(series, dt)

	// Resolution is 2π/(n·dt) ≈ 0.15 rad/s at this length.
	if math.Abs(got-omega) > 0.2 {
		t.Errorf("expected dominant frequency ~%v, got %v", omega, got)
	}
}

func TestModeFrequencies(t *testing.T) {
	freqs := ModeFrequencies(3, 1.0, 0.5)

	if len(freqs) != 3 {
		t.Fatalf("expected 3 mode frequencies, got %d", len(freqs))
	}
	// k=0 is the in-phase mode: coupling springs never stretch.
	if math.Abs(freqs[0]-1.0) > 1e-12 {
		t.Errorf("in-phase mode should oscillate at sqrt(k_spring), got %v", freqs[0])
	}
	for i := 1; i < 3; i++ {
		if freqs[i] <= freqs[i-1] {
			t.Errorf("mode frequencies should increase, got %v", freqs)
		}
	}
}

func TestPowerSpectrumPadding(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 64 {
		t.Errorf("expected 128-point padded spectrum to yield 64 bins, got %d", len(ps))
	}
}
