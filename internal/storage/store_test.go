package storage

import (
	"testing"

	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		States: []hamilton.State{{1.0, 0.0}, {0.9, -0.1}, {0.8, -0.2}},
		Times:  []float64{0, 0.01, 0.02},
		Metrics: map[string]float64{
			"energy_drift": 1.2e-5,
		},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("harmonic", "leapfrog", 0.01, 0.02, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Model != "harmonic" || meta.Integrator != "leapfrog" {
		t.Errorf("bad metadata: %+v", meta)
	}
	if meta.Metrics["energy_drift"] != 1.2e-5 {
		t.Errorf("metrics not preserved: %v", meta.Metrics)
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 rows, got %d states / %d times", len(states), len(times))
	}
	if states[1][0] != 0.9 || states[1][1] != -0.1 {
		t.Errorf("state row mismatch: %v", states[1])
	}
	if times[2] != 0.02 {
		t.Errorf("time mismatch: %v", times[2])
	}
}

func TestListRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}

	if _, err := st.Save("chain", "leapfrog", 0.01, 1.0, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Model != "chain" {
		t.Errorf("unexpected list contents: %+v", runs)
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("definitely/does/not/exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing dir should list empty, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for unknown run")
	}
}
