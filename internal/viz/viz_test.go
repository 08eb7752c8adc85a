package viz

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)

	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if lines[0] == strings.Repeat("⠀", 4) {
		t.Error("first row should have a lit dot")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-bounds set should not light dots")
			}
		}
	}
}

func TestPhasePortraitCircle(t *testing.T) {
	states := make([][]float64, 200)
	for i := range states {
		a := 2 * math.Pi * float64(i) / 200
		states[i] = []float64{math.Cos(a), math.Sin(a)}
	}

	out := PhasePortrait(states, 0, 1, 20, 10)

	lit := 0
	for _, r := range out {
		if r > 0x2800 && r <= 0x28FF {
			lit++
		}
	}
	if lit < 10 {
		t.Errorf("expected a visible orbit, only %d cells lit", lit)
	}
}

func TestPhasePortraitFixedPoint(t *testing.T) {
	states := [][]float64{{0, 0}, {0, 0}}
	// Degenerate range must not divide by zero.
	out := PhasePortrait(states, 0, 1, 10, 5)
	if out == "" {
		t.Error("expected rendered frame")
	}
}

func TestDownsample(t *testing.T) {
	data := make([]float64, 1000)
	out := downsample(data, 80)
	if len(out) > 80 {
		t.Errorf("downsample should fit width, got %d points", len(out))
	}
	short := []float64{1, 2, 3}
	if len(downsample(short, 80)) != 3 {
		t.Error("short series should pass through unchanged")
	}
}

func TestEnergyPlotEmpty(t *testing.T) {
	if EnergyPlot(nil, 80, 10) != "(no data)" {
		t.Error("empty series should render placeholder")
	}
}
