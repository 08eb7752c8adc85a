package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// EnergyPlot charts total energy against time.
func EnergyPlot(energies []float64, width, height int) string {
	if len(energies) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(downsample(energies, width),
		asciigraph.Height(height),
		asciigraph.Caption("total energy"),
	)
}

// SeriesPlot charts one state component against time.
func SeriesPlot(series []float64, label string, width, height int) string {
	if len(series) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(downsample(series, width),
		asciigraph.Height(height),
		asciigraph.Caption(label),
	)
}

// SpectrumPlot charts a power spectrum on a log-ish scale by clipping
// the long tail, labeling the dominant angular frequency.
func SpectrumPlot(ps []float64, dominant float64, width, height int) string {
	if len(ps) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(downsample(ps, width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("power spectrum (peak ω ≈ %.3f rad/s)", dominant)),
	)
}

// downsample thins a series to roughly the plot width so asciigraph
// doesn't wrap.
func downsample(data []float64, width int) []float64 {
	if width <= 0 || len(data) <= width {
		return data
	}
	stride := (len(data) + width - 1) / width
	out := make([]float64, 0, width)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	return out
}
