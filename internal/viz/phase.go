package viz

import "math"

// PhasePortrait draws one (q, p) pair of a trajectory onto a braille
// canvas and returns the rendered frame. xIdx and yIdx select the state
// components for the two axes.
func PhasePortrait(states [][]float64, xIdx, yIdx, width, height int) string {
	canvas := NewCanvas(width, height)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range states {
		if xIdx >= len(s) || yIdx >= len(s) {
			continue
		}
		minX = math.Min(minX, s[xIdx])
		maxX = math.Max(maxX, s[xIdx])
		minY = math.Min(minY, s[yIdx])
		maxY = math.Max(maxY, s[yIdx])
	}
	if math.IsInf(minX, 1) {
		return canvas.String()
	}

	// Pad degenerate ranges so a fixed point still lands mid-canvas.
	if maxX-minX < 1e-12 {
		minX, maxX = minX-1, maxX+1
	}
	if maxY-minY < 1e-12 {
		minY, maxY = minY-1, maxY+1
	}

	subW := float64(width*2 - 1)
	subH := float64(height*4 - 1)

	prevSet := false
	var prevX, prevY int
	for _, s := range states {
		if xIdx >= len(s) || yIdx >= len(s) {
			continue
		}
		x := int((s[xIdx] - minX) / (maxX - minX) * subW)
		// Screen y grows downward.
		y := int((1 - (s[yIdx]-minY)/(maxY-minY)) * subH)

		if prevSet {
			canvas.DrawLine(prevX, prevY, x, y)
		} else {
			canvas.Set(x, y)
		}
		prevX, prevY = x, y
		prevSet = true
	}

	return canvas.String()
}
