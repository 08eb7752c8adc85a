package analysis

import (
	"math"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// Lyapunov estimates the largest Lyapunov exponent by the Benettin
// method: evolve a reference and a perturbed trajectory together,
// accumulate the log of their separation growth, and renormalize the
// perturbed copy back to the initial offset every step so the
// separation stays in the linear regime.
//
// A clearly positive result indicates chaos (for the double pendulum
// at large amplitude, on the order of a few inverse seconds); regular
// systems give values near zero.
func Lyapunov(sys hamilton.System, integ hamilton.Integrator, x0 hamilton.State, dt, duration, d0 float64) float64 {
	if len(x0) == 0 || dt <= 0 || duration <= 0 || d0 <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += d0

	sumLog := 0.0
	t := 0.0
	steps := 0

	for t < duration {
		x = integ.Step(sys, x, t, dt)
		xp = integ.Step(sys, xp, t, dt)
		t += dt
		steps++

		sep := 0.0
		for i := range x {
			diff := xp[i] - x[i]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)

		if sep == 0 || !x.IsValid() || !xp.IsValid() {
			break
		}

		sumLog += math.Log(sep / d0)

		// Pull the companion back to distance d0 along the current
		// separation direction.
		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if steps == 0 {
		return 0
	}
	return sumLog / (float64(steps) * dt)
}
