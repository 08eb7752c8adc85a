package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |FFT|² of the series over the positive
// frequencies. The input is zero-padded to the next power of two.
func PowerSpectrum(series []float64) []float64 {
	n := nextPow2(len(series))
	padded := make([]float64, n)
	copy(padded, series)

	coeffs := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		mag := cmplx.Abs(coeffs[i])
		ps[i] = mag * mag
	}
	return ps
}

// DominantFrequency returns the angular frequency of the strongest
// nonzero spectral peak, given the sampling interval dt. The DC bin is
// ignored.
func DominantFrequency(series []float64, dt float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}

	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}

	n := 2 * len(ps) // padded length
	return 2 * math.Pi * float64(best) / (float64(n) * dt)
}

// ModeFrequencies returns the analytic normal-mode angular frequencies
// of an N-oscillator chain with fixed self-springs and nearest-neighbor
// coupling (free ends): ω_k² = k + 2·k_c·(1 - cos(kπ/N)) for
// k = 0..N-1.
func ModeFrequencies(n int, kSpring, kCoupling float64) []float64 {
	freqs := make([]float64, n)
	for k := 0; k < n; k++ {
		w2 := kSpring + 2*kCoupling*(1-math.Cos(float64(k)*math.Pi/float64(n)))
		freqs[k] = math.Sqrt(w2)
	}
	return freqs
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
