package physics

import (
	"fmt"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// Harmonic is an N-dimensional isotropic harmonic oscillator,
// H = Σ p²/(2m) + Σ ½·m·ω²·q². State layout: [q..., p...].
type Harmonic struct {
	NDof  int
	Mass  float64
	Omega float64
}

func NewHarmonic(ndof int) (*Harmonic, error) {
	if ndof < 0 {
		return nil, fmt.Errorf("%w: ndof %d", hamilton.ErrParameterBounds, ndof)
	}
	return &Harmonic{NDof: ndof, Mass: 1.0, Omega: 1.0}, nil
}

func (h *Harmonic) StateDim() int { return 2 * h.NDof }

func (h *Harmonic) Derive(x hamilton.State, t float64) hamilton.State {
	dx := make(hamilton.State, len(x))
	n := h.NDof
	w2 := h.Omega * h.Omega
	for i := 0; i < n; i++ {
		dx[i] = x[n+i] / h.Mass
		dx[n+i] = -h.Mass * w2 * x[i]
	}
	return dx
}

func (h *Harmonic) Velocities(p hamilton.State) hamilton.State {
	v := make(hamilton.State, len(p))
	for i := range p {
		v[i] = p[i] / h.Mass
	}
	return v
}

func (h *Harmonic) Forces(q hamilton.State) hamilton.State {
	f := make(hamilton.State, len(q))
	w2 := h.Omega * h.Omega
	for i := range q {
		f[i] = -h.Mass * w2 * q[i]
	}
	return f
}

func (h *Harmonic) Energy(x hamilton.State) float64 {
	n := h.NDof
	w2 := h.Omega * h.Omega
	e := 0.0
	for i := 0; i < n; i++ {
		e += x[n+i]*x[n+i]/(2*h.Mass) + 0.5*h.Mass*w2*x[i]*x[i]
	}
	return e
}

// Potential is the configuration-space part of the energy, suitable as
// the potential callback for metrics.CheckConservation.
func (h *Harmonic) Potential(q []float64) float64 {
	w2 := h.Omega * h.Omega
	v := 0.0
	for _, qi := range q {
		v += 0.5 * h.Mass * w2 * qi * qi
	}
	return v
}

func (h *Harmonic) DefaultState() hamilton.State {
	x := make(hamilton.State, 2*h.NDof)
	if h.NDof > 0 {
		x[0] = 1.0
	}
	return x
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"mass": h.Mass, "omega": h.Omega}
}

func (h *Harmonic) SetParam(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s = %v", hamilton.ErrParameterBounds, name, value)
	}
	switch name {
	case "mass":
		h.Mass = value
	case "omega":
		h.Omega = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
