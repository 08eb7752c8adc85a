package physics

import (
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/hamlab/internal/hamilton"
)

// NBody is self-gravitating point masses in dim spatial dimensions
// (2 or 3). State layout: [q..., p...] with q = N·dim positions and
// p = N·dim momenta, grouped per body.
//
// Forces use Plummer softening: r² is replaced by r² + ε². With
// Softening = 0 and two coincident bodies the force is singular; that
// is a precondition violation on the caller, not something the model
// detects per step.
type NBody struct {
	N         int
	Dim       int
	Masses    []float64
	G         float64
	Softening float64

	// Parallel enables goroutine-parallel force accumulation for the
	// O(N²) pair loop. Purely a performance knob.
	Parallel bool
}

func NewNBody(n, dim int, masses []float64) (*NBody, error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: dim %d (want 2 or 3)", hamilton.ErrParameterBounds, dim)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n %d", hamilton.ErrParameterBounds, n)
	}
	if masses == nil {
		masses = make([]float64, n)
		for i := range masses {
			masses[i] = 1.0
		}
	}
	if len(masses) != n {
		return nil, fmt.Errorf("%w: %d masses for %d bodies", hamilton.ErrShapeMismatch, len(masses), n)
	}
	for i, m := range masses {
		if m <= 0 {
			return nil, fmt.Errorf("%w: mass[%d] = %v", hamilton.ErrParameterBounds, i, m)
		}
	}
	return &NBody{N: n, Dim: dim, Masses: masses, G: 1.0, Softening: 0.01}, nil
}

func (nb *NBody) StateDim() int { return 2 * nb.N * nb.Dim }

// ComputeForces evaluates pairwise gravitational forces and the total
// potential for positions laid out as N consecutive dim-vectors.
// Each unordered pair is visited once; the contribution to body i is
// the exact negation of the contribution to body j, so the pair sum
// adds nothing to total momentum. N = 0 or 1 yields zero forces and
// zero potential.
func ComputeForces(positions, masses []float64, dim int, g, softening float64) (forces []float64, potential float64) {
	n := len(masses)
	forces = make([]float64, n*dim)
	eps2 := softening * softening

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r2 := eps2
			var sep [3]float64
			for d := 0; d < dim; d++ {
				sep[d] = positions[j*dim+d] - positions[i*dim+d]
				r2 += sep[d] * sep[d]
			}

			rInv := 1.0 / math.Sqrt(r2)
			mm := g * masses[i] * masses[j]
			fmag := mm * rInv * rInv * rInv

			for d := 0; d < dim; d++ {
				forces[i*dim+d] += fmag * sep[d]
				forces[j*dim+d] -= fmag * sep[d]
			}
			potential -= mm * rInv
		}
	}
	return forces, potential
}

// ComputeForcesParallel splits the outer pair loop across workers, each
// accumulating into private force and potential buffers that are merged
// after the parallel region. Results are identical to ComputeForces up
// to floating-point summation order.
func ComputeForcesParallel(positions, masses []float64, dim int, g, softening float64, workers int) (forces []float64, potential float64) {
	n := len(masses)
	if workers < 1 || n < 2*workers {
		return ComputeForces(positions, masses, dim, g, softening)
	}

	partialF := make([][]float64, workers)
	partialV := make([]float64, workers)
	eps2 := softening * softening

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			local := make([]float64, n*dim)
			pot := 0.0
			// Stride over i so the triangular loop balances across workers.
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					r2 := eps2
					var sep [3]float64
					for d := 0; d < dim; d++ {
						sep[d] = positions[j*dim+d] - positions[i*dim+d]
						r2 += sep[d] * sep[d]
					}
					rInv := 1.0 / math.Sqrt(r2)
					mm := g * masses[i] * masses[j]
					fmag := mm * rInv * rInv * rInv
					for d := 0; d < dim; d++ {
						local[i*dim+d] += fmag * sep[d]
						local[j*dim+d] -= fmag * sep[d]
					}
					pot -= mm * rInv
				}
			}
			partialF[w] = local
			partialV[w] = pot
		}(w)
	}
	wg.Wait()

	forces = make([]float64, n*dim)
	for w := 0; w < workers; w++ {
		for i := range forces {
			forces[i] += partialF[w][i]
		}
		potential += partialV[w]
	}
	return forces, potential
}

func (nb *NBody) forces(q hamilton.State) ([]float64, float64) {
	if nb.Parallel {
		return ComputeForcesParallel(q, nb.Masses, nb.Dim, nb.G, nb.Softening, 4)
	}
	return ComputeForces(q, nb.Masses, nb.Dim, nb.G, nb.Softening)
}

func (nb *NBody) Velocities(p hamilton.State) hamilton.State {
	v := make(hamilton.State, len(p))
	for i := 0; i < nb.N; i++ {
		for d := 0; d < nb.Dim; d++ {
			v[i*nb.Dim+d] = p[i*nb.Dim+d] / nb.Masses[i]
		}
	}
	return v
}

func (nb *NBody) Forces(q hamilton.State) hamilton.State {
	f, _ := nb.forces(q)
	return f
}

func (nb *NBody) Derive(x hamilton.State, t float64) hamilton.State {
	half := nb.N * nb.Dim
	dx := make(hamilton.State, len(x))
	copy(dx[:half], nb.Velocities(x[half:]))
	copy(dx[half:], nb.Forces(x[:half]))
	return dx
}

func (nb *NBody) Energy(x hamilton.State) float64 {
	half := nb.N * nb.Dim
	ke := 0.0
	for i := 0; i < nb.N; i++ {
		for d := 0; d < nb.Dim; d++ {
			p := x[half+i*nb.Dim+d]
			ke += p * p / (2 * nb.Masses[i])
		}
	}
	_, pe := nb.forces(x[:half])
	return ke + pe
}

// Potential returns the softened gravitational potential of a
// configuration, for use as a CheckConservation callback.
func (nb *NBody) Potential(q []float64) float64 {
	_, pe := ComputeForces(q, nb.Masses, nb.Dim, nb.G, nb.Softening)
	return pe
}

// Momentum sums the momentum vector over all bodies.
func (nb *NBody) Momentum(x hamilton.State) []float64 {
	half := nb.N * nb.Dim
	total := make([]float64, nb.Dim)
	for i := 0; i < nb.N; i++ {
		for d := 0; d < nb.Dim; d++ {
			total[d] += x[half+i*nb.Dim+d]
		}
	}
	return total
}

// AngularMomentum returns the scalar z-component, defined for dim >= 2.
func (nb *NBody) AngularMomentum(x hamilton.State) float64 {
	half := nb.N * nb.Dim
	l := 0.0
	for i := 0; i < nb.N; i++ {
		qx, qy := x[i*nb.Dim], x[i*nb.Dim+1]
		px, py := x[half+i*nb.Dim], x[half+i*nb.Dim+1]
		l += qx*py - qy*px
	}
	return l
}

// DefaultState places the bodies on a unit circle with tangential
// momenta, a configuration that stays bound for small N.
func (nb *NBody) DefaultState() hamilton.State {
	half := nb.N * nb.Dim
	x := make(hamilton.State, 2*half)
	for i := 0; i < nb.N; i++ {
		angle := 2 * math.Pi * float64(i) / float64(nb.N)
		x[i*nb.Dim] = math.Cos(angle)
		x[i*nb.Dim+1] = math.Sin(angle)
		x[half+i*nb.Dim] = -0.5 * math.Sin(angle) * nb.Masses[i]
		x[half+i*nb.Dim+1] = 0.5 * math.Cos(angle) * nb.Masses[i]
	}
	return x
}
