package hamilton

// DefaultEpsilon is the finite-difference step for numerical gradients.
// Larger values lose accuracy to truncation error, smaller values to
// floating-point cancellation; 1e-7 sits near the sweet spot for
// double precision and centered differences.
const DefaultEpsilon = 1e-7

// Gradient estimates ∇f at x by centered differences,
// (f(x+ε) - f(x-ε)) / 2ε per coordinate. x is restored before return.
func Gradient(f func([]float64) float64, x []float64, eps float64) []float64 {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	grad := make([]float64, len(x))
	for i := range x {
		orig := x[i]
		x[i] = orig + eps
		fPlus := f(x)
		x[i] = orig - eps
		fMinus := f(x)
		x[i] = orig
		grad[i] = (fPlus - fMinus) / (2 * eps)
	}
	return grad
}

// FuncSystem adapts an arbitrary scalar Hamiltonian H(q, p) into a
// system the integrators can evolve, using finite-difference gradients.
// Prefer a closed-form Separable model when one exists; the numerical
// gradient costs 4n Hamiltonian evaluations per step and carries
// O(ε²) truncation error.
type FuncSystem struct {
	H    func(q, p []float64) float64
	NDof int
	Eps  float64
}

func NewFuncSystem(ndof int, h func(q, p []float64) float64) *FuncSystem {
	return &FuncSystem{H: h, NDof: ndof, Eps: DefaultEpsilon}
}

func (f *FuncSystem) StateDim() int { return 2 * f.NDof }

func (f *FuncSystem) Energy(x State) float64 {
	return f.H(x[:f.NDof], x[f.NDof:])
}

// Derive evaluates Hamilton's equations dq/dt = ∂H/∂p, dp/dt = -∂H/∂q.
func (f *FuncSystem) Derive(x State, t float64) State {
	q := x[:f.NDof].Clone()
	p := x[f.NDof:].Clone()

	dHdp := Gradient(func(pp []float64) float64 { return f.H(q, pp) }, p, f.Eps)
	dHdq := Gradient(func(qq []float64) float64 { return f.H(qq, p) }, q, f.Eps)

	dx := make(State, 2*f.NDof)
	for i := 0; i < f.NDof; i++ {
		dx[i] = dHdp[i]
		dx[f.NDof+i] = -dHdq[i]
	}
	return dx
}

// Velocities returns ∂H/∂p evaluated at q=0. For a separable H the
// kinetic term does not depend on q, so this is exact; for a
// non-separable H use the generic Derive path instead.
func (f *FuncSystem) Velocities(p State) State {
	q := make([]float64, f.NDof)
	pc := p.Clone()
	return Gradient(func(pp []float64) float64 { return f.H(q, pp) }, pc, f.Eps)
}

// Forces returns -∂H/∂q evaluated at p=0.
func (f *FuncSystem) Forces(q State) State {
	p := make([]float64, f.NDof)
	qc := q.Clone()
	grad := Gradient(func(qq []float64) float64 { return f.H(qq, p) }, qc, f.Eps)
	for i := range grad {
		grad[i] = -grad[i]
	}
	return State(grad)
}
