package canonical

import "github.com/san-kum/hamlab/internal/hamilton"

// F2 is a type-2 generating function F₂(q, P) of old coordinates and
// new momenta. It induces the canonical transform
//
//	p = ∂F₂/∂q   Q = ∂F₂/∂P
type F2 func(q, bigP []float64) float64

// IdentityF2 is F₂ = q·P, which generates the identity transform
// Q = q, p = P.
func IdentityF2(q, bigP []float64) float64 {
	sum := 0.0
	for i := range q {
		sum += q[i] * bigP[i]
	}
	return sum
}

// Apply evaluates the transform generated by f at (q, P), returning the
// new coordinates Q and the old momenta p consistent with the pair.
// Partials are taken by centered finite differences with step eps
// (<= 0 selects the default).
func (f F2) Apply(q, bigP []float64, eps float64) (bigQ, p []float64) {
	qc := append([]float64(nil), q...)
	pc := append([]float64(nil), bigP...)

	p = hamilton.Gradient(func(qq []float64) float64 { return f(qq, pc) }, qc, eps)
	bigQ = hamilton.Gradient(func(pp []float64) float64 { return f(qc, pp) }, pc, eps)
	return bigQ, p
}
