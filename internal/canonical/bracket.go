package canonical

import "github.com/san-kum/hamlab/internal/hamilton"

// PoissonBracket evaluates {f, g} = Σᵢ (∂f/∂qᵢ·∂g/∂pᵢ - ∂f/∂pᵢ·∂g/∂qᵢ)
// from the supplied gradients. For f = qᵢ, g = pᵢ the result is exactly
// 1; for two coordinates or two momenta it is exactly 0.
func PoissonBracket(fq, fp, gq, gp []float64) float64 {
	sum := 0.0
	for i := range fq {
		sum += fq[i]*gp[i] - fp[i]*gq[i]
	}
	return sum
}

// PoissonBracketFunc evaluates {f, g} at (q, p) for scalar functions,
// with gradients taken by centered finite differences. Exact canonical
// identities should use PoissonBracket with analytic gradients; this
// form is for arbitrary observables.
func PoissonBracketFunc(f, g func(q, p []float64) float64, q, p []float64, eps float64) float64 {
	qc := append([]float64(nil), q...)
	pc := append([]float64(nil), p...)

	fqGrad := hamilton.Gradient(func(qq []float64) float64 { return f(qq, pc) }, qc, eps)
	fpGrad := hamilton.Gradient(func(pp []float64) float64 { return f(qc, pp) }, pc, eps)
	gqGrad := hamilton.Gradient(func(qq []float64) float64 { return g(qq, pc) }, qc, eps)
	gpGrad := hamilton.Gradient(func(pp []float64) float64 { return g(qc, pp) }, pc, eps)

	return PoissonBracket(fqGrad, fpGrad, gqGrad, gpGrad)
}
