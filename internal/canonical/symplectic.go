package canonical

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the entrywise tolerance for the symplecticity check.
const DefaultTol = 1e-10

// SymplecticForm builds the canonical 2n×2n matrix
//
//	J = [ 0   I ]
//	    [ -I  0 ]
func SymplecticForm(n int) *mat.Dense {
	j := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		j.Set(i, n+i, 1)
		j.Set(n+i, i, -1)
	}
	return j
}

// IsCanonical reports whether M preserves the symplectic form, i.e.
// whether every entry of MᵀJM matches J within tol (tol <= 0 selects
// DefaultTol). M must be square with even dimension.
func IsCanonical(m mat.Matrix, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTol
	}
	r, c := m.Dims()
	if r != c || r%2 != 0 || r == 0 {
		return false
	}
	n := r / 2

	j := SymplecticForm(n)

	var jm, mtjm mat.Dense
	jm.Mul(j, m)
	mtjm.Mul(m.T(), &jm)

	for i := 0; i < r; i++ {
		for k := 0; k < r; k++ {
			if math.Abs(mtjm.At(i, k)-j.At(i, k)) > tol {
				return false
			}
		}
	}
	return true
}

// RotationTransform is the canonical rotation by angle alpha for one
// degree of freedom: Q = q·cos α + p·sin α, P = p·cos α - q·sin α.
// It is symplectic for every alpha.
func RotationTransform(alpha float64) *mat.Dense {
	c, s := math.Cos(alpha), math.Sin(alpha)
	return mat.NewDense(2, 2, []float64{c, s, -s, c})
}
