package modal

import (
	"gonum.org/v1/gonum/mat"
)

// Displacement calculates the modal displacement vector Û = Sa·Γ·X
func Displacement(sa, gamma float64, x mat.Vector) *mat.VecDense {
	u := mat.NewVecDense(x.Len(), nil)
	u.ScaleVec(sa*gamma, x)
	return u
}

// Forces calculates the pseudo-static modal force vector F = M·Û
func Forces(M mat.Matrix, u mat.Vector) *mat.VecDense {
	f := mat.NewVecDense(u.Len(), nil)
	f.MulVec(M, u)
	return f
}

// Response calculates both the modal displacement and force vectors of one mode
func Response(sa, gamma float64, x mat.Vector, M mat.Matrix) (u, f *mat.VecDense) {
	u = Displacement(sa, gamma, x)
	f = Forces(M, u)
	return u, f
}
