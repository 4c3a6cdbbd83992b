package modal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewMassMatrix builds the diagonal mass matrix M from the floor masses,
// ordered from the lowest floor up.
func NewMassMatrix(masses []float64) *mat.DiagDense {
	diag := make([]float64, len(masses))
	copy(diag, masses)
	return mat.NewDiagDense(len(diag), diag)
}

// Participation calculates the modal participation factor
//
//	Γ = (Xᵀ·m) / (Xᵀ·M·X)
//
// where m is the floor mass vector, M the diagonal mass matrix and X the mode shape.
func Participation(m mat.Vector, M mat.Matrix, x mat.Vector) (float64, error) {
	if m.Len() != x.Len() {
		return 0, fmt.Errorf("%w: mass vector has %d floors, mode shape has %d", ErrInvalidInput, m.Len(), x.Len())
	}

	generalized := mat.Inner(x, M, x)
	if generalized == 0 {
		return 0, fmt.Errorf("%w: generalized mass XᵀMX is zero", ErrDivisionByZero)
	}

	return mat.Dot(x, m) / generalized, nil
}
