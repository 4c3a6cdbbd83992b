package modal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosismo/internal/e030"
)

// Combined holds the per-floor modal combination of one quantity (force or shear)
type Combined struct {
	Abs      []float64 // Σ|x| across modes
	SRSS     []float64 // √Σx² across modes
	Weighted []float64 // 0.25·Abs + 0.75·SRSS
	Design   []float64 // Weighted·0.75·R
}

// Combine reduces a floors×modes matrix to its per-floor absolute sum and
// square root of the sum of squares.
func Combine(q mat.Matrix) (abs, srss []float64) {
	rows, cols := q.Dims()
	abs = make([]float64, rows)
	srss = make([]float64, rows)

	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, q)
		abs[i] = floats.Norm(row, 1)
		srss[i] = floats.Norm(row, 2)
	}
	return abs, srss
}

// Scale applies the code weighting and reduction-factor rescaling to
// combined modal values.
func Scale(abs, srss []float64, r float64) (weighted, design []float64) {
	weighted = make([]float64, len(abs))
	design = make([]float64, len(abs))
	for i := range abs {
		weighted[i] = e030.AbsWeight*abs[i] + e030.SRSSWeight*srss[i]
		design[i] = weighted[i] * e030.DesignFactor * r
	}
	return weighted, design
}

// CombineAndScale runs Combine followed by Scale
func CombineAndScale(q mat.Matrix, r float64) Combined {
	var c Combined
	c.Abs, c.SRSS = Combine(q)
	c.Weighted, c.Design = Scale(c.Abs, c.SRSS, r)
	return c
}
