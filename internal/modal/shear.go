package modal

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// StoryShear accumulates floor forces from the top floor down.
// forces is ordered from the lowest floor (index 0) to the roof; the
// returned shear at level i is the sum of the forces at and above i.
func StoryShear(forces []float64) []float64 {
	reversed := make([]float64, len(forces))
	copy(reversed, forces)
	slices.Reverse(reversed)

	shear := make([]float64, len(forces))
	floats.CumSum(shear, reversed)
	slices.Reverse(shear)

	return shear
}
