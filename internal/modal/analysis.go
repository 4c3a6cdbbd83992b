package modal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosismo/internal/e030"
)

// ModeResult holds the response of a single vibration mode
type ModeResult struct {
	Mode int // 1-based mode number
	e030.Ordinates

	Gamma float64 // Modal participation factor

	// Per-floor vectors, lowest floor first
	Displacement []float64 // Û = Sa·Γ·X
	Force        []float64 // F = M·Û
	Shear        []float64 // Story shear V
}

// Result holds the complete outcome of one response-spectrum analysis
type Result struct {
	Params CodeParameters

	Modes []ModeResult

	// Floors × modes matrices, row 0 = lowest floor, column j = mode j+1
	Displacements *mat.Dense
	Forces        *mat.Dense
	Shears        *mat.Dense

	// Combined design values per floor
	Force Combined
	Shear Combined
}

// CodeParameters is the set of E.030 coefficients used by Analyze
type CodeParameters = e030.CodeParameters

// NumFloors returns the number of floors analysed
func (r *Result) NumFloors() int {
	n, _ := r.Forces.Dims()
	return n
}

// NumModes returns the number of modes combined
func (r *Result) NumModes() int {
	return len(r.Modes)
}

// BaseShear returns the design shear at the lowest floor
func (r *Result) BaseShear() float64 {
	if len(r.Shear.Design) == 0 {
		return 0
	}
	return r.Shear.Design[0]
}

// Analyze runs the response-spectrum modal analysis.
//
// masses holds one lumped mass per floor (lowest first), periods one period
// per mode, and shapes one mode-shape vector per mode with one entry per floor.
// Inputs are validated before any computation; on error no result is returned.
func Analyze(masses, periods []float64, shapes [][]float64, p CodeParameters) (*Result, error) {
	if err := Validate(masses, periods, shapes, p); err != nil {
		return nil, err
	}

	n, k := len(masses), len(periods)
	M := NewMassMatrix(masses)
	m := mat.NewVecDense(n, append([]float64(nil), masses...))

	result := &Result{
		Params:        p,
		Modes:         make([]ModeResult, k),
		Displacements: mat.NewDense(n, k, nil),
		Forces:        mat.NewDense(n, k, nil),
		Shears:        mat.NewDense(n, k, nil),
	}

	for j := 0; j < k; j++ {
		mr, err := analyzeMode(j+1, periods[j], shapes[j], m, M, p)
		if err != nil {
			return nil, err
		}
		result.Modes[j] = mr
		result.Displacements.SetCol(j, mr.Displacement)
		result.Forces.SetCol(j, mr.Force)
		result.Shears.SetCol(j, mr.Shear)
	}

	result.Force = CombineAndScale(result.Forces, p.R)
	result.Shear = CombineAndScale(result.Shears, p.R)

	return result, nil
}

func analyzeMode(mode int, period float64, shape []float64, m mat.Vector, M mat.Matrix, p CodeParameters) (ModeResult, error) {
	ord, err := p.Spectrum(period)
	if err != nil {
		return ModeResult{}, fmt.Errorf("mode %d: %w", mode, err)
	}

	x := mat.NewVecDense(len(shape), append([]float64(nil), shape...))
	gamma, err := Participation(m, M, x)
	if err != nil {
		return ModeResult{}, fmt.Errorf("mode %d: %w", mode, err)
	}

	u, f := Response(ord.Sa, gamma, x, M)
	force := f.RawVector().Data

	return ModeResult{
		Mode:         mode,
		Ordinates:    ord,
		Gamma:        gamma,
		Displacement: u.RawVector().Data,
		Force:        force,
		Shear:        StoryShear(force),
	}, nil
}

// Validate checks the dimensions and ranges of the analysis inputs
func Validate(masses, periods []float64, shapes [][]float64, p CodeParameters) error {
	n := len(masses)
	if n == 0 {
		return fmt.Errorf("%w: at least one floor is required", ErrInvalidInput)
	}
	if len(periods) == 0 {
		return fmt.Errorf("%w: at least one mode is required", ErrInvalidInput)
	}
	if len(periods) != len(shapes) {
		return fmt.Errorf("%w: %d periods but %d mode shapes", ErrInvalidInput, len(periods), len(shapes))
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var total float64
	for i, mass := range masses {
		if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
			return fmt.Errorf("%w: floor %d mass must be non-negative, got %g", ErrInvalidInput, i+1, mass)
		}
		total += mass
	}

	for j, t := range periods {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return fmt.Errorf("%w: mode %d period must be positive, got %g", ErrInvalidInput, j+1, t)
		}
	}

	for j, shape := range shapes {
		if len(shape) != n {
			return fmt.Errorf("%w: mode %d shape has %d entries, expected %d floors", ErrInvalidInput, j+1, len(shape), n)
		}
		for i, v := range shape {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: mode %d shape entry at floor %d is not finite", ErrInvalidInput, j+1, i+1)
			}
		}
	}

	if total == 0 {
		return ErrDegenerateMass
	}

	return nil
}
