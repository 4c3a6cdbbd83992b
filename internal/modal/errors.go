package modal

import (
	"errors"

	"github.com/alexiusacademia/gosismo/internal/e030"
)

var (
	// ErrInvalidInput is returned for mismatched dimensions, non-positive periods,
	// negative masses and out-of-range code parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateMass is returned when every floor mass is zero.
	ErrDegenerateMass = errors.New("degenerate mass distribution: all floor masses are zero")

	// ErrDivisionByZero is returned when a mode has zero generalized mass.
	ErrDivisionByZero = e030.ErrDivisionByZero
)
