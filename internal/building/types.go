package building

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosismo/internal/e030"
	"github.com/alexiusacademia/gosismo/internal/modal"
)

// Building represents a lumped-mass structure and its modal properties.
// Floors are listed from the lowest level up; every mode shape carries
// one ordinate per floor in the same order.
type Building struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description,omitempty"`

	// Seismic code selection
	Code Code `json:"code" toml:"code"`

	// Story data, lowest floor first
	Floors []Floor `json:"floors" toml:"floors"`

	// Vibration modes from the structural model
	Modes []Mode `json:"modes" toml:"modes"`
}

// Code selects the E.030 coefficients for the site.
// Z, S, TP and TL are looked up from the zone and soil tables unless overridden.
type Code struct {
	Zone int     `json:"zone" toml:"zone"` // 1..4
	Soil int     `json:"soil" toml:"soil"` // 0..3 for S0..S3
	U    float64 `json:"u" toml:"u"`       // Usage factor
	R0   float64 `json:"r0" toml:"r0"`     // Basic reduction coefficient
	Ia   float64 `json:"ia" toml:"ia"`     // Height irregularity
	Ip   float64 `json:"ip" toml:"ip"`     // Plan irregularity
	CT   float64 `json:"ct" toml:"ct"`     // Period estimation coefficient

	// Optional overrides of the tabulated values
	Z  *float64 `json:"z,omitempty" toml:"z,omitempty"`
	S  *float64 `json:"s,omitempty" toml:"s,omitempty"`
	TP *float64 `json:"tp,omitempty" toml:"tp,omitempty"`
	TL *float64 `json:"tl,omitempty" toml:"tl,omitempty"`
}

// Floor holds the lumped mass and story height of one level
type Floor struct {
	Mass   float64 `json:"mass" toml:"mass"`     // tonf·s²/m
	Height float64 `json:"height" toml:"height"` // m
}

// Mode holds the period and shape of one vibration mode
type Mode struct {
	Period float64   `json:"period" toml:"period"` // s
	Shape  []float64 `json:"shape" toml:"shape"`
}

// Site converts the code block into an e030 site selection
func (c Code) Site() e030.Site {
	return e030.Site{
		Zone: c.Zone,
		Soil: c.Soil,
		U:    c.U,
		R0:   c.R0,
		Ia:   c.Ia,
		Ip:   c.Ip,
		CT:   c.CT,
	}
}

// Parameters resolves the code block into code parameters, applying overrides
func (c Code) Parameters() (e030.CodeParameters, error) {
	p, err := c.Site().Parameters()
	if err != nil {
		return e030.CodeParameters{}, err
	}

	if c.Z != nil {
		p.Z = *c.Z
	}
	if c.S != nil {
		p.S = *c.S
	}
	if c.TP != nil {
		p.TP = *c.TP
	}
	if c.TL != nil {
		p.TL = *c.TL
	}

	if err := p.Validate(); err != nil {
		return e030.CodeParameters{}, err
	}
	return p, nil
}

// Masses returns the floor masses, lowest floor first
func (b *Building) Masses() []float64 {
	m := make([]float64, len(b.Floors))
	for i, f := range b.Floors {
		m[i] = f.Mass
	}
	return m
}

// Periods returns the modal periods in mode order
func (b *Building) Periods() []float64 {
	t := make([]float64, len(b.Modes))
	for i, m := range b.Modes {
		t[i] = m.Period
	}
	return t
}

// Shapes returns the mode-shape vectors in mode order
func (b *Building) Shapes() [][]float64 {
	x := make([][]float64, len(b.Modes))
	for i, m := range b.Modes {
		x[i] = m.Shape
	}
	return x
}

// TotalHeight returns the sum of the story heights (m)
func (b *Building) TotalHeight() float64 {
	var h float64
	for _, f := range b.Floors {
		h += f.Height
	}
	return h
}

// EstimatedPeriod returns the approximate fundamental period H/CT
func (b *Building) EstimatedPeriod() (float64, error) {
	return e030.EstimatePeriod(b.TotalHeight(), b.Code.CT)
}

// Validate checks if the building definition is complete
func (b *Building) Validate() error {
	if len(b.Floors) == 0 {
		return invalidf("building must have at least one floor")
	}
	if len(b.Modes) == 0 {
		return invalidf("building must have at least one mode")
	}

	var total float64
	for i, f := range b.Floors {
		if f.Mass < 0 || math.IsNaN(f.Mass) {
			return invalidf("floor %d mass must not be negative", i+1)
		}
		if f.Height <= 0 || math.IsNaN(f.Height) {
			return invalidf("floor %d height must be positive", i+1)
		}
		total += f.Mass
	}
	if total == 0 {
		return &ValidationError{msg: "all floor masses are zero; enter the mass of every floor", err: modal.ErrDegenerateMass}
	}

	for j, m := range b.Modes {
		if m.Period <= 0 || math.IsNaN(m.Period) {
			return invalidf("mode %d period must be positive", j+1)
		}
		if len(m.Shape) != len(b.Floors) {
			return invalidf("mode %d shape has %d ordinates, expected %d (one per floor)", j+1, len(m.Shape), len(b.Floors))
		}
	}

	if _, err := b.Code.Parameters(); err != nil {
		return &ValidationError{msg: err.Error(), err: modal.ErrInvalidInput}
	}
	return nil
}

// Analyze validates the building and runs the modal analysis
func (b *Building) Analyze() (*modal.Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	p, err := b.Code.Parameters()
	if err != nil {
		return nil, err
	}

	return modal.Analyze(b.Masses(), b.Periods(), b.Shapes(), p)
}

// ValidationError represents a building definition error
type ValidationError struct {
	msg string
	err error
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...), err: modal.ErrInvalidInput}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap returns the pipeline error class (modal.ErrInvalidInput or modal.ErrDegenerateMass).
func (e *ValidationError) Unwrap() error {
	return e.err
}
