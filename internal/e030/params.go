package e030

import (
	"errors"
	"fmt"
	"math"
)

// E.030 Seismic Design Constants

const (
	// Gravitational acceleration (m/s²)
	G = 9.81

	// Spectral-shape plateau value (Article 14)
	CcPlateau = 2.5

	// Modal combination weights (Article 29.3)
	AbsWeight  = 0.25 // weight of the absolute-sum bound
	SRSSWeight = 0.75 // weight of the SRSS estimate

	// Final design rescaling applied together with R
	DesignFactor = 0.75
)

var (
	// ErrInvalidParameter is returned when a code coefficient is out of range.
	ErrInvalidParameter = errors.New("invalid code parameter")

	// ErrDivisionByZero is returned when a period or reduction factor would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Zone factors Z by seismic zone (Table 1)
var ZoneFactors = map[int]float64{
	4: 0.45,
	3: 0.35,
	2: 0.25,
	1: 0.10,
}

// Soil factors S by zone and soil profile S0..S3 (Table 3)
var SoilFactors = map[int][4]float64{
	4: {0.80, 1.00, 1.05, 1.10},
	3: {0.80, 1.00, 1.15, 1.20},
	2: {0.80, 1.00, 1.20, 1.40},
	1: {0.80, 1.00, 1.60, 2.00},
}

// Corner periods TP and TL by soil profile S0..S3 (Table 4)
var (
	PeriodTP = [4]float64{0.3, 0.4, 0.6, 1.0}
	PeriodTL = [4]float64{3.0, 2.5, 2.0, 1.6}
)

// SoilNames are the short descriptions of each soil profile.
var SoilNames = [4]string{
	"S0 - Hard rock",
	"S1 - Rock or very stiff soil",
	"S2 - Intermediate soil",
	"S3 - Soft soil",
}

// UsageFactors lists the usage factor U choices offered for building categories.
var UsageFactors = []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5}

// PeriodCoefficients lists the admissible CT values for the fundamental period estimate.
var PeriodCoefficients = []float64{35, 45, 60}

// CodeParameters holds the immutable set of coefficients for one analysis
type CodeParameters struct {
	Z  float64 // Zone factor
	U  float64 // Usage factor
	S  float64 // Soil factor
	R  float64 // Effective reduction factor R0·Ia·Ip
	TP float64 // Platform corner period (s)
	TL float64 // Long-period corner (s)
	CT float64 // Period estimation coefficient
}

// Site selects the code coefficients from the seismic zone and soil profile tables
type Site struct {
	Zone int     // 1..4
	Soil int     // 0..3 (S0..S3)
	U    float64 // Usage factor
	R0   float64 // Basic reduction coefficient
	Ia   float64 // Height irregularity factor
	Ip   float64 // Plan irregularity factor
	CT   float64 // Period estimation coefficient
}

// DefaultSite returns the values a new project starts from: zone 4, soil S1,
// common building, R0 = 8, regular structure, CT = 35.
func DefaultSite() Site {
	return Site{Zone: 4, Soil: 1, U: 1.0, R0: 8, Ia: 1.0, Ip: 1.0, CT: 35}
}

// Parameters resolves the site selection into code parameters
func (s Site) Parameters() (CodeParameters, error) {
	z, ok := ZoneFactors[s.Zone]
	if !ok {
		return CodeParameters{}, fmt.Errorf("%w: seismic zone must be 1-4, got %d", ErrInvalidParameter, s.Zone)
	}
	if s.Soil < 0 || s.Soil > 3 {
		return CodeParameters{}, fmt.Errorf("%w: soil profile must be 0-3 (S0-S3), got %d", ErrInvalidParameter, s.Soil)
	}

	p := CodeParameters{
		Z:  z,
		U:  s.U,
		S:  SoilFactors[s.Zone][s.Soil],
		R:  ReductionFactor(s.R0, s.Ia, s.Ip),
		TP: PeriodTP[s.Soil],
		TL: PeriodTL[s.Soil],
		CT: s.CT,
	}
	if err := p.Validate(); err != nil {
		return CodeParameters{}, err
	}
	return p, nil
}

// ReductionFactor calculates the effective reduction R = R0·Ia·Ip
func ReductionFactor(r0, ia, ip float64) float64 {
	return r0 * ia * ip
}

// Validate checks that every coefficient is a positive finite number
// and that the corner periods are ordered.
func (p CodeParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Z", p.Z},
		{"U", p.U},
		{"S", p.S},
		{"R", p.R},
		{"TP", p.TP},
		{"TL", p.TL},
		{"CT", p.CT},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParameter, f.name, f.value)
		}
	}
	if p.TP > p.TL {
		return fmt.Errorf("%w: TP=%g exceeds TL=%g", ErrInvalidParameter, p.TP, p.TL)
	}
	return nil
}

// EstimatePeriod calculates the approximate fundamental period T = H/CT
// for a building of total height H (m).
func EstimatePeriod(height, ct float64) (float64, error) {
	if ct <= 0 {
		return 0, fmt.Errorf("%w: CT=%g", ErrDivisionByZero, ct)
	}
	if height <= 0 {
		return 0, fmt.Errorf("%w: building height must be positive, got %g", ErrInvalidParameter, height)
	}
	return height / ct, nil
}
