package e030

import (
	"fmt"
	"math"
)

// Ordinates holds the spectral quantities of a single mode
type Ordinates struct {
	Period float64 // T (s)
	Cc     float64 // Spectral-shape coefficient
	Cs     float64 // Seismic coefficient ZUCcS/R
	Sa     float64 // Spectral acceleration (m/s²)
	Omega  float64 // Angular frequency (rad/s)
	Sd     float64 // Spectral displacement (cm)
}

// Cc calculates the spectral-shape coefficient (Article 14)
//
//	T <= TP       Cc = 2.5
//	TP < T <= TL  Cc = 2.5·TP/T
//	T > TL        Cc = 2.5·TP/TL
func Cc(t, tp, tl float64) float64 {
	if t <= tp {
		return CcPlateau
	}
	if t > tl {
		return CcPlateau * tp / tl
	}
	return CcPlateau * tp / t
}

// SeismicCoefficient calculates Cs = Z·U·Cc·S/R
func SeismicCoefficient(z, u, cc, s, r float64) (float64, error) {
	if r == 0 {
		return 0, fmt.Errorf("%w: reduction factor R is zero", ErrDivisionByZero)
	}
	return (z * u * cc * s) / r, nil
}

// SpectralAcceleration converts the seismic coefficient into an acceleration (m/s²)
func SpectralAcceleration(cs float64) float64 {
	return cs * G
}

// AngularFrequency calculates ω = 2π/T
func AngularFrequency(t float64) (float64, error) {
	if t <= 0 {
		return 0, fmt.Errorf("%w: period must be positive, got %g", ErrDivisionByZero, t)
	}
	return 2 * math.Pi / t, nil
}

// SpectralDisplacement calculates Sd = Sa·100/ω² in centimeters
func SpectralDisplacement(sa, omega float64) (float64, error) {
	if omega == 0 {
		return 0, fmt.Errorf("%w: angular frequency is zero", ErrDivisionByZero)
	}
	return sa * 100 / (omega * omega), nil
}

// Spectrum evaluates the design spectrum at period t
func (p CodeParameters) Spectrum(t float64) (Ordinates, error) {
	if math.IsNaN(t) || t <= 0 {
		return Ordinates{}, fmt.Errorf("%w: period must be positive, got %g", ErrInvalidParameter, t)
	}

	o := Ordinates{Period: t}
	o.Cc = Cc(t, p.TP, p.TL)

	var err error
	if o.Cs, err = SeismicCoefficient(p.Z, p.U, o.Cc, p.S, p.R); err != nil {
		return Ordinates{}, err
	}
	o.Sa = SpectralAcceleration(o.Cs)

	if o.Omega, err = AngularFrequency(t); err != nil {
		return Ordinates{}, err
	}
	if o.Sd, err = SpectralDisplacement(o.Sa, o.Omega); err != nil {
		return Ordinates{}, err
	}

	return o, nil
}

// Curve samples the spectrum from step to tMax (inclusive) in increments of step
func (p CodeParameters) Curve(tMax, step float64) ([]Ordinates, error) {
	if step <= 0 || tMax < step {
		return nil, fmt.Errorf("%w: need 0 < step <= tmax, got step=%g tmax=%g", ErrInvalidParameter, step, tMax)
	}

	n := int(math.Floor(tMax/step + 1e-9))
	curve := make([]Ordinates, 0, n)
	for i := 1; i <= n; i++ {
		o, err := p.Spectrum(float64(i) * step)
		if err != nil {
			return nil, err
		}
		curve = append(curve, o)
	}
	return curve, nil
}
