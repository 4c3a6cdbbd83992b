package e030

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteParameters(t *testing.T) {
	tests := []struct {
		name string
		site Site
		want CodeParameters
	}{
		{
			name: "default site",
			site: DefaultSite(),
			want: CodeParameters{Z: 0.45, U: 1.0, S: 1.00, R: 8, TP: 0.4, TL: 2.5, CT: 35},
		},
		{
			name: "zone 2 soft soil irregular",
			site: Site{Zone: 2, Soil: 3, U: 1.5, R0: 7, Ia: 0.75, Ip: 0.9, CT: 45},
			want: CodeParameters{Z: 0.25, U: 1.5, S: 1.40, R: 4.725, TP: 1.0, TL: 1.6, CT: 45},
		},
		{
			name: "zone 1 hard rock",
			site: Site{Zone: 1, Soil: 0, U: 1.0, R0: 6, Ia: 1, Ip: 1, CT: 60},
			want: CodeParameters{Z: 0.10, U: 1.0, S: 0.80, R: 6, TP: 0.3, TL: 3.0, CT: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.site.Parameters()
			require.NoError(t, err)
			assert.Equal(t, tt.want.Z, got.Z)
			assert.Equal(t, tt.want.S, got.S)
			assert.Equal(t, tt.want.TP, got.TP)
			assert.Equal(t, tt.want.TL, got.TL)
			assert.Equal(t, tt.want.CT, got.CT)
			assert.InDelta(t, tt.want.R, got.R, 1e-12)
		})
	}
}

func TestSiteParameters_Invalid(t *testing.T) {
	tests := []struct {
		name string
		site Site
	}{
		{"zone out of range", Site{Zone: 5, Soil: 1, U: 1, R0: 8, Ia: 1, Ip: 1, CT: 35}},
		{"soil out of range", Site{Zone: 4, Soil: 4, U: 1, R0: 8, Ia: 1, Ip: 1, CT: 35}},
		{"zero reduction", Site{Zone: 4, Soil: 1, U: 1, R0: 0, Ia: 1, Ip: 1, CT: 35}},
		{"zero usage", Site{Zone: 4, Soil: 1, U: 0, R0: 8, Ia: 1, Ip: 1, CT: 35}},
		{"zero CT", Site{Zone: 4, Soil: 1, U: 1, R0: 8, Ia: 1, Ip: 1, CT: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.site.Parameters()
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestCodeParametersValidate_CornerOrder(t *testing.T) {
	p := CodeParameters{Z: 0.45, U: 1, S: 1, R: 8, TP: 3.0, TL: 2.5, CT: 35}
	assert.ErrorIs(t, p.Validate(), ErrInvalidParameter)
}

func TestEstimatePeriod(t *testing.T) {
	period, err := EstimatePeriod(15, 35)
	require.NoError(t, err)
	assert.InDelta(t, 15.0/35.0, period, 1e-12)

	_, err = EstimatePeriod(15, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = EstimatePeriod(0, 35)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
