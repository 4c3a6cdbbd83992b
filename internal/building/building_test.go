package building

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosismo/internal/modal"
)

const singleFloorJSON = `{
  "name": "single floor",
  "code": {"zone": 4, "soil": 1, "u": 1.0, "r0": 8, "ia": 1, "ip": 1, "ct": 35},
  "floors": [{"mass": 100, "height": 3}],
  "modes": [{"period": 0.5, "shape": [1]}]
}`

const threeStoryTOML = `
name = "three story"

[code]
zone = 2
soil = 2
u = 1.3
r0 = 7
tp = 0.6

[[floors]]
mass = 2.0
height = 3.5

[[floors]]
mass = 2.0
height = 3.0

[[floors]]
mass = 1.5
height = 3.0

[[modes]]
period = 0.45
shape = [0.35, 0.70, 1.00]

[[modes]]
period = 0.15
shape = [-0.80, -0.45, 1.00]
`

func TestParseJSON(t *testing.T) {
	b, err := Parse([]byte(singleFloorJSON), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	assert.Equal(t, "single floor", b.Name)
	assert.Equal(t, []float64{100}, b.Masses())
	assert.Equal(t, []float64{0.5}, b.Periods())
	assert.Equal(t, [][]float64{{1}}, b.Shapes())
}

func TestParseTOML_DefaultsAndOverrides(t *testing.T) {
	b, err := Parse([]byte(threeStoryTOML), FormatTOML)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	p, err := b.Code.Parameters()
	require.NoError(t, err)

	assert.Equal(t, 0.25, p.Z)
	assert.Equal(t, 1.20, p.S)
	assert.Equal(t, 0.6, p.TP)
	assert.Equal(t, 2.0, p.TL)
	// Ia, Ip and CT fall back to the defaults
	assert.Equal(t, 7.0, p.R)
	assert.Equal(t, 35.0, p.CT)

	assert.InDelta(t, 9.5, b.TotalHeight(), 1e-12)
	period, err := b.EstimatedPeriod()
	require.NoError(t, err)
	assert.InDelta(t, 9.5/35, period, 1e-12)
}

func TestAnalyze(t *testing.T) {
	b, err := Parse([]byte(singleFloorJSON), FormatJSON)
	require.NoError(t, err)

	result, err := b.Analyze()
	require.NoError(t, err)
	assert.InDelta(t, 662.175, result.Force.Design[0], 1e-9)
}

func TestValidate(t *testing.T) {
	base := func() *Building {
		b, err := Parse([]byte(singleFloorJSON), FormatJSON)
		require.NoError(t, err)
		return b
	}

	tests := []struct {
		name   string
		modify func(b *Building)
		target error
	}{
		{"no floors", func(b *Building) { b.Floors = nil }, modal.ErrInvalidInput},
		{"no modes", func(b *Building) { b.Modes = nil }, modal.ErrInvalidInput},
		{"negative mass", func(b *Building) { b.Floors[0].Mass = -1 }, modal.ErrInvalidInput},
		{"zero height", func(b *Building) { b.Floors[0].Height = 0 }, modal.ErrInvalidInput},
		{"zero mass", func(b *Building) { b.Floors[0].Mass = 0 }, modal.ErrDegenerateMass},
		{"zero period", func(b *Building) { b.Modes[0].Period = 0 }, modal.ErrInvalidInput},
		{"short shape", func(b *Building) {
			b.Floors = append(b.Floors, Floor{Mass: 50, Height: 3})
		}, modal.ErrInvalidInput},
		{"bad zone", func(b *Building) { b.Code.Zone = 7 }, modal.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.modify(b)

			err := b.Validate()
			require.Error(t, err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.ErrorIs(t, err, tt.target)

			result, err := b.Analyze()
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"building.json", "building.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", name)
			want := Template(4, 2)
			require.NoError(t, want.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want.Floors, got.Floors)
			assert.Equal(t, want.Modes, got.Modes)
			assert.Equal(t, want.Code.Zone, got.Code.Zone)
			assert.Nil(t, got.Code.Z)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	b := Template(5, 3)
	require.NoError(t, b.Validate())

	assert.Len(t, b.Floors, 5)
	assert.Len(t, b.Modes, 3)
	for j := 1; j < len(b.Modes); j++ {
		assert.Less(t, b.Modes[j].Period, b.Modes[j-1].Period)
	}
	// First mode increases monotonically with height
	for i := 1; i < 5; i++ {
		assert.Greater(t, b.Modes[0].Shape[i], b.Modes[0].Shape[i-1])
	}

	_, err := b.Analyze()
	assert.NoError(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("a/b.toml"))
	assert.Equal(t, FormatTOML, FormatFromPath("B.TOML"))
	assert.Equal(t, FormatJSON, FormatFromPath("b.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("b"))
}
