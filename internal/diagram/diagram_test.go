package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() ForceShearData {
	return ForceShearData{
		Title:  "Test building",
		Forces: []float64{40, 80, 120},
		Shears: []float64{240, 200, 120},
		Unit:   "tonf",
	}
}

func TestDrawASCIIForceShearDiagram(t *testing.T) {
	out := DrawASCIIForceShearDiagram(sampleData())

	lines := strings.Split(out, "\n")
	var levelLines []string
	for _, l := range lines {
		if strings.Contains(l, "● Level") {
			levelLines = append(levelLines, l)
		}
	}
	require.Len(t, levelLines, 3)

	// Roof first
	assert.Contains(t, levelLines[0], "Level 3")
	assert.Contains(t, levelLines[2], "Level 1")
	assert.Contains(t, levelLines[2], "240.0 tonf")
	// Largest shear gets the full bar
	assert.Equal(t, 30, strings.Count(levelLines[2], "█"))
	assert.Equal(t, 15, strings.Count(levelLines[0], "█"))
}

func TestDrawASCIIForceShearDiagram_AllZero(t *testing.T) {
	out := DrawASCIIForceShearDiagram(ForceShearData{Forces: []float64{0}, Shears: []float64{0}, Unit: "kN"})
	assert.Contains(t, out, "Level 1")
	assert.NotContains(t, out, "█")
}

func TestPlotShearProfile(t *testing.T) {
	out := PlotShearProfile(sampleData())
	assert.Contains(t, out, "Design story shear (tonf)")

	single := PlotShearProfile(ForceShearData{Forces: []float64{10}, Shears: []float64{10}, Unit: "tonf"})
	assert.NotEmpty(t, single)

	assert.Empty(t, PlotShearProfile(ForceShearData{}))
}

func TestPlotSpectrum(t *testing.T) {
	out := PlotSpectrum([]float64{2.5, 2.5, 2.0, 1.5, 1.0}, "Cc")
	assert.Contains(t, out, "Cc")
	assert.Empty(t, PlotSpectrum(nil, "Cc"))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("BASE SHEAR", []string{"V = 662.18 tonf", "R = 8.00"})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)))
	}
	assert.Contains(t, out, "V = 662.18 tonf")
}

func TestExportForceShearDiagram(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"diagram.png", "diagram.svg", "out/diagram.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportForceShearDiagram(sampleData(), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	// Unknown extensions fall back to png
	require.NoError(t, ExportForceShearDiagram(sampleData(), filepath.Join(dir, "diagram")))
	_, err := os.Stat(filepath.Join(dir, "diagram.png"))
	assert.NoError(t, err)
}

func TestExportForceShearDiagram_Invalid(t *testing.T) {
	dir := t.TempDir()

	assert.Error(t, ExportForceShearDiagram(ForceShearData{}, filepath.Join(dir, "a.png")))
	assert.Error(t, ExportForceShearDiagram(ForceShearData{Forces: []float64{1, 2}, Shears: []float64{3}}, filepath.Join(dir, "b.png")))
}

func TestExportSpectrumPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.png")
	require.NoError(t, ExportSpectrumPlot([]float64{0.1, 0.5, 1.0}, []float64{2.5, 2.0, 1.0}, "Cc", path))

	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, ExportSpectrumPlot([]float64{0.1}, nil, "Cc", path))
}
