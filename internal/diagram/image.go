package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportForceShearDiagram exports the lateral force and story shear bars per level to an image file
func ExportForceShearDiagram(data ForceShearData, filename string) error {
	n := data.Levels()
	if n == 0 {
		return fmt.Errorf("no levels to draw")
	}
	if len(data.Shears) != n {
		return fmt.Errorf("forces and shears differ in length: %d vs %d", n, len(data.Shears))
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Seismic Forces and Story Shears"
	}
	p.X.Label.Text = fmt.Sprintf("Force (%s)", data.Unit)
	p.Y.Label.Text = "Level"

	barWidth := vg.Points(14)
	if n > 10 {
		barWidth = vg.Points(8)
	}

	forces, err := plotter.NewBarChart(plotter.Values(data.Forces), barWidth)
	if err != nil {
		return err
	}
	forces.Horizontal = true
	forces.Offset = -barWidth / 2
	forces.Color = color.RGBA{R: 220, G: 50, B: 47, A: 255}
	forces.LineStyle.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	p.Add(forces)

	shears, err := plotter.NewBarChart(plotter.Values(data.Shears), barWidth)
	if err != nil {
		return err
	}
	shears.Horizontal = true
	shears.Offset = barWidth / 2
	shears.Color = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	shears.LineStyle.Color = color.Black
	p.Add(shears)

	p.Legend.Add("Design force", forces)
	p.Legend.Add("Design shear", shears)
	p.Legend.Top = true

	levels := make([]string, n)
	for i := range levels {
		levels[i] = fmt.Sprintf("Level %d", i+1)
	}
	p.NominalY(levels...)
	p.X.Min = 0

	// Value labels at the end of each shear bar
	labelPts := make([]plotter.XY, n)
	labelText := make([]string, n)
	for i, v := range data.Shears {
		labelPts[i] = plotter.XY{X: v, Y: float64(i)}
		labelText[i] = fmt.Sprintf(" %.1f", v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labelText})
	if err != nil {
		return err
	}
	p.Add(labels)

	width := 8 * vg.Inch
	height := vg.Length(2+0.5*float64(n)) * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportSpectrumPlot exports a spectrum ordinate against period to an image file
func ExportSpectrumPlot(periods, values []float64, yLabel, filename string) error {
	if len(periods) != len(values) || len(periods) == 0 {
		return fmt.Errorf("spectrum needs matching, non-empty period and value series")
	}

	p := plot.New()
	p.Title.Text = "Design Spectrum"
	p.X.Label.Text = "Period T (s)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(periods))
	for i := range periods {
		pts[i] = plotter.XY{X: periods[i], Y: values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line, plotter.NewGrid())
	p.Y.Min = 0

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
