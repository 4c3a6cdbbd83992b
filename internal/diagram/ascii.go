package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ForceShearData holds the per-level design values for drawing
type ForceShearData struct {
	Title string

	// Lowest level first
	Forces []float64 // Lateral design force at each level
	Shears []float64 // Design story shear at each level

	Unit string // Force unit label, e.g. "tonf"
}

// Levels returns the number of levels in the diagram
func (d ForceShearData) Levels() int {
	return len(d.Forces)
}

// DrawASCIIForceShearDiagram creates an ASCII representation of the lateral
// forces applied at each level next to the resulting story shear bars,
// roof at the top.
func DrawASCIIForceShearDiagram(data ForceShearData) string {
	var sb strings.Builder

	arrowChars := 20
	barChars := 30

	maxForce := maxAbs(data.Forces)
	maxShear := maxAbs(data.Shears)

	sb.WriteString("\n")
	sb.WriteString("  LATERAL FORCES                                STORY SHEAR\n")
	sb.WriteString("  ──────────────                                ───────────\n")

	for i := data.Levels() - 1; i >= 0; i-- {
		arrow := scaled(data.Forces[i], maxForce, arrowChars)
		bar := scaled(data.Shears[i], maxShear, barChars)

		sb.WriteString(fmt.Sprintf("  %10.1f %s ", data.Forces[i], data.Unit))
		sb.WriteString(strings.Repeat(" ", arrowChars-arrow))
		sb.WriteString(strings.Repeat("─", max(arrow-1, 0)))
		if arrow > 0 {
			sb.WriteString("►")
		}
		sb.WriteString(fmt.Sprintf(" ● Level %-3d", i+1))

		sb.WriteString(" │")
		sb.WriteString(strings.Repeat("█", bar))
		sb.WriteString(fmt.Sprintf(" %.1f %s\n", data.Shears[i], data.Unit))

		// Spring between levels
		sb.WriteString(strings.Repeat(" ", 14+len(data.Unit)+arrowChars))
		if i > 0 {
			sb.WriteString("   ╪\n")
		} else {
			sb.WriteString(" ▁▁▁▁▁\n")
		}
	}

	return sb.String()
}

// PlotSpectrum renders a spectrum ordinate sampled at equal period steps
func PlotSpectrum(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

// PlotShearProfile renders the design story shear from the base (left) to the roof (right)
func PlotShearProfile(data ForceShearData) string {
	if data.Levels() == 0 {
		return ""
	}
	series := data.Shears
	if len(series) == 1 {
		// asciigraph needs two points to draw a line
		series = []float64{series[0], series[0]}
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(max(len(series)*6, 30)),
		asciigraph.Precision(1),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("Design story shear (%s), base → roof", data.Unit)),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if l := len([]rune(line)); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func scaled(v, maxV float64, chars int) int {
	if maxV == 0 {
		return 0
	}
	return int(math.Round(math.Abs(v) / maxV * float64(chars)))
}

func maxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
