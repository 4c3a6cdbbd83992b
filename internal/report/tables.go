// Package report turns an analysis result into tables and writes them to
// spreadsheet and PDF files.
package report

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosismo/internal/modal"
)

// Table is a titled grid of labelled numeric rows
type Table struct {
	Name     string   // Sheet / section name
	Header   []string // Column titles, first one names the row label
	Rows     []Row
	Decimals int // Rounding applied when the table is built
}

// Row is one labelled line of a table
type Row struct {
	Label  string
	Values []float64
}

// Meta describes the analysed building for report headers
type Meta struct {
	Name      string
	Unit      string  // Force unit label
	Height    float64 // Total height (m), 0 if unknown
	EstPeriod float64 // H/CT estimate (s), 0 if unknown
}

// Table names, in workbook order
const (
	SheetParameters    = "Parameters"
	SheetDisplacements = "Displacements"
	SheetForces        = "Forces"
	SheetFinalForces   = "Final Forces"
	SheetFinalShears   = "Final Shears"
)

// Tables builds the five result tables. Floor tables list the roof first.
func Tables(r *modal.Result, unit string) []Table {
	return []Table{
		ParametersTable(r),
		modeMatrixTable(SheetDisplacements, "Û", r.NumModes(), r.NumFloors(), func(i, j int) float64 { return r.Displacements.At(i, j) }, 4),
		modeMatrixTable(SheetForces, "F", r.NumModes(), r.NumFloors(), func(i, j int) float64 { return r.Forces.At(i, j) }, 4),
		combinedTable(SheetFinalForces, "F", unit, r.Force),
		combinedTable(SheetFinalShears, "V", unit, r.Shear),
	}
}

// ParametersTable lists the spectral ordinates and participation factor per mode
func ParametersTable(r *modal.Result) Table {
	t := Table{
		Name:     SheetParameters,
		Header:   []string{"Mode", "T (s)", "Cc", "Cs", "Sa (m/s²)", "ω (rad/s)", "Sd (cm)", "Gamma"},
		Decimals: 4,
	}
	for _, m := range r.Modes {
		t.Rows = append(t.Rows, Row{
			Label:  fmt.Sprintf("Mode %d", m.Mode),
			Values: round([]float64{m.Period, m.Cc, m.Cs, m.Sa, m.Omega, m.Sd, m.Gamma}, t.Decimals),
		})
	}
	return t
}

func modeMatrixTable(name, symbol string, modes, floors int, at func(i, j int) float64, decimals int) Table {
	t := Table{Name: name, Header: []string{"Level"}, Decimals: decimals}
	for j := 1; j <= modes; j++ {
		t.Header = append(t.Header, fmt.Sprintf("%s%d", symbol, j))
	}
	for i := floors - 1; i >= 0; i-- {
		values := make([]float64, modes)
		for j := range values {
			values[j] = at(i, j)
		}
		t.Rows = append(t.Rows, Row{Label: fmt.Sprintf("%d", i+1), Values: round(values, decimals)})
	}
	return t
}

func combinedTable(name, symbol, unit string, c modal.Combined) Table {
	t := Table{
		Name: name,
		Header: []string{
			"Level",
			fmt.Sprintf("%s abs (%s)", symbol, unit),
			fmt.Sprintf("%s srss (%s)", symbol, unit),
			fmt.Sprintf("%s weighted (%s)", symbol, unit),
			fmt.Sprintf("%s design (%s)", symbol, unit),
		},
		Decimals: 2,
	}
	for i := len(c.Abs) - 1; i >= 0; i-- {
		t.Rows = append(t.Rows, Row{
			Label:  fmt.Sprintf("%d", i+1),
			Values: round([]float64{c.Abs[i], c.SRSS[i], c.Weighted[i], c.Design[i]}, t.Decimals),
		})
	}
	return t
}

func round(values []float64, decimals int) []float64 {
	p := math.Pow(10, float64(decimals))
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*p) / p
	}
	return out
}
