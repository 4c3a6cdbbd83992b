package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosismo/internal/modal"
)

// WritePDF writes a printable summary of the analysis: code parameters
// followed by every result table.
func WritePDF(w io.Writer, r *modal.Result, meta Meta, tables []Table) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		// Core fonts are cp1252; ω has no glyph
		return tr(strings.ReplaceAll(s, "ω", "w"))
	}

	title := meta.Name
	if title == "" {
		title = "Seismic Analysis"
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text("Response Spectrum Modal Analysis - E.030"))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, text(fmt.Sprintf("Building: %s", title)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	p := r.Params
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Code parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Z = %.2f   U = %.2f   S = %.2f   R = %.2f", p.Z, p.U, p.S, p.R),
		fmt.Sprintf("TP = %.2f s   TL = %.2f s   CT = %.0f", p.TP, p.TL, p.CT),
	}
	if meta.Height > 0 {
		lines = append(lines, fmt.Sprintf("Total height H = %.2f m   Estimated period H/CT = %.4f s", meta.Height, meta.EstPeriod))
	}
	lines = append(lines, fmt.Sprintf("Design base shear = %.2f %s", r.BaseShear(), meta.Unit))
	for _, l := range lines {
		pdf.Cell(0, 6, text(l))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, t := range tables {
		writePDFTable(pdf, t, text)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF summary to path
func SavePDF(path string, r *modal.Result, meta Meta, tables []Table) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(file, r, meta, tables); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writePDFTable(pdf *gofpdf.Fpdf, t Table, text func(string) string) {
	const pageWidth = 190.0

	colWidth := pageWidth / float64(len(t.Header))
	if colWidth > 30 {
		colWidth = 30
	}

	// Keep the title with at least the header row
	if _, pageHeight := pdf.GetPageSize(); pdf.GetY()+20 > pageHeight-20 {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, text(t.Name))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 243, 255)
	for _, h := range t.Header {
		pdf.CellFormat(colWidth, 6, text(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	format := fmt.Sprintf("%%.%df", t.Decimals)
	for _, row := range t.Rows {
		pdf.CellFormat(colWidth, 5, text(row.Label), "1", 0, "C", false, 0, "")
		for _, v := range row.Values {
			pdf.CellFormat(colWidth, 5, fmt.Sprintf(format, v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
