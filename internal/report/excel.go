package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the result tables as one sheet each
func WriteWorkbook(w io.Writer, tables []Table) error {
	f, err := buildWorkbook(tables)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the result tables to an .xlsx file
func SaveWorkbook(path string, tables []Table) error {
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
	if err := WriteWorkbook(file, tables); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func buildWorkbook(tables []Table) (*excelize.File, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", t.Name, err)
		}

		if err := writeTable(f, t, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

func writeTable(f *excelize.File, t Table, headerStyle int) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", t.Name, err)
	}

	last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for r, row := range t.Rows {
		cells := make([]any, 0, len(row.Values)+1)
		cells = append(cells, row.Label)
		for _, v := range row.Values {
			cells = append(cells, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+1, t.Name, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Header))
	if err != nil {
		return err
	}
	return f.SetColWidth(t.Name, "A", lastCol, 16)
}
