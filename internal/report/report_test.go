package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosismo/internal/modal"
)

func threeStoryResult(t *testing.T) *modal.Result {
	t.Helper()
	p := modal.CodeParameters{Z: 0.45, U: 1.0, S: 1.0, R: 8, TP: 0.4, TL: 2.5, CT: 35}
	r, err := modal.Analyze(
		[]float64{2.0, 2.0, 1.5},
		[]float64{0.45, 0.15},
		[][]float64{{0.35, 0.70, 1.00}, {-0.80, -0.45, 1.00}},
		p,
	)
	require.NoError(t, err)
	return r
}

func TestTables(t *testing.T) {
	r := threeStoryResult(t)
	tables := Tables(r, "tonf")
	require.Len(t, tables, 5)

	names := make([]string, len(tables))
	for i, tb := range tables {
		names[i] = tb.Name
	}
	assert.Equal(t, []string{SheetParameters, SheetDisplacements, SheetForces, SheetFinalForces, SheetFinalShears}, names)

	params := tables[0]
	require.Len(t, params.Rows, 2)
	assert.Equal(t, "Mode 1", params.Rows[0].Label)
	assert.Len(t, params.Rows[0].Values, len(params.Header)-1)

	forces := tables[2]
	assert.Equal(t, []string{"Level", "F1", "F2"}, forces.Header)
	require.Len(t, forces.Rows, 3)
	// Roof first
	assert.Equal(t, "3", forces.Rows[0].Label)
	assert.InDelta(t, r.Forces.At(2, 0), forces.Rows[0].Values[0], 1e-4)

	shears := tables[4]
	assert.Equal(t, "1", shears.Rows[2].Label)
	assert.InDelta(t, r.BaseShear(), shears.Rows[2].Values[3], 0.005)
	assert.Contains(t, shears.Header[4], "tonf")
}

func TestSaveWorkbook(t *testing.T) {
	r := threeStoryResult(t)
	tables := Tables(r, "tonf")
	path := filepath.Join(t.TempDir(), "out", "report.xlsx")

	require.NoError(t, SaveWorkbook(path, tables))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetParameters, SheetDisplacements, SheetForces, SheetFinalForces, SheetFinalShears}, f.GetSheetList())

	rows, err := f.GetRows(SheetFinalShears)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Level", rows[0][0])
	assert.Equal(t, "1", rows[3][0])

	header, err := f.GetCellValue(SheetParameters, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Cc", header)
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteWorkbook(&buf, nil))
}

func TestSavePDF(t *testing.T) {
	r := threeStoryResult(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	meta := Meta{Name: "Three story", Unit: "tonf", Height: 9.5, EstPeriod: 9.5 / 35}
	require.NoError(t, SavePDF(path, r, meta, Tables(r, meta.Unit)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
