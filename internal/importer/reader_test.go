package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testHeader = []string{
	"VP", "Area", "Indicador", "Tipo Indicador", "Hito",
	"Fecha de Inicio", "Fecha Finalizacion", "Avance (%)", "Estado",
	"Responsable", "Responsable de Carga",
}

func writeWorkbook(t *testing.T, lines [][]string) string {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &line))
	}

	path := filepath.Join(t.TempDir(), "indicators.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		testHeader,
		{"Ops", "Logistics", "Alpha", "Strategic", "Kickoff",
			"2024-01-10", "2024-06-01", "50", "In Progress", "Ana", "Luis"},
		{"Ops", "Logistics", "Alpha", "Strategic", "Wrap-up",
			"", "2024-12-31", "", "Not Started", "Ana", "Luis"},
	})

	rows, err := ReadWorkbook(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alpha", rows[0].Indicator)
	assert.Equal(t, "Kickoff", rows[0].Milestone)
	assert.Equal(t, "2024-01-10", rows[0].RawStart)
	assert.Equal(t, 50.0, rows[0].Progress)

	assert.Equal(t, "", rows[1].RawStart)
	assert.Equal(t, 0.0, rows[1].Progress)
}

func TestReadWorkbookMissingColumn(t *testing.T) {
	header := make([]string, 0, len(testHeader)-1)
	for _, name := range testHeader {
		if name != "Fecha Finalizacion" {
			header = append(header, name)
		}
	}

	path := writeWorkbook(t, [][]string{header})

	_, err := ReadWorkbook(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "Fecha Finalizacion")
}

func TestRowsFromCellsSkipsBlankLines(t *testing.T) {
	rows, err := rowsFromCells([][]string{
		testHeader,
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"Ops", "Logistics", "Alpha", "Strategic", "Kickoff",
			"2024-01-10", "2024-06-01", "50", "In Progress", "Ana", "Luis"},
	})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRowsFromCellsShortLine(t *testing.T) {
	// Trailing empty cells are dropped by the xlsx reader; missing cells
	// read as empty strings, not an error.
	rows, err := rowsFromCells([][]string{
		testHeader,
		{"Ops", "Logistics", "Alpha"},
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].Indicator)
	assert.Equal(t, "", rows[0].Status)
}

func TestRowsFromCellsEmptySheet(t *testing.T) {
	_, err := rowsFromCells(nil)

	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
