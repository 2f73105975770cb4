package importer

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrSchemaMismatch = errors.New("workbook schema mismatch")

// Column headers the workbook must carry. The names are fixed by the source
// spreadsheet, which is maintained in Spanish.
const (
	colVP              = "VP"
	colArea            = "Area"
	colIndicator       = "Indicador"
	colIndicatorType   = "Tipo Indicador"
	colMilestone       = "Hito"
	colStartDate       = "Fecha de Inicio"
	colEndDate         = "Fecha Finalizacion"
	colProgress        = "Avance (%)"
	colStatus          = "Estado"
	colResponsible     = "Responsable"
	colLoadResponsible = "Responsable de Carga"
)

var requiredColumns = []string{
	colVP,
	colArea,
	colIndicator,
	colIndicatorType,
	colMilestone,
	colStartDate,
	colEndDate,
	colProgress,
	colStatus,
	colResponsible,
	colLoadResponsible,
}

// ReadWorkbook reads every data row from the first sheet of an xlsx file.
func ReadWorkbook(path string) ([]Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	cells, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	return rowsFromCells(cells)
}

func rowsFromCells(cells [][]string) ([]Row, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrSchemaMismatch)
	}

	columns, err := mapHeader(cells[0])
	if err != nil {
		return nil, err
	}

	var rows []Row

	for _, line := range cells[1:] {
		if isBlank(line) {
			continue
		}

		cell := func(name string) string {
			i := columns[name]
			if i >= len(line) {
				return ""
			}
			return line[i]
		}

		rows = append(rows, Row{
			VP:              cell(colVP),
			Area:            cell(colArea),
			Indicator:       cell(colIndicator),
			IndicatorType:   cell(colIndicatorType),
			Milestone:       cell(colMilestone),
			RawStart:        cell(colStartDate),
			RawEnd:          cell(colEndDate),
			Progress:        parseProgress(cell(colProgress)),
			Status:          cell(colStatus),
			Responsible:     cell(colResponsible),
			LoadResponsible: cell(colLoadResponsible),
		})
	}

	return rows, nil
}

// mapHeader resolves each required column to its index, failing with a
// named schema-mismatch error on the first missing one.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrSchemaMismatch, required)
		}
	}

	return columns, nil
}

func isBlank(line []string) bool {
	for _, cell := range line {
		if cell != "" {
			return false
		}
	}
	return true
}
