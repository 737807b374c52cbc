package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/walksafe/seedgen/internal/model"
)

// AccidentsXLSX writes an accident batch as a single-sheet workbook.
func AccidentsXLSX(w io.Writer, records []model.AccidentRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, accidentRow(r))
	}
	return writeXLSX(w, "accidents", accidentColumns, rows)
}

// CrimesXLSX writes a crime batch as a single-sheet workbook.
func CrimesXLSX(w io.Writer, records []model.CrimeRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, crimeRow(r))
	}
	return writeXLSX(w, "crimes", crimeColumns, rows)
}

// CombinedXLSX writes merged rows as a single-sheet workbook.
func CombinedXLSX(w io.Writer, records []model.CombinedRecord) error {
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, combinedRow(r))
	}
	return writeXLSX(w, "combined", combinedColumns, rows)
}

func writeXLSX(w io.Writer, sheetName string, header []string, rows [][]string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, col := range header {
		headerRow.AddCell().SetString(col)
	}
	for _, row := range rows {
		xr := sheet.AddRow()
		for _, v := range row {
			xr.AddCell().SetString(v)
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write workbook")
	}
	return nil
}
