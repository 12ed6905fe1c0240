package table

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/prospect-cli/internal/model"
)

// WriteXLSX writes the interchange table to path as a single-sheet workbook,
// same columns as the CSV form.
func WriteXLSX(path string, rows []model.Prospect) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("prospects")
	if err != nil {
		return eris.Wrap(err, "table: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, col := range Header {
		headerRow.AddCell().Value = col
	}

	for _, p := range rows {
		row := sheet.AddRow()
		for _, v := range rowCells(p) {
			row.AddCell().Value = v
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "table: save %s", path)
	}
	return nil
}
