package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// errNoWorkbook is returned for compound files without a Workbook stream.
var errNoWorkbook = errors.New("no workbook stream")

// readXLSRows returns the cell text of a legacy BIFF (.xls) sheet. The format
// carries no cell types through the reader, so values are typed by their text.
func readXLSRows(path, sheetName string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	wb, err := xls.OpenReader(file, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errNoWorkbook
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}

		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheetRow(sheet, r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol()+1)
			for c := range cells {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}

// sheetRow returns row r, or nil for a row the sheet holds no record of.
// WorkSheet.Row panics on such rows.
func sheetRow(sheet *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(r)
}
