package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads one sheet of a workbook into named columns.
// The reader is chosen by file extension.
func ReadSheet(path, sheetName string) (models.Sheet, error) {
	var (
		rows [][]interface{}
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = readXLSXCells(path, sheetName)
	case ".xls":
		var text [][]string
		if text, err = readXLSRows(path, sheetName); err == nil {
			rows = textCells(text)
		}
	default:
		return models.Sheet{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return models.Sheet{}, err
	}
	return ExtractColumns(sheetName, rows), nil
}

// readXLSXCells returns the typed cell values of an OOXML sheet. Only cells
// stored as numbers are parsed; text keeps its characters and date-formatted
// numbers become time.Time.
func readXLSXCells(path, sheetName string) ([][]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	typer, err := newCellTyper(f, sheetName)
	if err != nil {
		return nil, err
	}
	cells := make([][]interface{}, len(rows))
	for r, row := range rows {
		cells[r] = make([]interface{}, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			if cells[r][c], err = typer.value(c+1, r+1, raw); err != nil {
				return nil, err
			}
		}
	}
	return cells, nil
}
