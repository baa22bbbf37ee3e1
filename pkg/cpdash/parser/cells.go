package parser

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// ExtractColumns turns typed sheet rows into a Sheet of named columns.
// The first row holds the headers; every following row is data. Ragged rows
// are padded with empty cells so all columns have the same length. Empty
// strings are stored as nil.
func ExtractColumns(sheetName string, rows [][]interface{}) models.Sheet {
	sheet := models.Sheet{Name: sheetName}

	lastRow, lastCol := findDataBounds(rows)
	if lastRow < 0 {
		return sheet
	}
	rows = rows[:lastRow+1]
	width := lastCol + 1

	var header []interface{}
	if len(rows) > 0 {
		header = rows[0]
	}
	names := headerNames(header, width)

	dataRows := 0
	if len(rows) > 1 {
		dataRows = len(rows) - 1
	}

	sheet.Columns = make([]models.Column, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		values := make([]interface{}, dataRows)
		for rowIdx := 0; rowIdx < dataRows; rowIdx++ {
			row := rows[rowIdx+1]
			if colIdx < len(row) && !isEmpty(row[colIdx]) {
				values[rowIdx] = row[colIdx]
			}
		}
		sheet.Columns[colIdx] = models.Column{
			Name:   names[colIdx],
			Values: values,
		}
	}

	return sheet
}

// headerNames derives unique column names from the header row.
// Blank headers become "Unnamed: <index>"; repeats get ".1", ".2", ... suffixes.
func headerNames(header []interface{}, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = headerText(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

// headerText renders a header cell as a column name.
func headerText(v interface{}) string {
	switch h := v.(type) {
	case nil:
		return ""
	case string:
		return h
	case float64:
		return strconv.FormatFloat(h, 'f', -1, 64)
	case time.Time:
		return h.Format(time.DateTime)
	default:
		return fmt.Sprint(h)
	}
}

// textCells converts untyped cell text into values with parseValue.
func textCells(rows [][]string) [][]interface{} {
	cells := make([][]interface{}, len(rows))
	for r, row := range rows {
		cells[r] = make([]interface{}, len(row))
		for c, s := range row {
			cells[r][c] = parseValue(s)
		}
	}
	return cells
}

// parseValue attempts to parse a string value as a number.
// Returns nil for empty cells, int64 for integers, float64 for decimals,
// or the original string.
func parseValue(s string) interface{} {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf spellings stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
