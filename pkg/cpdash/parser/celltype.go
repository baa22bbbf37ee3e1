package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// isoDateLayouts are the forms excelize and Excel use for cells stored with
// the ISO 8601 date type.
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// cellTyper converts raw OOXML cell text into a value according to the
// cell's stored type and number format.
type cellTyper struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	dates    map[int]bool
}

func newCellTyper(f *excelize.File, sheet string) (*cellTyper, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &cellTyper{
		f:        f,
		sheet:    sheet,
		date1904: props.Date1904 != nil && *props.Date1904,
		dates:    make(map[int]bool),
	}, nil
}

// value returns nil, string, bool, int64, float64 or time.Time.
func (t *cellTyper) value(col, row int, raw string) (interface{}, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := t.f.GetCellType(t.sheet, cell)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		for _, layout := range isoDateLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts, nil
			}
		}
		return raw, nil
	}

	dated, err := t.isDateStyle(cell)
	if err != nil {
		return nil, err
	}
	if dated {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if ts, err := excelize.ExcelDateToTime(serial, t.date1904); err == nil {
				return ts, nil
			}
		}
	}
	return parseValue(raw), nil
}

// isDateStyle reports whether the cell's number format displays a date or time.
func (t *cellTyper) isDateStyle(cell string) (bool, error) {
	idx, err := t.f.GetCellStyle(t.sheet, cell)
	if err != nil {
		return false, err
	}
	if dated, ok := t.dates[idx]; ok {
		return dated, nil
	}

	dated := false
	if style, err := t.f.GetStyle(idx); err == nil {
		if style.CustomNumFmt != nil {
			dated = isDateFormat(*style.CustomNumFmt)
		} else {
			dated = isDateNumFmt(style.NumFmt)
		}
	}
	t.dates[idx] = dated
	return dated, nil
}

// isDateNumFmt reports whether a built-in number format ID is a date or time
// format, including the East Asian locale variants.
func isDateNumFmt(id int) bool {
	switch {
	case 14 <= id && id <= 22,
		27 <= id && id <= 36,
		45 <= id && id <= 47,
		50 <= id && id <= 58,
		71 <= id && id <= 81:
		return true
	}
	return false
}

// isDateFormat reports whether a custom format code contains date or time
// tokens outside quoted literals, escapes and bracketed sections.
func isDateFormat(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case strings.IndexByte("yYmMdDhHsS", ch) >= 0:
			return true
		}
	}
	return false
}
