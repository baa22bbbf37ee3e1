package parser

import "errors"

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates the file extension is not a known spreadsheet format.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
