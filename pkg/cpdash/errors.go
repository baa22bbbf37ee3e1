package cpdash

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/chart"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/parser"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/view"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrColumnNotFound indicates a chart references a column the data lacks.
var ErrColumnNotFound = chart.ErrColumnNotFound

// ErrTableNotFound indicates a chart references a chunked table that does not exist.
var ErrTableNotFound = view.ErrTableNotFound

// ErrUnknownTrigger indicates an event named an input the dashboard does not have.
var ErrUnknownTrigger = view.ErrUnknownTrigger

// LoadError represents an error while loading the workbook.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}

// InvalidModeError reports an unknown partitioning mode name.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode: %s (must be %s or %s)", e.Mode, ModeNamedColumns, ModeChunked)
}
