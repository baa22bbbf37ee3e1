// Package cpdash loads counterparty trading data and builds the dashboard
// chart registry from it.
package cpdash

import "github.com/ukaji3/cpdash-go/pkg/cpdash/models"

// Mode represents the sheet partitioning mode.
type Mode = models.Mode

const (
	// ModeNamedColumns charts fixed, named columns of the sheet.
	ModeNamedColumns = models.ModeNamedColumns
	// ModeChunked splits the sheet into two-column tables every three columns
	// and charts tables by position.
	ModeChunked = models.ModeChunked
)

// DefaultSheet is the sheet read when Options.Sheet is empty.
const DefaultSheet = "CP-DF Summary"

// Options configures loading behavior.
type Options struct {
	// Mode specifies the partitioning mode (named-columns, chunked-by-3).
	Mode Mode
	// Sheet is the sheet name to read. Defaults to DefaultSheet.
	Sheet string
	// Charts configures the chart slots.
	// If nil, the defaults for Mode are used.
	Charts []models.ChartSlot
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeNamedColumns,
		Sheet: DefaultSheet,
	}
}

// SheetName returns the sheet to read.
func (o Options) SheetName() string {
	if o.Sheet != "" {
		return o.Sheet
	}
	return DefaultSheet
}

// ShouldPartition returns whether the sheet is split into chunked tables.
func (o Options) ShouldPartition() bool {
	return o.Mode == ModeChunked
}

// ParseMode validates a mode name. The empty string selects ModeNamedColumns.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeNamedColumns:
		return ModeNamedColumns, nil
	case ModeChunked:
		return ModeChunked, nil
	default:
		return "", &InvalidModeError{Mode: s}
	}
}
