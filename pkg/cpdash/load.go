package cpdash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/parser"
)

// Load reads the configured sheet, rescales it to millions and, in chunked
// mode, partitions it into two-column tables.
func Load(path string, opts Options) (*models.Dataset, error) {
	sheetName := opts.SheetName()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewLoadError(path, sheetName, ErrFileNotFound)
		}
		return nil, NewLoadError(path, sheetName, err)
	}

	raw, err := parser.ReadSheet(path, sheetName)
	if err != nil {
		if errors.Is(err, parser.ErrSheetNotFound) {
			return nil, NewLoadError(path, sheetName, err)
		}
		return nil, NewLoadError(path, sheetName, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	ds := &models.Dataset{
		BookName: filepath.Base(path),
		Mode:     opts.Mode,
		Sheet:    parser.RescaleSheet(raw),
	}
	if ds.Mode == "" {
		ds.Mode = ModeNamedColumns
	}
	if opts.ShouldPartition() {
		ds.Tables = parser.Partition(ds.Sheet)
	}

	return ds, nil
}
