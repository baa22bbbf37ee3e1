package cpdash

import (
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/view"
)

// Dashboard bundles the loaded data with the chart registry and the
// interaction handler built from it. It is read-only after Open returns.
type Dashboard struct {
	Data     *models.Dataset
	Registry *view.Registry
	Handler  *view.Handler
}

// Open loads the workbook and builds the fixed chart registry.
func Open(path string, opts Options) (*Dashboard, error) {
	ds, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	slots := opts.Charts
	if slots == nil {
		slots = view.DefaultSlots(ds.Mode)
	}

	reg, err := view.NewRegistry(ds, slots)
	if err != nil {
		return nil, NewLoadError(path, opts.SheetName(), err)
	}

	return &Dashboard{
		Data:     ds,
		Registry: reg,
		Handler:  view.NewHandler(reg),
	}, nil
}
