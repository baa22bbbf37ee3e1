// Package view holds the dashboard's chart registry and the modal
// interaction state machine.
package view

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/chart"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// ErrTableNotFound indicates a slot references a chunked table that does not exist.
var ErrTableNotFound = errors.New("table not found")

// chartPeriod is the reporting window shown in every default title.
const chartPeriod = "6/30/2023 to 6/30/2024"

// DefaultSlots returns the five dashboard charts for a partitioning mode.
//
// In chunked mode slots address tables by position. The 12, 4, 1, 2, 3
// ordering mirrors the named-column layout, where fig1 reads Name_12.
func DefaultSlots(mode models.Mode) []models.ChartSlot {
	slots := []models.ChartSlot{
		{
			ID:    "fig1",
			Title: "Total Secondary Purchases and Sales by Counterparty from " + chartPeriod + " (MM)",
			X:     "Name_12",
			Y:     "Total Secondary Purchases and Sales by Counterparty",
			Table: 12,
		},
		{
			ID:    "fig2",
			Title: "Primary Buys by Counterparty From " + chartPeriod + " (MM)",
			X:     "Name_4",
			Y:     "Trading Volume Primary Buys 2",
			Table: 4,
		},
		{
			ID:    "fig3",
			Title: "Trading Volume by Counterparty From " + chartPeriod + " (MM)",
			X:     "Name_1",
			Y:     "Total Trading Volume",
			Table: 1,
		},
		{
			ID:    "fig4",
			Title: "Primary and Secondary Buys by Counterparty from " + chartPeriod + " (MM)",
			X:     "Name_2",
			Y:     "Trading Volume Buys",
			Table: 2,
		},
		{
			ID:    "fig5",
			Title: "Sells by Counterparty From " + chartPeriod + " (MM)",
			X:     "Name_3",
			Y:     "Trading Volume Sells 2",
			Table: 3,
		},
	}

	for i := range slots {
		if mode == models.ModeChunked {
			// Columns come from the table itself.
			slots[i].X, slots[i].Y = "", ""
		} else {
			slots[i].Table = 0
		}
	}
	return slots
}

// Entry is one registered chart.
type Entry struct {
	Spec   *models.ChartSpec
	Figure models.Figure
	// Columns are the source columns backing the detail table, label first.
	Columns []string
}

// Registry is the fixed, ordered set of dashboard charts.
// It is never modified after NewRegistry returns.
type Registry struct {
	data    *models.Dataset
	entries map[string]*Entry
	order   []string
}

// NewRegistry builds one chart per slot from the dataset.
func NewRegistry(ds *models.Dataset, slots []models.ChartSlot) (*Registry, error) {
	r := &Registry{
		data:    ds,
		entries: make(map[string]*Entry, len(slots)),
	}

	for _, slot := range slots {
		if _, dup := r.entries[slot.ID]; dup {
			return nil, fmt.Errorf("duplicate chart slot %q", slot.ID)
		}

		src, x, y, err := resolveSource(ds, slot)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", slot.ID, err)
		}

		spec, err := chart.Build(src, x, y, slot.Title, chart.WithColor(slot.Color), chart.WithID(slot.ID))
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", slot.ID, err)
		}

		r.entries[slot.ID] = &Entry{
			Spec:    spec,
			Figure:  chart.Figure(spec),
			Columns: []string{x, y},
		}
		r.order = append(r.order, slot.ID)
	}

	return r, nil
}

// resolveSource picks the sheet or chunked table a slot reads from and the
// column names to chart.
func resolveSource(ds *models.Dataset, slot models.ChartSlot) (models.Source, string, string, error) {
	if slot.Table == 0 {
		return &ds.Sheet, slot.X, slot.Y, nil
	}

	t, ok := ds.Table(slot.Table)
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %d", ErrTableNotFound, slot.Table)
	}
	x, y := slot.X, slot.Y
	if x == "" {
		x = t.Label()
	}
	if y == "" {
		y = t.Value()
	}
	return t, x, y, nil
}

// Get returns the entry for a slot id.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// IDs returns the slot ids in display order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Entries returns the entries in display order.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.entries[id])
	}
	return entries
}

// Data returns the dataset the registry was built from.
func (r *Registry) Data() *models.Dataset {
	return r.data
}

// Table derives the detail table for a slot from the loaded data.
func (r *Registry) Table(id string, pageSize int) (*TableView, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return NewTableView(id, e.Spec.Source, e.Columns, pageSize), true
}
