// Package models defines data structures for the counterparty dashboard.
package models

// Column is a named, ordered sequence of cell values.
//
// Each value is nil (empty cell), int64, float64 or string.
type Column struct {
	// Name is the header text of the column.
	Name string `json:"name"`
	// Values holds the cells below the header, top to bottom.
	Values []interface{} `json:"values"`
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// At returns the value at row i, or nil when i is out of range.
func (c *Column) At(i int) interface{} {
	if i < 0 || i >= len(c.Values) {
		return nil
	}
	return c.Values[i]
}

// Source is anything that exposes named columns of equal length.
type Source interface {
	Column(name string) (*Column, bool)
	Len() int
}
