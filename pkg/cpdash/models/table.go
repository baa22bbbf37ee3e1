package models

// Table is a two-column slice of a sheet: a label column and a value column.
type Table struct {
	// Index is the 1-based sequential table number.
	Index int `json:"index"`
	// Offset is the 0-based sheet column the slice starts at.
	Offset int `json:"offset"`
	// Columns holds the label column followed by the value column.
	Columns []Column `json:"columns"`
}

// Column looks up a column of the table by header name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// Label returns the name of the label column.
func (t *Table) Label() string {
	if len(t.Columns) == 0 {
		return ""
	}
	return t.Columns[0].Name
}

// Value returns the name of the value column.
func (t *Table) Value() string {
	if len(t.Columns) < 2 {
		return ""
	}
	return t.Columns[1].Name
}
