package models

// Sheet is one tab of a workbook as an ordered set of named columns.
type Sheet struct {
	// Name is the sheet (tab) name.
	Name string `json:"name"`
	// Columns contains the sheet columns in workbook order.
	Columns []Column `json:"columns"`
}

// Column looks up a column by header name.
func (s *Sheet) Column(name string) (*Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i], true
		}
	}
	return nil, false
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	if len(s.Columns) == 0 {
		return 0
	}
	return s.Columns[0].Len()
}

// ColumnNames returns the header names in order.
func (s *Sheet) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
