package models

// Mode selects how a sheet is turned into chartable tables.
type Mode string

const (
	// ModeNamedColumns charts fixed, named sheet columns.
	ModeNamedColumns Mode = "named-columns"
	// ModeChunked splits the sheet into two-column tables every three columns.
	ModeChunked Mode = "chunked-by-3"
)

// Dataset is the rescaled workbook data the dashboard is built from.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Mode is the partitioning mode the dataset was loaded with.
	Mode Mode `json:"mode"`
	// Sheet is the rescaled sheet.
	Sheet Sheet `json:"sheet"`
	// Tables maps 1-based table index to its two-column table (chunked mode only).
	Tables map[int]Table `json:"tables,omitempty"`
}

// Table returns the chunked table with the given index.
func (d *Dataset) Table(index int) (*Table, bool) {
	t, ok := d.Tables[index]
	if !ok {
		return nil, false
	}
	return &t, true
}
