package models

// ViewState is the per-session state of the dashboard modal.
type ViewState struct {
	// IsOpen reports whether the modal dialog is shown.
	IsOpen bool `json:"is_open"`
	// Chart is the slot id currently enlarged, empty if none.
	Chart string `json:"chart,omitempty"`
}

// Event is one interaction delivered to the handler.
type Event struct {
	// Triggered lists the inputs that fired, in dispatch order.
	Triggered []string `json:"triggered"`
}

// Update is the handler output applied to the page.
//
// A nil Figure or Table means no update: the page keeps what it shows.
type Update struct {
	Figure *Figure    `json:"figure,omitempty"`
	Table  *TablePage `json:"table,omitempty"`
	IsOpen bool       `json:"is_open"`
}

// TablePage is one page of a chart's detail table.
type TablePage struct {
	// Chart is the slot id the table belongs to.
	Chart string `json:"chart"`
	// Columns are the column names, label first.
	Columns []string `json:"columns"`
	// Rows holds one record per row keyed by column name.
	Rows []map[string]interface{} `json:"rows"`
	// Page is the 0-based page number.
	Page int `json:"page"`
	// PageSize is the maximum number of rows per page.
	PageSize int `json:"page_size"`
	// PageCount is the total number of pages.
	PageCount int `json:"page_count"`
	// TotalRows is the number of rows across all pages.
	TotalRows int `json:"total_rows"`
}
