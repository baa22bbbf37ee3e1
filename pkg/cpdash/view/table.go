package view

import "github.com/ukaji3/cpdash-go/pkg/cpdash/models"

// DefaultPageSize is the number of detail rows shown per page.
const DefaultPageSize = 10

// TableView is a paginated view over selected columns of a source.
type TableView struct {
	chart    string
	columns  []string
	rows     []map[string]interface{}
	pageSize int
}

// NewTableView copies the selected columns out of src, one record per source
// row, empty cells included. A pageSize below 1 uses DefaultPageSize.
func NewTableView(chartID string, src models.Source, columns []string, pageSize int) *TableView {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	cols := make([]*models.Column, 0, len(columns))
	names := make([]string, 0, len(columns))
	for _, name := range columns {
		if c, ok := src.Column(name); ok {
			cols = append(cols, c)
			names = append(names, name)
		}
	}

	rows := make([]map[string]interface{}, src.Len())
	for i := range rows {
		record := make(map[string]interface{}, len(cols))
		for j, c := range cols {
			record[names[j]] = c.At(i)
		}
		rows[i] = record
	}

	return &TableView{
		chart:    chartID,
		columns:  names,
		rows:     rows,
		pageSize: pageSize,
	}
}

// Len returns the total number of rows.
func (t *TableView) Len() int {
	return len(t.rows)
}

// PageCount returns the number of pages; an empty table has one empty page.
func (t *TableView) PageCount() int {
	if len(t.rows) == 0 {
		return 1
	}
	return (len(t.rows) + t.pageSize - 1) / t.pageSize
}

// Page returns the 0-based page n, clamped to the valid range.
func (t *TableView) Page(n int) models.TablePage {
	if n < 0 {
		n = 0
	}
	if last := t.PageCount() - 1; n > last {
		n = last
	}

	start := n * t.pageSize
	end := start + t.pageSize
	if end > len(t.rows) {
		end = len(t.rows)
	}
	rows := make([]map[string]interface{}, 0, end-start)
	rows = append(rows, t.rows[start:end]...)

	columns := make([]string, len(t.columns))
	copy(columns, t.columns)

	return models.TablePage{
		Chart:     t.chart,
		Columns:   columns,
		Rows:      rows,
		Page:      n,
		PageSize:  t.pageSize,
		PageCount: t.PageCount(),
		TotalRows: len(t.rows),
	}
}
