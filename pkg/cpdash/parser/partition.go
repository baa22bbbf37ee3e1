package parser

import "github.com/ukaji3/cpdash-go/pkg/cpdash/models"

const (
	// ChunkStep is the column distance between consecutive table starts.
	ChunkStep = 3
	// ChunkWidth is the number of columns each table takes from its chunk.
	ChunkWidth = 2
)

// Partition splits a sheet into two-column tables, one every ChunkStep columns.
// Tables are numbered from 1 in column order; a trailing chunk with fewer than
// ChunkWidth columns is dropped.
func Partition(s models.Sheet) map[int]models.Table {
	tables := make(map[int]models.Table)
	index := 0
	for offset := 0; offset < len(s.Columns); offset += ChunkStep {
		index++
		if offset+ChunkWidth > len(s.Columns) {
			continue
		}
		cols := make([]models.Column, ChunkWidth)
		copy(cols, s.Columns[offset:offset+ChunkWidth])
		tables[index] = models.Table{
			Index:   index,
			Offset:  offset,
			Columns: cols,
		}
	}
	return tables
}
