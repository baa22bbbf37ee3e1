package parser

// findDataBounds finds the last row and column holding a non-empty cell.
// Both are -1 when every cell is empty.
func findDataBounds(rows [][]interface{}) (lastRow, lastCol int) {
	lastRow, lastCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if !isEmpty(cell) {
				if rowIdx > lastRow {
					lastRow = rowIdx
				}
				if colIdx > lastCol {
					lastCol = colIdx
				}
			}
		}
	}

	return
}

func isEmpty(v interface{}) bool {
	return v == nil || v == ""
}
