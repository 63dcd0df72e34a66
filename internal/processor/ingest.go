package processor

import (
	"strings"

	"github.com/leengari/csvfilter/internal/domain/table"
	"github.com/leengari/csvfilter/internal/filter"
)

// addFilteredRow appends record to tbl, keeping only selected cells
// The row is dropped at the first cell its column's filters reject; the
// remaining cells are not looked at. Cells beyond the last column are ignored.
func addFilteredRow(tbl *table.Table, record string, filters *filter.Set) bool {
	row := tbl.AddRow()

	rest := record
	for col := 0; col < tbl.ColCount(); col++ {
		cell, next, more := strings.Cut(rest, table.ValueSeparator)

		if !filters.Accepts(col, cell) {
			tbl.DeleteRow(row)
			return false
		}

		if tbl.Column(col).Selected {
			tbl.SetCell(row, col, cell)
		}

		if !more {
			break
		}
		rest = next
	}

	return true
}
