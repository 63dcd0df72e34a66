package table

import "fmt"

// Row represents a single CSV record, positionally aligned with the table columns
// Cells of unselected columns are never stored, so each slot tracks whether it was set
type Row struct {
	cells []string
	set   []bool
}

// NewRow creates a row with width unset cells
func NewRow(width int) Row {
	return Row{
		cells: make([]string, width),
		set:   make([]bool, width),
	}
}

// Get returns the cell value at col and whether it has been set
func (r Row) Get(col int) (string, bool) {
	if col < 0 || col >= len(r.cells) || !r.set[col] {
		return "", false
	}
	return r.cells[col], true
}

// Set stores value at col; out of range indices are ignored
func (r Row) Set(col int, value string) {
	if col < 0 || col >= len(r.cells) {
		return
	}
	r.cells[col] = value
	r.set[col] = true
}

// Len returns the number of cell slots
func (r Row) Len() int {
	return len(r.cells)
}

// String returns a string representation for debugging
func (r Row) String() string {
	return fmt.Sprintf("Row%q", r.cells)
}
