package table

import (
	"bytes"
	"io"
	"strings"
)

const (
	// ValueSeparator separates cells inside a record
	ValueSeparator = ","
	// LineSeparator separates records
	LineSeparator = "\n"
)

// Table is the in-memory CSV: a fixed set of columns and a growable list of rows
type Table struct {
	columns []Column
	rows    []Row
}

// New creates an empty table with no columns and no rows
func New() *Table {
	return &Table{}
}

// AddColumn appends a column; columns must all be added before the first row
func (t *Table) AddColumn(header string, selected bool) {
	t.columns = append(t.columns, Column{Header: header, Selected: selected})
}

// AddRow appends a row with one unset slot per column and returns its index
func (t *Table) AddRow() int {
	t.rows = append(t.rows, NewRow(len(t.columns)))
	return len(t.rows) - 1
}

// SetCell stores a copy of value at the given position
// Out of bounds positions are silently ignored
func (t *Table) SetCell(row, col int, value string) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return
	}
	// Clone so the row does not pin the whole source line in memory
	t.rows[row].Set(col, strings.Clone(value))
}

// Cell returns the stored value, or false if the position is out of bounds or unset
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.rows) {
		return "", false
	}
	return t.rows[row].Get(col)
}

// DeleteRow removes the row at index, keeping the order of the remaining rows
func (t *Table) DeleteRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	copy(t.rows[row:], t.rows[row+1:])
	t.rows[len(t.rows)-1] = Row{}
	t.rows = t.rows[:len(t.rows)-1]
}

// ColumnIndex finds the column with exactly the given header
func (t *Table) ColumnIndex(header string) (int, bool) {
	for i, col := range t.columns {
		if col.Header == header {
			return i, true
		}
	}
	return 0, false
}

// Column returns the column at index i
func (t *Table) Column(i int) Column {
	return t.columns[i]
}

// Columns returns a copy of the column list
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.columns)
}

// RowCount returns the number of rows currently held
func (t *Table) RowCount() int {
	return len(t.rows)
}

// SelectedHeaders returns the headers of the selected columns in column order
func (t *Table) SelectedHeaders() []string {
	var headers []string
	for _, col := range t.columns {
		if col.Selected {
			headers = append(headers, col.Header)
		}
	}
	return headers
}

// WriteTo serializes the selected columns of the table as CSV
// Every line, including the last, is terminated by LineSeparator
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(t.SelectedHeaders(), ValueSeparator))
	buf.WriteString(LineSeparator)

	for _, row := range t.rows {
		first := true
		for i, col := range t.columns {
			if !col.Selected {
				continue
			}
			if !first {
				buf.WriteString(ValueSeparator)
			}
			first = false
			// Unset cells (short records) serialize as empty
			value, _ := row.Get(i)
			buf.WriteString(value)
		}
		buf.WriteString(LineSeparator)
	}

	return buf.WriteTo(w)
}

// String returns the serialized table
func (t *Table) String() string {
	var sb strings.Builder
	t.WriteTo(&sb)
	return sb.String()
}
