package filter

import "fmt"

// Filter is a single row constraint bound to a resolved column index
type Filter struct {
	Column int
	Op     Operator
	Value  string
}

func (f Filter) String() string {
	return fmt.Sprintf("col[%d]%s%s", f.Column, f.Op, f.Value)
}

// Matches reports whether cell satisfies the filter
func (f Filter) Matches(cell string) bool {
	return f.Op.Compare(cell, f.Value)
}

// Accepts reports whether cell is accepted by the filters targeting col
// With no filter on col the cell is accepted; otherwise any matching filter accepts it
func Accepts(cell string, filters []Filter, col int) bool {
	hasFilter := false
	for _, f := range filters {
		if f.Column != col {
			continue
		}
		hasFilter = true
		if f.Matches(cell) {
			return true
		}
	}
	return !hasFilter
}

// Set groups filters by column index for per-cell lookups during row ingestion
type Set struct {
	filters  []Filter
	byColumn map[int][]Filter
}

// NewSet builds a Set from filters, keeping their relative order per column
func NewSet(filters []Filter) *Set {
	s := &Set{
		filters:  filters,
		byColumn: make(map[int][]Filter),
	}
	for _, f := range filters {
		s.byColumn[f.Column] = append(s.byColumn[f.Column], f)
	}
	return s
}

// Accepts applies the same rule as the package level Accepts for column col
func (s *Set) Accepts(col int, cell string) bool {
	if s == nil {
		return true
	}
	relevant, ok := s.byColumn[col]
	if !ok {
		return true
	}
	for _, f := range relevant {
		if f.Matches(cell) {
			return true
		}
	}
	return false
}

// Filters returns the filters in definition order
func (s *Set) Filters() []Filter {
	if s == nil {
		return nil
	}
	return s.filters
}

// Len returns the number of filters
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.filters)
}
