package processor

import (
	"strings"

	"github.com/leengari/csvfilter/internal/domain/errors"
	"github.com/leengari/csvfilter/internal/domain/table"
)

// addColumns adds one column per header in headerLine, marking it selected
// when selected is empty or mentions the header
//
// Matching is by substring in both directions: a selection token only has
// to occur somewhere in the header line, and a header is selected when it
// occurs anywhere in the selection string. So selecting "header1" also
// selects a column named "header" if one exists.
func addColumns(tbl *table.Table, headerLine, selected string) error {
	if selected != "" {
		for _, name := range strings.Split(selected, table.ValueSeparator) {
			if name == "" {
				continue
			}
			if !strings.Contains(headerLine, name) {
				return &errors.HeaderNotFoundError{Header: name}
			}
		}
	}

	for _, header := range strings.Split(headerLine, table.ValueSeparator) {
		tbl.AddColumn(header, selected == "" || strings.Contains(selected, header))
	}

	return nil
}
