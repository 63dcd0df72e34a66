package filter

import (
	"strings"

	"github.com/leengari/csvfilter/internal/domain/errors"
)

// DefinitionSeparator separates filter definitions in a definitions block
const DefinitionSeparator = "\n"

// Resolver maps a header to its column index
type Resolver interface {
	ColumnIndex(header string) (int, bool)
}

// Token is the split form of one filter definition
type Token struct {
	Header string
	Op     Operator
	Value  string
}

// Tokenize splits a definition of the form <header><operator><value>
//
// The rightmost '=', '<' or '>' decides the split. For '=' the character
// before it is checked for '!', '<' or '>' to form the two character
// operators. The first character is never considered, so an operator
// at position 0 does not count. Returns false when no operator is found.
func Tokenize(def string) (Token, bool) {
	for i := len(def) - 1; i > 0; i-- {
		switch def[i] {
		case '=':
			op, headerEnd := Equal, i
			switch def[i-1] {
			case '!':
				op, headerEnd = NotEqual, i-1
			case '<':
				op, headerEnd = LessEqual, i-1
			case '>':
				op, headerEnd = GreaterEqual, i-1
			}
			return Token{Header: def[:headerEnd], Op: op, Value: def[i+1:]}, true
		case '<':
			return Token{Header: def[:i], Op: Less, Value: def[i+1:]}, true
		case '>':
			return Token{Header: def[:i], Op: Greater, Value: def[i+1:]}, true
		}
	}
	return Token{}, false
}

// Parse builds the filter list for a block of definitions
// Empty definitions are skipped. The first malformed definition or unknown
// header aborts parsing and no filters are returned.
func Parse(definitions string, columns Resolver) ([]Filter, error) {
	var filters []Filter

	for _, def := range strings.Split(definitions, DefinitionSeparator) {
		if def == "" {
			continue
		}

		tok, ok := Tokenize(def)
		if !ok {
			return nil, &errors.InvalidFilterError{Definition: def}
		}

		col, ok := columns.ColumnIndex(tok.Header)
		if !ok {
			return nil, &errors.HeaderNotFoundError{Header: tok.Header}
		}

		filters = append(filters, Filter{
			Column: col,
			Op:     tok.Op,
			Value:  strings.Clone(tok.Value),
		})
	}

	return filters, nil
}
