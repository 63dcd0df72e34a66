package filter

import "strings"

// Operator is the comparison applied by a filter
type Operator int

const (
	Equal        Operator = iota + 1 // =
	Less                             // <
	Greater                          // >
	NotEqual                         // !=
	LessEqual                        // <=
	GreaterEqual                     // >=
)

var operatorText = map[Operator]string{
	Equal:        "=",
	Less:         "<",
	Greater:      ">",
	NotEqual:     "!=",
	LessEqual:    "<=",
	GreaterEqual: ">=",
}

func (op Operator) String() string {
	if s, ok := operatorText[op]; ok {
		return s
	}
	return "?"
}

// Compare reports whether cell op value holds under byte-wise string ordering
func (op Operator) Compare(cell, value string) bool {
	c := strings.Compare(cell, value)
	switch op {
	case Equal:
		return c == 0
	case Less:
		return c < 0
	case Greater:
		return c > 0
	case NotEqual:
		return c != 0
	case LessEqual:
		return c <= 0
	case GreaterEqual:
		return c >= 0
	default:
		return false
	}
}
