package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperator_Compare(t *testing.T) {
	tests := []struct {
		op       Operator
		cell     string
		value    string
		expected bool
	}{
		{Equal, "5", "5", true},
		{Equal, "5", "6", false},
		{Less, "4", "5", true},
		{Less, "5", "5", false},
		{Greater, "6", "5", true},
		{Greater, "5", "5", false},
		{NotEqual, "4", "5", true},
		{NotEqual, "5", "5", false},
		{LessEqual, "5", "5", true},
		{LessEqual, "6", "5", false},
		{GreaterEqual, "5", "5", true},
		{GreaterEqual, "4", "5", false},
		// comparisons are lexicographic, not numeric
		{Less, "10", "9", true},
		{Greater, "abc", "ab", true},
		{Less, "B", "a", true},
		{Operator(0), "a", "a", false},
	}

	for i, tt := range tests {
		assert.Equalf(t, tt.expected, tt.op.Compare(tt.cell, tt.value),
			"tests[%d] %q %s %q", i, tt.cell, tt.op, tt.value)
	}
}

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "!=", NotEqual.String())
	assert.Equal(t, ">=", GreaterEqual.String())
	assert.Equal(t, "?", Operator(42).String())
}

func TestAccepts_NoFilterForColumn(t *testing.T) {
	filters := []Filter{{Column: 1, Op: Equal, Value: "x"}}

	assert.True(t, Accepts("anything", filters, 0))
	assert.True(t, Accepts("anything", nil, 0))
}

func TestAccepts_OrWithinColumn(t *testing.T) {
	filters := []Filter{
		{Column: 0, Op: Equal, Value: "1"},
		{Column: 0, Op: Equal, Value: "4"},
		{Column: 1, Op: Equal, Value: "never"},
	}

	assert.True(t, Accepts("1", filters, 0))
	assert.True(t, Accepts("4", filters, 0))
	assert.False(t, Accepts("7", filters, 0))
	assert.False(t, Accepts("1", filters, 1))
}

func TestSet_MatchesAccepts(t *testing.T) {
	filters := []Filter{
		{Column: 0, Op: Greater, Value: "2"},
		{Column: 1, Op: Less, Value: "7"},
		{Column: 1, Op: Equal, Value: "9"},
	}
	set := NewSet(filters)

	for col := 0; col < 3; col++ {
		for _, cell := range []string{"1", "3", "5", "7", "9"} {
			assert.Equalf(t, Accepts(cell, filters, col), set.Accepts(col, cell),
				"col %d cell %q", col, cell)
		}
	}
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, filters, set.Filters())
}

func TestSet_Nil(t *testing.T) {
	var set *Set

	assert.True(t, set.Accepts(0, "x"))
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Filters())
}

func TestFilter_String(t *testing.T) {
	assert.Equal(t, "col[2]<=abc", Filter{Column: 2, Op: LessEqual, Value: "abc"}.String())
}
