package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/pkg/ufind"
)

// countingFilter records how often it was evaluated.
type countingFilter struct {
	result bool
	calls  *int
}

func (c countingFilter) IsValid(*tree.File) bool { *c.calls++; return c.result }
func (c countingFilter) String() string          { return "counting" }

func TestCriteria_EmptyIdentities(t *testing.T) {
	and := NewCriteria(And)
	or := NewCriteria(Or)

	for _, file := range sampleFiles() {
		assert.True(t, and.ValidateFilters(file), "AND over no filters accepts %s", file.FileName())
		assert.False(t, or.ValidateFilters(file), "OR over no filters rejects %s", file.FileName())
	}
}

func TestCriteria_ZeroValueIsEmptyAnd(t *testing.T) {
	var c Criteria
	assert.Equal(t, And, c.Operator())
	assert.True(t, c.ValidateFilters(tree.NewFile("a", "", 0, nil)))
}

func TestCriteria_And(t *testing.T) {
	c := NewCriteria(And, ExtensionFilter{Extension: "pdf"}, NewSizeFilter(15, GreaterThan))

	var matched []string
	for _, file := range sampleFiles() {
		if c.ValidateFilters(file) {
			matched = append(matched, file.Name())
		}
	}
	assert.Equal(t, []string{"book2"}, matched)
}

func TestCriteria_Or(t *testing.T) {
	c := NewCriteria(Or, NameFilter{Name: "hello"}, ExtensionFilter{Extension: "xml"})

	var matched []string
	for _, file := range sampleFiles() {
		if c.ValidateFilters(file) {
			matched = append(matched, file.Name())
		}
	}
	assert.Equal(t, []string{"f1", "hello"}, matched)
}

func TestCriteria_ShortCircuits(t *testing.T) {
	file := tree.NewFile("a", "", 0, nil)

	var andCalls, orCalls int
	and := NewCriteria(And,
		countingFilter{result: false, calls: &andCalls},
		countingFilter{result: true, calls: &andCalls},
	)
	or := NewCriteria(Or,
		countingFilter{result: true, calls: &orCalls},
		countingFilter{result: false, calls: &orCalls},
	)

	assert.False(t, and.ValidateFilters(file))
	assert.True(t, or.ValidateFilters(file))
	assert.Equal(t, 1, andCalls)
	assert.Equal(t, 1, orCalls)
}

func TestCriteria_FiltersIsACopy(t *testing.T) {
	c := NewCriteria(And, NameFilter{Name: "a"}, nil)
	filters := c.Filters()
	require.Len(t, filters, 1)
	filters[0] = NameFilter{Name: "b"}
	assert.Equal(t, NameFilter{Name: "a"}, c.Filters()[0])
}

func TestNewCriteria_InvalidOperatorPanics(t *testing.T) {
	require.Panics(t, func() { NewCriteria(Operator(7)) })
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator("AND")
	require.NoError(t, err)
	assert.Equal(t, And, op)

	op, err = ParseOperator(" or ")
	require.NoError(t, err)
	assert.Equal(t, Or, op)

	_, err = ParseOperator("xor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ufind.ErrInvalidConfig))
}

func TestCriteria_String(t *testing.T) {
	assert.Equal(t, "ext=pdf AND size>15",
		NewCriteria(And, ExtensionFilter{Extension: "pdf"}, NewSizeFilter(15, GreaterThan)).String())
	assert.Equal(t, "name=a OR name=b",
		NewCriteria(Or, NameFilter{Name: "a"}, NameFilter{Name: "b"}).String())
	assert.Equal(t, "<all>", NewCriteria(And).String())
	assert.Equal(t, "<none>", NewCriteria(Or).String())
	assert.Equal(t, "Operator(7)", Operator(7).String())
}
