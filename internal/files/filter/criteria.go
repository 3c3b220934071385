package filter

import (
	"fmt"
	"strings"

	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/pkg/ufind"
)

// Operator is the logical rule Criteria uses to combine its filters.
type Operator uint8

const (
	And Operator = iota
	Or
)

func (o Operator) String() string {
	switch o {
	case And:
		return "AND"
	case Or:
		return "OR"
	}
	return fmt.Sprintf("Operator(%d)", uint8(o))
}

// ParseOperator accepts "and" or "or" in any case.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q (want and|or)", ufind.ErrInvalidConfig, s)
}

// Criteria is an ordered set of filters plus the operator combining them.
type Criteria struct {
	filters  []Filter
	operator Operator
}

// NewCriteria creates criteria evaluating filters in the given order.
// Panics if op is not And or Or.
func NewCriteria(op Operator, filters ...Filter) Criteria {
	if op != And && op != Or {
		panic(fmt.Sprintf("filter: invalid operator %d", uint8(op)))
	}
	kept := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			kept = append(kept, f)
		}
	}
	return Criteria{filters: kept, operator: op}
}

func (c Criteria) Operator() Operator { return c.operator }

// Filters returns a copy of the filter list.
func (c Criteria) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// ValidateFilters reports whether f satisfies the criteria.
func (c Criteria) ValidateFilters(f *tree.File) bool {
	if c.operator == Or {
		return c.any(f)
	}
	return c.all(f)
}

func (c Criteria) all(f *tree.File) bool {
	for _, filter := range c.filters {
		if !filter.IsValid(f) {
			return false
		}
	}
	return true
}

func (c Criteria) any(f *tree.File) bool {
	for _, filter := range c.filters {
		if filter.IsValid(f) {
			return true
		}
	}
	return false
}

func (c Criteria) String() string {
	if len(c.filters) == 0 {
		if c.operator == Or {
			return "<none>"
		}
		return "<all>"
	}
	parts := make([]string, len(c.filters))
	for i, f := range c.filters {
		parts[i] = f.String()
	}
	return strings.Join(parts, " "+c.operator.String()+" ")
}
