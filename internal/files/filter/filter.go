package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/pkg/ufind"
)

// ErrInvalidComparator is returned when a size comparator cannot be parsed.
var ErrInvalidComparator = errors.New("invalid size comparator")

// Filter is a single predicate over a file. IsValid must be pure.
type Filter interface {
	IsValid(f *tree.File) bool
	String() string
}

// NameFilter matches files whose name equals Name.
type NameFilter struct {
	Name string
}

func (n NameFilter) IsValid(f *tree.File) bool { return f.Name() == n.Name }
func (n NameFilter) String() string            { return "name=" + n.Name }

// ExtensionFilter matches files whose extension equals Extension.
type ExtensionFilter struct {
	Extension string
}

func (e ExtensionFilter) IsValid(f *tree.File) bool { return f.Extension() == e.Extension }
func (e ExtensionFilter) String() string            { return "ext=" + e.Extension }

// Comparator selects how SizeFilter compares a file size with its threshold.
type Comparator uint8

const (
	GreaterThan Comparator = iota
	LessThan
	GreaterEqual
	LessEqual
)

var comparisons = [...]func(size, threshold uint64) bool{
	GreaterThan:  func(size, threshold uint64) bool { return size > threshold },
	LessThan:     func(size, threshold uint64) bool { return size < threshold },
	GreaterEqual: func(size, threshold uint64) bool { return size >= threshold },
	LessEqual:    func(size, threshold uint64) bool { return size <= threshold },
}

var comparatorSymbols = [...]string{
	GreaterThan:  ">",
	LessThan:     "<",
	GreaterEqual: ">=",
	LessEqual:    "<=",
}

// Valid reports whether c is one of the four comparators.
func (c Comparator) Valid() bool { return int(c) < len(comparisons) }

func (c Comparator) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Comparator(%d)", uint8(c))
	}
	return comparatorSymbols[c]
}

// ParseComparator accepts a symbol (">", "<", ">=", "<=") or its mnemonic
// ("gt", "lt", "ge", "le").
func ParseComparator(s string) (Comparator, error) {
	switch s {
	case ">", "gt":
		return GreaterThan, nil
	case "<", "lt":
		return LessThan, nil
	case ">=", "ge":
		return GreaterEqual, nil
	case "<=", "le":
		return LessEqual, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidComparator, s)
}

// SizeFilter matches files whose size compares true against a threshold.
// The zero value matches files larger than zero bytes.
type SizeFilter struct {
	threshold  uint64
	comparator Comparator
}

// NewSizeFilter creates a size filter.
// Panics if cmp is not one of the declared comparators.
func NewSizeFilter(threshold uint64, cmp Comparator) SizeFilter {
	if !cmp.Valid() {
		panic(fmt.Sprintf("filter: invalid comparator %d", uint8(cmp)))
	}
	return SizeFilter{threshold: threshold, comparator: cmp}
}

// ParseSizeFilter parses expressions such as ">15", "<=1024" or "ge:2048".
func ParseSizeFilter(expr string) (SizeFilter, error) {
	expr = strings.TrimSpace(expr)

	var op, num string
	if i := strings.IndexByte(expr, ':'); i >= 0 {
		op, num = expr[:i], expr[i+1:]
	} else {
		end := 0
		for end < len(expr) && (expr[end] == '>' || expr[end] == '<' || expr[end] == '=') {
			end++
		}
		op, num = expr[:end], expr[end:]
	}

	cmp, err := ParseComparator(op)
	if err != nil {
		return SizeFilter{}, fmt.Errorf("%w: size expression %q: %w", ufind.ErrInvalidConfig, expr, err)
	}

	threshold, err := strconv.ParseUint(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return SizeFilter{}, fmt.Errorf("%w: size expression %q: bad byte count: %w", ufind.ErrInvalidConfig, expr, err)
	}

	return NewSizeFilter(threshold, cmp), nil
}

func (s SizeFilter) Threshold() uint64      { return s.threshold }
func (s SizeFilter) Comparator() Comparator { return s.comparator }

func (s SizeFilter) IsValid(f *tree.File) bool {
	return comparisons[s.comparator](f.Size(), s.threshold)
}

func (s SizeFilter) String() string {
	return "size" + s.comparator.String() + strconv.FormatUint(s.threshold, 10)
}
