// Package filter provides predicates over files and their AND/OR combination.
//
// A Filter tests one attribute of a *tree.File. The variant set is fixed:
//   - NameFilter: exact name match
//   - ExtensionFilter: exact extension match
//   - SizeFilter: size compared against a threshold
//
// Criteria combines an ordered list of filters with an Operator. And accepts
// a file when every filter matches (true for no filters); Or accepts it when
// at least one matches (false for no filters).
//
// Filters and Criteria are immutable values and safe to share.
package filter
