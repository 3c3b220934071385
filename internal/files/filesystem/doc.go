// Package filesystem searches an in-memory tree the way find(1) searches a disk.
//
// A FileSystem owns one root directory. ChangeDirectory resolves a
// slash-separated path to a directory by matching one segment per level, and
// Find walks the resolved subtree in pre-order, returning every file that
// satisfies a filter.Criteria.
//
// Key operations:
//   - ChangeDirectory: path -> *tree.Directory or ErrPathNotFound
//   - Find: path + criteria -> matching files in traversal order
//   - FindMatches: like Find, with the absolute path of every match
//   - Walk: pre-order visit of every node under a path
//
// A FileSystem never mutates its tree and keeps no per-call state, so a
// single instance may serve concurrent callers.
package filesystem
