// Package loader builds in-memory trees for the filesystem package.
//
// Trees can come from three places:
//   - Demo: the fixed sample tree used by the CLI when nothing else is given
//   - ParseYAML / LoadYAMLFile: a YAML tree document
//   - Snapshot / SnapshotFS: a copy of a real directory
//
// YAML documents are validated before a tree is returned: every node is
// either a dir or a file, names are non-empty and free of slashes, and
// sibling names are unique so that every path resolves to exactly one node.
// Violations are reported as errors wrapping ufind.ErrInvalidTree.
package loader
