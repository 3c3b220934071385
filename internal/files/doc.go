// Package files groups the in-memory file tree and its search machinery
// into sub-packages:
//   - tree: File and Directory nodes
//   - filter: name, extension and size filters combined into Criteria
//   - filesystem: path resolution, Find and Walk over a tree
//   - loader: builds trees from YAML documents, real directories or the demo
//
// # Usage
//
//	import (
//	    "github.com/budymann/OODesign/internal/files/filesystem"
//	    "github.com/budymann/OODesign/internal/files/filter"
//	    "github.com/budymann/OODesign/internal/files/loader"
//	)
//
//	root, err := loader.LoadYAMLFile("books.yaml")
//	fsys := filesystem.New(root)
//	files, err := fsys.Find("/examples", filter.NewCriteria(filter.And,
//	    filter.ExtensionFilter{Extension: "pdf"},
//	    filter.NewSizeFilter(15, filter.GreaterThan),
//	))
//
// The tree packages never import loader or the CLI; a tree is plain data
// once built and is never mutated by a search.
package files
