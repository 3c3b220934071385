package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/budymann/OODesign/internal/files/filter"
	"github.com/budymann/OODesign/internal/files/tree"
)

// Match is a file found by a search, with its absolute path in the tree.
type Match struct {
	Path string
	File *tree.File
}

// Find returns every file under path that satisfies criteria, in pre-order
// (children in stored order, expanded recursively). Directories are never
// returned. If path does not resolve, Find returns nil and the resolution
// error; it never returns a partial result.
func (fsys *FileSystem) Find(path string, criteria filter.Criteria) ([]*tree.File, error) {
	matches, err := fsys.FindMatches(path, criteria)
	if err != nil {
		return nil, err
	}

	files := make([]*tree.File, 0, len(matches))
	for _, m := range matches {
		files = append(files, m.File)
	}
	return files, nil
}

// FindMatches is Find with the absolute path of every matching file.
func (fsys *FileSystem) FindMatches(path string, criteria filter.Criteria) ([]Match, error) {
	start, base, err := fsys.resolve(path)
	if err != nil {
		return nil, err
	}

	s := search{criteria: criteria, matches: make([]Match, 0)}
	s.visit(start, base)

	fsys.logger.Verbose("find %s [%s]: %d of %d files matched", base, criteria, len(s.matches), s.visited)
	return s.matches, nil
}

type search struct {
	criteria filter.Criteria
	matches  []Match
	visited  int
}

func (s *search) visit(n tree.Node, p string) {
	switch v := n.(type) {
	case *tree.File:
		s.visited++
		if s.criteria.ValidateFilters(v) {
			s.matches = append(s.matches, Match{Path: p, File: v})
		}
	case *tree.Directory:
		for i := 0; i < v.Len(); i++ {
			child := v.Child(i)
			s.visit(child, childPath(p, displayName(child)))
		}
	}
}

// WalkFunc is called for every node visited by Walk. Returning fs.SkipDir
// for a directory skips its children, and for a file skips the remaining
// entries of its parent, as with fs.WalkDir. Any other error stops the walk.
type WalkFunc func(path string, n tree.Node) error

// Walk visits the directory at path and everything below it in pre-order.
// A panic inside fn is converted into an error naming the node.
func (fsys *FileSystem) Walk(path string, fn WalkFunc) error {
	start, base, err := fsys.resolve(path)
	if err != nil {
		return err
	}

	err = walk(start, base, fn)
	if errors.Is(err, fs.SkipDir) {
		return nil
	}
	return err
}

func walk(n tree.Node, p string, fn WalkFunc) error {
	if err := call(fn, p, n); err != nil {
		return err
	}

	dir, ok := tree.AsDirectory(n)
	if !ok {
		return nil
	}
	for i := 0; i < dir.Len(); i++ {
		child := dir.Child(i)
		err := walk(child, childPath(p, displayName(child)), fn)
		if err == nil {
			continue
		}
		if errors.Is(err, fs.SkipDir) && child.Kind() == tree.KindDirectory {
			continue
		}
		return err
	}
	return nil
}

func call(fn WalkFunc, p string, n tree.Node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("walk callback panicked at %s: %v", p, r)
		}
	}()
	return fn(p, n)
}

// displayName is the path segment shown for a node: files carry their
// extension, directories their bare name.
func displayName(n tree.Node) string {
	if f, ok := tree.AsFile(n); ok {
		return f.FileName()
	}
	return n.Name()
}
