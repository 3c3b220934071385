package filesystem

import (
	"fmt"
	"strings"

	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/pkg/ufind"
)

// ChangeDirectory resolves a slash-separated path to a directory.
//
// A single leading slash is optional; the path is always taken from the
// root, and "" or "/" name the root itself. Each segment must name a child
// directory of the previous one. When siblings share a name, the first
// directory in stored order wins. Empty segments ("a//b", "a/") are
// malformed. Segments are compared exactly, with no special meaning for
// "." or "..".
//
// Returns an error wrapping ufind.ErrPathNotFound when any segment fails to
// resolve.
func (fsys *FileSystem) ChangeDirectory(path string) (*tree.Directory, error) {
	dir, _, err := fsys.resolve(path)
	return dir, err
}

// resolve returns the directory for path together with its canonical form.
func (fsys *FileSystem) resolve(path string) (*tree.Directory, string, error) {
	rel := strings.TrimPrefix(path, ufind.PathSeparator)
	if rel == "" {
		return fsys.root, ufind.RootPath, nil
	}

	segments := strings.Split(rel, ufind.PathSeparator)
	current := fsys.root
	for i, segment := range segments {
		if segment == "" {
			return nil, "", fmt.Errorf("%w: %q: empty segment at position %d", ufind.ErrPathNotFound, path, i+1)
		}

		next := childDirectory(current, segment)
		if next == nil {
			return nil, "", fmt.Errorf("%w: %q: no directory %q in %s",
				ufind.ErrPathNotFound, path, segment, joinPath(segments[:i]))
		}
		current = next
	}

	return current, joinPath(segments), nil
}

// childDirectory returns the first child of dir that is a directory named name.
func childDirectory(dir *tree.Directory, name string) *tree.Directory {
	for i := 0; i < dir.Len(); i++ {
		if child, ok := tree.AsDirectory(dir.Child(i)); ok && child.Name() == name {
			return child
		}
	}
	return nil
}

// joinPath renders segments as an absolute path.
func joinPath(segments []string) string {
	return ufind.RootPath + strings.Join(segments, ufind.PathSeparator)
}

// childPath appends name to an absolute parent path.
func childPath(parent, name string) string {
	if parent == ufind.RootPath {
		return ufind.RootPath + name
	}
	return parent + ufind.PathSeparator + name
}
