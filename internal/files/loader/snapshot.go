package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/budymann/OODesign/internal/files/tree"
)

// SnapshotOptions controls how a real directory is copied.
type SnapshotOptions struct {
	// ReadContent stores file contents in the tree. Sizes are always recorded.
	ReadContent bool

	// SkipHidden leaves out entries whose name starts with a dot.
	SkipHidden bool
}

// Snapshot copies the directory dir from the OS filesystem into a tree.
func Snapshot(dir string, opts SnapshotOptions) (*tree.Directory, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	root, err := SnapshotFS(os.DirFS(absPath), opts)
	if err != nil {
		return nil, err
	}
	return tree.NewDirectory(filepath.Base(absPath), root.Children()...), nil
}

// SnapshotFS copies the whole of fsys into a tree with an unnamed root.
// Children keep the lexical order fs.ReadDir returns. Symbolic links and
// irregular files are skipped.
func SnapshotFS(fsys fs.FS, opts SnapshotOptions) (*tree.Directory, error) {
	children, err := snapshotDir(fsys, ".", opts)
	if err != nil {
		return nil, err
	}
	return tree.NewDirectory("", children...), nil
}

func snapshotDir(fsys fs.FS, dir string, opts SnapshotOptions) ([]tree.Node, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	nodes := make([]tree.Node, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if opts.SkipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entryPath := path.Join(dir, name)

		switch {
		case entry.IsDir():
			children, err := snapshotDir(fsys, entryPath, opts)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, tree.NewDirectory(name, children...))

		case entry.Type().IsRegular():
			file, err := snapshotFile(fsys, entryPath, entry, opts)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, file)
		}
	}
	return nodes, nil
}

func snapshotFile(fsys fs.FS, filePath string, entry fs.DirEntry, opts SnapshotOptions) (*tree.File, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err)
	}

	var content []byte
	if opts.ReadContent {
		content, err = fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
	}

	name, ext := SplitName(entry.Name())
	return tree.NewFile(name, ext, uint64(info.Size()), content), nil
}

// SplitName splits a file name at its last dot into name and extension.
// Dotfiles such as ".env" and names without a dot have no extension.
func SplitName(fileName string) (name, ext string) {
	i := strings.LastIndexByte(fileName, '.')
	if i <= 0 || i == len(fileName)-1 {
		return fileName, ""
	}
	return fileName[:i], fileName[i+1:]
}
