package filesystem

import (
	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/internal/logging"
	"github.com/budymann/OODesign/pkg/ufind"
)

// FileSystem searches the tree below a single root directory.
type FileSystem struct {
	root   *tree.Directory
	logger ufind.Logger
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithLogger sets the logger used for per-search diagnostics.
func WithLogger(logger ufind.Logger) Option {
	return func(fsys *FileSystem) {
		if logger != nil {
			fsys.logger = logger
		}
	}
}

// New creates a FileSystem rooted at root.
// Panics if root is nil.
func New(root *tree.Directory, opts ...Option) *FileSystem {
	if root == nil {
		panic("root cannot be nil")
	}
	fsys := &FileSystem{
		root:   root,
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(fsys)
	}
	return fsys
}

// Root returns the root directory.
func (fsys *FileSystem) Root() *tree.Directory { return fsys.root }
