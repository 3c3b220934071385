package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/pkg/ufind"
)

// document is the top level of a YAML tree document.
type document struct {
	Name     string    `yaml:"name"`
	Children []nodeDoc `yaml:"children"`
}

// nodeDoc is one entry of a children list. Exactly one of Dir and File is set.
type nodeDoc struct {
	Dir      *string   `yaml:"dir"`
	File     *string   `yaml:"file"`
	Ext      string    `yaml:"ext"`
	Size     *int64    `yaml:"size"`
	Content  string    `yaml:"content"`
	Children []nodeDoc `yaml:"children"`
}

// LoadYAMLFile reads and parses a YAML tree document from disk.
func LoadYAMLFile(path string) (*tree.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}

	root, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// ParseYAML parses a YAML tree document. Unknown keys are rejected.
func ParseYAML(data []byte) (*tree.Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty tree document", ufind.ErrInvalidTree)
		}
		return nil, fmt.Errorf("%w: %v", ufind.ErrInvalidTree, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: a tree file holds exactly one YAML document", ufind.ErrInvalidTree)
	}

	children, err := buildChildren(doc.Children, ufind.RootPath)
	if err != nil {
		return nil, err
	}
	return tree.NewDirectory(doc.Name, children...), nil
}

func buildChildren(docs []nodeDoc, parent string) ([]tree.Node, error) {
	nodes := make([]tree.Node, 0, len(docs))
	seen := make(map[string]bool, len(docs))

	for i, d := range docs {
		n, err := buildNode(d, parent, i)
		if err != nil {
			return nil, err
		}

		key := entryName(n)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s: duplicate name %q", ufind.ErrInvalidTree, parent, key)
		}
		seen[key] = true
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildNode(d nodeDoc, parent string, index int) (tree.Node, error) {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s: entry %d: %s", ufind.ErrInvalidTree, parent, index+1, fmt.Sprintf(format, args...))
	}

	switch {
	case d.Dir != nil && d.File != nil:
		return nil, invalid("both dir and file set")
	case d.Dir == nil && d.File == nil:
		return nil, invalid("one of dir or file is required")
	}

	if d.Dir != nil {
		if err := checkName(*d.Dir); err != nil {
			return nil, invalid("%v", err)
		}
		if d.Ext != "" || d.Size != nil || d.Content != "" {
			return nil, invalid("directory %q cannot have ext, size or content", *d.Dir)
		}
		children, err := buildChildren(d.Children, joinChild(parent, *d.Dir))
		if err != nil {
			return nil, err
		}
		return tree.NewDirectory(*d.Dir, children...), nil
	}

	if err := checkName(*d.File); err != nil {
		return nil, invalid("%v", err)
	}
	if len(d.Children) > 0 {
		return nil, invalid("file %q cannot have children", *d.File)
	}
	if strings.Contains(d.Ext, ufind.PathSeparator) {
		return nil, invalid("extension %q contains %q", d.Ext, ufind.PathSeparator)
	}

	size := uint64(len(d.Content))
	if d.Size != nil {
		if *d.Size < 0 {
			return nil, invalid("file %q has negative size %d", *d.File, *d.Size)
		}
		size = uint64(*d.Size)
	}

	var content []byte
	if d.Content != "" {
		content = []byte(d.Content)
	}
	return tree.NewFile(*d.File, d.Ext, size, content), nil
}

func checkName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	if strings.Contains(name, ufind.PathSeparator) {
		return fmt.Errorf("name %q contains %q", name, ufind.PathSeparator)
	}
	return nil
}

// entryName is the name a node occupies in its parent: files include their
// extension.
func entryName(n tree.Node) string {
	if f, ok := tree.AsFile(n); ok {
		return f.FileName()
	}
	return n.Name()
}

func joinChild(parent, name string) string {
	if parent == ufind.RootPath {
		return parent + name
	}
	return parent + ufind.PathSeparator + name
}
