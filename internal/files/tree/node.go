package tree

import "bytes"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is an element of the tree: a *File or a *Directory.
type Node interface {
	// Name returns the node name as used in path segments.
	Name() string

	// Kind reports which variant the node is.
	Kind() Kind

	node()
}

// File is a terminal node.
type File struct {
	name      string
	extension string
	size      uint64
	content   []byte
}

// NewFile creates a file. The extension is stored without a leading dot.
// The content is copied and is never inspected by searches.
func NewFile(name, extension string, size uint64, content []byte) *File {
	return &File{
		name:      name,
		extension: extension,
		size:      size,
		content:   bytes.Clone(content),
	}
}

func (f *File) Name() string      { return f.name }
func (f *File) Kind() Kind        { return KindFile }
func (f *File) Extension() string { return f.extension }
func (f *File) Size() uint64      { return f.size }
func (f *File) node()             {}

// Content returns a copy of the file content.
func (f *File) Content() []byte { return bytes.Clone(f.content) }

// FileName returns the display form name.extension, or just the name when
// the file has no extension.
func (f *File) FileName() string {
	if f.extension == "" {
		return f.name
	}
	return f.name + "." + f.extension
}

// Directory is an inner node holding an ordered list of children.
type Directory struct {
	name     string
	children []Node
}

// NewDirectory creates a directory with the given children in order.
// Nil children are dropped.
func NewDirectory(name string, children ...Node) *Directory {
	kept := make([]Node, 0, len(children))
	for _, c := range children {
		if c == nil || isNilNode(c) {
			continue
		}
		kept = append(kept, c)
	}
	return &Directory{name: name, children: kept}
}

func (d *Directory) Name() string { return d.name }
func (d *Directory) Kind() Kind   { return KindDirectory }
func (d *Directory) Len() int     { return len(d.children) }
func (d *Directory) node()        {}

// Children returns the children in stored order. The returned slice is a
// copy; the nodes themselves are shared.
func (d *Directory) Children() []Node {
	out := make([]Node, len(d.children))
	copy(out, d.children)
	return out
}

// Child returns the i-th child in stored order.
func (d *Directory) Child(i int) Node { return d.children[i] }

// AsFile returns n as a *File if it is one.
func AsFile(n Node) (*File, bool) {
	f, ok := n.(*File)
	return f, ok && f != nil
}

// AsDirectory returns n as a *Directory if it is one.
func AsDirectory(n Node) (*Directory, bool) {
	d, ok := n.(*Directory)
	return d, ok && d != nil
}

// isNilNode catches typed nil pointers stored in the interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *File:
		return v == nil
	case *Directory:
		return v == nil
	}
	return false
}
