package render

import (
	"fmt"
	"io"

	"github.com/docker/go-units"

	"github.com/budymann/OODesign/internal/files/tree"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// Summary counts the entries printed by Tree, not including the starting
// directory.
type Summary struct {
	Directories int
	Files       int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Directories, plural(s.Directories, "directory", "directories"),
		s.Files, plural(s.Files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Tree writes dir and its descendants to w, one entry per line, followed by
// a blank line and the summary. label is printed in place of the directory
// name on the first line.
func Tree(w io.Writer, dir *tree.Directory, label string, st *Styles) (Summary, error) {
	p := &treePrinter{w: w, st: st}
	p.line("", st.Directory.Render(label))
	p.children(dir, "")
	if p.err != nil {
		return p.sum, p.err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", p.sum)
	return p.sum, err
}

type treePrinter struct {
	w   io.Writer
	st  *Styles
	sum Summary
	err error
}

func (p *treePrinter) children(dir *tree.Directory, prefix string) {
	n := dir.Len()
	for i := 0; i < n && p.err == nil; i++ {
		branch, indent := branchMid, indentMid
		if i == n-1 {
			branch, indent = branchLast, indentLast
		}

		switch v := dir.Child(i).(type) {
		case *tree.Directory:
			p.sum.Directories++
			p.line(prefix+branch, p.st.Directory.Render(v.Name()))
			p.children(v, prefix+indent)
		case *tree.File:
			p.sum.Files++
			p.line(prefix+branch, FileLabel(v, p.st))
		}
	}
}

func (p *treePrinter) line(prefix, text string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", p.st.Muted.Render(prefix), text)
}

// FileLabel renders a file name followed by its human-readable size.
func FileLabel(f *tree.File, st *Styles) string {
	return st.File.Render(f.FileName()) + " " + st.Muted.Render("("+units.HumanSize(float64(f.Size()))+")")
}
