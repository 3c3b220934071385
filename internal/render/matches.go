package render

import (
	"fmt"
	"io"
	"path"

	"github.com/budymann/OODesign/internal/files/filesystem"
)

// Matches writes the absolute path of every match, one per line, with the
// parent path muted and the file name highlighted. Nothing is written for an
// empty result.
func Matches(w io.Writer, matches []filesystem.Match, st *Styles) error {
	for _, m := range matches {
		dir, _ := path.Split(m.Path)
		_, err := fmt.Fprintf(w, "%s%s\n", st.Muted.Render(dir), st.Match.Render(m.File.FileName()))
		if err != nil {
			return err
		}
	}
	return nil
}
