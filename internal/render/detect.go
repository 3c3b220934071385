package render

import (
	"os"

	"golang.org/x/term"
)

// DetectColor reports whether output written to f should be styled.
//
// "always" and "never" are honoured as given. For "auto" (or ""), colour is
// disabled when NO_COLOR is set, when CI is set, or when f is not a terminal.
func DetectColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
