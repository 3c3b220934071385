package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles holds the styles used by one command's output.
type Styles struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Match     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

// NewStyles builds styles bound to w. With color false every style renders
// its input unchanged.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Directory: r.NewStyle().Bold(true).Foreground(ColorPrimary),
		File:      r.NewStyle(),
		Match:     r.NewStyle().Foreground(ColorSuccess),
		Muted:     r.NewStyle().Foreground(ColorMuted),
		Error:     r.NewStyle().Foreground(ColorError),
		Warning:   r.NewStyle().Foreground(ColorWarning),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain() *Styles {
	return NewStyles(io.Discard, false)
}
