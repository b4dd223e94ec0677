package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// labelWidth pads labels so values line up
const labelWidth = 12

// styles are bound to one lipgloss renderer so color detection follows
// the writer the output goes to
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	match lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, highlight string) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		label: r.NewStyle().
			Foreground(colorMuted).
			Width(labelWidth),

		match: r.NewStyle().
			Foreground(lipgloss.Color(highlight)).
			Bold(true).
			Underline(true).
			TabWidth(lipgloss.NoTabConversion),

		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		ok: r.NewStyle().
			Foreground(colorSecondary),

		err: r.NewStyle().
			Foreground(colorError),
	}
}
