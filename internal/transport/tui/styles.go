package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorGray      = lipgloss.Color("#646464")
	colorLightBlue = lipgloss.Color("#6464FF")
	colorDarkBlue  = lipgloss.Color("#323296")
	colorGreen     = lipgloss.Color("#00FF00")
	colorRed       = lipgloss.Color("#FF0000")
	colorPlayer    = lipgloss.Color("#00C8FF")
	colorComputer  = lipgloss.Color("#FF6464")
)

type styles struct {
	title       lipgloss.Style
	text        lipgloss.Style
	muted       lipgloss.Style
	grid        lipgloss.Style
	player      lipgloss.Style
	computer    lipgloss.Style
	winning     lipgloss.Style
	button      lipgloss.Style
	buttonHover lipgloss.Style
	victory     lipgloss.Style
	defeat      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:       r.NewStyle().Foreground(colorWhite).Bold(true),
		text:        r.NewStyle().Foreground(colorWhite),
		muted:       r.NewStyle().Foreground(colorGray),
		grid:        r.NewStyle().Foreground(colorWhite),
		player:      r.NewStyle().Foreground(colorPlayer).Bold(true),
		computer:    r.NewStyle().Foreground(colorComputer).Bold(true),
		winning:     r.NewStyle().Foreground(colorGreen).Bold(true).Underline(true),
		button:      r.NewStyle().Foreground(colorWhite).Background(colorDarkBlue),
		buttonHover: r.NewStyle().Foreground(colorWhite).Background(colorLightBlue),
		victory:     r.NewStyle().Foreground(colorGreen).Bold(true),
		defeat:      r.NewStyle().Foreground(colorRed).Bold(true),
	}
}

// NewRenderer builds a lipgloss renderer for w. noColor forces plain ASCII output.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return renderer
}
