package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Usage thresholds: below green is calm, below yellow is busy, above is hot.
const (
	thresholdGreen  = 50.0
	thresholdYellow = 80.0
)

// palette holds the styles for one render pass. All styles are created from
// a renderer with an explicitly pinned color profile, so output never depends
// on the terminal the process happens to be attached to.
type palette struct {
	label  lipgloss.Style
	banner lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	busy   lipgloss.Style
	hot    lipgloss.Style
}

func newPalette(color bool) palette {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return palette{
		label:  r.NewStyle().Bold(true),
		banner: r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:    r.NewStyle().Faint(true),
		good:   r.NewStyle().Foreground(lipgloss.Color("2")),
		busy:   r.NewStyle().Foreground(lipgloss.Color("3")),
		hot:    r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// byPercent picks the style for a usage percentage.
func (p palette) byPercent(percent float64) lipgloss.Style {
	switch {
	case percent < thresholdGreen:
		return p.good
	case percent < thresholdYellow:
		return p.busy
	default:
		return p.hot
	}
}
