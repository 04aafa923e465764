package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style
	Readout  lipgloss.Style
	Good     lipgloss.Style
	Warn     lipgloss.Style
	Bad      lipgloss.Style
	Link     lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Cursor:   lipgloss.NewStyle().Foreground(t.Primary),
		Label:    lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Value:    lipgloss.NewStyle().Foreground(t.Accent),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Readout: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Dim).
			Padding(0, 1),
		Good: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Warn: lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Bad:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Link: lipgloss.NewStyle().Underline(true).Foreground(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Dim).
			Padding(0, 1),
	}
}

// Grade colors a group size: sub-MOA is good, up to 2 MOA is fair.
func (s Styles) Grade(moa float64) lipgloss.Style {
	switch {
	case moa <= 1:
		return s.Good
	case moa <= 2:
		return s.Warn
	}
	return s.Bad
}

// Gauge renders a bar showing where x sits in [lo, hi].
func Gauge(x, lo, hi float64, width int, fill, empty lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	frac := 0.0
	if hi > lo {
		frac = (x - lo) / (hi - lo)
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("━", filled)) + empty.Render(strings.Repeat("─", width-filled))
}

// Separator draws a horizontal rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 1 {
		return ""
	}
	return style.Render(strings.Repeat("─", width))
}
