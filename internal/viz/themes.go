package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/topgun/internal/plotdata"
)

// Theme defines the color scheme for the TUI and its chart.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Band colors for asciigraph, indexed by plotdata.Band.
	Bands [5]asciigraph.AnsiColor
	Axis  asciigraph.AnsiColor
}

// Available themes
var (
	ThemeLongrange = Theme{
		Name:    "longrange",
		Primary: lipgloss.Color("#1e90ff"), // Dodger blue
		Accent:  lipgloss.Color("#ffc800"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#8a8a8a"),
		Dim:     lipgloss.Color("#4e4e4e"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff6464"),
		Bands: [5]asciigraph.AnsiColor{
			plotdata.BandSD2Upper: asciigraph.IndianRed,
			plotdata.BandSD2Lower: asciigraph.IndianRed,
			plotdata.BandSD1Upper: asciigraph.Gold,
			plotdata.BandSD1Lower: asciigraph.Gold,
			plotdata.BandExpected: asciigraph.DodgerBlue,
		},
		Axis: asciigraph.Gray,
	}

	ThemeNight = Theme{
		Name:    "night",
		Primary: lipgloss.Color("#ff4444"),
		Accent:  lipgloss.Color("#aa2222"),
		Text:    lipgloss.Color("#ffcccc"),
		Muted:   lipgloss.Color("#884444"),
		Dim:     lipgloss.Color("#442222"),
		Success: lipgloss.Color("#ff8888"),
		Warning: lipgloss.Color("#ff6666"),
		Error:   lipgloss.Color("#ffffff"),
		Bands: [5]asciigraph.AnsiColor{
			plotdata.BandSD2Upper: asciigraph.DarkRed,
			plotdata.BandSD2Lower: asciigraph.DarkRed,
			plotdata.BandSD1Upper: asciigraph.Red,
			plotdata.BandSD1Lower: asciigraph.Red,
			plotdata.BandExpected: asciigraph.White,
		},
		Axis: asciigraph.DarkRed,
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Dim:     lipgloss.Color("#444444"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
		Bands: [5]asciigraph.AnsiColor{
			plotdata.BandSD2Upper: asciigraph.DimGray,
			plotdata.BandSD2Lower: asciigraph.DimGray,
			plotdata.BandSD1Upper: asciigraph.DarkGray,
			plotdata.BandSD1Lower: asciigraph.DarkGray,
			plotdata.BandExpected: asciigraph.White,
		},
		Axis: asciigraph.Gray,
	}

	ThemeDesert = Theme{
		Name:    "desert",
		Primary: lipgloss.Color("#d2b48c"), // Tan
		Accent:  lipgloss.Color("#ff9f43"),
		Text:    lipgloss.Color("#fff5e6"),
		Muted:   lipgloss.Color("#a0826d"),
		Dim:     lipgloss.Color("#5c4a3d"),
		Success: lipgloss.Color("#9acd32"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff4757"),
		Bands: [5]asciigraph.AnsiColor{
			plotdata.BandSD2Upper: asciigraph.Sienna,
			plotdata.BandSD2Lower: asciigraph.Sienna,
			plotdata.BandSD1Upper: asciigraph.Goldenrod,
			plotdata.BandSD1Lower: asciigraph.Goldenrod,
			plotdata.BandExpected: asciigraph.Tan,
		},
		Axis: asciigraph.Peru,
	}

	// Default theme
	CurrentTheme = ThemeLongrange

	// All available themes
	Themes = []Theme{
		ThemeLongrange,
		ThemeNight,
		ThemeMinimal,
		ThemeDesert,
	}
)

// GetTheme returns a theme by name, falling back to longrange.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLongrange
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
