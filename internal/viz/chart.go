package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/topgun/internal/plotdata"
)

const (
	MinChartWidth  = 20
	MinChartHeight = 5
)

// chartOrder puts the three legend-bearing lines first so each legend
// entry is listed once.
var chartOrder = []plotdata.Band{
	plotdata.BandSD2Upper,
	plotdata.BandSD1Upper,
	plotdata.BandExpected,
	plotdata.BandSD1Lower,
	plotdata.BandSD2Lower,
}

// ChartOptions controls terminal chart rendering.
type ChartOptions struct {
	Width   int
	Height  int
	Theme   Theme
	Color   bool
	Caption string
}

// Chart draws the five series of s with asciigraph. The y-axis is the group
// size; an x-axis ruler with the domain endpoints is appended below.
func Chart(s *plotdata.Series, opts ChartOptions) string {
	if s == nil || s.Len() == 0 {
		return ""
	}
	if opts.Width < MinChartWidth {
		opts.Width = MinChartWidth
	}
	if opts.Height < MinChartHeight {
		opts.Height = MinChartHeight
	}

	lines := s.Lines()
	data := make([][]float64, len(chartOrder))
	colors := make([]asciigraph.AnsiColor, len(chartOrder))
	for i, b := range chartOrder {
		data[i] = plotdata.Ys(lines[b].Points)
		colors[i] = asciigraph.Default
		if opts.Color {
			colors[i] = opts.Theme.Bands[b]
		}
	}

	caption := opts.Caption
	if caption == "" {
		caption = s.YLabel
	}

	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(plotdata.LegendSD2, plotdata.LegendSD1, plotdata.LegendExpected),
	}
	if opts.Color {
		options = append(options,
			asciigraph.AxisColor(opts.Theme.Axis),
			asciigraph.LabelColor(opts.Theme.Axis),
		)
	}

	graph := asciigraph.PlotMany(data, options...)
	return graph + "\n" + XAxis(s, opts.Width)
}

// XAxis renders "lo ... label ... hi" across width columns.
func XAxis(s *plotdata.Series, width int) string {
	if s.Len() == 0 {
		return ""
	}
	lo := fmt.Sprintf("%g", s.Expected[0].X)
	hi := fmt.Sprintf("%g", s.Expected[s.Len()-1].X)
	label := s.XLabel

	gap := width - len(lo) - len(hi) - len(label)
	if gap < 2 {
		return lo + " " + label + " " + hi
	}
	left := gap / 2
	return lo + strings.Repeat(" ", left) + label + strings.Repeat(" ", gap-left) + hi
}

// Marker renders a caret under the XAxis ruler at x.
func Marker(s *plotdata.Series, x float64, width int) string {
	if s.Len() < 2 || width < 1 {
		return ""
	}
	lo, hi := s.Expected[0].X, s.Expected[s.Len()-1].X
	col := 0
	if hi > lo {
		col = int((x-lo)/(hi-lo)*float64(width-1) + 0.5)
	}
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return strings.Repeat(" ", col) + "▲"
}
