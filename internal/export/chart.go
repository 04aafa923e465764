package export

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/san-kum/topgun/internal/plotdata"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultChartWidth  = 8 * vg.Inch
	DefaultChartHeight = 5 * vg.Inch
)

// Colors follow the desktop chart: red 2σ, amber 1σ, blue expected.
var bandColors = map[plotdata.Band]color.Color{
	plotdata.BandSD2Upper: color.NRGBA{R: 255, G: 100, B: 100, A: 160},
	plotdata.BandSD2Lower: color.NRGBA{R: 255, G: 100, B: 100, A: 160},
	plotdata.BandSD1Upper: color.NRGBA{R: 255, G: 200, B: 0, A: 180},
	plotdata.BandSD1Lower: color.NRGBA{R: 255, G: 200, B: 0, A: 180},
	plotdata.BandExpected: color.NRGBA{R: 30, G: 144, B: 255, A: 255},
}

var formats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

func toXYs(points []plotdata.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

// NewPlot builds the chart for series. title may be empty.
func NewPlot(series *plotdata.Series, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = series.XLabel
	p.Y.Label.Text = series.YLabel
	p.Add(plotter.NewGrid())

	legended := make(map[string]bool)
	for _, l := range series.Lines() {
		line, err := plotter.NewLine(toXYs(l.Points))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name, err)
		}
		line.Color = bandColors[l.Band]
		line.Width = vg.Points(1.5)
		if l.Band == plotdata.BandExpected {
			line.Width = vg.Points(2.5)
		}
		p.Add(line)
		if !legended[l.Name] {
			p.Legend.Add(l.Name, line)
			legended[l.Name] = true
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Chart saves the chart to path. The format follows the file extension.
func Chart(path string, series *plotdata.Series, title string, width, height vg.Length) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !formats[ext] {
		return fmt.Errorf("export: unsupported chart format %q", ext)
	}
	p, err := NewPlot(series, title)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

// ChartTo renders the chart in format to w.
func ChartTo(w io.Writer, series *plotdata.Series, title, format string, width, height vg.Length) error {
	if !formats[format] {
		return fmt.Errorf("export: unsupported chart format %q", format)
	}
	p, err := NewPlot(series, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
