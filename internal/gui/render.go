package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/topgun/internal/plotdata"
	"github.com/san-kum/topgun/internal/viz"
)

const (
	gridTicks    = 5
	footerTop    = 570
	footerSize   = 13
	footerWrap   = 165
	footerLineH  = 17
	footerLinksY = 688
)

var bandColors = [...]rl.Color{
	plotdata.BandSD2Upper: rl.NewColor(255, 100, 100, 170),
	plotdata.BandSD2Lower: rl.NewColor(255, 100, 100, 170),
	plotdata.BandSD1Upper: rl.NewColor(255, 200, 0, 190),
	plotdata.BandSD1Lower: rl.NewColor(255, 200, 0, 190),
	plotdata.BandExpected: ColAccent,
}

// plotArea fits the current series into chartRect with a little headroom.
func (a *App) plotArea() (plotArea, bool) {
	series, ok := a.Sess.Plot()
	if !ok {
		return plotArea{}, false
	}
	return seriesArea(series), true
}

func seriesArea(s *plotdata.Series) plotArea {
	minX, maxX, minY, maxY := s.Bounds()
	pad := (maxY - minY) * 0.05
	return newPlotArea(chartRect, minX, maxX, minY-pad, maxY+pad)
}

func (a *App) drawChart() {
	rl.DrawRectangleRec(chartRect, ColPanel)

	series, ok := a.Sess.Plot()
	if !ok {
		a.drawText("select two variables to plot", int(chartRect.X)+140, int(chartRect.Y+chartRect.Height/2), 18, ColTextDim)
		return
	}
	area := seriesArea(series)
	a.drawGrid(area, series)

	for _, line := range series.Lines() {
		points := make([]rl.Vector2, len(line.Points))
		for i, p := range line.Points {
			points[i] = area.toScreen(p.X, p.Y)
		}
		if line.Band == plotdata.BandExpected {
			for i := 1; i < len(points); i++ {
				rl.DrawLineEx(points[i-1], points[i], 2.5, bandColors[line.Band])
			}
			continue
		}
		rl.DrawLineStrip(points, bandColors[line.Band])
	}

	a.drawLegend()
	a.drawHover(area, series)
}

func (a *App) drawGrid(area plotArea, s *plotdata.Series) {
	r := chartRect
	for i := 0; i <= gridTicks; i++ {
		t := float64(i) / gridTicks

		y := area.minY + t*(area.maxY-area.minY)
		sy := area.toScreen(area.minX, y).Y
		rl.DrawLine(int32(r.X), int32(sy), int32(r.X+r.Width), int32(sy), ColGrid)
		a.drawText(fmt.Sprintf("%.2f", y), int(r.X)-44, int(sy)-7, 13, ColText)

		x := area.minX + t*(area.maxX-area.minX)
		sx := area.toScreen(x, area.minY).X
		rl.DrawLine(int32(sx), int32(r.Y), int32(sx), int32(r.Y+r.Height), ColGrid)
		a.drawText(fmt.Sprintf("%g", roundTick(x)), int(sx)-14, int(r.Y+r.Height)+6, 13, ColText)
	}
	rl.DrawRectangleLinesEx(r, 1, ColTextDim)

	a.drawText(s.XLabel, int(r.X+r.Width/2)-60, int(r.Y+r.Height)+26, 16, ColSelect)
	a.drawText(s.YLabel, int(r.X), int(r.Y)-24, 16, ColSelect)
}

func roundTick(x float64) float64 {
	if x >= 100 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x*10+0.5)) / 10
}

func (a *App) drawLegend() {
	entries := []plotdata.Band{plotdata.BandExpected, plotdata.BandSD1Upper, plotdata.BandSD2Upper}
	x := int(chartRect.X+chartRect.Width) - 170
	y := int(chartRect.Y) + 10
	for _, b := range entries {
		rl.DrawRectangle(int32(x), int32(y+5), 18, 4, bandColors[b])
		a.drawText(b.Legend(), x+26, y, 14, ColText)
		y += 20
	}
}

func (a *App) drawHover(area plotArea, s *plotdata.Series) {
	p, ok := a.Sess.Hover()
	if !ok {
		return
	}
	pt := area.toScreen(p.X, p.Y)
	rl.DrawLine(int32(pt.X), int32(chartRect.Y), int32(pt.X), int32(chartRect.Y+chartRect.Height), ColTextDim)
	rl.DrawCircleV(pt, 5, ColSelect)

	text := fmt.Sprintf("%.1f %s: %.2f MOA", p.X, s.Free.Unit(), p.Y)
	size := rl.MeasureTextEx(a.Font, text, 14, 1)
	box := rl.NewRectangle(pt.X+10, pt.Y-30, size.X+16, size.Y+10)
	if box.X+box.Width > chartRect.X+chartRect.Width {
		box.X = pt.X - box.Width - 10
	}
	if box.Y < chartRect.Y {
		box.Y = pt.Y + 10
	}
	rl.DrawRectangleRec(box, ColBg)
	rl.DrawRectangleLinesEx(box, 1, ColAccent)
	a.drawText(text, int(box.X)+8, int(box.Y)+5, 14, ColSelect)
}

type footerLink struct {
	text string
	url  string
	rect rl.Rectangle
}

func (a *App) footerLinks() []footerLink {
	links := make([]footerLink, 0, len(viz.FooterLinks))
	x := float32(panelX)
	for _, l := range viz.FooterLinks {
		text := l.Label + ": " + l.Title
		size := rl.MeasureTextEx(a.Font, text, footerSize, 1)
		links = append(links, footerLink{
			text: text,
			url:  l.URL,
			rect: rl.NewRectangle(x, footerLinksY, size.X, size.Y),
		})
		x += size.X + 40
	}
	return links
}

func (a *App) drawFooter() {
	rl.DrawLine(panelX, footerTop-10, screenWidth-panelX, footerTop-10, ColGrid)
	y := footerTop
	for _, line := range viz.FooterLines {
		for _, l := range viz.Wrap(line, footerWrap) {
			a.drawText(l, panelX, y, footerSize, ColTextDim)
			y += footerLineH
		}
	}

	mouse := rl.GetMousePosition()
	rl.SetMouseCursor(rl.MouseCursorDefault)
	for _, l := range a.footerLinks() {
		col := ColLink
		if inside(mouse, l.rect) {
			col = ColSelect
			rl.SetMouseCursor(rl.MouseCursorPointingHand)
		}
		a.drawText(l.text, int(l.rect.X), int(l.rect.Y), footerSize, col)
	}
}
