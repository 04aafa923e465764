package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/topgun/internal/ballistics"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	panelX     = 40
	rowTop     = 150
	rowSpacing = 70
	sliderX    = 300
	sliderW    = 240
	sliderH    = 14
)

var (
	modeButton = rl.NewRectangle(panelX, 100, 220, 28)
	saveButton = rl.NewRectangle(panelX+240, 100, 120, 28)
	chartRect  = rl.NewRectangle(680, 90, 540, 400)
)

func rowY(i int) float32 {
	return float32(rowTop + i*rowSpacing)
}

// checkboxRect is the toggle box for row i.
func checkboxRect(i int) rl.Rectangle {
	return rl.NewRectangle(panelX, rowY(i)+2, 20, 20)
}

func sliderRect(i int) rl.Rectangle {
	return rl.NewRectangle(sliderX, rowY(i)+34, sliderW, sliderH)
}

// sliderValue maps a mouse x over r onto v's range, clamped.
func sliderValue(r rl.Rectangle, v ballistics.Variable, mouseX float32) float64 {
	rng := v.Range()
	t := float64((mouseX - r.X) / r.Width)
	return rng.Clamp(rng.Min + t*rng.Span())
}

// sliderPos is the inverse of sliderValue.
func sliderPos(r rl.Rectangle, v ballistics.Variable, value float64) float32 {
	rng := v.Range()
	t := (rng.Clamp(value) - rng.Min) / rng.Span()
	return r.X + float32(t)*r.Width
}

// plotArea maps data coordinates into a screen rectangle with the y-axis
// pointing up.
type plotArea struct {
	rect       rl.Rectangle
	minX, maxX float64
	minY, maxY float64
}

func newPlotArea(rect rl.Rectangle, minX, maxX, minY, maxY float64) plotArea {
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}
	return plotArea{rect: rect, minX: minX, maxX: maxX, minY: minY, maxY: maxY}
}

func (p plotArea) toScreen(x, y float64) rl.Vector2 {
	sx := p.rect.X + float32((x-p.minX)/(p.maxX-p.minX))*p.rect.Width
	sy := p.rect.Y + p.rect.Height - float32((y-p.minY)/(p.maxY-p.minY))*p.rect.Height
	return rl.NewVector2(sx, sy)
}

// dataX converts a screen x back into the data domain.
func (p plotArea) dataX(sx float32) float64 {
	return p.minX + float64((sx-p.rect.X)/p.rect.Width)*(p.maxX-p.minX)
}

func (p plotArea) contains(pt rl.Vector2) bool {
	return inside(pt, p.rect)
}

func inside(pt rl.Vector2, r rl.Rectangle) bool {
	return pt.X >= r.X && pt.X <= r.X+r.Width && pt.Y >= r.Y && pt.Y <= r.Y+r.Height
}
