package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/topgun/internal/ballistics"
)

func TestSliderRoundTrip(t *testing.T) {
	r := sliderRect(0)
	for _, v := range ballistics.Variables {
		rng := v.Range()
		for _, x := range []float64{rng.Min, rng.Min + rng.Span()/3, rng.Max} {
			got := sliderValue(r, v, sliderPos(r, v, x))
			if math.Abs(got-x) > rng.Span()*1e-4 {
				t.Errorf("%v: round trip %v -> %v", v, x, got)
			}
		}
	}
}

func TestSliderClamps(t *testing.T) {
	r := sliderRect(1)
	rng := ballistics.Velocity.Range()
	if got := sliderValue(r, ballistics.Velocity, r.X-50); got != rng.Min {
		t.Errorf("left of slider = %v, want %v", got, rng.Min)
	}
	if got := sliderValue(r, ballistics.Velocity, r.X+r.Width+50); got != rng.Max {
		t.Errorf("right of slider = %v, want %v", got, rng.Max)
	}
}

func TestPlotAreaMapping(t *testing.T) {
	area := newPlotArea(rl.NewRectangle(100, 50, 200, 100), 0, 10, 0, 5)

	origin := area.toScreen(0, 0)
	if origin.X != 100 || origin.Y != 150 {
		t.Errorf("origin at %+v", origin)
	}
	top := area.toScreen(10, 5)
	if top.X != 300 || top.Y != 50 {
		t.Errorf("top-right at %+v", top)
	}
	if x := area.dataX(200); math.Abs(x-5) > 1e-9 {
		t.Errorf("dataX(200) = %v, want 5", x)
	}
	if !area.contains(rl.NewVector2(150, 100)) || area.contains(rl.NewVector2(50, 100)) {
		t.Error("contains mismatch")
	}
}

func TestPlotAreaDegenerate(t *testing.T) {
	area := newPlotArea(chartRect, 3, 3, 1, 1)
	p := area.toScreen(3, 1)
	if math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)) {
		t.Error("degenerate bounds produced NaN")
	}
}

func TestRowsDoNotOverlap(t *testing.T) {
	for i := 1; i < len(ballistics.Variables); i++ {
		prev := sliderRect(i - 1)
		if checkboxRect(i).Y <= prev.Y+prev.Height {
			t.Errorf("row %d overlaps row %d", i, i-1)
		}
	}
}
