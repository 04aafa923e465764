// Package plotdata samples the precision formula along the free variable's
// axis and derives the confidence bands drawn around it.
//
// The bands are fixed multiples of the expected group size. They are labelled
// 1σ and 2σ but are not computed from any distribution.
package plotdata

import (
	"math"

	"github.com/san-kum/topgun/internal/ballistics"
)

const (
	// Samples is the number of points along the x-axis.
	Samples = 200

	YLabel = "5-Round Group Size (MOA)"

	SD1Upper = 1.15
	SD1Lower = 0.85
	SD2Upper = 1.30
	SD2Lower = 0.70
)

const (
	LegendExpected = "Expected Precision"
	LegendSD1      = "1σ (68%)"
	LegendSD2      = "2σ (95%)"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Band identifies one of the five generated lines.
type Band int

const (
	BandSD2Upper Band = iota
	BandSD2Lower
	BandSD1Upper
	BandSD1Lower
	BandExpected
)

func (b Band) Factor() float64 {
	switch b {
	case BandSD2Upper:
		return SD2Upper
	case BandSD2Lower:
		return SD2Lower
	case BandSD1Upper:
		return SD1Upper
	case BandSD1Lower:
		return SD1Lower
	}
	return 1
}

func (b Band) Legend() string {
	switch b {
	case BandSD2Upper, BandSD2Lower:
		return LegendSD2
	case BandSD1Upper, BandSD1Lower:
		return LegendSD1
	}
	return LegendExpected
}

func (b Band) Upper() bool {
	return b == BandSD1Upper || b == BandSD2Upper
}

// Line is one named series ready for rendering.
type Line struct {
	Band   Band
	Name   string
	Points []Point
}

// Series is the full chart for one free variable.
type Series struct {
	Free     ballistics.Variable
	XLabel   string
	YLabel   string
	Expected []Point
	SD1Upper []Point
	SD1Lower []Point
	SD2Upper []Point
	SD2Lower []Point
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// Generate samples free across its range with the other two inputs held at
// their values in in.
func Generate(in ballistics.Inputs, free ballistics.Variable) *Series {
	return generate(in, free, Samples)
}

func generate(in ballistics.Inputs, free ballistics.Variable, n int) *Series {
	r := free.Range()
	xs := Linspace(r.Min, r.Max, n)

	s := &Series{
		Free:     free,
		XLabel:   free.AxisLabel(),
		YLabel:   YLabel,
		Expected: make([]Point, len(xs)),
		SD1Upper: make([]Point, len(xs)),
		SD1Lower: make([]Point, len(xs)),
		SD2Upper: make([]Point, len(xs)),
		SD2Lower: make([]Point, len(xs)),
	}

	for i, x := range xs {
		moa := ballistics.GroupSize(in.With(free, x))
		s.Expected[i] = Point{x, moa}
		s.SD1Upper[i] = Point{x, moa * SD1Upper}
		s.SD1Lower[i] = Point{x, moa * SD1Lower}
		s.SD2Upper[i] = Point{x, moa * SD2Upper}
		s.SD2Lower[i] = Point{x, moa * SD2Lower}
	}
	return s
}

// FromExpected rebuilds the bands around a stored expected curve.
func FromExpected(free ballistics.Variable, expected []Point) *Series {
	s := &Series{
		Free:     free,
		XLabel:   free.AxisLabel(),
		YLabel:   YLabel,
		Expected: expected,
		SD1Upper: make([]Point, len(expected)),
		SD1Lower: make([]Point, len(expected)),
		SD2Upper: make([]Point, len(expected)),
		SD2Lower: make([]Point, len(expected)),
	}
	for i, p := range expected {
		s.SD1Upper[i] = Point{p.X, p.Y * SD1Upper}
		s.SD1Lower[i] = Point{p.X, p.Y * SD1Lower}
		s.SD2Upper[i] = Point{p.X, p.Y * SD2Upper}
		s.SD2Lower[i] = Point{p.X, p.Y * SD2Lower}
	}
	return s
}

// Lines returns the series in draw order, expected last so it sits on top.
func (s *Series) Lines() []Line {
	return []Line{
		{BandSD2Upper, LegendSD2, s.SD2Upper},
		{BandSD2Lower, LegendSD2, s.SD2Lower},
		{BandSD1Upper, LegendSD1, s.SD1Upper},
		{BandSD1Lower, LegendSD1, s.SD1Lower},
		{BandExpected, LegendExpected, s.Expected},
	}
}

func (s *Series) Len() int {
	return len(s.Expected)
}

// Bounds returns the x and y extents across every line.
func (s *Series) Bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, l := range s.Lines() {
		for _, p := range l.Points {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, maxX, minY, maxY
}

// Ys extracts the y values of points.
func Ys(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}

// Nearest returns the first point whose x is closest to x.
func Nearest(points []Point, x float64) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	bestDist := math.Abs(best.X - x)
	for _, p := range points[1:] {
		if d := math.Abs(p.X - x); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}
