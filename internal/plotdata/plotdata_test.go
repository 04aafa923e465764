package plotdata

import (
	"math"
	"testing"

	"github.com/san-kum/topgun/internal/ballistics"
)

func TestGenerateDomain(t *testing.T) {
	tests := []struct {
		free   ballistics.Variable
		lo, hi float64
		label  string
	}{
		{ballistics.RifleWeight, 5, 50, "Rifle Weight (lbs)"},
		{ballistics.Velocity, 500, 5000, "Muzzle Velocity (fps)"},
		{ballistics.Projectile, 50, 500, "Projectile Weight (grains)"},
	}

	for _, tt := range tests {
		s := Generate(ballistics.DefaultInputs(), tt.free)
		if s.Len() != Samples {
			t.Errorf("%s: expected %d points, got %d", tt.free, Samples, s.Len())
			continue
		}
		if s.Expected[0].X != tt.lo {
			t.Errorf("%s: first x %f, want %f", tt.free, s.Expected[0].X, tt.lo)
		}
		if s.Expected[Samples-1].X != tt.hi {
			t.Errorf("%s: last x %f, want %f", tt.free, s.Expected[Samples-1].X, tt.hi)
		}
		if s.XLabel != tt.label {
			t.Errorf("%s: x label %q, want %q", tt.free, s.XLabel, tt.label)
		}
		if s.YLabel != "5-Round Group Size (MOA)" {
			t.Errorf("unexpected y label %q", s.YLabel)
		}
	}
}

func TestGenerateBands(t *testing.T) {
	const tol = 1e-12
	for _, free := range ballistics.Variables {
		s := Generate(ballistics.DefaultInputs(), free)
		for i, p := range s.Expected {
			checks := []struct {
				name   string
				got    Point
				factor float64
			}{
				{"sd1 upper", s.SD1Upper[i], 1.15},
				{"sd1 lower", s.SD1Lower[i], 0.85},
				{"sd2 upper", s.SD2Upper[i], 1.30},
				{"sd2 lower", s.SD2Lower[i], 0.70},
			}
			for _, c := range checks {
				if c.got.X != p.X {
					t.Fatalf("%s %s[%d]: x %f != %f", free, c.name, i, c.got.X, p.X)
				}
				if math.Abs(c.got.Y-p.Y*c.factor) > tol {
					t.Fatalf("%s %s[%d]: y %f, want %f", free, c.name, i, c.got.Y, p.Y*c.factor)
				}
			}
		}
	}
}

func TestGenerateHoldsOtherInputs(t *testing.T) {
	in := ballistics.DefaultInputs()
	s := Generate(in, ballistics.RifleWeight)
	for _, p := range s.Expected {
		want := ballistics.MOA(ballistics.KineticEnergy(in.ProjectileGrains, in.VelocityFPS), p.X)
		if p.Y != want {
			t.Fatalf("at %f lbs: %f, want %f", p.X, p.Y, want)
		}
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 10, 11)
	for i, x := range xs {
		if math.Abs(x-float64(i)) > 1e-12 {
			t.Errorf("xs[%d] = %f", i, x)
		}
	}
	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n=0")
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("n=1: %v", got)
	}
}

func TestLinesOrder(t *testing.T) {
	s := Generate(ballistics.DefaultInputs(), ballistics.Velocity)
	lines := s.Lines()
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[4].Band != BandExpected || lines[4].Name != LegendExpected {
		t.Errorf("expected line should be drawn last, got %+v", lines[4].Name)
	}
	for _, l := range lines {
		if len(l.Points) != Samples {
			t.Errorf("%s has %d points", l.Name, len(l.Points))
		}
	}
}

func TestBounds(t *testing.T) {
	s := Generate(ballistics.DefaultInputs(), ballistics.RifleWeight)
	minX, maxX, minY, maxY := s.Bounds()
	if minX != 5 || maxX != 50 {
		t.Errorf("x bounds [%f, %f]", minX, maxX)
	}
	// rifle weight 5 gives the largest group, 50 the smallest
	if math.Abs(maxY-s.Expected[0].Y*SD2Upper) > 1e-12 {
		t.Errorf("max y %f", maxY)
	}
	if math.Abs(minY-s.Expected[Samples-1].Y*SD2Lower) > 1e-12 {
		t.Errorf("min y %f", minY)
	}
}

func TestNearest(t *testing.T) {
	points := []Point{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	tests := []struct {
		x    float64
		want Point
	}{
		{-5, Point{0, 1}},
		{1.2, Point{1, 2}},
		{2.5, Point{2, 3}}, // tie resolves to the first found
		{99, Point{3, 4}},
	}

	for _, tt := range tests {
		got, ok := Nearest(points, tt.x)
		if !ok || got != tt.want {
			t.Errorf("Nearest(%f) = %v, want %v", tt.x, got, tt.want)
		}
	}

	if _, ok := Nearest(nil, 1); ok {
		t.Error("expected no point for empty input")
	}
}

func TestFromExpected(t *testing.T) {
	orig := Generate(ballistics.DefaultInputs(), ballistics.Projectile)
	rebuilt := FromExpected(ballistics.Projectile, orig.Expected)
	for i := range orig.Expected {
		if rebuilt.SD2Upper[i] != orig.SD2Upper[i] || rebuilt.SD1Lower[i] != orig.SD1Lower[i] {
			t.Fatalf("band mismatch at %d", i)
		}
	}
}
