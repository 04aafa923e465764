package ballistics

import (
	"errors"
	"math"
	"testing"
)

func TestKineticEnergy(t *testing.T) {
	tests := []struct {
		name   string
		grains float64
		fps    float64
		want   float64
	}{
		{"308 win", 168, 2650, 2619.96},
		{"150gr at 3000", 150, 3000, 2997.10},
		{"223 rem", 55, 3240, 1281.75},
	}

	for _, tt := range tests {
		got := KineticEnergy(tt.grains, tt.fps)
		if math.Abs(got-tt.want) > 1.0 {
			t.Errorf("%s: expected %.2f, got %.2f", tt.name, tt.want, got)
		}
	}
}

func TestMOA(t *testing.T) {
	moa := MOA(2620, 12)
	if math.Abs(moa-1.092) > 0.01 {
		t.Errorf("expected 1.092, got %f", moa)
	}
}

func TestMOAHeavierRifle(t *testing.T) {
	ke := 2620.0
	light := MOA(ke, 8)
	heavy := MOA(ke, 16)
	if heavy >= light {
		t.Errorf("heavier rifle should shoot smaller groups: light %f heavy %f", light, heavy)
	}
}

func TestMOAMonotonicInRifleWeight(t *testing.T) {
	ke := 1500.0
	prev := math.Inf(1)
	for w := 5.0; w <= 50; w += 0.5 {
		moa := MOA(ke, w)
		if moa >= prev {
			t.Fatalf("moa not decreasing at %.1f lbs: %f >= %f", w, moa, prev)
		}
		prev = moa
	}
}

func TestMOAZeroRifle(t *testing.T) {
	if !math.IsInf(MOA(1000, 0), 1) {
		t.Error("expected +Inf for zero rifle weight")
	}
}

func TestFullCalculationChain(t *testing.T) {
	moa := MOA(KineticEnergy(168, 2650), 12)
	if moa <= 1.0 || moa >= 1.2 {
		t.Errorf("expected moa in (1.0, 1.2), got %f", moa)
	}
	if got := GroupSize(DefaultInputs()); got != moa {
		t.Errorf("GroupSize disagrees with chain: %f vs %f", got, moa)
	}
}

func TestFiniteAcrossRange(t *testing.T) {
	for _, g := range []float64{50, 125, 275, 500} {
		for _, v := range []float64{500, 1750, 3200, 5000} {
			for _, w := range []float64{5, 12, 30, 50} {
				ke := KineticEnergy(g, v)
				moa := MOA(ke, w)
				if math.IsInf(ke, 0) || math.IsNaN(ke) || ke <= 0 {
					t.Fatalf("ke(%g, %g) = %f", g, v, ke)
				}
				if math.IsInf(moa, 0) || math.IsNaN(moa) || moa <= 0 {
					t.Fatalf("moa(%g, %g, %g) = %f", g, v, w, moa)
				}
			}
		}
	}
}

func TestValueForOneMOAUnits(t *testing.T) {
	in := DefaultInputs()
	tests := []struct {
		a, b Variable
		unit string
	}{
		{Projectile, Velocity, "lbs"},
		{Projectile, RifleWeight, "fps"},
		{Velocity, RifleWeight, "gr"},
	}

	for _, tt := range tests {
		pair, err := NewPair(tt.a, tt.b)
		if err != nil {
			t.Fatalf("pair %v/%v: %v", tt.a, tt.b, err)
		}
		_, unit := ValueForOneMOA(in, pair)
		if unit != tt.unit {
			t.Errorf("pair %s: expected unit %s, got %s", pair, tt.unit, unit)
		}
	}
}

func TestValueForOneMOAYieldsOneMOA(t *testing.T) {
	in := DefaultInputs()
	for _, free := range Variables {
		value, _ := ValueForOneMOA(in, PairExcluding(free))
		moa := GroupSize(in.With(free, value))
		if math.Abs(moa-1.0) > 1e-9 {
			t.Errorf("solving for %s: expected 1.0 moa, got %f", free, moa)
		}
	}
}

func TestValueForOneMOADefaults(t *testing.T) {
	in := DefaultInputs()
	value, _ := ValueForOneMOA(in, PairExcluding(RifleWeight))
	if math.Abs(value-13.1) > 0.05 {
		t.Errorf("expected ~13.1 lbs, got %f", value)
	}
}

func TestNewPair(t *testing.T) {
	if _, err := NewPair(Velocity, Velocity); !errors.Is(err, ErrInvalidPair) {
		t.Errorf("expected ErrInvalidPair, got %v", err)
	}
	if _, err := NewPair(Variable(7), Velocity); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("expected ErrUnknownVariable, got %v", err)
	}

	a, _ := NewPair(RifleWeight, Projectile)
	b, _ := NewPair(Projectile, RifleWeight)
	if a != b {
		t.Error("pair should not depend on argument order")
	}
	if a.Free() != Velocity {
		t.Errorf("expected free velocity, got %s", a.Free())
	}
}

func TestPairExcluding(t *testing.T) {
	for _, free := range Variables {
		p := PairExcluding(free)
		if p.Contains(free) {
			t.Errorf("pair for %s contains it", free)
		}
		if p.Free() != free {
			t.Errorf("expected free %s, got %s", free, p.Free())
		}
	}
}
