package ballistics

import (
	"fmt"
	"strings"
)

// Variable identifies one of the three formula inputs.
type Variable int

const (
	Projectile Variable = iota
	Velocity
	RifleWeight
)

// Variables lists every input in display order.
var Variables = []Variable{Projectile, Velocity, RifleWeight}

var variableNames = map[Variable]string{
	Projectile:  "projectile",
	Velocity:    "velocity",
	RifleWeight: "weight",
}

var variableAliases = map[string]Variable{
	"projectile":   Projectile,
	"bullet":       Projectile,
	"grains":       Projectile,
	"velocity":     Velocity,
	"mv":           Velocity,
	"fps":          Velocity,
	"weight":       RifleWeight,
	"rifle":        RifleWeight,
	"rifle_weight": RifleWeight,
}

var ranges = map[Variable]Range{
	Projectile:  {Min: 50, Max: 500},
	Velocity:    {Min: 500, Max: 5000},
	RifleWeight: {Min: 5, Max: 50},
}

func (v Variable) String() string {
	if name, ok := variableNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variable(%d)", int(v))
}

// Label is the short human name shown next to controls.
func (v Variable) Label() string {
	switch v {
	case Projectile:
		return "Projectile Weight"
	case Velocity:
		return "Velocity"
	case RifleWeight:
		return "Rifle Weight"
	}
	return v.String()
}

func (v Variable) Unit() string {
	switch v {
	case Projectile:
		return "gr"
	case Velocity:
		return "fps"
	case RifleWeight:
		return "lbs"
	}
	return ""
}

// AxisLabel is the chart x-axis caption used when v is the free variable.
func (v Variable) AxisLabel() string {
	switch v {
	case Projectile:
		return "Projectile Weight (grains)"
	case Velocity:
		return "Muzzle Velocity (fps)"
	case RifleWeight:
		return "Rifle Weight (lbs)"
	}
	return v.String()
}

func (v Variable) Range() Range {
	return ranges[v]
}

func (v Variable) Valid() bool {
	_, ok := variableNames[v]
	return ok
}

func ParseVariable(s string) (Variable, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	if v, ok := variableAliases[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, s)
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

func (r Range) Clamp(x float64) float64 {
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

const (
	DefaultProjectile = 168.0
	DefaultVelocity   = 2650.0
	DefaultRifle      = 12.0
)

// Inputs holds the three slider values.
type Inputs struct {
	ProjectileGrains float64 `json:"projectile_grains" yaml:"projectile"`
	VelocityFPS      float64 `json:"velocity_fps" yaml:"velocity"`
	RifleLbs         float64 `json:"rifle_lbs" yaml:"rifle_weight"`
}

func DefaultInputs() Inputs {
	return Inputs{
		ProjectileGrains: DefaultProjectile,
		VelocityFPS:      DefaultVelocity,
		RifleLbs:         DefaultRifle,
	}
}

func (in Inputs) Get(v Variable) float64 {
	switch v {
	case Projectile:
		return in.ProjectileGrains
	case Velocity:
		return in.VelocityFPS
	case RifleWeight:
		return in.RifleLbs
	}
	return 0
}

// With returns a copy with v replaced by x. The value is not clamped so the
// plot generator can sample the full axis.
func (in Inputs) With(v Variable, x float64) Inputs {
	switch v {
	case Projectile:
		in.ProjectileGrains = x
	case Velocity:
		in.VelocityFPS = x
	case RifleWeight:
		in.RifleLbs = x
	}
	return in
}

// Set assigns x to v, clamped to v's range.
func (in *Inputs) Set(v Variable, x float64) {
	*in = in.With(v, v.Range().Clamp(x))
}

func (in Inputs) Clamp() Inputs {
	for _, v := range Variables {
		in.Set(v, in.Get(v))
	}
	return in
}

// Validate reports the first input outside its range.
func (in Inputs) Validate() error {
	for _, v := range Variables {
		x := in.Get(v)
		r := v.Range()
		if !r.Contains(x) {
			return &InputError{Variable: v, Value: x, Range: r}
		}
	}
	return nil
}

// Pair is the two variables held constant while the third is derived or
// graphed.
type Pair struct {
	a, b Variable
}

func NewPair(a, b Variable) (Pair, error) {
	if !a.Valid() || !b.Valid() {
		return Pair{}, ErrUnknownVariable
	}
	if a == b {
		return Pair{}, ErrInvalidPair
	}
	if a > b {
		a, b = b, a
	}
	return Pair{a: a, b: b}, nil
}

// PairExcluding returns the pair formed by the two variables other than free.
func PairExcluding(free Variable) Pair {
	var held []Variable
	for _, v := range Variables {
		if v != free {
			held = append(held, v)
		}
	}
	return Pair{a: held[0], b: held[1]}
}

func (p Pair) Variables() (Variable, Variable) {
	return p.a, p.b
}

func (p Pair) Contains(v Variable) bool {
	return p.a == v || p.b == v
}

// Free returns the variable not in the pair.
func (p Pair) Free() Variable {
	for _, v := range Variables {
		if !p.Contains(v) {
			return v
		}
	}
	return p.a
}

func (p Pair) String() string {
	return p.a.String() + "+" + p.b.String()
}
