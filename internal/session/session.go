// Package session holds the state of one calculator session. Front ends
// own a *Session exclusively and mutate it from their update loop; every
// derived value is recomputed on demand.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/config"
	"github.com/san-kum/topgun/internal/plotdata"
	"github.com/san-kum/topgun/internal/selection"
)

// Mode selects how the held-constant pair is chosen.
type Mode int

const (
	// ModeSelect enables two of the three inputs with checkboxes; the third
	// is derived.
	ModeSelect Mode = iota
	// ModeGraph picks the graphed variable directly.
	ModeGraph
)

func (m Mode) String() string {
	if m == ModeGraph {
		return "graph"
	}
	return "select"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "select", "checkbox":
		return ModeSelect, nil
	case "graph", "dropdown":
		return ModeGraph, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Step sizes used when nudging a value from the keyboard.
var Steps = map[ballistics.Variable]float64{
	ballistics.Projectile:  1,
	ballistics.Velocity:    10,
	ballistics.RifleWeight: 0.1,
}

// Readout is the value of the derived variable that gives exactly 1 MOA.
type Readout struct {
	Variable ballistics.Variable
	Value    float64
	Unit     string
}

func (r Readout) String() string {
	return fmt.Sprintf("1 MOA @ %.1f %s", r.Value, r.Unit)
}

type Session struct {
	Mode      Mode
	Inputs    ballistics.Inputs
	Selection *selection.State
	Graph     ballistics.Variable

	hover   plotdata.Point
	hovered bool
}

func New(mode Mode) *Session {
	return &Session{
		Mode:      mode,
		Inputs:    ballistics.DefaultInputs(),
		Selection: selection.New(),
		Graph:     ballistics.RifleWeight,
	}
}

// FromConfig builds a session from a validated config. Inputs are clamped.
func FromConfig(cfg *config.Config) (*Session, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	free, err := cfg.FreeVariable()
	if err != nil {
		return nil, err
	}
	enabled, err := cfg.EnabledVariables()
	if err != nil {
		return nil, err
	}

	s := New(mode)
	s.Inputs = cfg.GetInputs().Clamp()
	s.Graph = free
	if len(enabled) > 0 {
		s.Selection = selection.FromEnabled(enabled...)
	}
	return s, nil
}

// Pair returns the two held-constant variables. In select mode ok is false
// while fewer than two checkboxes are enabled.
func (s *Session) Pair() (ballistics.Pair, bool) {
	if s.Mode == ModeGraph {
		return ballistics.PairExcluding(s.Graph), true
	}
	return s.Selection.Pair()
}

func (s *Session) Free() (ballistics.Variable, bool) {
	p, ok := s.Pair()
	if !ok {
		return 0, false
	}
	return p.Free(), true
}

// Editable reports whether v has a slider in the current mode.
func (s *Session) Editable(v ballistics.Variable) bool {
	if s.Mode == ModeGraph {
		return v != s.Graph
	}
	return s.Selection.Enabled(v)
}

func (s *Session) Set(v ballistics.Variable, x float64) {
	s.Inputs.Set(v, x)
	s.ClearHover()
}

// Nudge moves v by steps increments of its step size.
func (s *Session) Nudge(v ballistics.Variable, steps float64) {
	s.Set(v, s.Inputs.Get(v)+steps*Steps[v])
}

func (s *Session) Toggle(v ballistics.Variable) {
	evicted, ok := s.Selection.Toggle(v)
	if ok {
		slog.Debug("selection evicted oldest", "enabled", v, "evicted", evicted)
	}
	if _, complete := s.Selection.Pair(); !complete {
		slog.Debug("selection incomplete", "order", s.Selection.Order())
	}
	s.ClearHover()
}

func (s *Session) SetGraph(v ballistics.Variable) {
	s.Graph = v
	s.ClearHover()
}

// CycleGraph advances the graphed variable in display order.
func (s *Session) CycleGraph() {
	next := (int(s.Graph) + 1) % len(ballistics.Variables)
	s.SetGraph(ballistics.Variables[next])
}

func (s *Session) SetMode(m Mode) {
	if s.Mode == m {
		return
	}
	// carry the free variable across so the chart does not jump
	if free, ok := s.Free(); ok && m == ModeGraph {
		s.Graph = free
	}
	if m == ModeSelect {
		a, b := ballistics.PairExcluding(s.Graph).Variables()
		s.Selection = selection.FromEnabled(a, b)
	}
	s.Mode = m
	s.ClearHover()
	slog.Debug("mode changed", "mode", m)
}

func (s *Session) ToggleMode() {
	if s.Mode == ModeSelect {
		s.SetMode(ModeGraph)
	} else {
		s.SetMode(ModeSelect)
	}
}

// GroupSize is the expected MOA at the current inputs.
func (s *Session) GroupSize() float64 {
	return ballistics.GroupSize(s.Inputs)
}

func (s *Session) OneMOA() (Readout, bool) {
	p, ok := s.Pair()
	if !ok {
		return Readout{}, false
	}
	value, unit := ballistics.ValueForOneMOA(s.Inputs, p)
	return Readout{Variable: p.Free(), Value: value, Unit: unit}, true
}

// Plot regenerates the chart for the current state.
func (s *Session) Plot() (*plotdata.Series, bool) {
	free, ok := s.Free()
	if !ok {
		return nil, false
	}
	return plotdata.Generate(s.Inputs, free), true
}

// HoverAt snaps the hover marker to the expected point nearest x.
func (s *Session) HoverAt(x float64) (plotdata.Point, bool) {
	series, ok := s.Plot()
	if !ok {
		s.ClearHover()
		return plotdata.Point{}, false
	}
	p, ok := plotdata.Nearest(series.Expected, x)
	s.hover, s.hovered = p, ok
	return p, ok
}

func (s *Session) Hover() (plotdata.Point, bool) {
	return s.hover, s.hovered
}

func (s *Session) ClearHover() {
	s.hover, s.hovered = plotdata.Point{}, false
}

// Pin switches to graph mode on the variable the session derives, so the
// one-shot commands agree with the interactive views. An incomplete
// selection falls back to fallback.
func (s *Session) Pin(fallback ballistics.Variable) ballistics.Variable {
	v, ok := s.Free()
	if !ok {
		v = fallback
	}
	s.SetMode(ModeGraph)
	s.SetGraph(v)
	return v
}

// Config snapshots the session over base. Free is the derived variable
// whenever the pair is complete, so it never contradicts Enabled.
func (s *Session) Config(base *config.Config) *config.Config {
	cfg := *base
	cfg.Mode = s.Mode.String()
	cfg.Free = s.Graph.String()
	if free, ok := s.Free(); ok {
		cfg.Free = free.String()
	}
	cfg.Enabled = nil
	for _, v := range s.Selection.Order() {
		cfg.Enabled = append(cfg.Enabled, v.String())
	}
	cfg.SetInputs(s.Inputs)
	return &cfg
}
