package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/session"
	"github.com/san-kum/topgun/internal/storage"
)

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel() model {
	m := NewInteractiveApp(Options{Session: session.New(session.ModeSelect), Theme: "minimal"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return next.(model)
}

func TestNudgeEnabledVariable(t *testing.T) {
	m := newModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if got := m.sess.Inputs.ProjectileGrains; got != ballistics.DefaultProjectile+1 {
		t.Errorf("projectile = %v, want %v", got, ballistics.DefaultProjectile+1)
	}
}

func TestNudgeDisabledVariable(t *testing.T) {
	m := newModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})

	if got := m.sess.Inputs.RifleLbs; got != ballistics.DefaultRifle {
		t.Errorf("rifle weight changed while disabled: %v", got)
	}
	if !strings.Contains(m.status, "enable") {
		t.Errorf("status = %q", m.status)
	}
}

func TestDirectToggleEvicts(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("3"))

	free, ok := m.sess.Free()
	if !ok {
		t.Fatal("expected a complete pair")
	}
	if free != ballistics.Projectile {
		t.Errorf("free = %v, want projectile", free)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestSingleSelectionView(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("1"))

	if m.sess.Selection.Count() != 1 {
		t.Fatalf("count = %d", m.sess.Selection.Count())
	}
	out := m.View()
	if !strings.Contains(out, "1 MOA @ —") {
		t.Error("expected placeholder readout")
	}
	if !strings.Contains(out, "no chart") {
		t.Error("expected chart placeholder")
	}
}

func TestModeToggle(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("m"))
	if m.sess.Mode != session.ModeGraph {
		t.Fatalf("mode = %v", m.sess.Mode)
	}
	if m.sess.Graph != ballistics.RifleWeight {
		t.Errorf("graph = %v, want weight", m.sess.Graph)
	}

	m = press(t, m, runes("g"))
	if m.sess.Graph != ballistics.Projectile {
		t.Errorf("graph after cycle = %v", m.sess.Graph)
	}
}

func TestHoverCursor(t *testing.T) {
	m := newModel()
	m = press(t, m, runes("]"))

	p, ok := m.sess.Hover()
	if !ok {
		t.Fatal("expected hover")
	}
	r := ballistics.RifleWeight.Range()
	if p.X < r.Min || p.X > r.Max {
		t.Errorf("hover x %v outside range", p.X)
	}
	if !strings.Contains(m.View(), "MOA") {
		t.Error("view missing hover readout")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.sess.Hover(); ok {
		t.Error("esc should clear hover")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	m := NewInteractiveApp(Options{Store: storage.New(dir)})
	m = press(t, m, runes("s"))

	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}
	recs, err := storage.New(dir).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Errorf("records = %d, want 1", len(recs))
	}
}

func TestQuit(t *testing.T) {
	m := newModel()
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestReadoutPanel(t *testing.T) {
	m := newModel()
	out := m.View()

	r, _ := m.sess.OneMOA()
	var panel string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, r.String()) {
			panel = line
			break
		}
	}
	if panel == "" {
		t.Fatalf("readout %q missing from view", r.String())
	}
	if !strings.Contains(panel, "│") {
		t.Errorf("readout should sit inside a bordered panel: %q", panel)
	}
	if !strings.Contains(out, "╭") {
		t.Error("expected the panel's top border")
	}
}
