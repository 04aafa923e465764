package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/session"
	"github.com/san-kum/topgun/internal/storage"
	"github.com/san-kum/topgun/internal/viz"
)

// hoverSteps is how many cursor presses span the x-axis.
const hoverSteps = 40

type model struct {
	sess   *session.Session
	store  *storage.Store
	theme  viz.Theme
	styles viz.Styles
	help   help.Model

	cursor int
	hoverX float64
	status string

	width  int
	height int
}

// Options configures a TUI run.
type Options struct {
	Session *session.Session
	Store   *storage.Store
	Theme   string
}

func NewInteractiveApp(opts Options) model {
	sess := opts.Session
	if sess == nil {
		sess = session.New(session.ModeSelect)
	}
	theme := viz.GetTheme(opts.Theme)
	return model{
		sess:   sess,
		store:  opts.Store,
		theme:  theme,
		styles: viz.NewStyles(theme),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m model) current() ballistics.Variable {
	return ballistics.Variables[m.cursor]
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(ballistics.Variables)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Dec):
		m.nudge(-1)
	case key.Matches(msg, keys.Inc):
		m.nudge(1)
	case key.Matches(msg, keys.DecFast):
		m.nudge(-10)
	case key.Matches(msg, keys.IncFast):
		m.nudge(10)
	case key.Matches(msg, keys.Toggle):
		m.toggle(m.current())
	case key.Matches(msg, keys.Direct):
		idx := int(msg.String()[0] - '1')
		m.cursor = idx
		m.toggle(m.current())
	case key.Matches(msg, keys.Graph):
		if m.sess.Mode == session.ModeGraph {
			m.sess.CycleGraph()
			m.hoverX = 0
		} else {
			m.status = "press m for graph mode to pick the axis directly"
		}
	case key.Matches(msg, keys.Mode):
		m.sess.ToggleMode()
		m.hoverX = 0
		m.status = "mode: " + m.sess.Mode.String()
	case key.Matches(msg, keys.Theme):
		m.theme = viz.NextTheme(m.theme)
		m.styles = viz.NewStyles(m.theme)
		m.status = "theme: " + m.theme.Name
	case key.Matches(msg, keys.HoverPrev):
		m.moveHover(-1)
	case key.Matches(msg, keys.HoverNext):
		m.moveHover(1)
	case key.Matches(msg, keys.HoverOff):
		m.sess.ClearHover()
		m.hoverX = 0
	case key.Matches(msg, keys.Save):
		m.save()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) nudge(steps float64) {
	v := m.current()
	if !m.sess.Editable(v) {
		if m.sess.Mode == session.ModeGraph {
			m.status = v.Label() + " is the graphed axis"
		} else {
			m.status = "enable " + v.Label() + " to edit it"
		}
		return
	}
	m.sess.Nudge(v, steps)
	m.refreshHover()
}

func (m *model) toggle(v ballistics.Variable) {
	if m.sess.Mode == session.ModeGraph {
		m.sess.SetGraph(v)
		m.hoverX = 0
		return
	}
	m.sess.Toggle(v)
	m.hoverX = 0
	if m.sess.Selection.Count() < 2 {
		m.status = "select a second variable"
	}
}

func (m *model) moveHover(dir int) {
	free, ok := m.sess.Free()
	if !ok {
		return
	}
	r := free.Range()
	if _, hovering := m.sess.Hover(); !hovering || m.hoverX == 0 {
		m.hoverX = r.Min + r.Span()/2
	} else {
		m.hoverX = r.Clamp(m.hoverX + float64(dir)*r.Span()/hoverSteps)
	}
	m.sess.HoverAt(m.hoverX)
}

func (m *model) refreshHover() {
	if m.hoverX != 0 {
		m.sess.HoverAt(m.hoverX)
	}
}

func (m *model) save() {
	if m.store == nil {
		m.status = "no data directory configured"
		return
	}
	free, ok := m.sess.Free()
	if !ok {
		m.status = "select two variables before saving"
		return
	}
	series, _ := m.sess.Plot()
	if err := m.store.Init(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	id, err := m.store.Save(storage.NewRecord(m.sess.Mode.String(), m.sess.Inputs, free), series)
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

func (m model) View() string {
	st := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + st.Title.Render("T O P   G U N") + "  " + st.Muted.Render("theory of precision calculator"))
	b.WriteString("  " + st.Dim.Render("mode: "+m.sess.Mode.String()) + "\n")
	b.WriteString("  " + viz.Separator(min(m.width-4, 60), st.Dim) + "\n")

	for i, v := range ballistics.Variables {
		b.WriteString(m.viewField(i, v) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(indent(st.Panel.Render(m.viewReadout()), "  ") + "\n\n")
	b.WriteString(m.viewChart())
	b.WriteString("\n")
	b.WriteString(indent(viz.Footer(m.width-4, st, true), "  ") + "\n")

	if m.status != "" {
		b.WriteString("\n  " + st.Value.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + m.help.View(keys) + "\n")
	return b.String()
}

func (m model) viewField(i int, v ballistics.Variable) string {
	st := m.styles
	prefix := "    "
	if i == m.cursor {
		prefix = "  " + st.Cursor.Render("▸ ")
	}

	var mark string
	switch m.sess.Mode {
	case session.ModeGraph:
		mark = "( )"
		if m.sess.Graph == v {
			mark = "(◆)"
		}
	default:
		mark = "[ ]"
		if m.sess.Selection.Enabled(v) {
			mark = "[x]"
		}
	}

	name := fmt.Sprintf("%-18s", v.Label())
	if i == m.cursor {
		name = st.Selected.Render(name)
	} else {
		name = st.Label.Render(name)
	}

	if !m.sess.Editable(v) {
		note := "derived"
		if m.sess.Mode == session.ModeGraph {
			note = "graphed"
		}
		return prefix + st.Muted.Render(mark) + " " + name + st.Dim.Render(fmt.Sprintf("%10s", "—")+"      "+note)
	}

	r := v.Range()
	val := fmt.Sprintf("%8.1f %-3s", m.sess.Inputs.Get(v), v.Unit())
	gauge := viz.Gauge(m.sess.Inputs.Get(v), r.Min, r.Max, 20, st.Cursor, st.Dim)
	return prefix + st.Value.Render(mark) + " " + name + st.Value.Render(val) + "  " + gauge
}

func (m model) viewReadout() string {
	st := m.styles
	moa := m.sess.GroupSize()
	group := st.Muted.Render("group size ") + st.Grade(moa).Render(fmt.Sprintf("%.2f MOA", moa))

	r, ok := m.sess.OneMOA()
	if !ok {
		return group + "   " + st.Dim.Render("1 MOA @ — (select two variables)")
	}
	return group + "   " + st.Readout.Render(r.String())
}

func (m model) viewChart() string {
	st := m.styles
	series, ok := m.sess.Plot()
	if !ok {
		return "  " + st.Dim.Render("no chart: select two variables") + "\n"
	}

	cw := m.width - 16
	ch := m.height - 22
	if cw > 120 {
		cw = 120
	}
	chart := viz.Chart(series, viz.ChartOptions{
		Width:  cw,
		Height: ch,
		Theme:  m.theme,
		Color:  true,
	})

	var b strings.Builder
	b.WriteString(indent(chart, "  ") + "\n")

	if p, hovering := m.sess.Hover(); hovering {
		b.WriteString("  " + st.Value.Render(viz.Marker(series, p.X, max(cw, viz.MinChartWidth))) + "\n")
		b.WriteString("  " + st.Muted.Render(fmt.Sprintf("%.1f %s → ", p.X, series.Free.Unit())) +
			st.Grade(p.Y).Render(fmt.Sprintf("%.2f MOA", p.Y)) + "\n")
	}
	return b.String()
}

func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func RunInteractive(opts Options) error {
	p := tea.NewProgram(NewInteractiveApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
