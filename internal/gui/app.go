package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/session"
	"github.com/san-kum/topgun/internal/storage"
)

var (
	ColBg      = rl.NewColor(12, 14, 18, 255)
	ColPanel   = rl.NewColor(22, 26, 32, 255)
	ColAccent  = rl.NewColor(30, 144, 255, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(170, 170, 170, 255)
	ColTextDim = rl.NewColor(80, 80, 80, 255)
	ColGrid    = rl.NewColor(34, 38, 46, 255)
	ColLink    = rl.NewColor(100, 170, 255, 255)
)

type App struct {
	Sess   *session.Session
	Store  *storage.Store
	Font   rl.Font
	Cursor int
	Status string

	dragging   int
	mouseHover bool
	quit       bool
}

func initWindow() {
	rl.InitWindow(screenWidth, screenHeight, "TOP Gun")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(sess *session.Session, store *storage.Store) *App {
	if sess == nil {
		sess = session.New(session.ModeSelect)
	}
	return &App{
		Sess:     sess,
		Store:    store,
		Font:     loadFont(),
		dragging: -1,
	}
}

// Run opens the calculator window and blocks until it is closed.
func Run(sess *session.Session, store *storage.Store) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(sess, store)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.handleKeys()
	a.handleMouse()
}

func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Cursor = (a.Cursor + 1) % len(ballistics.Variables)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Cursor--
		if a.Cursor < 0 {
			a.Cursor = len(ballistics.Variables) - 1
		}
	}

	steps := 1.0
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		steps = 10
	}
	v := ballistics.Variables[a.Cursor]
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressedRepeat(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.nudge(v, steps)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressedRepeat(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.nudge(v, -steps)
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		a.toggle(a.Cursor)
	}
	for i, k := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(k) {
			a.Cursor = i
			a.toggle(i)
		}
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.Sess.ToggleMode()
	}
	if rl.IsKeyPressed(rl.KeyG) && a.Sess.Mode == session.ModeGraph {
		a.Sess.CycleGraph()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.save()
	}
}

func (a *App) handleMouse() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case inside(mouse, modeButton):
			a.Sess.ToggleMode()
		case inside(mouse, saveButton):
			a.save()
		}
		for i := range ballistics.Variables {
			if inside(mouse, checkboxRect(i)) {
				a.Cursor = i
				a.toggle(i)
			}
			if inside(mouse, sliderRect(i)) && a.Sess.Editable(ballistics.Variables[i]) {
				a.Cursor = i
				a.dragging = i
			}
		}
		for _, l := range a.footerLinks() {
			if inside(mouse, l.rect) {
				rl.OpenURL(l.url)
			}
		}
	}

	if a.dragging >= 0 {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			v := ballistics.Variables[a.dragging]
			a.Sess.Set(v, sliderValue(sliderRect(a.dragging), v, mouse.X))
		} else {
			a.dragging = -1
		}
	}

	if area, ok := a.plotArea(); ok && area.contains(mouse) {
		a.Sess.HoverAt(area.dataX(mouse.X))
		a.mouseHover = true
	} else if a.mouseHover {
		a.Sess.ClearHover()
		a.mouseHover = false
	}
}

func (a *App) nudge(v ballistics.Variable, steps float64) {
	if !a.Sess.Editable(v) {
		return
	}
	a.Sess.Nudge(v, steps)
}

func (a *App) toggle(i int) {
	v := ballistics.Variables[i]
	if a.Sess.Mode == session.ModeGraph {
		a.Sess.SetGraph(v)
		return
	}
	a.Sess.Toggle(v)
}

func (a *App) save() {
	if a.Store == nil {
		a.Status = "no data directory"
		return
	}
	free, ok := a.Sess.Free()
	if !ok {
		a.Status = "select two variables to save"
		return
	}
	series, _ := a.Sess.Plot()
	if err := a.Store.Init(); err != nil {
		a.Status = "save failed"
		slog.Error("init store", "err", err)
		return
	}
	id, err := a.Store.Save(storage.NewRecord(a.Sess.Mode.String(), a.Sess.Inputs, free), series)
	if err != nil {
		a.Status = "save failed"
		slog.Error("save", "err", err)
		return
	}
	a.Status = "saved " + id
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawHeader()
	for i, v := range ballistics.Variables {
		a.drawRow(i, v)
	}
	a.drawReadout()
	a.drawChart()
	a.drawFooter()

	rl.EndDrawing()
}

func (a *App) drawHeader() {
	a.drawText("TOP Gun", panelX, 30, 36, ColSelect)
	a.drawText("theory of precision calculator", panelX+170, 44, 16, ColText)

	label := "mode: select variables"
	if a.Sess.Mode == session.ModeGraph {
		label = "mode: choose graph"
	}
	a.drawButton(modeButton, label)
	a.drawButton(saveButton, "save")
}

func (a *App) drawButton(r rl.Rectangle, label string) {
	col := ColPanel
	if inside(rl.GetMousePosition(), r) {
		col = ColGrid
	}
	rl.DrawRectangleRec(r, col)
	rl.DrawRectangleLinesEx(r, 1, ColTextDim)
	a.drawText(label, int(r.X)+10, int(r.Y)+6, 16, ColText)
}

func (a *App) drawRow(i int, v ballistics.Variable) {
	y := int(rowY(i))
	box := checkboxRect(i)
	col := ColText
	if i == a.Cursor {
		col = ColSelect
		a.drawText(">", panelX-22, y, 20, ColAccent)
	}

	rl.DrawRectangleLinesEx(box, 2, col)
	marked := a.Sess.Selection.Enabled(v)
	if a.Sess.Mode == session.ModeGraph {
		marked = a.Sess.Graph == v
	}
	if marked {
		rl.DrawRectangle(int32(box.X)+5, int32(box.Y)+5, int32(box.Width)-10, int32(box.Height)-10, ColAccent)
	}
	a.drawText(v.Label(), panelX+32, y, 20, col)

	if !a.Sess.Editable(v) {
		note := "derived"
		if a.Sess.Mode == session.ModeGraph {
			note = "graphed"
		}
		a.drawText(note, sliderX, y+30, 16, ColTextDim)
		return
	}

	val := a.Sess.Inputs.Get(v)
	a.drawText(fmt.Sprintf("%.1f %s", val, v.Unit()), sliderX, y, 20, ColSelect)

	r := sliderRect(i)
	rl.DrawRectangleRec(r, ColPanel)
	knob := sliderPos(r, v, val)
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(knob-r.X), int32(r.Height), ColAccent)
	rl.DrawCircle(int32(knob), int32(r.Y+r.Height/2), 9, ColSelect)

	rng := v.Range()
	a.drawText(fmt.Sprintf("%g", rng.Min), int(r.X), int(r.Y+r.Height)+4, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%g", rng.Max), int(r.X+r.Width)-28, int(r.Y+r.Height)+4, 12, ColTextDim)
}

func (a *App) drawReadout() {
	y := int(rowY(len(ballistics.Variables))) + 10
	moa := a.Sess.GroupSize()
	a.drawText("group size", panelX, y, 16, ColText)
	a.drawText(fmt.Sprintf("%.2f MOA", moa), panelX+130, y-4, 24, gradeColor(moa))

	r, ok := a.Sess.OneMOA()
	text := "1 MOA @ --"
	if ok {
		text = r.String()
	}
	a.drawText(text, panelX, y+40, 28, ColSelect)

	if a.Status != "" {
		a.drawText(a.Status, panelX, y+90, 14, ColText)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func gradeColor(moa float64) rl.Color {
	switch {
	case moa <= 1:
		return rl.NewColor(95, 208, 104, 255)
	case moa <= 2:
		return rl.NewColor(255, 192, 72, 255)
	default:
		return rl.NewColor(255, 100, 100, 255)
	}
}
