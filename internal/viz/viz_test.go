package viz

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/config"
	"github.com/san-kum/boxwave/internal/control"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/scene"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.DotWidth() != 8 || c.DotHeight() != 8 {
		t.Fatalf("expected 8x8 dots, got %dx%d", c.DotWidth(), c.DotHeight())
	}

	c.Ink = colorful.Color{R: 1}
	c.Set(3, 5)
	if !c.Lit(3, 5) {
		t.Error("dot should be lit")
	}
	if c.Colors[1][1] != c.Ink {
		t.Error("cell should take the ink color")
	}
	c.Unset(3, 5)
	if c.Lit(3, 5) || c.Grid[1][1] != blank {
		t.Error("dot should be cleared")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if strings.Count(c.Plain(), string(blank)) != 8 {
		t.Error("out of range dots should be ignored")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if !c.Lit(x, 0) {
			t.Fatalf("dot %d not lit", x)
		}
	}
	if c.Lit(0, 1) {
		t.Error("horizontal line should stay on its row")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)
	c.Resize(6, 2)
	if c.Width != 6 || c.Height != 2 || len(c.Grid) != 2 || len(c.Grid[0]) != 6 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
	if c.Lit(0, 0) {
		t.Error("resize should clear")
	}
	if lines := strings.Count(c.String(), "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := NewCamera(scene.Vec3{X: 10, Y: 6, Z: 10}, scene.Vec3{}, 45, 0.1, 100)
	cam.SetSize(100, 80)

	x, y, depth, ok := cam.Project(scene.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if absInt(x-50) > 1 || absInt(y-40) > 1 {
		t.Errorf("expected center, got %d,%d", x, y)
	}
	want := math.Sqrt(10*10 + 6*6 + 10*10)
	if math.Abs(depth-want) > 1e-9 {
		t.Errorf("expected depth %f, got %f", want, depth)
	}

	if _, _, _, ok := cam.Project(scene.Vec3{X: 20, Y: 12, Z: 20}); ok {
		t.Error("point behind the camera should not be visible")
	}
	_, yUp, _, _ := cam.Project(scene.Vec3{Y: 2})
	if yUp >= y {
		t.Error("+Y should project above the target")
	}
}

func TestCameraOrbitDamping(t *testing.T) {
	cam := NewCamera(scene.Vec3{X: 10, Y: 6, Z: 10}, scene.Vec3{}, 45, 0.1, 100)
	r0 := cam.Radius()

	cam.Orbit(0.5, 0)
	cam.Update()
	first := cam.Position()
	if cam.Settled() {
		t.Error("damped input should carry over to the next frame")
	}
	for i := 0; i < 200; i++ {
		cam.Update()
	}
	if !cam.Settled() {
		t.Error("input should decay to rest")
	}
	if math.Abs(cam.Radius()-r0) > 1e-9 {
		t.Errorf("orbit should keep the radius, got %f", cam.Radius())
	}
	if first == cam.Position() {
		t.Error("camera should keep moving after the first frame")
	}

	cam.Dolly(0.5)
	cam.Update()
	if math.Abs(cam.Radius()-r0/2) > 1e-9 {
		t.Errorf("expected radius %f, got %f", r0/2, cam.Radius())
	}
	cam.Dolly(1e6)
	cam.Update()
	if cam.Radius() > cam.MaxRadius {
		t.Errorf("radius should clamp to %f, got %f", cam.MaxRadius, cam.Radius())
	}
}

func TestAddBoxKeepsEdgeLength(t *testing.T) {
	w := NewWireframe()
	w.AddBox(scene.Vec3{X: 3, Y: 1, Z: -2}, scene.Vec3{X: 0.7, Y: 0.2, Z: -1.3}, 2, colorful.Color{G: 1})
	if len(w.Edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(w.Edges))
	}
	for i, e := range w.Edges {
		if l := e.End.Sub(e.Start).Length(); math.Abs(l-2) > 1e-9 {
			t.Errorf("edge %d: expected length 2, got %f", i, l)
		}
	}
}

func TestScreenRender(t *testing.T) {
	cam := NewCamera(scene.Vec3{X: 10, Y: 6, Z: 10}, scene.Vec3{}, 45, 0.1, 100)
	s := NewScreen(cam, 40, 20)
	g := scene.NewGrid(3, 2, colorful.Color{G: 1, B: 1}, colorful.Color{R: 1, G: 1, B: 1})

	if err := s.Render(g.Frame(1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.ContainsFunc(s.Canvas.Plain(), func(r rune) bool { return r > blank }) {
		t.Error("expected boxes on the canvas")
	}
	if s.Last().Seq != 1 {
		t.Errorf("expected last frame 1, got %d", s.Last().Seq)
	}

	s.SetSize(panelWidth+4+30, 12)
	if s.Canvas.Width != 30 || s.Canvas.Height != 10 {
		t.Errorf("expected 30x10 canvas, got %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
}

func TestRecorder(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawLine(0, 0, 15, 15)
	r := NewRecorder(colorful.Color{R: 0.97, G: 0.96, B: 0.96}, 60)
	if r.Delay != 2 {
		t.Errorf("expected delay 2, got %d", r.Delay)
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := r.Save(path); err == nil {
		t.Error("saving nothing should fail")
	}
	r.Capture(c)
	r.Capture(c)
	if r.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", r.Len())
	}
	if err := r.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if r.Len() != 0 {
		t.Error("save should clear the frames")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
	last := Themes[len(Themes)-1]
	if NextTheme(last.Name).Name != Themes[0].Name {
		t.Error("themes should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("names should cover every theme")
	}
}

func TestSparklineAndProgress(t *testing.T) {
	if got := []rune(Sparkline([]float64{0, 1, 2, 3}, 4)); len(got) != 4 || got[0] != '▁' || got[3] != '█' {
		t.Errorf("unexpected sparkline %q", string(got))
	}
	if got := ProgressBar(0.5, 10); strings.Count(got, "█") != 5 {
		t.Errorf("expected half filled, got %q", got)
	}
	if got := ProgressBar(3, 4); strings.Count(got, "█") != 4 {
		t.Errorf("overfull bar should clamp, got %q", got)
	}
}

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	eng, err := engine.New(config.DefaultConfig(), nil, clk)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return NewModel(context.Background(), eng), eng
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSpaceTriggersFlourish(t *testing.T) {
	m, eng := newTestModel(t)

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if eng.Flourish().Busy() {
		t.Error("unbound key should not rotate")
	}
	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !eng.Flourish().Busy() {
		t.Error("space should rotate")
	}
	if !strings.Contains(m.View(), "ROTATING") {
		t.Error("panel should show the flourish")
	}
}

func TestModelTickRendersFrame(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.loop.Frames() != 1 || len(m.heights) != 1 {
		t.Errorf("expected one frame, got %d", m.loop.Frames())
	}
}

func TestModelColorAndResize(t *testing.T) {
	m, eng := newTestModel(t)

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.swatch != control.Palette[1].Name {
		t.Errorf("expected %s, got %q", control.Palette[1].Name, m.swatch)
	}
	if eng.Grid().Cell(0).Color != control.Palette[1].Color {
		t.Error("swatch should recolor the grid")
	}

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Canvas.Width != 120-panelWidth-4 || m.screen.Canvas.Height != 38 {
		t.Errorf("unexpected canvas %dx%d", m.screen.Canvas.Width, m.screen.Canvas.Height)
	}
}

func typeKeys(m Model, keys string) Model {
	for _, r := range keys {
		m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModelHexColorEntry(t *testing.T) {
	m, eng := newTestModel(t)

	m = typeKeys(m, "#ff8q800")
	if m.hex != "#ff8800" {
		t.Fatalf("expected #ff8800 being typed, got %q", m.hex)
	}
	if !strings.Contains(m.View(), "#ff8800_") {
		t.Error("panel should echo the typed color")
	}
	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if eng.Flourish().Busy() {
		t.Error("keys typed into the color prompt should not rotate")
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	want, _ := colorful.Hex("#ff8800")
	if m.hex != "" {
		t.Errorf("prompt should close, got %q", m.hex)
	}
	if m.ctrl.BaseColor() != want || eng.Grid().Cell(0).Color != want {
		t.Errorf("expected base %s, got %s", want.Hex(), m.ctrl.BaseColor().Hex())
	}
}

func TestModelHexColorRejected(t *testing.T) {
	m, eng := newTestModel(t)
	before := eng.Grid().Cell(0).Color

	m = typeKeys(m, "#12")
	m = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status == "" {
		t.Error("expected an error status for a short color")
	}
	if eng.Grid().Cell(0).Color != before {
		t.Error("a rejected color should leave the grid alone")
	}

	m = typeKeys(m, "#abc")
	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.hex != "" || eng.Grid().Cell(0).Color != before {
		t.Error("esc should cancel the prompt")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestPickerStartsScene(t *testing.T) {
	var picked string
	factory := func(name string) (*engine.Engine, error) {
		picked = name
		return engine.New(config.GetPreset(name), nil, nil)
	}
	p := newPicker(context.Background(), config.ListPresets(), factory)

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = next.(picker)
	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(picker)

	if p.state != stateScene {
		t.Fatal("expected scene state")
	}
	if picked != config.ListPresets()[1] {
		t.Errorf("expected %s, got %s", config.ListPresets()[1], picked)
	}
	if cmd == nil {
		t.Error("expected the scene's first tick")
	}
}
