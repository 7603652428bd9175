package gui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/control"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/loop"
	"github.com/san-kum/boxwave/internal/scene"
)

// Theme Colors
var (
	ColPanel   = rl.NewColor(18, 18, 22, 230)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
	ColBusy    = rl.NewColor(255, 170, 0, 255)
)

const (
	fontPath        = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	telemetryLength = 200
)

// App hosts the grid in a raylib window.
type App struct {
	eng   *engine.Engine
	ctrl  *control.Controller
	loop  *loop.Loop
	orbit *Orbit
	clk   clock.Clock
	log   *slog.Logger

	Camera rl.Camera3D
	Font   rl.Font

	clear       rl.Color
	directional scene.Light
	ambient     scene.Light

	epoch     time.Time
	showAxes  bool
	panel     rl.Rectangle
	width     int
	height    int
	Telemetry []float64
	quit      bool
}

func initWindow(width, height, fps int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "boxwave")
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window: %w", scene.ErrNoContext)
	}
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
	return nil
}

// loadFont loads Liberation Mono when installed and the raylib default otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func color(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

func vec3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// NewApp wires the engine to a window that is already open.
func NewApp(eng *engine.Engine) (*App, error) {
	cfg := eng.Config()
	bg, err := cfg.ClearColor()
	if err != nil {
		return nil, fmt.Errorf("clear color: %w", scene.ErrInvalidConfig)
	}
	dir, amb, err := cfg.SceneLights()
	if err != nil {
		return nil, fmt.Errorf("lights: %w", scene.ErrInvalidConfig)
	}

	pos := scene.Vec3{X: cfg.Camera.Position[0], Y: cfg.Camera.Position[1], Z: cfg.Camera.Position[2]}
	target := scene.Vec3{X: cfg.Camera.Target[0], Y: cfg.Camera.Target[1], Z: cfg.Camera.Target[2]}

	a := &App{
		eng:         eng,
		clk:         eng.Clock(),
		log:         eng.Logger().With("component", "gui"),
		Font:        loadFont(),
		clear:       color(bg),
		directional: dir,
		ambient:     amb,
		showAxes:    cfg.Renderer.Axes,
		Telemetry:   make([]float64, 0, telemetryLength),
		Camera: rl.NewCamera3D(
			vec3(pos),
			vec3(target),
			rl.NewVector3(0, 1, 0),
			float32(cfg.Camera.FOV),
			rl.CameraPerspective,
		),
	}
	a.orbit = NewOrbit(&a.Camera, pos, target, cfg.Camera.Far)
	a.orbit.Blocked = a.overPanel

	a.ctrl = eng.Controller(a)
	a.ctrl.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	a.loop = eng.Loop(a.orbit, a)
	a.epoch = a.clk.Now()
	return a, nil
}

// SetSize re-lays the panel; called by the controller on resize.
func (a *App) SetSize(width, height int) {
	a.width, a.height = width, height
	a.panel = rl.NewRectangle(float32(width-panelWidth-20), 20, panelWidth, float32(min(height-40, panelHeight)))
}

func (a *App) overPanel(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, a.panel)
}

// Run opens a window and renders until it is closed or ctx is done.
func Run(ctx context.Context, eng *engine.Engine) error {
	cfg := eng.Config()
	if err := initWindow(cfg.Renderer.Width, cfg.Renderer.Height, cfg.Renderer.FPS); err != nil {
		return err
	}
	defer rl.CloseWindow()

	app, err := NewApp(eng)
	if err != nil {
		return err
	}
	app.log.Info("window open", "width", cfg.Renderer.Width, "height", cfg.Renderer.Height)
	app.RunLoop(ctx)
	return nil
}

func (a *App) RunLoop(ctx context.Context) {
	for !rl.WindowShouldClose() && !a.quit && ctx.Err() == nil {
		a.Update(ctx)
		a.Draw()
	}
	a.log.Info("window closed", "frames", a.loop.Frames(), "cycles", a.eng.Flourish().Cycles())
}

func (a *App) Update(ctx context.Context) {
	if rl.IsWindowResized() {
		a.ctrl.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.ctrl.HandleKey(ctx, control.KeyRotate)
	case rl.IsKeyPressed(rl.KeyR):
		a.ctrl.PressRotate(ctx)
	case rl.IsKeyPressed(rl.KeyC):
		dir := 1
		if rl.IsKeyDown(rl.KeyLeftShift) {
			dir = -1
		}
		a.ctrl.CycleSwatch(dir)
	case rl.IsKeyPressed(rl.KeyA):
		a.showAxes = !a.showAxes
	}

	a.updatePanel(ctx)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.clear)

	a.loop.Tick(a.clk.Now().Sub(a.epoch).Seconds())
	a.recordTelemetry()

	a.DrawHUD()
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) recordTelemetry() {
	a.Telemetry = append(a.Telemetry, a.eng.Grid().Cell(0).Position.Y)
	if len(a.Telemetry) > telemetryLength {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) DrawHUD() {
	a.drawText("boxwave", 30, 30, 24, ColSelect)
	g := a.eng.Grid()
	a.drawText(fmt.Sprintf(":: %d×%d", g.Size(), g.Size()), 150, 34, 16, ColText)

	a.DrawTelemetry()

	bottom := a.height - 40
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, bottom, 14, ColTextDim)
	a.drawText(fmt.Sprintf("frame %d  cycles %d", a.loop.Frames(), a.eng.Flourish().Cycles()), 110, bottom, 14, ColTextDim)
	a.drawText("[SPACE] ROTATE  [C] COLOR  [A] AXES  [DRAG] ORBIT  [Q] QUIT", 30, bottom+18, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the first box's height history.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := 30, a.height-130
	width, height := 400, 60

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("y: %+.2f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
