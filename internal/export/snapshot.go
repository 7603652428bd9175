package export

import (
	"fmt"

	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/viz"
)

// Snapshot renders the grid at t seconds onto a cols×rows braille canvas,
// seen from the configured camera.
func Snapshot(eng *engine.Engine, t float64, cols, rows int) (*viz.Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("snapshot size %dx%d", cols, rows)
	}
	screen := viz.NewScreen(viz.CameraFromConfig(eng.Config()), cols, rows)
	screen.SetAxes(eng.Config().Renderer.Axes)

	l := eng.Loop(nil, screen)
	l.Tick(t)
	if l.Failures() > 0 {
		return nil, fmt.Errorf("snapshot at t=%g failed", t)
	}
	return screen.Canvas, nil
}
