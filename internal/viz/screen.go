package viz

import (
	"errors"
	"sync"

	"github.com/san-kum/boxwave/internal/scene"
)

const (
	// BoxSize is the side length of every box.
	BoxSize    = 1.0
	axesLength = 5.0
)

var errNoSurface = errors.New("viz: canvas has no area")

// Screen is the terminal viewport: it owns the canvas and camera, draws
// submitted frames and follows resizes.
type Screen struct {
	Camera *Camera
	Canvas *Canvas

	mu   sync.Mutex
	axes bool
	wire *Wireframe
	last scene.Frame
}

func NewScreen(cam *Camera, cols, rows int) *Screen {
	s := &Screen{Camera: cam, Canvas: NewCanvas(cols, rows), wire: NewWireframe()}
	cam.SetSize(s.Canvas.DotWidth(), s.Canvas.DotHeight())
	return s
}

// SetSize fits the canvas to a terminal of width×height characters, leaving
// room for the side panel and borders.
func (s *Screen) SetSize(width, height int) {
	cols := max(width-panelWidth-4, 8)
	rows := max(height-2, 4)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Canvas.Resize(cols, rows)
	s.Camera.SetSize(s.Canvas.DotWidth(), s.Canvas.DotHeight())
}

func (s *Screen) SetAxes(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.axes = on
}

func (s *Screen) Axes() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.axes
}

// Render draws every cell as a wireframe box in its own color.
func (s *Screen) Render(f scene.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Canvas.Width == 0 || s.Canvas.Height == 0 {
		return errNoSurface
	}

	s.wire.Clear()
	if s.axes {
		s.wire.AddAxes(axesLength)
	}
	for _, c := range f.Cells {
		s.wire.AddBox(c.Position, c.Rotation, BoxSize, c.Color)
	}
	s.Canvas.Clear()
	Render3D(s.Canvas, s.wire, s.Camera)
	s.last = f
	return nil
}

// Last is the most recently drawn frame.
func (s *Screen) Last() scene.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
