package control

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/flourish"
	"github.com/san-kum/boxwave/internal/logx"
	"github.com/san-kum/boxwave/internal/scene"
)

// KeyRotate is the key that triggers a flourish. Other keys are ignored.
const KeyRotate = " "

// Rotator starts rotation cycles.
type Rotator interface {
	Trigger(ctx context.Context, t flourish.Target) (flourish.Result, <-chan struct{})
}

// Viewport is the frontend's camera + output surface.
type Viewport interface {
	SetSize(width, height int)
}

// Controller routes input events to the flourish and the grid colors.
// It owns no animation logic of its own.
type Controller struct {
	grid     *scene.Grid
	rotator  Rotator
	viewport Viewport
	light    colorful.Color
	log      *slog.Logger

	mu     sync.Mutex
	base   colorful.Color
	swatch int
	width  int
	height int
}

func New(grid *scene.Grid, rotator Rotator, viewport Viewport, base, light colorful.Color, logger *slog.Logger) *Controller {
	return &Controller{
		grid:     grid,
		rotator:  rotator,
		viewport: viewport,
		light:    light,
		base:     base,
		swatch:   -1,
		log:      logx.OrDiscard(logger),
	}
}

// SetViewport attaches the frontend surface once it exists.
func (c *Controller) SetViewport(vp Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = vp
}

// HandleKey triggers a flourish on space.
func (c *Controller) HandleKey(ctx context.Context, key string) flourish.Result {
	if key != KeyRotate {
		return flourish.Skipped
	}
	return c.rotate(ctx, "key")
}

// PressRotate is the panel button entry point.
func (c *Controller) PressRotate(ctx context.Context) flourish.Result {
	return c.rotate(ctx, "button")
}

func (c *Controller) rotate(ctx context.Context, source string) flourish.Result {
	if c.rotator == nil {
		return flourish.Skipped
	}
	res, _ := c.rotator.Trigger(ctx, c.grid)
	c.log.Debug("rotate", "source", source, "result", res)
	return res
}

// PickColor retints every cell from base v toward the light reference.
// The change is applied before PickColor returns.
func (c *Controller) PickColor(v colorful.Color) {
	c.mu.Lock()
	c.base = v
	c.mu.Unlock()

	if c.grid != nil {
		c.grid.Recolor(v, c.light)
	}
	c.log.Debug("base color", "hex", v.Hex())
}

// PickHex parses a "#rrggbb" value and applies it.
func (c *Controller) PickHex(hex string) error {
	v, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("base color %q: %w", hex, err)
	}
	c.PickColor(v)
	return nil
}

// CycleSwatch steps through Palette and applies the next color.
func (c *Controller) CycleSwatch(dir int) Swatch {
	c.mu.Lock()
	n := len(Palette)
	c.swatch = ((c.swatch+dir)%n + n) % n
	s := Palette[c.swatch]
	c.mu.Unlock()

	c.PickColor(s.Color)
	return s
}

// BaseColor is the color most recently picked.
func (c *Controller) BaseColor() colorful.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base
}

// Resize forwards a new viewport size. Non-positive or unchanged sizes are
// ignored, so repeated calls with the same size have no effect.
func (c *Controller) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.mu.Lock()
	if width == c.width && height == c.height {
		c.mu.Unlock()
		return false
	}
	c.width, c.height = width, height
	vp := c.viewport
	c.mu.Unlock()

	if vp != nil {
		vp.SetSize(width, height)
	}
	c.log.Debug("resize", "width", width, "height", height)
	return true
}

// Size is the last applied viewport size.
func (c *Controller) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}
