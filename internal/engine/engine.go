// Package engine assembles the grid, the rotation flourish and the input
// controller from a validated config. Frontends build their render loop and
// controller from an Engine so both share one grid and one busy state.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/config"
	"github.com/san-kum/boxwave/internal/control"
	"github.com/san-kum/boxwave/internal/flourish"
	"github.com/san-kum/boxwave/internal/logx"
	"github.com/san-kum/boxwave/internal/loop"
	"github.com/san-kum/boxwave/internal/scene"
)

type Engine struct {
	cfg      *config.Config
	grid     *scene.Grid
	flourish *flourish.Flourish
	clock    clock.Clock
	log      *slog.Logger

	base  colorful.Color
	light colorful.Color
}

func New(cfg *config.Config, logger *slog.Logger, clk clock.Clock) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := cfg.BaseColor()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scene.ErrInvalidConfig, err)
	}
	light, err := cfg.LightColor()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scene.ErrInvalidConfig, err)
	}
	if clk == nil {
		clk = clock.NewReal()
	}
	log := logx.OrDiscard(logger)

	e := &Engine{
		cfg:   cfg,
		grid:  scene.NewGrid(cfg.Scene.GridSize, cfg.Scene.Spacing, base, light),
		clock: clk,
		log:   log,
		base:  base,
		light: light,
	}
	e.flourish = flourish.New(flourish.Options{
		Duration: cfg.FlourishDuration(),
		Step:     cfg.FlourishStep(),
		Interval: cfg.FlourishInterval(),
		Clock:    clk,
		Logger:   log.With("component", "flourish"),
	})
	log.Info("scene ready",
		"grid", cfg.Scene.GridSize,
		"cells", e.grid.Len(),
		"cycle", e.flourish.Total(cfg.Scene.GridSize))
	return e, nil
}

// Loop builds a render loop over the engine's grid.
func (e *Engine) Loop(controls loop.Controls, renderer loop.Renderer) *loop.Loop {
	return loop.New(e.grid, controls, renderer, e.cfg.Scene.WaveAmplitude, e.log.With("component", "loop"))
}

// Controller builds an input controller bound to the engine's flourish.
// vp may be nil and attached later with SetViewport.
func (e *Engine) Controller(vp control.Viewport) *control.Controller {
	return control.New(e.grid, e.flourish, vp, e.base, e.light, e.log.With("component", "control"))
}

func (e *Engine) Config() *config.Config       { return e.cfg }
func (e *Engine) Grid() *scene.Grid            { return e.grid }
func (e *Engine) Flourish() *flourish.Flourish { return e.flourish }
func (e *Engine) Clock() clock.Clock           { return e.clock }
func (e *Engine) Logger() *slog.Logger         { return e.log }
