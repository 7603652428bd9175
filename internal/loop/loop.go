// Package loop drives the per-frame update of the grid: camera controls,
// wave displacement and submission of the frame to a renderer.
package loop

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/logx"
	"github.com/san-kum/boxwave/internal/scene"
)

// Controls is a camera controller stepped once per frame.
type Controls interface {
	Update()
}

// Renderer draws one frame.
type Renderer interface {
	Render(frame scene.Frame) error
}

// Loop ticks once per display refresh. It writes cell heights only; cell
// orientation belongs to the rotation flourish.
type Loop struct {
	grid      *scene.Grid
	controls  Controls
	renderer  Renderer
	amplitude float64
	log       *slog.Logger

	frames   atomic.Uint64
	failures atomic.Uint64
}

func New(grid *scene.Grid, controls Controls, renderer Renderer, amplitude float64, logger *slog.Logger) *Loop {
	return &Loop{
		grid:      grid,
		controls:  controls,
		renderer:  renderer,
		amplitude: amplitude,
		log:       logx.OrDiscard(logger),
	}
}

// Tick advances one frame at t seconds since the loop's epoch.
func (l *Loop) Tick(t float64) {
	if l.controls != nil {
		l.controls.Update()
	}
	if l.grid != nil {
		l.grid.ApplyWave(t, l.amplitude)
	}
	seq := l.frames.Add(1)
	if l.renderer == nil || l.grid == nil {
		return
	}
	if err := l.renderer.Render(l.grid.Frame(seq, t)); err != nil {
		// first failure is worth a warning, the rest would flood the log
		if l.failures.Add(1) == 1 {
			l.log.Warn("render failed", "frame", seq, "err", err)
		} else {
			l.log.Debug("render failed", "frame", seq, "err", err)
		}
	}
}

// Run ticks at fps until ctx is done, timing frames from its first call.
func (l *Loop) Run(ctx context.Context, clk clock.Clock, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := clk.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	epoch := clk.Now()
	l.log.Debug("render loop started", "fps", fps)
	for {
		select {
		case <-ctx.Done():
			l.log.Debug("render loop stopped", "frames", l.frames.Load())
			return ctx.Err()
		case <-ticker.C():
			l.Tick(clk.Now().Sub(epoch).Seconds())
		}
	}
}

// Frames counts ticks so far.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Failures counts frames the renderer rejected.
func (l *Loop) Failures() uint64 { return l.failures.Load() }

func (l *Loop) Amplitude() float64 { return l.amplitude }
