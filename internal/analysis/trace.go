package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/flourish"
	"github.com/san-kum/boxwave/internal/scene"
)

type Options struct {
	Cell    int
	Seconds float64
	Rate    int
	// TriggerAt fires one flourish at this many seconds in. Negative
	// disables it.
	TriggerAt float64
}

// Trace is one cell sampled every frame.
type Trace struct {
	Cell, Row, Col int
	Rate           float64
	Times          []float64
	Heights        []float64
	RotX           []float64
	RotZ           []float64
	// Cycles is how many flourish cycles completed during the trace, and
	// FlourishSeconds how long the last one took on the trace's timeline.
	Cycles          uint64
	FlourishSeconds float64
}

func (tr *Trace) Len() int { return len(tr.Times) }

type recorder struct {
	cell  int
	trace *Trace
}

func (r *recorder) Render(f scene.Frame) error {
	if r.cell >= len(f.Cells) {
		return fmt.Errorf("frame %d has %d cells", f.Seq, len(f.Cells))
	}
	c := f.Cells[r.cell]
	r.trace.Times = append(r.trace.Times, f.Time)
	r.trace.Heights = append(r.trace.Heights, c.Position.Y)
	r.trace.RotX = append(r.trace.RotX, c.Rotation.X)
	r.trace.RotZ = append(r.trace.RotZ, c.Rotation.Z)
	return nil
}

// steppedGrid reports every rotation update the flourish makes so the
// recorder can wait for it before drawing the next frame.
type steppedGrid struct {
	*scene.Grid
	stepped chan struct{}
}

func (g steppedGrid) SetRotations(r []scene.Vec3) {
	g.Grid.SetRotations(r)
	g.stepped <- struct{}{}
}

// Record runs the engine's render loop over simulated time. A flourish built
// from the engine's config runs on a manual clock that advances with the
// samples, and each frame waits for its update, so the trace is
// deterministic.
func Record(e *engine.Engine, opts Options) (*Trace, error) {
	g := e.Grid()
	if g.Len() == 0 {
		return nil, scene.ErrEmptyGrid
	}
	if opts.Cell < 0 || opts.Cell >= g.Len() {
		return nil, fmt.Errorf("cell %d out of range [0, %d)", opts.Cell, g.Len())
	}
	if opts.Rate <= 0 {
		opts.Rate = 60
	}
	if opts.Seconds <= 0 || math.IsInf(opts.Seconds, 0) || math.IsNaN(opts.Seconds) {
		return nil, fmt.Errorf("%w: trace seconds = %v", scene.ErrInvalidConfig, opts.Seconds)
	}

	n := g.Size()
	rate := float64(opts.Rate)
	steps := int(math.Round(opts.Seconds * rate))
	tr := &Trace{
		Cell:    opts.Cell,
		Row:     opts.Cell / n,
		Col:     opts.Cell % n,
		Rate:    rate,
		Times:   make([]float64, 0, steps),
		Heights: make([]float64, 0, steps),
		RotX:    make([]float64, 0, steps),
		RotZ:    make([]float64, 0, steps),
	}
	l := e.Loop(nil, &recorder{cell: opts.Cell, trace: tr})

	cfg := e.Config()
	clk := clock.NewManual(time.Unix(0, 0))
	fl := flourish.New(flourish.Options{
		Duration: cfg.FlourishDuration(),
		Step:     cfg.FlourishStep(),
		Interval: time.Second / time.Duration(opts.Rate),
		Clock:    clk,
		Logger:   e.Logger(),
	})
	target := steppedGrid{Grid: g, stepped: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	var (
		done                 <-chan struct{}
		triggered            bool
		now, began, lastStep time.Duration
	)
	for i := 0; i < steps; i++ {
		t := float64(i) / rate
		at := time.Duration(math.Round(t * float64(time.Second)))
		clk.Advance(at - now)
		now = at

		if done != nil {
			select {
			case <-target.stepped:
				lastStep = now
			case <-done:
				done = nil
				tr.FlourishSeconds = (lastStep - began).Seconds()
			}
		}
		if !triggered && opts.TriggerAt >= 0 && t >= opts.TriggerAt {
			triggered = true
			if res, ch := fl.Trigger(ctx, target); res == flourish.Started {
				done, began = ch, now
			}
		}
		l.Tick(t)
	}

	// A cycle still running at the end is cut short.
	cancel()
	for done != nil {
		select {
		case <-target.stepped:
		case <-done:
			done = nil
		}
	}
	tr.Cycles = fl.Cycles()

	if l.Failures() > 0 {
		return tr, fmt.Errorf("%d frames could not be recorded", l.Failures())
	}
	return tr, nil
}
