package flourish

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/boxwave/internal/clock"
	"github.com/san-kum/boxwave/internal/logx"
	"github.com/san-kum/boxwave/internal/scene"
)

const (
	DefaultDuration = 1200 * time.Millisecond
	DefaultStep     = 200 * time.Millisecond
	DefaultInterval = time.Second / 60
)

// State of the flourish state machine.
type State int32

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Result of a trigger attempt.
type Result int

const (
	Skipped Result = iota
	Started
)

func (r Result) String() string {
	if r == Started {
		return "started"
	}
	return "skipped"
}

// Target is the set of cells a flourish rotates.
type Target interface {
	Len() int
	Size() int
	Rotations() []scene.Vec3
	SetRotations([]scene.Vec3)
}

type Options struct {
	Duration time.Duration
	Step     time.Duration
	// Interval is the period of the flourish's own update ticker.
	Interval   time.Duration
	Clock      clock.Clock
	Logger     *slog.Logger
	OnComplete func()
}

// Flourish runs staggered rotation cycles, one at a time.
type Flourish struct {
	opts   Options
	log    *slog.Logger
	state  atomic.Int32
	cycles atomic.Uint64

	mu     sync.Mutex
	motion *Motion
	began  time.Time
}

func New(opts Options) *Flourish {
	if opts.Duration < 0 {
		opts.Duration = 0
	}
	if opts.Step < 0 {
		opts.Step = 0
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewReal()
	}
	return &Flourish{opts: opts, log: logx.OrDiscard(opts.Logger)}
}

func (f *Flourish) State() State { return State(f.state.Load()) }

// Busy reports whether a cycle is in flight.
func (f *Flourish) Busy() bool { return f.State() == Animating }

// Cycles counts completed cycles.
func (f *Flourish) Cycles() uint64 { return f.cycles.Load() }

// Progress is the completion of the running cycle, 0 when idle.
func (f *Flourish) Progress() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.motion == nil {
		return 0
	}
	return f.motion.Progress(f.opts.Clock.Now().Sub(f.began))
}

// Total is the length of a cycle over an n×n grid.
func (f *Flourish) Total(n int) time.Duration {
	return NewMotion(make([]scene.Vec3, max(n, 0)*max(n, 0)), n, f.opts.Duration, f.opts.Step).Total()
}

// Trigger starts a cycle over every cell of t unless one is already running
// or t has no cells. The returned channel closes when the cycle completes;
// it is nil when the trigger was skipped. Cancelling ctx finishes the cycle
// at once in its final pose.
func (f *Flourish) Trigger(ctx context.Context, t Target) (Result, <-chan struct{}) {
	if t == nil || t.Len() == 0 {
		f.log.Debug("flourish skipped", "reason", "empty grid")
		return Skipped, nil
	}
	if !f.state.CompareAndSwap(int32(Idle), int32(Animating)) {
		f.log.Debug("flourish skipped", "reason", "busy")
		return Skipped, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := NewMotion(t.Rotations(), t.Size(), f.opts.Duration, f.opts.Step)
	began := f.opts.Clock.Now()
	f.mu.Lock()
	f.motion, f.began = m, began
	f.mu.Unlock()

	// Subscribe before returning so a caller advancing a manual clock right
	// after Trigger is never missed.
	ticker := f.opts.Clock.NewTicker(f.opts.Interval)
	done := make(chan struct{})
	f.log.Debug("flourish started", "cells", t.Len(), "total", m.Total())
	go f.run(ctx, t, m, began, ticker, done)
	return Started, done
}

func (f *Flourish) run(ctx context.Context, t Target, m *Motion, began time.Time, ticker clock.Ticker, done chan struct{}) {
	defer ticker.Stop()
	defer f.finish(done)

	for {
		select {
		case <-ctx.Done():
			t.SetRotations(m.Final())
			f.log.Debug("flourish cut short", "err", ctx.Err())
			return
		case <-ticker.C():
			elapsed := f.opts.Clock.Now().Sub(began)
			if elapsed >= m.Total() {
				t.SetRotations(m.Final())
				return
			}
			t.SetRotations(m.At(elapsed))
		}
	}
}

func (f *Flourish) finish(done chan struct{}) {
	f.mu.Lock()
	f.motion = nil
	f.mu.Unlock()

	f.cycles.Add(1)
	f.state.Store(int32(Idle))
	close(done)
	f.log.Debug("flourish complete", "cycles", f.cycles.Load())
	if f.opts.OnComplete != nil {
		f.opts.OnComplete()
	}
}
