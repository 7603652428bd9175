// Package clock supplies time sources for the render loop and the rotation
// flourish: the wall clock for hosts, and a manually advanced clock for tests
// and headless sampling.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time and creates tickers on the same timeline.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real is the system clock with monotonic readings.
type Real struct{}

func NewReal() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

func (Real) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Manual is a controllable clock. Tickers fire only when Advance is called,
// once per Advance regardless of their period, carrying the latest time.
type Manual struct {
	mu      sync.RWMutex
	now     time.Time
	tickers []*manualTicker
}

// NewManual creates a manual clock positioned at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Manual) NewTicker(time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time, 1), owner: m}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance moves the clock forward and notifies live tickers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	live := make([]*manualTicker, len(m.tickers))
	copy(live, m.tickers)
	m.mu.Unlock()

	for _, t := range live {
		t.fire(now)
	}
}

// Tickers reports how many tickers are still running.
func (m *Manual) Tickers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tickers)
}

func (m *Manual) remove(t *manualTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, x := range m.tickers {
		if x == t {
			m.tickers = append(m.tickers[:i], m.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	ch    chan time.Time
	owner *Manual
	once  sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.once.Do(func() { t.owner.remove(t) })
}

// fire replaces any undelivered tick so the receiver always sees the latest time.
func (t *manualTicker) fire(now time.Time) {
	select {
	case <-t.ch:
	default:
	}
	select {
	case t.ch <- now:
	default:
	}
}
