package flourish

import (
	"math"
	"time"

	"github.com/san-kum/boxwave/internal/scene"
)

// FullTurn is the rotation each cell makes per cycle, +X and -Z.
const FullTurn = 2 * math.Pi

// Ease is a quadratic ease-in-out mapping [0,1] onto [0,1].
func Ease(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 2 * p * p
	}
	q := 1 - p
	return 1 - 2*q*q
}

// Delays spreads per-cell start offsets over an n×n grid, nearest-first from
// cell (0,0). The farthest cell starts step*n after the first.
func Delays(n int, step time.Duration) []time.Duration {
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n*n)
	far := math.Hypot(float64(n-1), float64(n-1))
	if far == 0 {
		return out
	}
	amount := float64(step) * math.Max(float64(n), float64(n*n)/float64(n))
	for i := range out {
		row, col := i/n, i%n
		d := math.Hypot(float64(row), float64(col))
		out[i] = time.Duration(math.Round(d / far * amount))
	}
	return out
}

// Pose is the orientation of a cell that started at r, p of the way
// through its own turn.
func Pose(r scene.Vec3, p float64) scene.Vec3 {
	e := Ease(p)
	return scene.Vec3{X: r.X + FullTurn*e, Y: r.Y, Z: r.Z - FullTurn*e}
}

// Motion samples one flourish cycle at any elapsed time.
type Motion struct {
	start    []scene.Vec3
	delays   []time.Duration
	duration time.Duration
	total    time.Duration
}

// NewMotion prepares a cycle for cells starting at the given orientations.
func NewMotion(start []scene.Vec3, n int, duration, step time.Duration) *Motion {
	delays := Delays(n, step)
	if len(delays) < len(start) {
		delays = append(delays, make([]time.Duration, len(start)-len(delays))...)
	}
	var last time.Duration
	for _, d := range delays[:len(start)] {
		last = max(last, d)
	}
	s := make([]scene.Vec3, len(start))
	copy(s, start)
	return &Motion{start: s, delays: delays, duration: duration, total: last + duration}
}

// Total is the time from trigger until the last cell finishes.
func (m *Motion) Total() time.Duration { return m.total }

// Delay is the start offset of cell i.
func (m *Motion) Delay(i int) time.Duration { return m.delays[i] }

// Progress is the overall completion in [0,1].
func (m *Motion) Progress(elapsed time.Duration) float64 {
	if m.total <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(elapsed)/float64(m.total)))
}

func (m *Motion) local(i int, elapsed time.Duration) float64 {
	since := elapsed - m.delays[i]
	if m.duration <= 0 {
		if since >= 0 {
			return 1
		}
		return 0
	}
	return float64(since) / float64(m.duration)
}

// At returns every cell's orientation at elapsed time since the trigger.
func (m *Motion) At(elapsed time.Duration) []scene.Vec3 {
	out := make([]scene.Vec3, len(m.start))
	for i, r := range m.start {
		out[i] = Pose(r, m.local(i, elapsed))
	}
	return out
}

// Final is the resting pose once the cycle completes.
func (m *Motion) Final() []scene.Vec3 {
	return m.At(m.total)
}
