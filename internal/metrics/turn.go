package metrics

import "math"

// Turn is the largest X rotation reached relative to the first sample, in
// radians. A finished flourish reads 2π.
type Turn struct {
	name    string
	start   float64
	max     float64
	samples int
}

func NewTurn() *Turn {
	return &Turn{name: "turn"}
}

func (t *Turn) Name() string { return t.name }

func (t *Turn) Observe(s Sample) {
	if t.samples == 0 {
		t.start = s.RotX
	}
	t.samples++
	t.max = math.Max(t.max, math.Abs(s.RotX-t.start))
}

func (t *Turn) Value() float64 { return t.max }

func (t *Turn) Reset() {
	t.start = 0
	t.max = 0
	t.samples = 0
}
