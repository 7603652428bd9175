package scene

import "github.com/lucasb-eyer/go-colorful"

// Placement is the static slot of one cell on the ground plane.
type Placement struct {
	Row, Col int
	X, Z     float64
}

// Layout returns n*n placements in row-major order, centered on the origin.
func Layout(n int, spacing float64) []Placement {
	if n <= 0 {
		return []Placement{}
	}
	offset := float64(n-1) * spacing / 2
	out := make([]Placement, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out = append(out, Placement{
				Row: row,
				Col: col,
				X:   float64(col)*spacing - offset,
				Z:   float64(row)*spacing - offset,
			})
		}
	}
	return out
}

// Intensity is the gradient position of cell index in a grid of n*n cells.
// A single-cell grid sits at 0.
func Intensity(index, n int) float64 {
	last := n*n - 1
	if last <= 0 || index <= 0 {
		return 0
	}
	if index >= last {
		return 1
	}
	return float64(index) / float64(last)
}

// ColorFor interpolates linearly in RGB from base toward target by the
// cell's intensity. The first cell is exactly base and the last exactly target.
func ColorFor(index, n int, base, target colorful.Color) colorful.Color {
	last := n*n - 1
	switch {
	case last <= 0, index <= 0:
		return base
	case index >= last:
		return target
	}
	return base.BlendRgb(target, Intensity(index, n))
}
