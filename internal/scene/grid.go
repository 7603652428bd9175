package scene

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Grid owns the N×N cells for the lifetime of a session.
type Grid struct {
	mu      sync.RWMutex
	n       int
	spacing float64
	cells   []Cell
}

// NewGrid lays out n*n cells at rest: y=0, zero rotation, gradient colors.
func NewGrid(n int, spacing float64, base, light colorful.Color) *Grid {
	if n < 0 {
		n = 0
	}
	slots := Layout(n, spacing)
	cells := make([]Cell, len(slots))
	for i, p := range slots {
		cells[i] = Cell{
			Index:     i,
			Row:       p.Row,
			Col:       p.Col,
			Position:  Vec3{X: p.X, Z: p.Z},
			Intensity: Intensity(i, n),
			Color:     ColorFor(i, n, base, light),
		}
	}
	return &Grid{n: n, spacing: spacing, cells: cells}
}

// Size is the grid's side length N.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.n
}

// Len is the number of cells, N².
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

func (g *Grid) Spacing() float64 { return g.spacing }

// Cell returns a copy of cell i.
func (g *Grid) Cell(i int) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[i]
}

// Snapshot copies every cell.
func (g *Grid) Snapshot() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Frame wraps a snapshot for submission to a renderer.
func (g *Grid) Frame(seq uint64, t float64) Frame {
	return Frame{Seq: seq, Time: t, Size: g.n, Cells: g.Snapshot()}
}

// ApplyWave rewrites Position.Y of every cell. Rotation is not touched.
func (g *Grid) ApplyWave(t, amplitude float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		c := &g.cells[i]
		c.Position.Y = Displacement(t, c.Row, c.Col, amplitude)
	}
}

// Rotations copies the orientation of every cell.
func (g *Grid) Rotations() []Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vec3, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Rotation
	}
	return out
}

// SetRotations overwrites cell orientations. Position is not touched.
// Extra or missing entries are ignored.
func (g *Grid) SetRotations(r []Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		if i >= len(r) {
			break
		}
		g.cells[i].Rotation = r[i]
	}
}

// Recolor reapplies the gradient from a new base color.
func (g *Grid) Recolor(base, light colorful.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		g.cells[i].Color = ColorFor(i, g.n, base, light)
	}
}
