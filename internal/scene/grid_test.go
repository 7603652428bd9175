package scene

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewGridAtRest(t *testing.T) {
	g := NewGrid(10, 2, cyan, light)
	if g.Len() != 100 {
		t.Fatalf("expected 100 cells, got %d", g.Len())
	}
	if g.Size() != 10 {
		t.Errorf("expected size 10, got %d", g.Size())
	}

	seen := make(map[[2]float64]bool)
	for i, c := range g.Snapshot() {
		key := [2]float64{c.Position.X, c.Position.Z}
		if seen[key] {
			t.Errorf("cell %d shares (x,z) %v with another cell", i, key)
		}
		seen[key] = true

		if c.Position.Y != 0 {
			t.Errorf("cell %d: expected y=0, got %f", i, c.Position.Y)
		}
		if c.Rotation != (Vec3{}) {
			t.Errorf("cell %d: expected zero rotation, got %v", i, c.Rotation)
		}
		if c.Index != i || c.Row != i/10 || c.Col != i%10 {
			t.Errorf("cell %d: bad identity %d (%d,%d)", i, c.Index, c.Row, c.Col)
		}
	}
}

func TestApplyWaveOnlyTouchesHeight(t *testing.T) {
	g := NewGrid(4, 2, cyan, light)
	rot := make([]Vec3, g.Len())
	for i := range rot {
		rot[i] = Vec3{X: float64(i), Z: -float64(i)}
	}
	g.SetRotations(rot)
	before := g.Snapshot()

	g.ApplyWave(1.3, 0.5)

	for i, c := range g.Snapshot() {
		if c.Rotation != before[i].Rotation {
			t.Errorf("cell %d: wave changed rotation", i)
		}
		if c.Position.X != before[i].Position.X || c.Position.Z != before[i].Position.Z {
			t.Errorf("cell %d: wave changed x/z", i)
		}
		want := Displacement(1.3, c.Row, c.Col, 0.5)
		if c.Position.Y != want {
			t.Errorf("cell %d: expected y=%f, got %f", i, want, c.Position.Y)
		}
	}
}

func TestSetRotationsOnlyTouchesRotation(t *testing.T) {
	g := NewGrid(3, 1, cyan, light)
	g.ApplyWave(0.8, 1)
	before := g.Snapshot()

	g.SetRotations([]Vec3{{X: 1}, {X: 2}})

	after := g.Snapshot()
	for i := range after {
		if after[i].Position != before[i].Position {
			t.Errorf("cell %d: rotation write moved the cell", i)
		}
	}
	if after[1].Rotation.X != 2 {
		t.Errorf("expected rotation x 2, got %f", after[1].Rotation.X)
	}
	if after[5].Rotation != (Vec3{}) {
		t.Errorf("short slice should leave remaining cells alone, got %v", after[5].Rotation)
	}
}

func TestRecolor(t *testing.T) {
	g := NewGrid(10, 2, cyan, light)
	magenta := cyan
	magenta.R, magenta.G = 1, 0
	g.Recolor(magenta, light)

	if c := g.Cell(0); c.Color != magenta {
		t.Errorf("first cell: expected %v, got %v", magenta, c.Color)
	}
	if c := g.Cell(99); c.Color != light {
		t.Errorf("last cell: expected %v, got %v", light, c.Color)
	}
}

func TestEmptyGrid(t *testing.T) {
	g := NewGrid(0, 2, cyan, light)
	if g.Len() != 0 {
		t.Errorf("expected empty grid, got %d cells", g.Len())
	}
	g.ApplyWave(1, 1)
	if len(g.Frame(0, 0).Cells) != 0 {
		t.Error("expected empty frame")
	}

	var nilGrid *Grid
	if nilGrid.Len() != 0 {
		t.Error("nil grid should report zero cells")
	}
	if nilGrid.Size() != 0 {
		t.Error("nil grid should report zero size")
	}
}

func TestVecRotate(t *testing.T) {
	v := Vec3{X: 1}
	r := v.Rotate(Vec3{Z: math.Pi / 2})
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("rotating +X by 90deg about Z: expected +Y, got %v", r)
	}

	full := Vec3{X: 0.3, Y: -0.5, Z: 0.5}.Rotate(Vec3{X: 2 * math.Pi, Z: -2 * math.Pi})
	if full.Sub(Vec3{X: 0.3, Y: -0.5, Z: 0.5}).Length() > 1e-9 {
		t.Errorf("full turn should restore the vector, got %v", full)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	offset := Vec3{X: 10, Y: 6, Z: 10}
	s := SphericalFrom(offset)
	back := s.Offset()
	if back.Sub(offset).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", offset, back)
	}

	c := Spherical{Radius: 500, Phi: -1}.Clamp(1, 50)
	if c.Radius != 50 || c.Phi <= 0 {
		t.Errorf("clamp failed: %+v", c)
	}
}

func TestShade(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	sun := Light{Color: white, Intensity: 0.8, Position: Vec3{Y: 10}}
	sky := Light{Color: white, Intensity: 0.2}
	c := colorful.Color{R: 0.5, G: 1, B: 0.25}

	lit := Shade(c, Vec3{Y: 1}, sun, sky)
	if math.Abs(lit.R-0.5) > 1e-12 || math.Abs(lit.G-1) > 1e-12 {
		t.Errorf("facing the light should keep the color, got %v", lit)
	}

	dark := Shade(c, Vec3{Y: -1}, sun, sky)
	if math.Abs(dark.G-0.2) > 1e-12 {
		t.Errorf("facing away should leave only ambient, got %v", dark)
	}

	bright := Shade(c, Vec3{Y: 1}, Light{Color: white, Intensity: 3, Position: Vec3{Y: 1}}, sky)
	if bright.G > 1 {
		t.Errorf("expected clamped channel, got %f", bright.G)
	}
}
