package viz

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/boxwave/internal/scene"
)

type Edge struct {
	Start, End scene.Vec3
	Color      colorful.Color
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e scene.Vec3, c colorful.Color) {
	w.Edges = append(w.Edges, Edge{s, e, c})
}
func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

var (
	cubeCorners = [8]scene.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	cubeEdges = [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
)

// AddBox adds the twelve edges of a cube of side size centered at center,
// oriented by Euler angles rot.
func (w *Wireframe) AddBox(center, rot scene.Vec3, size float64, c colorful.Color) {
	var v [8]scene.Vec3
	for i, corner := range cubeCorners {
		v[i] = corner.Scale(size / 2).Rotate(rot).Add(center)
	}
	for _, e := range cubeEdges {
		w.AddEdge(v[e[0]], v[e[1]], c)
	}
}

// Axis colors match the usual red/green/blue for X/Y/Z.
var (
	axisX = colorful.Color{R: 1, G: 0.2, B: 0.2}
	axisY = colorful.Color{R: 0.2, G: 1, B: 0.2}
	axisZ = colorful.Color{R: 0.2, G: 0.4, B: 1}
)

// AddAxes adds X, Y and Z axes of length l from the origin.
func (w *Wireframe) AddAxes(l float64) {
	var o scene.Vec3
	w.AddEdge(o, scene.Vec3{X: l}, axisX)
	w.AddEdge(o, scene.Vec3{Y: l}, axisY)
	w.AddEdge(o, scene.Vec3{Z: l}, axisZ)
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	color          colorful.Color
}

// Render3D draws the wireframe far to near so nearer edges own the color of
// shared character cells. Edges with an endpoint behind the camera are
// dropped.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, ok1 := cam.Project(e.Start)
		x2, y2, d2, ok2 := cam.Project(e.End)
		if !ok1 || !ok2 {
			continue
		}
		if !onCanvas(c, x1, y1) && !onCanvas(c, x2, y2) {
			continue
		}
		proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth > proj[j].depth })
	for _, e := range proj {
		c.Ink = e.color
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}

func onCanvas(c *Canvas, x, y int) bool {
	return x >= 0 && y >= 0 && x < c.DotWidth() && y < c.DotHeight()
}
