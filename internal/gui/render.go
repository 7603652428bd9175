package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/boxwave/internal/scene"
)

const (
	boxSize    = 1.0
	axesLength = 5.0
	toDegrees  = 180 / math.Pi
)

var up = scene.Vec3{Y: 1}

// Render draws one frame in world space. Rotations are applied X, Y then Z
// on the matrix stack, so vertices see Z first.
func (a *App) Render(frame scene.Frame) error {
	rl.BeginMode3D(a.Camera)
	defer rl.EndMode3D()

	origin := rl.NewVector3(0, 0, 0)
	for _, c := range frame.Cells {
		face := scene.Shade(c.Color, up.Rotate(c.Rotation), a.directional, a.ambient)
		edge := scene.Shade(c.Color, up, a.directional, a.ambient)

		rl.PushMatrix()
		rl.Translatef(float32(c.Position.X), float32(c.Position.Y), float32(c.Position.Z))
		rl.Rotatef(float32(c.Rotation.X*toDegrees), 1, 0, 0)
		rl.Rotatef(float32(c.Rotation.Y*toDegrees), 0, 1, 0)
		rl.Rotatef(float32(c.Rotation.Z*toDegrees), 0, 0, 1)
		rl.DrawCube(origin, boxSize, boxSize, boxSize, color(face))
		rl.DrawCubeWires(origin, boxSize, boxSize, boxSize, rl.ColorBrightness(color(edge), -0.4))
		rl.PopMatrix()
	}

	if a.showAxes {
		rl.DrawLine3D(origin, rl.NewVector3(axesLength, 0, 0), rl.Red)
		rl.DrawLine3D(origin, rl.NewVector3(0, axesLength, 0), rl.Green)
		rl.DrawLine3D(origin, rl.NewVector3(0, 0, axesLength), rl.Blue)
	}
	return nil
}
