package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/boxwave/internal/scene"
)

// Orbit is a damped orbit camera: left-drag rotates around the target,
// the wheel zooms. Input is accumulated and eased out over later frames.
type Orbit struct {
	camera *rl.Camera3D
	target scene.Vec3
	sph    scene.Spherical

	Damping   float64
	MinRadius float64
	MaxRadius float64

	// Blocked reports screen points owned by overlays; drags starting
	// there do not orbit.
	Blocked func(rl.Vector2) bool

	dTheta, dPhi float64
	scale        float64
	dragging     bool
}

func NewOrbit(camera *rl.Camera3D, position, target scene.Vec3, far float64) *Orbit {
	return &Orbit{
		camera:    camera,
		target:    target,
		sph:       scene.SphericalFrom(position.Sub(target)),
		Damping:   0.15,
		MinRadius: 1,
		MaxRadius: far * 0.9,
		scale:     1,
	}
}

// Update reads mouse input and moves the camera; runs once per frame.
func (o *Orbit) Update() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		o.dragging = o.Blocked == nil || !o.Blocked(mouse)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		o.dragging = false
	}
	if o.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		h := float64(max(rl.GetScreenHeight(), 1))
		delta := rl.GetMouseDelta()
		o.dTheta -= 2 * math.Pi * float64(delta.X) / h
		o.dPhi -= 2 * math.Pi * float64(delta.Y) / h
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		o.scale *= math.Pow(0.95, float64(wheel))
	}
	o.step()
}

func (o *Orbit) step() {
	o.sph.Theta += o.dTheta * o.Damping
	o.sph.Phi += o.dPhi * o.Damping
	o.sph.Radius *= o.scale
	o.sph = o.sph.Clamp(o.MinRadius, o.MaxRadius)

	o.dTheta *= 1 - o.Damping
	o.dPhi *= 1 - o.Damping
	o.scale = 1

	o.camera.Position = vec3(o.target.Add(o.sph.Offset()))
	o.camera.Target = vec3(o.target)
}
