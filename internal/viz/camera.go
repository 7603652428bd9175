package viz

import (
	"math"

	"github.com/san-kum/boxwave/internal/config"
	"github.com/san-kum/boxwave/internal/scene"
)

// Camera is a perspective camera orbiting a target, projecting onto the
// canvas' dot grid. Orbit input is applied with damping on Update.
type Camera struct {
	Target    scene.Vec3
	Up        scene.Vec3
	FOV       float64 // vertical, degrees
	Near, Far float64
	Damping   float64

	MinRadius, MaxRadius float64

	orbit        scene.Spherical
	dTheta, dPhi float64
	scale        float64
	width        int
	height       int
}

// CameraFromConfig places a camera the way cfg describes.
func CameraFromConfig(cfg *config.Config) *Camera {
	vec := func(a [3]float64) scene.Vec3 { return scene.Vec3{X: a[0], Y: a[1], Z: a[2]} }
	return NewCamera(vec(cfg.Camera.Position), vec(cfg.Camera.Target), cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
}

func NewCamera(position, target scene.Vec3, fov, near, far float64) *Camera {
	orbit := scene.SphericalFrom(position.Sub(target))
	return &Camera{
		Target:    target,
		Up:        scene.Vec3{Y: 1},
		FOV:       fov,
		Near:      near,
		Far:       far,
		Damping:   0.15,
		MinRadius: 1,
		MaxRadius: far * 0.9,
		orbit:     orbit,
		scale:     1,
		width:     2,
		height:    4,
	}
}

// SetSize sets the projection surface in dots.
func (c *Camera) SetSize(width, height int) {
	c.width, c.height = max(width, 1), max(height, 1)
}

func (c *Camera) Aspect() float64 { return float64(c.width) / float64(c.height) }

func (c *Camera) Position() scene.Vec3 { return c.Target.Add(c.orbit.Offset()) }

func (c *Camera) Radius() float64 { return c.orbit.Radius }

// Orbit queues a rotation around the target, in radians.
func (c *Camera) Orbit(dTheta, dPhi float64) {
	c.dTheta += dTheta
	c.dPhi += dPhi
}

// Dolly scales the distance to the target on the next Update.
func (c *Camera) Dolly(factor float64) {
	if factor > 0 {
		c.scale *= factor
	}
}

// Update applies queued orbit input once per frame.
func (c *Camera) Update() {
	c.orbit.Theta += c.dTheta
	c.orbit.Phi += c.dPhi
	c.orbit.Radius *= c.scale
	c.orbit = c.orbit.Clamp(c.MinRadius, c.MaxRadius)
	c.scale = 1

	keep := 1 - c.Damping
	c.dTheta *= keep
	c.dPhi *= keep
	if math.Abs(c.dTheta) < 1e-5 {
		c.dTheta = 0
	}
	if math.Abs(c.dPhi) < 1e-5 {
		c.dPhi = 0
	}
}

// Settled reports whether no orbit input is pending.
func (c *Camera) Settled() bool { return c.dTheta == 0 && c.dPhi == 0 && c.scale == 1 }

// Project maps a world point to dot coordinates. depth is the distance
// along the view axis; ok is false outside the near/far range.
func (c *Camera) Project(p scene.Vec3) (x, y int, depth float64, ok bool) {
	eye := c.Position()
	forward := c.Target.Sub(eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	rel := p.Sub(eye)
	depth = rel.Dot(forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	f := 1 / math.Tan(c.FOV*math.Pi/360)
	ndcX := rel.Dot(right) * f / (c.Aspect() * depth)
	ndcY := rel.Dot(up) * f / depth

	x = int(math.Round((ndcX + 1) / 2 * float64(c.width-1)))
	y = int(math.Round((1 - ndcY) / 2 * float64(c.height-1)))
	return x, y, depth, true
}
