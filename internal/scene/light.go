package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Light is a white-ish light source. Position is ignored for ambient light;
// a directional light shines from Position toward the origin.
type Light struct {
	Color     colorful.Color
	Intensity float64
	Position  Vec3
}

// Shade applies Lambert lighting to a surface of color c facing normal.
// Channels are clamped to [0,1].
func Shade(c colorful.Color, normal Vec3, directional, ambient Light) colorful.Color {
	lambert := math.Max(0, normal.Normalize().Dot(directional.Position.Normalize()))
	a, d := ambient.Intensity, directional.Intensity*lambert
	out := colorful.Color{
		R: c.R * (ambient.Color.R*a + directional.Color.R*d),
		G: c.G * (ambient.Color.G*a + directional.Color.G*d),
		B: c.B * (ambient.Color.B*a + directional.Color.B*d),
	}
	return out.Clamped()
}
