package scene

import "math"

// Spherical is an orbit position around a target: Radius, polar angle Phi
// measured from +Y, and azimuth Theta measured from +Z toward +X.
type Spherical struct {
	Radius, Phi, Theta float64
}

const minPhi = 1e-6

// SphericalFrom converts an offset from the target to spherical coordinates.
func SphericalFrom(offset Vec3) Spherical {
	r := offset.Length()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Phi:    math.Acos(math.Max(-1, math.Min(1, offset.Y/r))),
		Theta:  math.Atan2(offset.X, offset.Z),
	}
}

// Offset converts back to a cartesian offset from the target.
func (s Spherical) Offset() Vec3 {
	sinPhi := math.Sin(s.Phi)
	return Vec3{
		X: s.Radius * sinPhi * math.Sin(s.Theta),
		Y: s.Radius * math.Cos(s.Phi),
		Z: s.Radius * sinPhi * math.Cos(s.Theta),
	}
}

// Clamp keeps the pole out of reach and the radius inside [minR, maxR].
func (s Spherical) Clamp(minR, maxR float64) Spherical {
	s.Phi = math.Max(minPhi, math.Min(math.Pi-minPhi, s.Phi))
	s.Radius = math.Max(minR, math.Min(maxR, s.Radius))
	return s
}
