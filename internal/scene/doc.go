// Package scene provides the data model and pure animation math for the box grid.
//
// The package defines the grid of boxes and the functions that place,
// color and displace them:
//
//   - [Layout]: static x/z placement of an N×N grid centered on the origin
//   - [ColorFor]: linear RGB gradient from a base color toward a light reference
//   - [Displacement]: per-cell wave height at time t
//   - [Grid]: the owned, synchronized sequence of [Cell] values
//
// # Example
//
//	g := scene.NewGrid(10, 2.0, base, light)
//	g.ApplyWave(t, 0.5)
//	frame := g.Frame(seq, t)
//
// # Thread Safety
//
// Grid is safe for concurrent use. The wave writes only Position.Y and the
// rotation flourish writes only Rotation, so the two never contend on data.
package scene
