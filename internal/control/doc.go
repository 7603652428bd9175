// Package control routes user input to the scene.
//
// A [Controller] maps input sources to actions:
//
//   - space key and the panel "rotate" button trigger the rotation flourish
//   - the panel color picker retints the whole grid at once
//   - a viewport resize is forwarded to the frontend's camera and surface
//
// # Usage
//
//	ctrl := control.New(grid, fl, viewport, base, light, logger)
//	ctrl.HandleKey(ctx, " ")
//	ctrl.PickColor(control.Palette[1].Color)
package control
