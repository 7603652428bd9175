// Package viz is the terminal frontend for the box grid.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: one render loop tick per frame, side panel with flourish state
//   - [Screen]: viewport and renderer; projects every box as a wireframe
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Camera]: perspective orbit camera stepped as the loop's controls
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space   - Rotate the grid
//	Enter/R - Rotate (panel button)
//	C       - Cycle base color swatches
//	Arrows  - Orbit the camera
//	+/-     - Zoom
//	A       - Toggle axes
//	T       - Cycle color themes
//	G       - Toggle GIF recording
//	?       - Show help overlay
//
// # Recording
//
// The G key records the canvas and writes boxwave.gif to the current
// directory when pressed again.
package viz
