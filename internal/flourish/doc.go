// Package flourish implements the triggered rotation animation of the grid.
//
// A [Flourish] is a two-state machine:
//
//	Idle --Trigger--> Animating --completion--> Idle
//	Animating --Trigger--> Animating (ignored)
//
// Each cycle turns every cell +2π about X and -2π about Z over a fixed
// duration, with a per-cell start delay growing with the cell's distance from
// the first corner. A cycle runs on its own goroutine and ticker, not on the
// render loop, and always runs to completion.
//
// [Motion] exposes the same curve as a pure function of elapsed time for
// headless sampling.
package flourish
