package scene

import "math"

// WavePhaseStep is the phase offset between neighbouring rows and columns.
const WavePhaseStep = 0.5

// Displacement is the vertical offset of the cell at (row, col) at time t.
// The result always lies in [-amplitude, amplitude].
func Displacement(t float64, row, col int, amplitude float64) float64 {
	return math.Sin(t+float64(col)*WavePhaseStep) * math.Sin(t+float64(row)*WavePhaseStep) * amplitude
}
