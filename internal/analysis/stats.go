package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one series of a trace.
type Stats struct {
	Mean, StdDev float64
	Min, Max     float64
}

// Summarize returns the zero Stats for an empty series.
func Summarize(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		std = 0
	}
	return Stats{Mean: mean, StdDev: std, Min: floats.Min(xs), Max: floats.Max(xs)}
}
