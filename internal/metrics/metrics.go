// Package metrics reduces a recorded trace to scalar figures.
package metrics

import "github.com/san-kum/boxwave/internal/analysis"

// Sample is one traced frame of a single cell.
type Sample struct {
	T      float64
	Height float64
	RotX   float64
	RotZ   float64
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Default is the set the trace command reports.
func Default(amplitude float64) []Metric {
	return []Metric{NewEnergy(), NewStability(amplitude), NewTurn()}
}

// Evaluate feeds every sample of tr through ms, resetting them first.
func Evaluate(tr *analysis.Trace, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := range tr.Times {
		s := Sample{T: tr.Times[i], Height: tr.Heights[i], RotX: tr.RotX[i], RotZ: tr.RotZ[i]}
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
