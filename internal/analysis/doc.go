// Package analysis samples the scene headlessly and characterizes the
// resulting traces.
//
//   - [Record]: step the render loop over simulated time and record one
//     cell's height and orientation, with a flourish fired part way through
//   - [DominantFrequency]: strongest non-DC component of a trace
//   - [NewPhasePortrait]: height against vertical velocity of a traced cell
//   - [Summarize]: mean, spread and range of a series
//
// # Wave frequency
//
// Cell (0,0) moves as A·sin²(t), so its spectrum peaks at 1/π Hz:
//
//	tr, _ := analysis.Record(eng, analysis.Options{Seconds: 60, Rate: 60})
//	f, _ := analysis.DominantFrequency(tr.Heights, tr.Rate)
package analysis
