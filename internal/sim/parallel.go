// Package sim runs headless traces of several configurations side by side.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/boxwave/internal/analysis"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/metrics"
)

// Builder makes a fresh engine for a preset name.
type Builder func(preset string) (*engine.Engine, error)

type Result struct {
	Preset  string
	Trace   *analysis.Trace
	Metrics map[string]float64
}

// Ensemble traces the same cell under each preset. Every run gets its own
// engine, so runs share no state.
type Ensemble struct {
	build   Builder
	presets []string
	opts    analysis.Options
}

func NewEnsemble(build Builder, presets []string, opts analysis.Options) *Ensemble {
	return &Ensemble{build: build, presets: presets, opts: opts}
}

// Run returns results in preset order, or the first error.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.presets))
	errs := make([]error, len(e.presets))

	var wg sync.WaitGroup
	for i, name := range e.presets {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = e.runOne(name)
		}(i, name)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.presets[i], err)
		}
	}
	return results, nil
}

func (e *Ensemble) runOne(name string) (*Result, error) {
	eng, err := e.build(name)
	if err != nil {
		return nil, err
	}
	tr, err := analysis.Record(eng, e.opts)
	if err != nil {
		return nil, err
	}

	figures := metrics.Evaluate(tr, metrics.Default(eng.Config().Scene.WaveAmplitude)...)
	freq, err := analysis.DominantFrequency(tr.Heights, tr.Rate)
	if err != nil {
		return nil, err
	}
	figures["frequency"] = freq
	figures["flourish_seconds"] = tr.FlourishSeconds
	figures["cycles"] = float64(tr.Cycles)
	return &Result{Preset: name, Trace: tr, Metrics: figures}, nil
}
