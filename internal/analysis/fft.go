package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/boxwave/internal/scene"
)

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// data, mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	var mean float64
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spec := fft.FFTReal(centered)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency is the frequency in Hz of the strongest non-DC bin of
// data sampled at rate Hz, refined by parabolic interpolation.
func DominantFrequency(data []float64, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: sample rate = %v", scene.ErrInvalidConfig, rate)
	}
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, fmt.Errorf("trace too short: %d samples", len(data))
	}

	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if ps[peak] == 0 {
		return 0, nil
	}

	bin := float64(peak)
	if peak+1 < len(ps) {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if d := a - 2*b + c; d != 0 {
			shift := 0.5 * (a - c) / d
			if !math.IsNaN(shift) && math.Abs(shift) <= 0.5 {
				bin += shift
			}
		}
	}
	return bin * rate / float64(len(data)), nil
}
