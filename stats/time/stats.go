// Package time computes time-domain signal statistics in a single pass.
package time

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	Mean          float64
	Variance      float64 // sample variance over N (population convention)
	RMS           float64
	RMS_dB        float64
	Peak          float64 // max(|x|)
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
}

// Calculate computes all statistics using Welford's online algorithm for
// numerically stable variance on long signals.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMS_dB: math.Inf(-1)}
	}

	var (
		mean          float64
		m2            float64
		sumSq         float64
		peak          float64
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if a := math.Abs(x); a > peak {
			peak = a
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	rms := math.Sqrt(sumSq / float64(n))

	rmsDB := math.Inf(-1)
	if rms > 0 {
		rmsDB = 20 * math.Log10(rms)
	}

	return Stats{
		Length:        n,
		Mean:          mean,
		Variance:      m2 / float64(n),
		RMS:           rms,
		RMS_dB:        rmsDB,
		Peak:          peak,
		Energy:        sumSq,
		Power:         sumSq / float64(n),
		ZeroCrossings: zeroCrossings,
	}
}

// Variance returns the sample variance of signal, 0 for empty input.
func Variance(signal []float64) float64 {
	return Calculate(signal).Variance
}

// RMS returns the root-mean-square amplitude of signal, 0 for empty input.
func RMS(signal []float64) float64 {
	return Calculate(signal).RMS
}
