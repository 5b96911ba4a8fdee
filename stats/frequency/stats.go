// Package frequency computes shape descriptors of one-sided magnitude
// spectra, as produced by the equalizer's positive-frequency view.
//
// A spectrum of length m covers bins 0 (DC) through m-1, taken from a
// 2m-point transform, so bin i sits at i*sampleRate/(2m) Hz.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Stats holds descriptors computed from a one-sided magnitude spectrum.
type Stats struct {
	Bins    int
	DC      float64 // bin 0 magnitude
	Peak    float64
	PeakBin int
	PeakHz  float64
	Mean    float64
	Mean_dB float64
	Energy  float64 // sum of squared magnitudes
	Power   float64

	// Spectral shape descriptors.
	Centroid  float64 // magnitude-weighted mean frequency (Hz)
	Spread    float64 // magnitude-weighted deviation around the centroid (Hz)
	Flatness  float64 // Wiener entropy, 0..1, DC bin excluded
	Rolloff   float64 // frequency below which RolloffFraction of energy lies (Hz)
	Bandwidth float64 // 3 dB width around the peak (Hz)
}

// RolloffFraction is the energy fraction used for the Rolloff descriptor.
const RolloffFraction = 0.85

func binFreq(i int, sampleRate float64, bins int) float64 {
	return float64(i) * sampleRate / float64(2*bins)
}

// Calculate computes all descriptors from a one-sided linear magnitude
// spectrum. Spectra with fewer than two bins yield zero-valued shape
// descriptors.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	m := len(magnitude)
	if m == 0 {
		return Stats{Mean_dB: math.Inf(-1)}
	}

	s := Stats{Bins: m, DC: magnitude[0], Peak: magnitude[0]}

	sum := 0.0
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}

	s.PeakHz = binFreq(s.PeakBin, sampleRate, m)
	s.Mean = sum / float64(m)
	s.Mean_dB = core.LinearToDB(s.Mean)
	s.Power = s.Energy / float64(m)

	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, RolloffFraction, s.Energy)
	s.Bandwidth = bandwidth(magnitude, sampleRate, s.Peak, s.PeakBin)

	return s
}

// Centroid returns the magnitude-weighted mean frequency in Hz.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}

	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate float64, sum float64) float64 {
	m := len(magnitude)
	if m < 2 || sum == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, m) * v
	}

	return weighted / sum
}

func spread(magnitude []float64, sampleRate float64, cent, sum float64) float64 {
	m := len(magnitude)
	if m < 2 || sum == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range magnitude {
		d := binFreq(i, sampleRate, m) - cent
		weighted += d * d * v
	}

	return math.Sqrt(weighted / sum)
}

// Flatness returns the ratio of geometric to arithmetic mean magnitude over
// bins 1..m-1. A single dominant tone approaches 0, white noise approaches 1.
// Any zero bin collapses the geometric mean, so the result is then 0.
func Flatness(magnitude []float64) float64 {
	m := len(magnitude)
	if m < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0

	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(m - 1)

	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the frequency below which fraction of the spectral energy
// lies. Energy is the sum of squared magnitudes.
func Rolloff(magnitude []float64, sampleRate, fraction float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}

	return rolloff(magnitude, sampleRate, fraction, energy)
}

func rolloff(magnitude []float64, sampleRate, fraction, energy float64) float64 {
	m := len(magnitude)
	if m < 2 || energy == 0 {
		return 0
	}

	threshold := fraction * energy

	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return binFreq(i, sampleRate, m)
		}
	}

	return binFreq(m-1, sampleRate, m)
}

// Bandwidth returns the 3 dB width around the spectral peak in Hz, with
// linear interpolation between the bins straddling each crossing.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	peak := 0.0
	peakBin := 0
	for i, v := range magnitude {
		if v > peak {
			peak = v
			peakBin = i
		}
	}

	return bandwidth(magnitude, sampleRate, peak, peakBin)
}

func bandwidth(magnitude []float64, sampleRate, peak float64, peakBin int) float64 {
	m := len(magnitude)
	if m < 2 || peak == 0 {
		return 0
	}

	threshold := peak / math.Sqrt2

	lower := binFreq(0, sampleRate, m)
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = crossing(i-1, i, magnitude[i-1], magnitude[i], threshold, sampleRate, m)
			break
		}
	}

	upper := binFreq(m-1, sampleRate, m)
	for i := peakBin; i < m-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = crossing(i, i+1, magnitude[i], magnitude[i+1], threshold, sampleRate, m)
			break
		}
	}

	if upper < lower {
		return 0
	}

	return upper - lower
}

func crossing(lo, hi int, magLo, magHi, threshold, sampleRate float64, bins int) float64 {
	fLo := binFreq(lo, sampleRate, bins)
	fHi := binFreq(hi, sampleRate, bins)

	denom := magHi - magLo
	if denom == 0 {
		return (fLo + fHi) / 2
	}

	return fLo + (threshold-magLo)/denom*(fHi-fLo)
}
