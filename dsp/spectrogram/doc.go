// Package spectrogram computes short-time Fourier transform power
// spectrograms for visualization and offline analysis.
//
// An Analyzer is configured once with a frame size, overlap factor and
// window name, then reused across signals. Frame sizes are restricted to
// powers of two so the radix-2 FFT plans apply; arbitrary-length whole
// signal transforms live in dsp/transform instead.
package spectrogram
