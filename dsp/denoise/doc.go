// Package denoise implements Wiener-filter spectral denoising driven by a
// noise power estimate taken from a caller-selected time window.
//
// The per-bin gain P[k]/(P[k]+alpha*Pn) is computed over the full complex
// spectrum. Because the power spectrum of a real signal is itself
// conjugate-symmetric, multiplying the spectrum elementwise by this real
// gain preserves Hermitian symmetry and the inverse transform stays real.
package denoise
