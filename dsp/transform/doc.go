// Package transform owns the forward/inverse DFT bookkeeping for real
// signals of arbitrary length.
//
// The spectrum of a length-N signal always has exactly N complex bins, so
// the transform backend must handle non-power-of-2 sizes directly; no
// zero-padding is performed. Helpers cover the frequency-bin layout,
// positive-half extraction for display and band mapping, and the Hermitian
// mirroring that keeps a magnitude-edited spectrum real-valued after the
// inverse transform.
package transform
