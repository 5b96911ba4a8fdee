// Package eq implements a reversible frequency-domain multiband equalizer.
//
// Band gains are discrete slider values in [GainMin, GainMax] mapped onto a
// linear gain curve centered at unity. Gain application edits positive-half
// spectrum magnitudes only; phases are preserved so timing and transient
// structure survive gain changes, and Hermitian mirroring keeps the inverse
// transform real-valued.
package eq
