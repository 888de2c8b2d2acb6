// SPDX-License-Identifier: EPL-2.0

// Package overlay lays a background music track under a speech track.
//
// Everything works on fully decoded audio.Buffer values and every function
// returns a new buffer; inputs are never modified.
//
// # Mixing
//
// Mix runs the whole job:
//
//	p := overlay.DefaultParams()          // music 10 dB down
//	p.OverlayStart = 5 * time.Second      // music enters after five seconds
//	p.MusicRange = overlay.Between(30*time.Second, 90*time.Second)
//
//	out, err := overlay.Mix(speech, music, p)
//
// The output lasts as long as the selected speech, plus p.Tail when the
// music should keep playing after the speech ends.
//
// # Building Blocks
//
// The stages of Mix are exported on their own:
//   - Slice selects a Range of a buffer
//   - Gain scales a buffer by a number of decibels
//   - Normalize peak-normalizes a buffer
//   - Reconcile converts music to the speech's rate and channel layout
//   - Pad and Loop make a buffer at least a given length
//   - Extend appends silence
//   - Compose sums one buffer onto another at an offset
//   - Fade applies linear fade-in and fade-out
//
// # Ranges
//
// A Range has a start and an optional end:
//
//	overlay.Full()                 // the whole buffer
//	overlay.From(10*time.Second)   // from 10s to the end
//	overlay.Between(2*time.Second, 8*time.Second)
//
// A start past the end of the buffer fails with ErrOutOfRange instead of
// quietly producing an empty selection.
//
// # Errors
//
//   - ErrOutOfRange: a range starts after its buffer ends, or selects no speech
//   - ErrInvalidRange: negative start or offset, or end not after start
//   - ErrFormatMismatch: music cannot be converted to the speech format
//   - ErrInvalidParams: non-finite gain, negative fades or tail
//
// Use errors.Is to test for them; they are always wrapped with context.
package overlay
