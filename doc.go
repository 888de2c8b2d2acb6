// SPDX-License-Identifier: EPL-2.0

// Package overdub lays a background music track under a speech track and
// writes the result to disk.
//
// The heavy lifting lives in subpackages:
//
//   - audio: streaming sources, the decoder registry, in-memory buffers,
//     cubic resampling and channel remixing
//   - overlay: gain, range selection, padding, looping, composition, fades
//     and the Mix pipeline tying them together
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/flac:
//     decoders, plus WAV and AIFF encoders
//
// This package connects them to files.
//
// # Quick Start
//
//	params := overlay.DefaultParams()
//	params.OverlayStart = 2 * time.Second
//
//	out, err := overdub.Run(overdub.Job{
//	    Speech: "narration.wav",
//	    Music:  "bed.mp3",
//	    Namer:  overdub.DefaultNamer(),
//	    Params: params,
//	}, logger)
//
// With no explicit Output the file lands in output/ as
// combined_audio_YYYYmmddHHMMSS.wav.
//
// # Decoding and Encoding
//
// DecodeFile picks a decoder by extension from DefaultRegistry:
//
//	wav, aif, aiff, mp3, ogg, oga, flac
//
// EncodeFile writes .wav, .aif and .aiff at 16 or 24 bits. The file is
// written next to its destination under a temporary name and renamed into
// place once complete, so a failed run never leaves a truncated file.
//
// # Errors
//
// Failures are wrapped so callers can test them with errors.Is:
//
//   - ErrDecode, ErrEncode: a file could not be read or written
//   - ErrUnsupportedFormat: no codec for the extension
//   - overlay.ErrOutOfRange, overlay.ErrInvalidRange,
//     overlay.ErrFormatMismatch: the mix itself was rejected
package overdub
