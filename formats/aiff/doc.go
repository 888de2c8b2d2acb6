// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16, 24 and 32 bit for decoding
//   - PCM 16 and 24 bit for encoding
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//
// go-audio needs to seek, so a reader that is not an io.ReadSeeker is
// read into memory first.
//
// # Encoding AIFF Files
//
//	file, _ := os.Create("mix.aiff")
//	err := aiff.Encode(file, buf, 16)
//
// # Errors
//
//   - ErrNotAiffFile: not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: sample size other than those listed above
//   - ErrUnsupportedAiffLayout: missing COMM information
package aiff
