// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions go through github.com/go-audio/wav, which handles the
// RIFF chunk layout, so files with extra chunks (LIST, fact, ...) decode
// as well as canonical 44-byte-header files.
//
// # Supported Formats
//
//   - Integer PCM, 16, 24 and 32 bit for decoding
//   - Integer PCM, 16 and 24 bit for encoding
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("speech.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Readers that cannot seek are buffered in
// memory first.
//
// # Writing WAV Files
//
//	file, _ := os.Create("mix.wav")
//	err := wav.Encode(file, buf, 16)
//
// Encode clips samples outside [-1, 1], since mixed audio can exceed full
// scale.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: compressed or floating point data
//   - ErrUnsupportedBitDepth: 8-bit input, or an unsupported output depth
//   - ErrUnsupportedWavLayout: missing or broken fmt chunk
package wav
