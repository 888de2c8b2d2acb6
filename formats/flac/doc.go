// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC (Free Lossless Audio Codec) decoding.
//
// This package uses github.com/mewkiz/flac. FLAC frames are planar, one
// subframe per channel, and are interleaved here into the audio.Source
// layout. Samples are normalized by the stream's bit depth, so 16-bit and
// 24-bit files both land in [-1.0, 1.0).
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("speech.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // errors.Is(err, flac.ErrNotFlacFile)
//	}
//	defer source.Close()
//	buf, err := audio.ReadAll(source)
//
// FLAC encoding is not supported.
package flac
