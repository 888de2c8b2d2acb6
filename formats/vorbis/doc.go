// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Vorbis decodes natively to float samples, so values are passed
// through without any integer conversion.
//
// # Decoding Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("music.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	buf, err := audio.ReadAll(source)
//
// Samples are interleaved ([L0, R0, L1, R1, ...]) and ReadSamples only ever
// returns whole frames.
//
// # Limitations
//
// Vorbis encoding is not supported.
package vorbis
