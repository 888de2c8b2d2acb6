// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 and
// MPEG-2 Layer 3 streams into 16-bit PCM, which is then normalized to
// float32 samples in [-1.0, 1.0].
//
// # Output Format
//
//   - Channels: always 2, mono files are duplicated by go-mp3
//   - Sample rate: as stored in the file
//
// Overlaying an MP3 bed onto a mono speech track therefore goes through
// audio.Conform, which averages the two identical channels back to one.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("music.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	buf, err := audio.ReadAll(source)
//
// # Limitations
//
// MP3 encoding is not supported. Mixed output is written as WAV or AIFF.
package mp3
