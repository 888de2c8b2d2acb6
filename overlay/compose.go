// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"fmt"
	"time"

	"github.com/ik5/overdub/audio"
	"gonum.org/v1/gonum/floats"
)

// Compose mixes music onto speech starting at offset.
//
// The result always has the speech's length: music past the end of the
// speech is dropped and speech outside the music's window is copied through
// untouched. Both buffers must already share rate and channel layout.
func Compose(speech, music audio.Buffer, offset time.Duration) (audio.Buffer, error) {
	if !speech.SameFormat(music) {
		return audio.Buffer{}, fmt.Errorf("%w: speech %d Hz/%d ch, music %d Hz/%d ch",
			ErrFormatMismatch, speech.SampleRate, speech.Channels, music.SampleRate, music.Channels)
	}
	if offset < 0 {
		return audio.Buffer{}, fmt.Errorf("%w: offset %v is negative", ErrInvalidRange, offset)
	}

	out := speech.Clone()

	start := min(speech.FrameAt(offset), speech.Frames())
	n := min(music.Frames(), speech.Frames()-start)
	if n > 0 {
		ch := speech.Channels
		floats.Add(out.Samples[start*ch:(start+n)*ch], music.Samples[:n*ch])
	}

	return out, nil
}

// Reconcile converts music to the rate and channel layout of speech.
func Reconcile(speech, music audio.Buffer) (audio.Buffer, error) {
	if err := speech.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: speech: %w", ErrFormatMismatch, err)
	}

	out, err := audio.Conform(music, speech.SampleRate, speech.Channels)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %w", ErrFormatMismatch, err)
	}

	return out, nil
}
