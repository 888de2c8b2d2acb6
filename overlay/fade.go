// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"time"

	"github.com/ik5/overdub/audio"
)

// Fade applies a linear fade-in over the first in and a fade-out over the
// last out of buf. Fades longer than the buffer are clamped to it.
func Fade(buf audio.Buffer, in, out time.Duration) audio.Buffer {
	frames := buf.Frames()
	inFrames := min(max(buf.FrameAt(in), 0), frames)
	outFrames := min(max(buf.FrameAt(out), 0), frames)
	if inFrames == 0 && outFrames == 0 {
		return buf
	}

	res := buf.Clone()
	ch := buf.Channels

	for f := range inFrames {
		g := float64(f) / float64(inFrames)
		for c := range ch {
			res.Samples[f*ch+c] *= g
		}
	}

	for f := frames - outFrames; f < frames; f++ {
		g := float64(frames-1-f) / float64(outFrames)
		for c := range ch {
			res.Samples[f*ch+c] *= g
		}
	}

	return res
}
