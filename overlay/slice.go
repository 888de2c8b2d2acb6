// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"fmt"
	"time"

	"github.com/ik5/overdub/audio"
)

// Slice returns the frames of buf selected by r.
//
// An end past the buffer is clamped to the buffer end. A start past the
// buffer end fails with ErrOutOfRange rather than yielding an empty buffer;
// a start exactly at the end yields an empty buffer.
func Slice(buf audio.Buffer, r Range) (audio.Buffer, error) {
	if err := r.Validate(); err != nil {
		return audio.Buffer{}, err
	}
	if r.Start > buf.Duration() {
		return audio.Buffer{}, fmt.Errorf("%w: start %v, duration %v", ErrOutOfRange, r.Start, buf.Duration())
	}

	frames := buf.Frames()
	start := min(buf.FrameAt(r.Start), frames)
	end := frames
	if e, ok := r.End(); ok {
		end = max(min(buf.FrameAt(e), frames), start)
	}

	return copyFrames(buf, start, end), nil
}

func copyFrames(buf audio.Buffer, start, end int) audio.Buffer {
	out := audio.NewSilence(buf.SampleRate, buf.Channels, end-start)
	copy(out.Samples, buf.Samples[start*buf.Channels:end*buf.Channels])

	return out
}

// Pad appends silence so buf lasts target, rounded to whole frames.
// Buffers already that long are returned unchanged, never truncated.
func Pad(buf audio.Buffer, target time.Duration) audio.Buffer {
	return padFrames(buf, buf.FrameAt(target))
}

func padFrames(buf audio.Buffer, frames int) audio.Buffer {
	if buf.Frames() >= frames {
		return buf
	}

	out := audio.NewSilence(buf.SampleRate, buf.Channels, frames)
	copy(out.Samples, buf.Samples)

	return out
}

// Extend appends d of silence to buf.
func Extend(buf audio.Buffer, d time.Duration) audio.Buffer {
	return padFrames(buf, buf.Frames()+buf.FrameAt(d))
}

// Delay prepends d of silence to buf.
func Delay(buf audio.Buffer, d time.Duration) audio.Buffer {
	lead := buf.FrameAt(d)
	if lead <= 0 {
		return buf
	}

	out := audio.NewSilence(buf.SampleRate, buf.Channels, lead+buf.Frames())
	copy(out.Samples[lead*buf.Channels:], buf.Samples)

	return out
}

// Loop repeats buf until it lasts target, cutting the last repetition short.
// Empty buffers are padded with silence instead.
func Loop(buf audio.Buffer, target time.Duration) audio.Buffer {
	return loopFrames(buf, buf.FrameAt(target))
}

func loopFrames(buf audio.Buffer, frames int) audio.Buffer {
	if buf.Frames() == 0 || buf.Frames() >= frames {
		return padFrames(buf, frames)
	}

	out := audio.NewSilence(buf.SampleRate, buf.Channels, frames)
	for off := 0; off < len(out.Samples); {
		off += copy(out.Samples[off:], buf.Samples)
	}

	return out
}
