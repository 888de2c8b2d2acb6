// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Buffer is a fully decoded, interleaved PCM signal held in memory.
//
// Samples are float64 so that gain and mixing stages can run without
// intermediate clipping; values are only clamped when encoded.
type Buffer struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// NewSilence returns a zeroed buffer holding frames frames.
func NewSilence(sampleRate, channels, frames int) Buffer {
	return Buffer{
		Samples:    make([]float64, max(frames, 0)*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Frames is the number of sample frames (one sample per channel).
func (b Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return FramesToDuration(b.Frames(), b.SampleRate)
}

// FrameAt converts an offset into a frame index, rounded to the nearest frame.
// The result is not clamped to the buffer length.
func (b Buffer) FrameAt(d time.Duration) int {
	return DurationToFrames(d, b.SampleRate)
}

// Clone returns a deep copy of b.
func (b Buffer) Clone() Buffer {
	out := b
	out.Samples = make([]float64, len(b.Samples))
	copy(out.Samples, b.Samples)

	return out
}

// SameFormat reports whether b and o share sample rate and channel count.
func (b Buffer) SameFormat(o Buffer) bool {
	return b.SampleRate == o.SampleRate && b.Channels == o.Channels
}

// Validate checks that the buffer describes a playable signal.
func (b Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, b.Channels)
	}
	if len(b.Samples)%b.Channels != 0 {
		return ErrInvalidDstSize
	}

	return nil
}

// Source streams the buffer through the Source interface so it can feed
// the Resampler and ChannelMixer. The buffer is read, never written.
func (b Buffer) Source() Source {
	return &bufferSource{buf: b}
}

// DurationToFrames converts d to a frame count at sampleRate.
func DurationToFrames(d time.Duration, sampleRate int) int {
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}

// FramesToDuration converts a frame count at sampleRate to a duration.
func FramesToDuration(frames, sampleRate int) time.Duration {
	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}

type bufferSource struct {
	buf Buffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	// whole frames only
	n := min(len(dst), len(s.buf.Samples)-s.pos)
	n -= n % s.buf.Channels
	if n == 0 {
		return 0, ErrInvalidDstSize
	}

	for i := range n {
		dst[i] = float32(s.buf.Samples[s.pos+i])
	}
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}

	return n, nil
}

// ReadAll drains src into a Buffer. The source is not closed.
func ReadAll(src Source) (Buffer, error) {
	out := Buffer{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}
	if out.Channels <= 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidChannels, out.Channels)
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	// keep reads frame aligned
	size = max(size-size%out.Channels, out.Channels)
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			out.Samples = append(out.Samples, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return Buffer{}, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// some decoders report (0, nil) once drained
			break
		}
	}

	// drop a trailing partial frame from a truncated stream
	out.Samples = out.Samples[:len(out.Samples)-len(out.Samples)%out.Channels]

	return out, nil
}
