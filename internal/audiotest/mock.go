// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic signal generators shared by tests.
package audiotest

import (
	"io"
	"math"
	"time"

	"github.com/ik5/overdub/audio"
)

// Waveform returns the value of frame at channel.
type Waveform func(frame int, channel int) float64

// Sine is a full-scale sine at frequency Hz for the given rate.
func Sine(sampleRate int, frequency, amplitude float64) Waveform {
	return func(frame int, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	}
}

// Constant returns value everywhere.
func Constant(value float64) Waveform {
	return func(int, int) float64 { return value }
}

// Ramp encodes the frame index so tests can tell frames apart.
func Ramp(step float64) Waveform {
	return func(frame int, channel int) float64 {
		return step*float64(frame) + float64(channel)*step/2
	}
}

// NewBuffer renders d worth of w into a Buffer.
func NewBuffer(sampleRate, channels int, d time.Duration, w Waveform) audio.Buffer {
	return NewBufferFrames(sampleRate, channels, audio.DurationToFrames(d, sampleRate), w)
}

// NewBufferFrames renders frames frames of w into a Buffer.
func NewBufferFrames(sampleRate, channels, frames int, w Waveform) audio.Buffer {
	buf := audio.NewSilence(sampleRate, channels, frames)
	for f := range frames {
		for c := range channels {
			buf.Samples[f*channels+c] = w(f, c)
		}
	}

	return buf
}

// MockSource streams a Waveform through the audio.Source interface.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    Waveform
}

// NewMockSource creates a source of totalFrames frames of waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a source producing a full-scale sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, Sine(sampleRate, frequency, 1))
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = float32(m.waveform(m.generated+f, ch))
		}
	}

	m.generated += frames
	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
