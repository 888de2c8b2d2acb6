// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func constantBuffer(rate, channels, frames int, v float64) Buffer {
	buf := NewSilence(rate, channels, frames)
	for i := range buf.Samples {
		buf.Samples[i] = v
	}
	return buf
}

func TestConform_SameFormatReturnsInput(t *testing.T) {
	t.Parallel()

	buf := constantBuffer(44100, 2, 100, 0.3)
	got, err := Conform(buf, 44100, 2)
	if err != nil {
		t.Fatalf("Conform() error = %v", err)
	}
	if &got.Samples[0] != &buf.Samples[0] {
		t.Error("Conform() copied a buffer that was already in format")
	}
}

func TestConform_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		buf          Buffer
		rate         int
		channels     int
		wantFrames   int
		wantAbsError float64
	}{
		{"stereo to mono", constantBuffer(8000, 2, 8000, 0.4), 8000, 1, 8000, 1e-6},
		{"mono to stereo", constantBuffer(8000, 1, 8000, 0.4), 8000, 2, 8000, 1e-6},
		{"stereo 44.1k to mono 22.05k", constantBuffer(44100, 2, 44100, 0.4), 22050, 1, 22050, 0.01},
		{"mono 16k to stereo 48k", constantBuffer(16000, 1, 16000, -0.2), 48000, 2, 48000, 0.01},
		{"mono 8k to 16k", constantBuffer(8000, 1, 8000, 0.3), 16000, 1, 16000, 1e-6},
		{"short 8k to 32k", constantBuffer(8000, 1, 10, 0.3), 32000, 1, 40, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Conform(tt.buf, tt.rate, tt.channels)
			if err != nil {
				t.Fatalf("Conform() error = %v", err)
			}

			if got.SampleRate != tt.rate || got.Channels != tt.channels {
				t.Fatalf("Conform() format = %d Hz/%d ch, want %d/%d", got.SampleRate, got.Channels, tt.rate, tt.channels)
			}
			if got.Frames() != tt.wantFrames {
				t.Errorf("Conform() frames = %d, want %d", got.Frames(), tt.wantFrames)
			}

			want := tt.buf.Samples[0]
			for i, v := range got.Samples {
				if math.Abs(v-want) > tt.wantAbsError {
					t.Fatalf("sample %d = %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestConform_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		buf      Buffer
		rate     int
		channels int
		wantErr  error
	}{
		{"six to stereo", NewSilence(48000, 6, 10), 48000, 2, ErrUnsupportedRemix},
		{"zero target rate", NewSilence(48000, 2, 10), 0, 2, ErrInvalidSampleRate},
		{"zero target channels", NewSilence(48000, 2, 10), 48000, 0, ErrUnsupportedRemix},
		{"invalid buffer", Buffer{Channels: 2}, 48000, 2, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Conform(tt.buf, tt.rate, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Conform() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConform_Empty(t *testing.T) {
	t.Parallel()

	got, err := Conform(NewSilence(44100, 2, 0), 8000, 1)
	if err != nil {
		t.Fatalf("Conform() error = %v", err)
	}
	if got.Frames() != 0 || got.SampleRate != 8000 || got.Channels != 1 {
		t.Errorf("Conform() = %d frames %d Hz/%d ch, want empty 8000/1", got.Frames(), got.SampleRate, got.Channels)
	}
}
