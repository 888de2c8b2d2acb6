// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/internal/audiotest"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	// 10 seconds at 100 Hz, sample value == frame index
	buf := audiotest.NewBuffer(100, 1, 10*time.Second, audiotest.Ramp(1))

	tests := []struct {
		name       string
		r          Range
		wantFrames int
		wantFirst  float64
	}{
		{"full", Full(), 1000, 0},
		{"from", From(2 * time.Second), 800, 200},
		{"between", Between(time.Second, 3*time.Second), 200, 100},
		{"end clamped", Between(9*time.Second, 20*time.Second), 100, 900},
		{"start at end", From(10 * time.Second), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Slice(buf, tt.r)
			if err != nil {
				t.Fatalf("Slice(%v) error = %v", tt.r, err)
			}
			if got.Frames() != tt.wantFrames {
				t.Errorf("Slice(%v) frames = %d, want %d", tt.r, got.Frames(), tt.wantFrames)
			}
			if tt.wantFrames > 0 && got.Samples[0] != tt.wantFirst {
				t.Errorf("Slice(%v) first sample = %v, want %v", tt.r, got.Samples[0], tt.wantFirst)
			}
		})
	}
}

func TestSlice_Errors(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBuffer(100, 2, 5*time.Second, audiotest.Constant(0.1))

	tests := []struct {
		name    string
		r       Range
		wantErr error
	}{
		{"start past end", From(6 * time.Second), ErrOutOfRange},
		{"negative start", From(-time.Second), ErrInvalidRange},
		{"end before start", Between(3*time.Second, 2*time.Second), ErrInvalidRange},
		{"empty range", Between(time.Second, time.Second), ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Slice(buf, tt.r)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Slice(%v) error = %v, want %v", tt.r, err, tt.wantErr)
			}
		})
	}
}

func TestSlice_DoesNotAlias(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBufferFrames(100, 1, 10, audiotest.Constant(0.5))
	got, _ := Slice(buf, Full())
	got.Samples[0] = 0

	if buf.Samples[0] != 0.5 {
		t.Error("Slice() result aliases its input")
	}
}

func TestPad(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBuffer(1000, 2, 5*time.Second, audiotest.Ramp(0.001))

	t.Run("extends with silence", func(t *testing.T) {
		t.Parallel()

		got := Pad(buf, 10*time.Second)
		if got.Duration() != 10*time.Second {
			t.Fatalf("Pad() duration = %v, want 10s", got.Duration())
		}
		for i := range buf.Samples {
			if got.Samples[i] != buf.Samples[i] {
				t.Fatalf("Pad() changed sample %d", i)
			}
		}
		for i := len(buf.Samples); i < len(got.Samples); i++ {
			if got.Samples[i] != 0 {
				t.Fatalf("Pad() sample %d = %v, want silence", i, got.Samples[i])
			}
		}
	})

	t.Run("never truncates", func(t *testing.T) {
		t.Parallel()

		for _, target := range []time.Duration{0, time.Second, 5 * time.Second} {
			got := Pad(buf, target)
			if got.Frames() != buf.Frames() {
				t.Errorf("Pad(%v) frames = %d, want %d", target, got.Frames(), buf.Frames())
			}
		}
	})
}

func TestExtend(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBuffer(1000, 1, 2*time.Second, audiotest.Constant(0.2))
	got := Extend(buf, 1500*time.Millisecond)

	if got.Duration() != 3500*time.Millisecond {
		t.Errorf("Extend() duration = %v, want 3.5s", got.Duration())
	}
}

func TestDelay(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBufferFrames(1000, 2, 3, audiotest.Ramp(0.1))

	got := Delay(buf, 2*time.Millisecond)
	if got.Frames() != 5 {
		t.Fatalf("Delay() frames = %d, want 5", got.Frames())
	}
	for i := range 4 {
		if got.Samples[i] != 0 {
			t.Errorf("lead sample %d = %v, want silence", i, got.Samples[i])
		}
	}
	for i, v := range buf.Samples {
		if got.Samples[4+i] != v {
			t.Errorf("sample %d = %v, want %v", 4+i, got.Samples[4+i], v)
		}
	}

	if same := Delay(buf, 0); same.Frames() != buf.Frames() {
		t.Errorf("Delay(0) frames = %d, want %d", same.Frames(), buf.Frames())
	}
}

func TestLoop(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBufferFrames(10, 1, 3, audiotest.Ramp(1)) // 0 1 2

	got := loopFrames(buf, 8)
	want := []float64{0, 1, 2, 0, 1, 2, 0, 1}
	if len(got.Samples) != len(want) {
		t.Fatalf("loopFrames() len = %d, want %d", len(got.Samples), len(want))
	}
	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("loopFrames()[%d] = %v, want %v", i, got.Samples[i], want[i])
		}
	}

	empty := audio.NewSilence(10, 1, 0)
	if got := Loop(empty, time.Second); got.Frames() != 10 {
		t.Errorf("Loop(empty) frames = %d, want 10 frames of silence", got.Frames())
	}
}
