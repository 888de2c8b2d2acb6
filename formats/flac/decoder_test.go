// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockStream hands out prepared frames, then io.EOF.
type mockStream struct {
	frames   []*frame.Frame
	failWith error
	closed   bool
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if len(m.frames) == 0 {
		return nil, io.EOF
	}

	f := m.frames[0]
	m.frames = m.frames[1:]

	return f, nil
}

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

// planar builds a frame from per-channel sample slices of equal length.
func planar(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	f.BlockSize = uint16(len(channels[0]))
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples, NSamples: len(samples)})
	}

	return f
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not FLAC data")},
		{"empty", []byte{}},
		{"signature only", []byte("fLaC")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotFlacFile) {
				t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
			}
		})
	}
}

func TestSource_Interleaves(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{
		planar([]int32{0, 16384}, []int32{-16384, -32768}),
		planar([]int32{8192}, []int32{-8192}),
	}}
	src := newSource(stream, 44100, 2, 16)

	var got []float32
	dst := make([]float32, 3) // odd on purpose, only whole frames are returned
	for {
		n, err := src.ReadSamples(dst)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() n = %d, want whole stereo frames", n)
		}
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float32{0, -0.5, 0.5, -1, 0.25, -0.25}
	if len(got) != len(want) {
		t.Fatalf("read %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_BitDepthScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int32
		want     float32
	}{
		{8, 64, 0.5},
		{16, -32768, -1},
		{20, 1 << 18, 0.5},
		{24, 1 << 21, 0.25},
	}

	for _, tt := range tests {
		src := newSource(&mockStream{frames: []*frame.Frame{planar([]int32{tt.sample})}}, 48000, 1, tt.bitDepth)

		dst := make([]float32, 4)
		n, _ := src.ReadSamples(dst)
		if n != 1 || dst[0] != tt.want {
			t.Errorf("%d-bit: got %v (n=%d), want %v", tt.bitDepth, dst[0], n, tt.want)
		}
	}
}

func TestSource_ParseError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{failWith: io.ErrUnexpectedEOF}, 44100, 1, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_ChannelMismatch(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{frames: []*frame.Frame{planar([]int32{1})}}, 44100, 2, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrUnsupportedFlacLayout) {
		t.Errorf("ReadSamples() error = %v, want ErrUnsupportedFlacLayout", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	stream := &mockStream{}
	if err := newSource(stream, 44100, 1, 16).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stream.closed {
		t.Error("Close() did not close the stream")
	}
}
