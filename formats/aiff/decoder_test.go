// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/overdub/audio"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte{})); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := audio.NewSilence(44100, 2, 4410)
	for i := range in.Samples {
		in.Samples[i] = 0.7 * math.Cos(float64(i)/11)
	}

	path := filepath.Join(t.TempDir(), "mix.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	if err := Encode(f, in, 16); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if out.SampleRate != 44100 || out.Channels != 2 {
		t.Fatalf("decoded format = %d Hz/%d ch, want 44100/2", out.SampleRate, out.Channels)
	}
	if out.Frames() != in.Frames() {
		t.Fatalf("decoded %d frames, want %d", out.Frames(), in.Frames())
	}
	for i := range in.Samples {
		if math.Abs(out.Samples[i]-in.Samples[i]) > 1.0/16384 {
			t.Fatalf("sample %d = %v, want %v", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.aiff"))
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	if err := Encode(f, audio.NewSilence(8000, 1, 1), 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(8-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
}
