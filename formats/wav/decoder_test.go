// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/overdub/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV file.
func createWAVFile(sampleRate, channels, bitsPerSample, formatTag int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 0}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float64{0, 0.5, -0.5, 32767.0 / 32768.0, -1, 0}
	if len(buf.Samples) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Samples), len(want))
	}
	for i := range want {
		if math.Abs(buf.Samples[i]-want[i]) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(44100, 2, 16, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Channels != 2 || buf.Frames() != 3 {
		t.Errorf("decoded %d ch/%d frames, want 2/3", buf.Channels, buf.Frames())
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, 16, 1, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_TruncatedHeader(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF\x00")))
	if err == nil {
		t.Error("Decode() error = nil, want error for truncated header")
	}
}

func TestDecoder_FloatEncoding(t *testing.T) {
	t.Parallel()

	// format tag 3 is IEEE float
	_, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 16, 3, []int16{1, 2, 3, 4})))
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedEncoding", err)
	}
}
