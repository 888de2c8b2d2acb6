// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/utils"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

// maxEmptyReads bounds how often a (0, nil) read is retried.
const maxEmptyReads = 16

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte

	// low byte of a sample split across two reads
	odd    byte
	hasOdd bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// 16-bit little-endian PCM, 2 bytes per sample
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	total := 0
	if s.hasOdd {
		s.buf[0] = s.odd
		s.hasOdd = false
		total = 1
	}

	var err error
	for range maxEmptyReads {
		var n int
		n, err = s.dec.Read(s.buf[total:])
		total += n
		if total >= 2 || err != nil {
			break
		}
	}

	samples := total / 2
	if samples == 0 {
		// a lone byte at the end is not a sample
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}
	if total%2 == 1 && err == nil {
		s.odd = s.buf[total-1]
		s.hasOdd = true
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(utils.IntToFloat(int(v), 16))
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
