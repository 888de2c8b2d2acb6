// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/overdub/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source flattens FLAC's planar frames into interleaved samples. A frame
// that does not fit into dst is kept in pending for the next call.
type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	scale      float32

	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	written := 0
	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:want], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 || (s.eof && len(s.pending) == 0) {
		return written, io.EOF
	}

	return written, nil
}

func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flac frame: %w", err)
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d",
			ErrUnsupportedFlacLayout, len(f.Subframes), s.channels)
	}

	blockSize := int(f.BlockSize)
	if cap(s.pending) < blockSize*s.channels {
		s.pending = make([]float32, blockSize*s.channels)
	}
	s.pending = s.pending[:blockSize*s.channels]

	for ch, sub := range f.Subframes {
		for i := range min(blockSize, len(sub.Samples)) {
			s.pending[i*s.channels+ch] = float32(sub.Samples[i]) / s.scale
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrUnsupportedFlacLayout
	}

	bitDepth := int(info.BitsPerSample)
	if bitDepth < 4 || bitDepth > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), bitDepth), nil
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(int64(1) << (bitDepth - 1)),
	}
}
