// SPDX-License-Identifier: EPL-2.0

// Package pcmio bridges go-audio integer PCM decoders and encoders to the
// float based audio package.
package pcmio

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/utils"
)

// PCMReader is the reading half shared by go-audio's wav and aiff decoders.
type PCMReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// PCMWriter is the writing half shared by go-audio's wav and aiff encoders.
type PCMWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Source adapts a PCMReader to audio.Source.
type Source struct {
	dec        PCMReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func NewSource(dec PCMReader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(utils.IntToFloat(s.intBuf.Data[i], s.bitDepth))
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	// short read means the data chunk is exhausted
	if n < len(dst) || err == io.EOF {
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// Write converts buf to integer PCM at bitDepth, clamping to full scale,
// and writes it to enc in chunks. enc is closed on success so headers get
// their final sizes.
func Write(enc PCMWriter, buf audio.Buffer, bitDepth int) error {
	const chunkFrames = 8192

	format := &goaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate}
	chunk := &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, 0, chunkFrames*buf.Channels),
		SourceBitDepth: bitDepth,
	}

	for i := 0; i < len(buf.Samples); i += chunkFrames * buf.Channels {
		end := min(i+chunkFrames*buf.Channels, len(buf.Samples))

		chunk.Data = chunk.Data[:0]
		for _, x := range buf.Samples[i:end] {
			chunk.Data = append(chunk.Data, utils.FloatToInt(x, bitDepth))
		}

		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
