// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer remaps the channel layout of a source.
//
// Supported layouts: equal counts pass through, any count folds down to
// mono by averaging, and mono spreads to any count by duplication.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

// CanRemix reports whether ChannelMixer can map from channels to to channels.
func CanRemix(from, to int) bool {
	if from <= 0 || to <= 0 {
		return false
	}

	return from == to || to == 1 || from == 1
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if !CanRemix(src.Channels(), channels) {
		return nil, fmt.Errorf("%w: %d -> %d channels", ErrUnsupportedRemix, src.Channels(), channels)
	}

	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}, nil
}

// NewMonoMixer folds any layout down to a single channel.
func NewMonoMixer(src Source) *ChannelMixer {
	m, _ := NewChannelMixer(src, 1)
	return m
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }
func (m *ChannelMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	samplesNeeded := frames * in

	// grow only, never shrink
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames = n / in

	if in == 1 {
		// mono -> N
		for f := range frames {
			v := m.tmp[f]
			base := f * m.channels
			for c := range m.channels {
				dst[base+c] = v
			}
		}

		return frames * m.channels, err
	}

	// N -> mono
	invChannels := float32(1.0) / float32(in)
	switch in {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			baseIdx := f * in
			for c := range in {
				sum += m.tmp[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
