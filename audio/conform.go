// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Conform converts buf to sampleRate and channels.
//
// The pipeline is buffer -> ChannelMixer -> Resampler, built only from the
// stages that are needed; a buffer already in the target format is returned
// as is.
func Conform(buf Buffer, sampleRate, channels int) (Buffer, error) {
	if err := buf.Validate(); err != nil {
		return Buffer{}, err
	}
	if sampleRate <= 0 {
		return Buffer{}, fmt.Errorf("%w: target %d", ErrInvalidSampleRate, sampleRate)
	}
	if !CanRemix(buf.Channels, channels) {
		return Buffer{}, fmt.Errorf("%w: %d -> %d channels", ErrUnsupportedRemix, buf.Channels, channels)
	}

	if buf.SampleRate == sampleRate && buf.Channels == channels {
		return buf, nil
	}
	if len(buf.Samples) == 0 {
		return NewSilence(sampleRate, channels, 0), nil
	}

	var src Source = buf.Source()
	if buf.Channels != channels {
		mixer, err := NewChannelMixer(src, channels)
		if err != nil {
			return Buffer{}, err
		}
		src = mixer
	}

	if buf.SampleRate != sampleRate {
		resampler, err := NewResampler(src, sampleRate)
		if err != nil {
			return Buffer{}, err
		}
		src = resampler
	}

	out, err := ReadAll(src)
	if err != nil {
		return Buffer{}, fmt.Errorf("conform: %w", err)
	}

	return out, nil
}
