// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks the overlay engine and the
// format packages share:
//   - Source and Decoder interfaces for streaming input
//   - Registry for decoder lookup by format key or file extension
//   - Buffer, a fully decoded signal held in memory
//   - Resampler for sample rate conversion
//   - ChannelMixer for channel layout conversion
//   - Conform, which chains the two to reach a target format
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors implement it, so they can be chained:
//
//	mixer, _ := audio.NewChannelMixer(source, 1)
//	resampler, _ := audio.NewResampler(mixer, 22050)
//	buf, err := audio.ReadAll(resampler)
//
// # Buffers
//
// ReadAll drains a Source into a Buffer. Buffer samples are float64 and
// are not clipped, so chains of gain and summing stay reversible. Time is
// expressed as time.Duration and converted to frames by rounding to the
// nearest frame:
//
//	frame := buf.FrameAt(1500 * time.Millisecond)
//
// A Buffer streams back out through Buffer.Source.
//
// # Resampling
//
// The Resampler uses Catmull-Rom cubic interpolation. When downsampling it
// runs a one-pole low-pass over the input first to reduce aliasing. The
// first output frame lines up with the first input frame.
//
// # Channel Mixing
//
// ChannelMixer supports three layouts, see CanRemix:
//   - equal counts pass through
//   - N channels fold down to mono by averaging
//   - mono spreads to N channels by duplication
//
// Anything else (for example 5.1 to stereo) fails with ErrUnsupportedRemix.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("speech.WAV")
//
// Keys are case-insensitive and a leading dot is ignored. The registry is
// safe for concurrent use.
//
// # End of Stream
//
// ReadSamples returns io.EOF once no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
