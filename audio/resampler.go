// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/overdub/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
//
// A source of n frames yields ceil(n * dstRate / srcRate) frames: output
// frame k sits at source position k*srcRate/dstRate, and the last source frame is held
// for positions past it.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// window of 4 frames: t-1, t0, t+1, t+2
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// base is the source index held in frames[1], emitted counts output frames
	base    int
	emitted int

	srcBuf []float32
	eof    bool

	// one-pole low-pass state, only used when downsampling
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidSampleRate, dstRate)
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: source %d", ErrInvalidSampleRate, src.SampleRate())
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)

	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		srcRate:     src.SampleRate(),
		dstRate:     dstRate,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.useFilter {
		return
	}
	for c := range r.channels {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// fetchNextFrame shifts the window left and reads one frame into its tail.
// After the source ends the window keeps draining; io.EOF is returned once
// frames[1] no longer holds a source frame.
func (r *Resampler) fetchNextFrame() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]
	r.hasFrame[3] = false
	r.base++

	if !r.eof {
		ok, err := r.readFrame(3)
		if err != nil {
			return err
		}
		r.hasFrame[3] = ok
	}

	if !r.hasFrame[1] {
		return io.EOF
	}

	return nil
}

// readFrame reads one source frame into slot i and reports whether it got one.
func (r *Resampler) readFrame(i int) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return false, nil
	}

	copy(r.frames[i], r.srcBuf[:n])
	r.filter(r.frames[i])

	return true, nil
}

// prime fills slots 1..3 so the first output frame lines up with the first
// source frame. Slot 0 stays empty and is mirrored from slot 1.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < 4 && !r.eof; i++ {
		n, err := r.src.ReadSamples(r.srcBuf)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n == 0 {
			continue
		}

		// seed the filter with the first frame to avoid a warm-up ramp
		if i == 1 && r.useFilter {
			copy(r.filterState, r.srcBuf[:n])
		}
		copy(r.frames[i], r.srcBuf[:n])
		r.filter(r.frames[i])
		r.hasFrame[i] = true
	}

	if !r.hasFrame[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}
	if !r.hasFrame[1] {
		return 0, io.EOF
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// exact integer position of the output frame in the source
		at := int64(r.emitted) * int64(r.srcRate)
		whole := int(at / int64(r.dstRate))
		for r.base < whole {
			if err := r.fetchNextFrame(); err != nil {
				return written * r.channels, err
			}
		}

		alpha := float32(at%int64(r.dstRate)) / float32(r.dstRate)

		for c := range r.channels {
			y1 := r.frames[1][c]
			y0 := y1
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			y2 := y1
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.emitted++
	}

	return written * r.channels, nil
}
