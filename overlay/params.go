// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"fmt"
	"math"
	"time"
)

// Range selects [Start, end) of a buffer. The zero value selects everything.
type Range struct {
	Start time.Duration

	end     time.Duration
	bounded bool
}

// Full selects the whole buffer.
func Full() Range { return Range{} }

// From selects from start through the end of the buffer.
func From(start time.Duration) Range { return Range{Start: start} }

// Between selects [start, end).
func Between(start, end time.Duration) Range {
	return Range{Start: start, end: end, bounded: true}
}

// End returns the end of the range and whether it is set. An unset end runs
// to the end of the buffer.
func (r Range) End() (time.Duration, bool) {
	return r.end, r.bounded
}

func (r Range) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("%w: start %v is negative", ErrInvalidRange, r.Start)
	}
	if r.bounded && r.end <= r.Start {
		return fmt.Errorf("%w: end %v is not after start %v", ErrInvalidRange, r.end, r.Start)
	}

	return nil
}

func (r Range) String() string {
	if !r.bounded {
		return fmt.Sprintf("[%v, end)", r.Start)
	}
	return fmt.Sprintf("[%v, %v)", r.Start, r.end)
}

// Params configures a single Mix call.
type Params struct {
	// MusicGainDB is added to the music level, usually negative.
	MusicGainDB float64

	SpeechRange Range
	MusicRange  Range

	// SpeechDelay is silence put before the speech, so music starting at
	// zero plays alone as an intro.
	SpeechDelay time.Duration

	// OverlayStart is where the music starts in the output timeline, which
	// includes SpeechDelay.
	OverlayStart time.Duration

	// Tail keeps the music playing for this long after the speech ends.
	Tail time.Duration

	FadeIn  time.Duration
	FadeOut time.Duration

	// LoopMusic repeats short music instead of padding it with silence.
	LoopMusic bool

	// NormalizeSpeech peak-normalizes the speech to -HeadroomDB dBFS.
	NormalizeSpeech bool
	HeadroomDB      float64
}

// DefaultParams mirrors the usual podcast bed: music 10 dB down, full ranges.
func DefaultParams() Params {
	return Params{
		MusicGainDB: -10,
		SpeechRange: Full(),
		MusicRange:  Full(),
		HeadroomDB:  0.1,
	}
}

func (p Params) Validate() error {
	if math.IsNaN(p.MusicGainDB) || math.IsInf(p.MusicGainDB, 0) {
		return fmt.Errorf("%w: music gain %v dB", ErrInvalidParams, p.MusicGainDB)
	}
	if math.IsNaN(p.HeadroomDB) || math.IsInf(p.HeadroomDB, 0) || p.HeadroomDB < 0 {
		return fmt.Errorf("%w: headroom %v dB", ErrInvalidParams, p.HeadroomDB)
	}
	if err := p.SpeechRange.Validate(); err != nil {
		return fmt.Errorf("speech range: %w", err)
	}
	if err := p.MusicRange.Validate(); err != nil {
		return fmt.Errorf("music range: %w", err)
	}
	if p.OverlayStart < 0 {
		return fmt.Errorf("%w: overlay start %v is negative", ErrInvalidRange, p.OverlayStart)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"speech delay", p.SpeechDelay},
		{"tail", p.Tail},
		{"fade in", p.FadeIn},
		{"fade out", p.FadeOut},
	}
	for _, v := range durations {
		if v.d < 0 {
			return fmt.Errorf("%w: %s %v is negative", ErrInvalidParams, v.name, v.d)
		}
	}

	return nil
}
