// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"fmt"

	"github.com/ik5/overdub/audio"
)

// Mix lays music under speech according to p.
//
// Stages, in order: select both ranges, optionally normalize the speech,
// delay the speech by p.SpeechDelay, apply the music gain, bring the music
// to the speech format, extend the speech by the tail, pad (or loop) the
// music over the window starting at p.OverlayStart, compose, and fade.
// Neither input is modified.
func Mix(speech, music audio.Buffer, p Params) (audio.Buffer, error) {
	if err := p.Validate(); err != nil {
		return audio.Buffer{}, err
	}
	if err := speech.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("speech: %w", err)
	}
	if err := music.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("music: %w", err)
	}

	s, err := Slice(speech, p.SpeechRange)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("speech range %v: %w", p.SpeechRange, err)
	}
	if s.Frames() == 0 {
		return audio.Buffer{}, fmt.Errorf("speech range %v: %w: selection is empty", p.SpeechRange, ErrOutOfRange)
	}

	m, err := Slice(music, p.MusicRange)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("music range %v: %w", p.MusicRange, err)
	}

	if p.NormalizeSpeech {
		s = Normalize(s, p.HeadroomDB)
	}

	if p.SpeechDelay > 0 {
		s = Delay(s, p.SpeechDelay)
	}

	m = Gain(m, p.MusicGainDB)

	m, err = Reconcile(s, m)
	if err != nil {
		return audio.Buffer{}, err
	}

	if p.Tail > 0 {
		s = Extend(s, p.Tail)
	}

	coverage := s.Frames() - min(s.FrameAt(p.OverlayStart), s.Frames())
	if p.LoopMusic {
		m = loopFrames(m, coverage)
	} else {
		m = padFrames(m, coverage)
	}

	out, err := Compose(s, m, p.OverlayStart)
	if err != nil {
		return audio.Buffer{}, err
	}

	return Fade(out, p.FadeIn, p.FadeOut), nil
}
