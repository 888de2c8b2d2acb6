// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/overdub"
	"github.com/ik5/overdub/overlay"
)

// Config holds the parsed command-line configuration. Times are seconds.
type Config struct {
	SpeechPath string
	MusicPath  string

	MusicGainDB float64

	SpeechStart  float64
	SpeechEnd    float64
	MusicStart   float64
	MusicEnd     float64
	OverlayStart float64
	SpeechDelay  float64

	// SpeechEndSet and MusicEndSet are true only when the end flag was given.
	SpeechEndSet bool
	MusicEndSet  bool

	FadeIn  float64
	FadeOut float64
	Tail    float64

	LoopMusic       bool
	NormalizeSpeech bool

	Output   string
	OutDir   string
	Format   string
	BitDepth int

	LogLevel string
}

func defaultConfig() Config {
	p := overlay.DefaultParams()
	n := overdub.DefaultNamer()

	return Config{
		MusicGainDB: p.MusicGainDB,
		OutDir:      n.Dir,
		Format:      n.Ext,
		BitDepth:    overdub.DefaultBitDepth,
		LogLevel:    "info",
	}
}

// Job turns the flags into an overdub.Job.
func (c Config) Job() (overdub.Job, error) {
	secs := []struct {
		flag  string
		value float64
	}{
		{"speech-start", c.SpeechStart},
		{"speech-end", c.SpeechEnd},
		{"music-start", c.MusicStart},
		{"music-end", c.MusicEnd},
		{"overlay-start", c.OverlayStart},
		{"speech-delay", c.SpeechDelay},
		{"fade-in", c.FadeIn},
		{"fade-out", c.FadeOut},
		{"tail", c.Tail},
	}
	for _, s := range secs {
		if math.IsNaN(s.value) || math.IsInf(s.value, 0) {
			return overdub.Job{}, fmt.Errorf("--%s must be a finite number of seconds, got %v", s.flag, s.value)
		}
	}

	format := strings.ToLower(strings.TrimPrefix(c.Format, "."))
	switch format {
	case "wav", "aif", "aiff":
	default:
		return overdub.Job{}, fmt.Errorf("--format %q: %w", c.Format, overdub.ErrUnsupportedFormat)
	}

	if c.BitDepth != 16 && c.BitDepth != 24 {
		return overdub.Job{}, fmt.Errorf("--bit-depth must be 16 or 24, got %d", c.BitDepth)
	}

	p := overlay.DefaultParams()
	p.MusicGainDB = c.MusicGainDB
	p.SpeechRange = rangeOf(c.SpeechStart, c.SpeechEnd, c.SpeechEndSet)
	p.MusicRange = rangeOf(c.MusicStart, c.MusicEnd, c.MusicEndSet)
	p.OverlayStart = seconds(c.OverlayStart)
	p.SpeechDelay = seconds(c.SpeechDelay)
	p.FadeIn = seconds(c.FadeIn)
	p.FadeOut = seconds(c.FadeOut)
	p.Tail = seconds(c.Tail)
	p.LoopMusic = c.LoopMusic
	p.NormalizeSpeech = c.NormalizeSpeech

	if err := p.Validate(); err != nil {
		return overdub.Job{}, fmt.Errorf("%w", err)
	}

	namer := overdub.DefaultNamer()
	namer.Dir = c.OutDir
	namer.Ext = format

	return overdub.Job{
		Speech:   filepath.Clean(c.SpeechPath),
		Music:    filepath.Clean(c.MusicPath),
		Output:   c.Output,
		Namer:    namer,
		Params:   p,
		BitDepth: c.BitDepth,
	}, nil
}

func rangeOf(start, end float64, bounded bool) overlay.Range {
	if !bounded {
		return overlay.From(seconds(start))
	}
	return overlay.Between(seconds(start), seconds(end))
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
