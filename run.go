// SPDX-License-Identifier: EPL-2.0

package overdub

import (
	"fmt"

	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/overlay"
	"go.uber.org/zap"
)

// Job describes one file to file mix.
type Job struct {
	Speech string
	Music  string

	// Output is the destination path. When empty Namer picks one.
	Output string
	Namer  Namer

	Params overlay.Params

	// BitDepth of the encoded output, 16 or 24. Zero means DefaultBitDepth.
	BitDepth int
}

// Run decodes both inputs, mixes them and encodes the result. It returns
// the path written. A nil log discards output.
func Run(job Job, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("speech", job.Speech), zap.String("music", job.Music))

	speech, err := DecodeFile(job.Speech)
	if err != nil {
		return "", fmt.Errorf("speech: %w", err)
	}
	log.Debug("decoded speech", bufferFields(speech)...)

	music, err := DecodeFile(job.Music)
	if err != nil {
		return "", fmt.Errorf("music: %w", err)
	}
	log.Debug("decoded music", bufferFields(music)...)

	mixed, err := overlay.Mix(speech, music, job.Params)
	if err != nil {
		return "", fmt.Errorf("mixing: %w", err)
	}
	log.Debug("mixed",
		zap.Float64("music_gain_db", job.Params.MusicGainDB),
		zap.Stringer("speech_range", job.Params.SpeechRange),
		zap.Stringer("music_range", job.Params.MusicRange),
		zap.Duration("overlay_start", job.Params.OverlayStart),
	)

	out := job.Output
	if out == "" {
		if out, err = job.Namer.Next(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncode, err)
		}
	}

	bitDepth := job.BitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	if err := EncodeFile(out, mixed, bitDepth); err != nil {
		return "", err
	}

	log.Info("mix written", append(bufferFields(mixed),
		zap.String("output", out),
		zap.Int("bit_depth", bitDepth),
	)...)

	return out, nil
}

func bufferFields(b audio.Buffer) []zap.Field {
	return []zap.Field{
		zap.Int("sample_rate", b.SampleRate),
		zap.Int("channels", b.Channels),
		zap.Duration("duration", b.Duration()),
	}
}
