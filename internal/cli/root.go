// SPDX-License-Identifier: EPL-2.0

// Package cli implements the overdub command line.
package cli

import (
	"fmt"

	"github.com/ik5/overdub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runFunc matches overdub.Run so tests can stand in for the mixer.
type runFunc func(job overdub.Job, log *zap.Logger) (string, error)

// NewRootCommand returns the overdub command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(overdub.Run)
}

func newRootCommand(run runFunc) *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "overdub --speech <file> --music <file> [flags]",
		Short: "Lay background music under a speech track",
		Long: `Overdub - speech over music

Mixes a music bed under a speech track. The music is attenuated, may be
trimmed and may start at an offset into the speech; it is padded with
silence (or looped) to reach the end of the speech.

Inputs: wav, aif, aiff, mp3, ogg, oga, flac
Outputs: wav, aif, aiff

Run "overdub serve" for the HTTP front end.

Example:
  overdub --speech narration.wav --music bed.mp3
  overdub --speech narration.wav --music bed.mp3 --music-gain -14 \
          --overlay-start 2.5 --fade-out 3 --output episode.wav`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg.SpeechEndSet = flags.Changed("speech-end")
			cfg.MusicEndSet = flags.Changed("music-end")

			job, err := cfg.Job()
			if err != nil {
				return err
			}

			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			out, err := run(job, log)
			if err != nil {
				log.Error("mix failed", zap.Error(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
		SilenceUsage: true, // Don't show usage on errors during execution
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.SpeechPath, "speech", "s", "", "Path to the speech (primary) audio file (required)")
	flags.StringVarP(&cfg.MusicPath, "music", "m", "", "Path to the music (background) audio file (required)")
	flags.Float64VarP(&cfg.MusicGainDB, "music-gain", "g", cfg.MusicGainDB, "Gain applied to the music in dB")
	flags.Float64Var(&cfg.SpeechStart, "speech-start", 0, "Start of the speech selection in seconds")
	flags.Float64Var(&cfg.SpeechEnd, "speech-end", 0, "End of the speech selection in seconds (default: end of file)")
	flags.Float64Var(&cfg.MusicStart, "music-start", 0, "Start of the music selection in seconds")
	flags.Float64Var(&cfg.MusicEnd, "music-end", 0, "End of the music selection in seconds (default: end of file)")
	flags.Float64Var(&cfg.OverlayStart, "overlay-start", 0, "Where the music starts in the output, in seconds")
	flags.Float64Var(&cfg.SpeechDelay, "speech-delay", 0, "Seconds of music-only intro before the speech starts")
	flags.Float64Var(&cfg.FadeIn, "fade-in", 0, "Fade-in length of the mix in seconds")
	flags.Float64Var(&cfg.FadeOut, "fade-out", 0, "Fade-out length of the mix in seconds")
	flags.Float64Var(&cfg.Tail, "tail", 0, "Seconds of music to keep after the speech ends")
	flags.BoolVar(&cfg.LoopMusic, "loop-music", false, "Loop short music instead of padding it with silence")
	flags.BoolVar(&cfg.NormalizeSpeech, "normalize-speech", false, "Peak-normalize the speech before mixing")
	flags.StringVarP(&cfg.Output, "output", "o", "", "Output file (default: <out-dir>/combined_audio_<timestamp>.<format>)")
	flags.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Directory for generated output names")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format for generated names: wav, aif or aiff")
	flags.IntVar(&cfg.BitDepth, "bit-depth", cfg.BitDepth, "Output bit depth: 16 or 24")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	cmd.MarkFlagRequired("speech")
	cmd.MarkFlagRequired("music")

	cmd.AddCommand(newServeCommand(run))

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
