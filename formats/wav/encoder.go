// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/internal/pcmio"
)

// Encode writes buf as integer PCM WAV at bitDepth (16 or 24).
// Samples outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, buf audio.Buffer, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels, formatPCM)

	return pcmio.Write(enc, buf, bitDepth)
}
