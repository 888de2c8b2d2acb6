// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/internal/pcmio"
)

// Encode writes buf as AIFF at bitDepth (16 or 24), clipping to full scale.
func Encode(w io.WriteSeeker, buf audio.Buffer, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := aiff.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels)

	return pcmio.Write(enc, buf, bitDepth)
}
