// SPDX-License-Identifier: EPL-2.0

package overlay

import "errors"

var (
	// ErrOutOfRange indicates a start time past the end of its buffer, or a
	// selection that leaves no speech to mix.
	ErrOutOfRange = errors.New("range start is beyond the end of the audio")

	// ErrInvalidRange indicates a negative start or an end not after the start.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrFormatMismatch indicates two buffers that cannot be brought to a common
	// sample rate and channel layout.
	ErrFormatMismatch = errors.New("audio formats cannot be reconciled")

	// ErrInvalidParams indicates a non-finite or negative setting.
	ErrInvalidParams = errors.New("invalid overlay parameters")
)
