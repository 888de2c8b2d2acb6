// SPDX-License-Identifier: EPL-2.0

package overdub

import "errors"

var (
	// ErrDecode indicates an input file could not be opened or decoded
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates the output file could not be written
	ErrEncode = errors.New("encode failed")

	// ErrUnsupportedFormat indicates a file extension with no codec
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
