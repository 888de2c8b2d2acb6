// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the stream is not Ogg Vorbis
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrUnsupportedVorbisLayout indicates a header without channels or rate
	ErrUnsupportedVorbisLayout = errors.New("unsupported Vorbis layout")
)
