// SPDX-License-Identifier: EPL-2.0

package overdub

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/overdub/audio"
	"github.com/ik5/overdub/formats/aiff"
	"github.com/ik5/overdub/formats/flac"
	"github.com/ik5/overdub/formats/mp3"
	"github.com/ik5/overdub/formats/vorbis"
	"github.com/ik5/overdub/formats/wav"
)

// DefaultBitDepth is used when a Job leaves BitDepth unset.
const DefaultBitDepth = 16

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// DecodeFile reads the whole file at path into memory using DefaultRegistry.
func DecodeFile(path string) (audio.Buffer, error) {
	return DecodeFileWith(DefaultRegistry(), path)
}

// DecodeFileWith is DecodeFile with a caller supplied registry.
func DecodeFileWith(reg *audio.Registry, path string) (audio.Buffer, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return audio.Buffer{}, fmt.Errorf("%w: %w: %q", ErrDecode, ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	if err := buf.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return buf, nil
}

type encodeFunc func(w io.WriteSeeker, buf audio.Buffer, bitDepth int) error

func encoderFor(path string) (encodeFunc, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "wav":
		return wav.Encode, true
	case "aif", "aiff":
		return aiff.Encode, true
	}

	return nil, false
}

// EncodeFile writes buf to path, choosing the container by extension.
// Nothing is left at path unless the whole file was written.
func EncodeFile(path string, buf audio.Buffer, bitDepth int) (err error) {
	enc, ok := encoderFor(path)
	if !ok {
		return fmt.Errorf("%w: %w: %q", ErrEncode, ErrUnsupportedFormat, filepath.Ext(path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = enc(tmp, buf, bitDepth); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}
