// SPDX-License-Identifier: EPL-2.0

package cli

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/overdub"
	"github.com/ik5/overdub/overlay"
	"go.uber.org/zap"
)

//go:embed form.html
var formHTML []byte

// DefaultMaxUpload caps the request body of one mix.
const DefaultMaxUpload = 256 << 20

// multipart parts above this stay on disk
const maxFormMemory = 32 << 20

type handler struct {
	run       runFunc
	log       *zap.Logger
	tempDir   string
	maxUpload int64
	now       func() time.Time
}

// newHandler routes the upload form and the mixing endpoint. Uploads and
// results live in a per request directory under tempDir that is removed
// once the response is written.
func newHandler(run runFunc, log *zap.Logger, tempDir string, maxUpload int64) http.Handler {
	h := &handler{
		run:       run,
		log:       log,
		tempDir:   tempDir,
		maxUpload: maxUpload,
		now:       time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.form)
	mux.HandleFunc("/overlay/", h.overlay)

	return mux
}

func (h *handler) form(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "GET required", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(formHTML)
}

func (h *handler) overlay(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/overlay/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.fail(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	cfg, err := formConfig(r.MultipartForm.Value)
	if err != nil {
		h.fail(w, err)
		return
	}

	work, err := os.MkdirTemp(h.tempDir, "overdub-")
	if err != nil {
		h.fail(w, fmt.Errorf("creating work directory: %w", err))
		return
	}
	defer func() {
		if err := os.RemoveAll(work); err != nil {
			h.log.Warn("removing work directory", zap.String("dir", work), zap.Error(err))
		}
	}()

	if cfg.SpeechPath, err = saveUpload(r.MultipartForm, "speech_file", work); err != nil {
		h.fail(w, err)
		return
	}
	if cfg.MusicPath, err = saveUpload(r.MultipartForm, "music_file", work); err != nil {
		h.fail(w, err)
		return
	}

	job, err := cfg.Job()
	if err != nil {
		h.fail(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	format := strings.TrimPrefix(job.Namer.Ext, ".")
	name := fmt.Sprintf("%s_%s.%s", job.Namer.Prefix, h.now().Format(job.Namer.Layout), format)
	job.Output = filepath.Join(work, name)

	out, err := h.run(job, h.log)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Header().Set("Content-Type", contentType(format))
	http.ServeFile(w, r, out)
}

// fail logs err and answers with the status it maps to.
func (h *handler) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("mix request failed", zap.Error(err))
	} else {
		h.log.Info("mix request rejected", zap.Int("status", status), zap.Error(err))
	}

	http.Error(w, err.Error(), status)
}

var errBadRequest = errors.New("bad request")

func statusOf(err error) int {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, overdub.ErrDecode),
		errors.Is(err, overdub.ErrUnsupportedFormat),
		errors.Is(err, overlay.ErrInvalidParams),
		errors.Is(err, overlay.ErrInvalidRange),
		errors.Is(err, overlay.ErrOutOfRange),
		errors.Is(err, overlay.ErrFormatMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func contentType(format string) string {
	switch strings.ToLower(format) {
	case "aif", "aiff":
		return "audio/aiff"
	default:
		return "audio/wav"
	}
}

// saveUpload copies the file part field into dir, keeping the extension of
// the client's file name so the decoder can be chosen by it.
func saveUpload(form *multipart.Form, field, dir string) (string, error) {
	files := form.File[field]
	if len(files) == 0 {
		return "", fmt.Errorf("%w: missing %s", errBadRequest, field)
	}

	part, err := files[0].Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %w", errBadRequest, field, err)
	}
	defer part.Close()

	ext := strings.ToLower(filepath.Ext(filepath.Base(files[0].Filename)))
	f, err := os.CreateTemp(dir, field+"-*"+ext)
	if err != nil {
		return "", fmt.Errorf("saving %s: %w", field, err)
	}

	if _, err := io.Copy(f, part); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("saving %s: %w", field, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("saving %s: %w", field, err)
	}

	return f.Name(), nil
}

// formConfig reads the mix settings of a form. Absent or empty fields keep
// their defaults.
func formConfig(values url.Values) (Config, error) {
	cfg := defaultConfig()

	numbers := []struct {
		field string
		dst   *float64
		set   *bool
	}{
		{"music_volume_adjustment", &cfg.MusicGainDB, nil},
		{"speech_start", &cfg.SpeechStart, nil},
		{"speech_end", &cfg.SpeechEnd, &cfg.SpeechEndSet},
		{"music_start", &cfg.MusicStart, nil},
		{"music_end", &cfg.MusicEnd, &cfg.MusicEndSet},
		{"speech_overlay_start", &cfg.SpeechDelay, nil},
		{"music_overlay_start", &cfg.OverlayStart, nil},
		{"music_continue_after_speech", &cfg.Tail, nil},
		{"fade_in_duration", &cfg.FadeIn, nil},
		{"fade_out_duration", &cfg.FadeOut, nil},
	}
	for _, n := range numbers {
		v := strings.TrimSpace(values.Get(n.field))
		if v == "" {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %q is not a number", errBadRequest, n.field, v)
		}
		*n.dst = f
		if n.set != nil {
			*n.set = true
		}
	}

	flags := []struct {
		field string
		dst   *bool
	}{
		{"loop_music", &cfg.LoopMusic},
		{"normalize_speech", &cfg.NormalizeSpeech},
	}
	for _, fl := range flags {
		v := strings.TrimSpace(values.Get(fl.field))
		if v == "" {
			continue
		}

		// checkboxes post "on"
		b, err := strconv.ParseBool(v)
		if err != nil && v != "on" {
			return Config{}, fmt.Errorf("%w: %s: %q is not a boolean", errBadRequest, fl.field, v)
		}
		*fl.dst = b || v == "on"
	}

	if v := strings.TrimSpace(values.Get("format")); v != "" {
		cfg.Format = v
	}

	return cfg, nil
}
