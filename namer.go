// SPDX-License-Identifier: EPL-2.0

package overdub

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Namer builds timestamped output paths of the form
// <Dir>/<Prefix>_<Now().Format(Layout)>.<Ext>. Empty fields take the
// defaults of DefaultNamer.
type Namer struct {
	Dir    string
	Prefix string
	Ext    string
	Layout string
	Now    func() time.Time
}

func DefaultNamer() Namer {
	return Namer{
		Dir:    "output",
		Prefix: "combined_audio",
		Ext:    "wav",
		Layout: "20060102150405",
		Now:    time.Now,
	}
}

// Next returns a fresh path and makes sure its directory exists.
func (n Namer) Next() (string, error) {
	def := DefaultNamer()

	dir := cmp.Or(n.Dir, def.Dir)
	prefix := cmp.Or(n.Prefix, def.Prefix)
	ext := strings.TrimPrefix(cmp.Or(n.Ext, def.Ext), ".")
	layout := cmp.Or(n.Layout, def.Layout)

	now := n.Now
	if now == nil {
		now = def.Now
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", prefix, now().Format(layout), ext)), nil
}
