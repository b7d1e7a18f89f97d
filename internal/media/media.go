// Package media resolves illustrative drill visuals for boxing sessions.
// Lookup is keyword-based and best-effort: a path is returned only when the
// file actually exists under the configured directory.
package media

import (
	"os"
	"path/filepath"
	"strings"
)

// boxingVisuals maps focus keywords to bundled drill animations, checked in
// order so more specific focuses win by listing first.
var boxingVisuals = []struct {
	keyword  string
	filename string
}{
	{"shadow", "boxing_shadow.gif"},
	{"bag", "boxing_bag.gif"},
	{"footwork", "boxing_footwork.gif"},
	{"defence", "boxing_defence.gif"},
	{"conditioning", "boxing_conditioning.gif"},
}

// Library serves visuals from a directory on disk.
type Library struct {
	dir string
}

// NewLibrary creates a Library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// VisualFor returns the path of a drill visual matching the session focus,
// or false when no keyword matches or the file is missing.
func (l *Library) VisualFor(focus string) (string, bool) {
	focusLower := strings.ToLower(focus)
	for _, v := range boxingVisuals {
		if !strings.Contains(focusLower, v.keyword) {
			continue
		}
		candidate := filepath.Join(l.dir, v.filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// Path resolves a visual by filename. Only filenames from the known set are
// served, so request paths cannot escape the library directory.
func (l *Library) Path(name string) (string, bool) {
	for _, v := range boxingVisuals {
		if v.filename != name {
			continue
		}
		candidate := filepath.Join(l.dir, v.filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
