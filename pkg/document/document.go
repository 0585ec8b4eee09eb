package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes the durable document artifacts under the user's
// documents directory. Every dispatch writes its artifact here before
// any device printing is attempted; the file is the source of truth.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// the first write, not here, so a misconfigured path surfaces as a
// write error rather than a startup failure.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// Write persists content as "<prefix>_<unix-millis>.txt" and returns
// the absolute path of the written file.
func (s *Store) Write(prefix string, content string) (string, error) {
	return s.WriteAt(prefix, content, time.Now())
}

// WriteAt is Write with the timestamp supplied by the caller.
func (s *Store) WriteAt(prefix string, content string, now time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("document: failed to create directory %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("%s_%d.txt", sanitize(prefix), now.UnixMilli())
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("document: failed to write %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// sanitize keeps artifact names filesystem-safe: spaces become
// underscores and path separators are dropped.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "document"
	}
	return s
}
