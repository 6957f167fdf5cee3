package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SaveTemp writes uploaded résumé bytes to a file in the process temp
// directory and returns its path together with a cleanup func. The name is
// namespaced by timestamp, a random ID and the sanitized original filename;
// the random ID keeps concurrent uploads of the same file from colliding.
//
// Callers must defer cleanup so the file is removed on every exit path,
// including extraction failures.
func SaveTemp(originalName string, r io.Reader) (string, func(), error) {
	name := fmt.Sprintf("resume_%d_%s_%s",
		time.Now().UnixMilli(), uuid.New().String()[:8], sanitizeFilename(originalName))
	path := filepath.Join(os.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	cleanup := func() { _ = os.Remove(path) }
	return path, cleanup, nil
}

// sanitizeFilename strips path separators and control characters from an
// client-supplied filename so it cannot escape the temp directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 32, r == '/', r == '\\', r == ':':
			return '_'
		default:
			return r
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
