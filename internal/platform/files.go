package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxNoteFileSize caps how much of a note file is loaded; a desktop panel
// has no business rendering more than this.
const MaxNoteFileSize = 1 << 20 // 1 MiB

// Markdown file extensions recognized for rich rendering.
var markdownExtensions = []string{".md", ".markdown"}

// IsMarkdown reports whether the path looks like a Markdown file.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range markdownExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// ReadTextFile reads a note file's content as text. Files larger than
// MaxNoteFileSize are rejected rather than truncated silently.
func ReadTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("reading %s: is a directory", path)
	}
	if info.Size() > MaxNoteFileSize {
		return "", fmt.Errorf("reading %s: file too large (%d bytes)", path, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), nil
}

// CreateFileIfMissing creates an empty file at path unless it already
// exists. Existing files are never truncated.
func CreateFileIfMissing(path string) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, DefaultFilePermissions)
	if os.IsExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}
