// Package guide holds the video conversion instructions and writes them next to the portfolio videos.
package guide

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name the portfolio expects for the guide.
const FileName = "video-creation-guide.md"

// DefaultPath is resolved against the working directory, which is expected to be the repo's scripts folder.
var DefaultPath = filepath.Join("..", "public", "videos", FileName)

// Text is the guide content, written byte for byte.
//
//go:embed guide.md
var Text string

// Write stores Text at path and reports the number of bytes written.
// The parent directory must already exist; it is never created. The content goes to a
// temporary file in the same directory first, so a failed write leaves nothing behind.
func Write(path string) (int, error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".guide-*.md")
	if err != nil {
		return 0, fmt.Errorf("failed to create guide in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	n, err := tmp.WriteString(Text)
	if err != nil {
		return 0, fmt.Errorf("failed to write guide: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("failed to fsync guide: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close guide: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return 0, fmt.Errorf("failed to set guide permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("failed to move guide into place: %w", err)
	}
	return n, nil
}
