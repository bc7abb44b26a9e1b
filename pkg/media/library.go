// Package media keeps the images attached to notes in a dedicated directory.
package media

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/otiai10/copy"
)

// DefaultExt is used when the source file has no extension.
const DefaultExt = "jpg"

// ErrMissingSource is returned when the image to import does not exist.
var ErrMissingSource = errors.New("source image does not exist")

// Library copies images into Dir under generated names.
type Library struct {
	Dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewLibrary creates a library rooted at dir. A nil logger discards output.
func NewLibrary(dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Library{Dir: dir, logger: logger, now: time.Now}
}

// Save copies the image at src into the library as image_<unixms>.<ext> and
// returns the new path. Both the source and the copy are checked.
func (l *Library) Save(src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", src, ErrMissingSource)
		}
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source image is a directory: %s", src)
	}

	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dest := l.nextName(extOf(src))
	if err := copy.Copy(src, dest); err != nil {
		return "", fmt.Errorf("failed to copy image: %w", err)
	}
	if _, err := os.Stat(dest); err != nil {
		return "", fmt.Errorf("copied image is missing: %w", err)
	}

	l.logger.Debug("image saved", "src", src, "dest", dest)
	return dest, nil
}

// Delete removes an image. A missing file is not an error.
func (l *Library) Delete(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Contains reports whether path lives inside the library.
func (l *Library) Contains(path string) bool {
	rel, err := filepath.Rel(l.Dir, path)
	return err == nil && rel != "." && !strings.HasPrefix(rel, "..")
}

// nextName picks a free image_<unixms>.<ext> name. Two saves in the same
// millisecond get consecutive stamps.
func (l *Library) nextName(ext string) string {
	stamp := l.now().UnixMilli()
	for {
		name := filepath.Join(l.Dir, "image_"+strconv.FormatInt(stamp, 10)+"."+ext)
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			return name
		}
		stamp++
	}
}

func extOf(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultExt
	}
	return strings.ToLower(ext)
}
