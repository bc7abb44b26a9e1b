// Package fs provides a core.Store that keeps one JSON file per key in a
// directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notoo/pkg/core"
)

// FileExt is the extension of every value file.
const FileExt = ".json"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	// ErrorHandler receives asynchronous watcher errors. Defaults to logging.
	ErrorHandler func(error)
	// Debounce merges bursts of events on the same key. Defaults to 50ms.
	Debounce time.Duration
}

// Store implements core.Store on the filesystem.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize creates the store directory, or checks it when MustExist is set.
// A read-only store never creates anything.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			if s.config.ReadOnly && !s.config.MustExist {
				return nil
			}
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the value of key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("key %s: %w", key, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the value of key atomically.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return fmt.Errorf("cannot set %s: %w", key, core.ErrReadOnly)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if err := writeFileAtomic(s.filename(key), value, 0644); err != nil {
		return err
	}
	s.touch()
	s.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return fmt.Errorf("cannot delete %s: %w", key, core.ErrReadOnly)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.filename(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	s.touch()
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list store: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := keyOf(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) filename(key string) string {
	return filepath.Join(s.Path, url.PathEscape(key)+FileExt)
}

// keyOf maps a file name back to its key. Temp files and foreign files are skipped.
func keyOf(name string) (string, bool) {
	if strings.HasPrefix(name, TempFilePrefix) || !strings.HasSuffix(name, FileExt) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimSuffix(name, FileExt))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

func (s *Store) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastWrite = &now
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
