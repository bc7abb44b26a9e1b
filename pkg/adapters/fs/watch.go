package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notoo/pkg/core"
)

// Watch emits an event for every change of a key matching pattern until ctx
// is cancelled. The returned channel is closed when watching stops.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("watch pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	known := make(map[string]bool)
	if keys, err := s.Keys(ctx); err == nil {
		for _, k := range keys {
			known[k] = true
		}
	}

	w := &watchLoop{
		store:     s,
		pattern:   pattern,
		watcher:   watcher,
		debouncer: newDebouncer(s.config.Debounce),
		events:    make(chan core.Event, 16),
		known:     known,
	}
	s.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(fmt.Errorf("watcher: %w", err))
		} else {
			s.config.Logger.Error("watcher stopped", "error", err)
		}
	}))

	return w.events, nil
}

type watchLoop struct {
	store     *Store
	pattern   string
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	events    chan core.Event
	known     map[string]bool
}

func (w *watchLoop) run(ctx context.Context) (err error) {
	defer close(w.events)
	defer w.debouncer.stopAndWait(5 * time.Second)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.store.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.store.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.store.config.Logger.Error("watcher panic", "error", err)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)
			if w.store.config.ErrorHandler != nil {
				w.store.config.ErrorHandler(wErr)
			}
		}
	}
}

// handle maps a filesystem event onto a key event. Atomic writes surface as a
// create of the target file, so known keys turn creates into modifies.
func (w *watchLoop) handle(ctx context.Context, event fsnotify.Event) {
	w.store.config.Logger.Debug("event received", "name", event.Name)

	key, ok := keyOf(filepath.Base(event.Name))
	if !ok {
		return
	}
	if match, _ := doublestar.Match(w.pattern, key); !match {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if w.known[key] {
			eType = core.EventModify
		}
		w.known[key] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		w.known[key] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(w.known, key)
	default:
		return
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Key:       key,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// The channel may close while an emit is in flight during shutdown.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}
