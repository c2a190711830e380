// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch reruns a conversion whenever a source file is saved.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/el2readme/internal/logging"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// Handler is called after the watched file settles.
type Handler func(ctx context.Context) error

// Watcher calls a Handler whenever one file is written.
//
// The file's directory is watched rather than the file, since many editors
// save by writing a new file and renaming it over the old one.
type Watcher struct {
	path     string
	debounce time.Duration
	handle   Handler
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. A zero debounce uses DefaultDebounce and a
// nil logger discards records.
func New(path string, debounce time.Duration, handle Handler, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.Discard()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		handle:   handle,
		logger:   logger,
		watcher:  fw,
	}, nil
}

// Run blocks, calling the handler after each burst of saves, until ctx is
// done or the underlying watcher closes. Handler errors are logged, not
// returned, so a bad save does not end the session.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("source changed", "path", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := w.handle(ctx); err != nil {
				w.logger.Error("reconversion failed", "path", w.path, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// relevant reports whether event is a write or create of the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
