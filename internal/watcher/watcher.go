package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	stabilityInterval = 500 * time.Millisecond
	stabilityAttempts = 60
)

// Start blocks, monitoring the directory until the context is
// cancelled. Handlers run serially: the whole workflow is a chain of
// short-lived exiftool calls against the same directory, and
// overlapping runs would race on companion files.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new processed videos (%s*%s)", w.dir, w.prefix, w.marker)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			name := filepath.Base(event.Name)
			if !strings.HasPrefix(name, w.prefix) || !strings.HasSuffix(name, w.marker) {
				continue
			}

			w.logger.Info(ctx, "New processed video detected: %s", event.Name)
			if err := w.waitForStability(ctx, event.Name); err != nil {
				w.logger.Warn(ctx, "Skipping %s: %v", event.Name, err)
				continue
			}

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Processing %s failed: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// waitForStability polls the file size until the encode service has
// finished writing it.
func (w *implWatcher) waitForStability(ctx context.Context, path string) error {
	var lastSize int64 = -1

	for i := 0; i < stabilityAttempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(stabilityInterval):
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		if info.Size() == lastSize {
			return nil
		}
		lastSize = info.Size()
	}

	return fmt.Errorf("file did not stabilize after %s", time.Duration(stabilityAttempts)*stabilityInterval)
}

// Stop closes the underlying filesystem watcher
func (w *implWatcher) Stop() {
	_ = w.watcher.Close()
}
