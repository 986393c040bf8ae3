// Package watch re-runs an action whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/canvasgen/internal/debounce"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
)

// DefaultDelay absorbs the burst of events editors emit on save.
const DefaultDelay = 150 * time.Millisecond

// File watches path and calls action once per burst of changes until ctx
// is done. The parent directory is watched so atomic saves, which replace
// the file, keep being observed.
func File(ctx context.Context, path string, delay time.Duration, log *logger.Logger, action func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	deb := debounce.New(delay)
	defer deb.Stop()

	log.WithFields(map[string]any{"path": abs}).Debug("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.WithFields(map[string]any{"op": event.Op.String()}).Debug("change detected")
			deb.Trigger(action)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		}
	}
}
