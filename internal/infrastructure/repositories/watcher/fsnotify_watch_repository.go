package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildsrcversions/internal/domain/repositories"
)

// defaultDebounce groups the bursts of events a single report write produces.
const defaultDebounce = 500 * time.Millisecond

// WatchRepository watches a file through fsnotify. It watches the parent
// directory so the file may be deleted and recreated by the report generator.
type WatchRepository struct {
	debounce time.Duration
}

// NewWatchRepository creates a watcher with the default debounce delay.
func NewWatchRepository() repositories.WatchRepository {
	return &WatchRepository{debounce: defaultDebounce}
}

// NewWatchRepositoryWithDebounce creates a watcher with a custom debounce delay.
func NewWatchRepositoryWithDebounce(debounce time.Duration) *WatchRepository {
	return &WatchRepository{debounce: debounce}
}

// Watch blocks until ctx is cancelled, calling onChange after each burst of
// writes to path. onChange always runs on the watching goroutine.
func (w *WatchRepository) Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsWatcher.Close()

	if addErr := fsWatcher.Add(filepath.Dir(absPath)); addErr != nil {
		return fmt.Errorf("failed to watch %q: %w", filepath.Dir(absPath), addErr)
	}
	logger.Infof("Watching %s", absPath)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
				continue
			}
			logger.Debugf("%s: %s", event.Op, event.Name)
			timer.Reset(w.debounce)
		case <-timer.C:
			onChange()
		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("Watcher error: %v", watchErr)
		}
	}
}
