package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// scriptWatcher marks rule scripts stale when they change on disk.
// Directories are watched rather than files so editors that save by
// renaming a temporary file are noticed too.
type scriptWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	stale   atomic.Bool
	logger  *slog.Logger
}

func newScriptWatcher(paths []string, logger *slog.Logger) (*scriptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	sw := &scriptWatcher{watcher: watcher, files: make(map[string]bool), logger: logger}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
		sw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go sw.watchLoop()
	return sw, nil
}

func (sw *scriptWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !sw.files[abs] {
				continue
			}
			sw.logger.Debug("rule script changed", slog.String("path", abs))
			sw.stale.Store(true)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warn("script watcher error", slog.String("error", err.Error()))
		}
	}
}

// Stale reports whether a script changed since the previous call.
func (sw *scriptWatcher) Stale() bool {
	return sw.stale.Swap(false)
}

// Close stops watching.
func (sw *scriptWatcher) Close() error {
	return sw.watcher.Close()
}
