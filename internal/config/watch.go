package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay groups the bursts of events editors produce for one save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the config file at path whenever it is written and passes
// the result to onChange. A file that fails to load is logged and skipped,
// so the last good config stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(*UserConfig)) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Editors often replace the file, which drops a watch on the file
	// itself; watching the directory survives that.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)

		case <-timer.C:
			cfg, warnings, err := LoadUserConfigFrom(path)
			if err != nil {
				logger.Warn("config reload failed, keeping current config", "path", path, "err", err)
				continue
			}
			for _, w := range warnings {
				logger.Warn("config warning", "field", w.Field, "key", w.Key, "msg", w.Message)
			}
			logger.Info("config reloaded", "path", path)
			onChange(cfg)
		}
	}
}
