package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/woodenlobby/storefront/internal/logger"
)

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watch calls onChange with the file path whenever one of paths is written,
// created, renamed or removed. Parent directories are watched so editors
// that save by replacing the file are seen too. Watching stops when ctx is
// cancelled.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("Watching %s", dir)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				handleEvent(event, targets, onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("File watcher: %v", err)
			}
		}
	}()

	return nil
}

// handleEvent forwards events for watched files.
func handleEvent(event fsnotify.Event, targets map[string]string, onChange func(string)) {
	if event.Op&changeOps == 0 {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	original, ok := targets[abs]
	if !ok {
		return
	}
	logger.Debug("Local file changed: %s (%s)", original, event.Op)
	onChange(original)
}
