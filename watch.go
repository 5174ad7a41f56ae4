package proofkit

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watch validates path once, then again every time it changes, passing
// each Result to fn. It blocks until ctx is done and returns nil in that
// case.
//
// The parent directory is watched rather than the file itself so that
// editors which replace files atomically keep triggering events. Bursts of
// events closer together than the debounce window produce one validation.
func (v *Validator) Watch(ctx context.Context, path string, fn func(Result)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	fn(v.Validate(path))

	// pending is nil until a relevant event arrives
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&watchOps == 0 {
				continue
			}
			v.logger().Debug("watched file changed", "path", path, "op", event.Op.String())
			pending = time.After(v.opts.WatchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			v.logger().Warn("watcher error", "path", path, "error", err)
		case <-pending:
			pending = nil
			fn(v.Validate(path))
		}
	}
}
