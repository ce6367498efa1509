// Package watch notifies a caller every time one specific file changes
// on disk, built on fsnotify. fsnotify watches directories reliably but
// not individual files across editors' atomic-rename-based saves (the
// old inode gets replaced, not written-to), so this watches the file's
// containing directory and filters events down to the target.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// File watches one file and calls onChange each time it is written or
// replaced, until ctx is canceled. It blocks until then.
func File(ctx context.Context, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch: watching %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
