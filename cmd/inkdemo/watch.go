package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ink"
)

// watch reruns rerun whenever one of files is written, created or
// replaced, until ctx is done. Directories are watched so that editors
// that save by renaming keep triggering events.
func watch(ctx context.Context, files []string, rerun func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inkdemo: watch: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	targets := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("inkdemo: watch %s: %w", f, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("inkdemo: watch %s: %w", d, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, targets) {
				continue
			}
			ink.Logger().Debug("inkdemo: change detected", "path", ev.Name, "op", ev.Op.String())
			if err := rerun(); err != nil {
				ink.Logger().Error("inkdemo: render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ink.Logger().Warn("inkdemo: watcher error", "err", err)
		}
	}
}

func relevant(ev fsnotify.Event, targets map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return targets[abs]
}
