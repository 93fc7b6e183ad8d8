package commands

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/charcoles/charcole/utils"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 250 * time.Millisecond

var skipWatchDirs = map[string]bool{"node_modules": true, ".git": true, "dist": true, "coverage": true}

var watchedExts = map[string]bool{".ts": true, ".js": true, ".mjs": true, ".cjs": true}

// watchSources calls onChange, debounced, whenever a source file under root
// changes. Calls never overlap and none is running once watchSources returns.
func watchSources(ctx context.Context, root string, log logrus.FieldLogger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := addTree(w, root); err != nil {
		return err
	}
	log.Debug("watching for changes")

	// Rebuilds run on this goroutine, one at a time; a change seen during a
	// rebuild queues at most one more.
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	trigger := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			onChange()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if err := addTree(w, ev.Name); err == nil && utils.DirExists(ev.Name) {
					continue
				}
			}
			if watchedExts[filepath.Ext(ev.Name)] && !ev.Has(fsnotify.Chmod) {
				log.WithField("file", ev.Name).Debug("source changed")
				trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// addTree watches dir and its subdirectories. Files are ignored.
func addTree(w *fsnotify.Watcher, dir string) error {
	if !utils.DirExists(dir) {
		return nil
	}
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && (skipWatchDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		if err := w.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
