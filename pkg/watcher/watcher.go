package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/notecal/notecal/pkg/notes"
	log "github.com/sirupsen/logrus"
)

// Watcher feeds filesystem change notifications for Markdown notes into the
// processor. Events are handled serially; a write-back performed by the
// processor retriggers the watcher, but the rescan is a no-op because the
// lines are already marked.
type Watcher struct {
	dir       string
	processor *notes.Processor
}

func NewWatcher(dir string, processor *notes.Processor) *Watcher {
	return &Watcher{dir: dir, processor: processor}
}

// Run blocks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := addRecursive(fsWatcher, w.dir); err != nil {
		return err
	}
	log.Infof("watching notes directory: %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fsWatcher, event)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("filesystem watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, fsWatcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	if event.Op.Has(fsnotify.Create) && isDir(event.Name) {
		if err := fsWatcher.Add(event.Name); err != nil {
			log.Errorf("failed to watch new directory %s: %v", event.Name, err)
		}
		return
	}

	if !notes.IsMarkdown(event.Name) {
		return
	}

	log.Debugf("note changed: %s", event.Name)
	if err := w.processor.ProcessFile(ctx, event.Name); err != nil {
		log.Errorf("failed to process note %s: %v", event.Name, err)
	}
}

func addRecursive(fsWatcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fsWatcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
