// Package watch re-runs generation when the override file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/stackdocs/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one regeneration.
const DefaultDebounce = 2 * time.Second

// RunFunc regenerates the documents. A returned error is logged and the
// watcher keeps going; the previous output stays in place.
type RunFunc func(ctx context.Context) error

// Watcher monitors one configuration file.
type Watcher struct {
	configPath string
	run        RunFunc
	debounce   time.Duration
	watcher    *fsnotify.Watcher
}

// New watches the directory containing configPath. The directory is watched
// rather than the file so editors that replace the file on save are seen.
func New(configPath string, run RunFunc, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	dir := filepath.Dir(absPath)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch config directory %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{configPath: absPath, run: run, debounce: debounce, watcher: fw}, nil
}

// Run blocks until ctx is done, invoking the RunFunc once per debounced
// burst of changes to the configuration file.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()
	slog.Info("Watching configuration", logfields.Config(w.configPath))

	configFile := filepath.Base(w.configPath)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	slog.Info("Regenerating after config change", logfields.Config(w.configPath))
	if err := w.run(ctx); err != nil {
		slog.Error("Regeneration failed; keeping previous output", logfields.Config(w.configPath), logfields.Error(err))
	}
}
