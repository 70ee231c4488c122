package dataset

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"artistly/internal/domain/catalog"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the artists file when it changes on disk and hands the new
// catalog to onChange. A file that fails to decode is logged and skipped, so the
// last good catalog stays in place.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func([]catalog.Artist)
	logger   *slog.Logger
}

func NewWatcher(path string, debounce time.Duration, onChange func([]catalog.Artist), logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, debounce: debounce, onChange: onChange, logger: logger}
}

// Run blocks until ctx is done. The parent directory is watched because editors
// usually replace files by rename.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	target := filepath.Clean(w.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return err
	}
	w.logger.Info("catalog watcher started", slog.String("path", target))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", slog.String("error", err.Error()))
		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	artists, err := NewLoader(w.path, "").Artists(ctx)
	if err != nil {
		w.logger.Warn("catalog reload failed", slog.String("path", w.path), slog.String("error", err.Error()))
		return
	}
	w.onChange(artists)
}
