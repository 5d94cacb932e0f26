// Package watch regenerates a table of contents whenever the chapter files in
// a directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jackzampolin/booktoc/internal/chapters"
)

// DefaultDebounce is used when Watcher.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc regenerates the table of contents.
type RunFunc func(ctx context.Context) error

// Watcher runs Run once at start and again after every burst of chapter file
// changes in Dir.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	Run      RunFunc
	// OnError is called when a run fails. Failures never stop the watcher.
	OnError func(error)
	Logger  *slog.Logger

	kick chan struct{}
}

// New creates a Watcher for dir.
func New(dir string, debounce time.Duration, run RunFunc, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		Dir:      dir,
		Debounce: debounce,
		Run:      run,
		Logger:   logger,
		kick:     make(chan struct{}, 1),
	}
}

// Kick schedules a regeneration as if a chapter file had changed.
func (w *Watcher) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Relevant reports whether an event touches a chapter file. Generated TOC
// pages and unrelated files are ignored so the watcher never triggers itself.
func Relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return chapters.IsChapterFile(filepath.Base(ev.Name))
}

// Watch blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Dir, err)
	}
	w.Logger.Info("watching for chapter changes", "dir", w.Dir, "debounce", w.Debounce)

	w.regenerate(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(w.Debounce)
		} else {
			timer.Reset(w.Debounce)
		}
		fire = timer.C
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
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !Relevant(ev) {
				continue
			}
			w.Logger.Debug("chapter change", "file", ev.Name, "op", ev.Op.String())
			schedule()
		case <-w.kick:
			schedule()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watcher error", "error", err)
		case <-fire:
			fire = nil
			w.regenerate(ctx)
		}
	}
}

func (w *Watcher) regenerate(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.Run(ctx); err != nil {
		w.Logger.Error("regeneration failed", "dir", w.Dir, "error", err)
		if w.OnError != nil {
			w.OnError(err)
		}
	}
}
