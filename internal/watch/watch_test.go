package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"create chapter", fsnotify.Event{Name: "/b/Intro.pdf", Op: fsnotify.Create}, true},
		{"write chapter", fsnotify.Event{Name: "/b/Ch#3.pdf", Op: fsnotify.Write}, true},
		{"remove chapter", fsnotify.Event{Name: "/b/Ch#3.pdf", Op: fsnotify.Remove}, true},
		{"rename chapter", fsnotify.Event{Name: "/b/Ch#3.pdf", Op: fsnotify.Rename}, true},
		{"chmod chapter", fsnotify.Event{Name: "/b/Intro.pdf", Op: fsnotify.Chmod}, false},
		{"generated page", fsnotify.Event{Name: "/b/01.toc.html", Op: fsnotify.Create}, false},
		{"other file", fsnotify.Event{Name: "/b/cover.png", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relevant(tt.ev); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func waitRun(t *testing.T, runs <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	runs := make(chan struct{}, 16)

	w := New(dir, 20*time.Millisecond, func(ctx context.Context) error {
		runs <- struct{}{}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	waitRun(t, runs, "initial run")

	// Generated pages must not trigger a run.
	if err := os.WriteFile(filepath.Join(dir, "01.toc.html"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-runs:
		t.Fatal("unexpected run for generated page")
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(filepath.Join(dir, "Intro.pdf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	waitRun(t, runs, "run after chapter change")

	w.Kick()
	waitRun(t, runs, "run after kick")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_FailedRunKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	errs := make(chan error, 16)

	w := New(dir, 20*time.Millisecond, func(ctx context.Context) error {
		return errors.New("boom")
	}, nil)
	w.OnError = func(err error) { errs <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-errs:
		case <-time.After(3 * time.Second):
			t.Fatalf("timed out waiting for failure %d", i+1)
		}
		w.Kick()
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), 0, func(ctx context.Context) error { return nil }, nil)
	if w.Debounce != DefaultDebounce {
		t.Errorf("expected default debounce, got %s", w.Debounce)
	}
	if err := w.Watch(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
