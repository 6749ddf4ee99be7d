package devserver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestResetDebounceDrainsExpiredTimer(t *testing.T) {
	timer := time.NewTimer(time.Millisecond)
	defer timer.Stop()
	// Let the timer expire without consuming its tick.
	time.Sleep(20 * time.Millisecond)

	resetDebounce(timer, timer.C, 100*time.Millisecond)

	select {
	case <-timer.C:
		t.Fatal("rearmed timer delivered a stale tick early")
	case <-time.After(40 * time.Millisecond):
	}

	select {
	case <-timer.C:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("rearmed timer never fired")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var mu sync.Mutex
	var calls []string
	w, err := NewWatcher([]string{dir}, nil, log, func(path string) {
		mu.Lock()
		calls = append(calls, path)
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// A burst of writes within one window collapses to one call.
	for _, name := range []string{"a.go", "b.go", "c.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	got := len(calls)
	mu.Unlock()
	if got != 1 {
		t.Fatalf("calls = %d, want 1 for a single burst", got)
	}

	// A later write after the window is a fresh change.
	if err := os.WriteFile(filepath.Join(dir, "a.go"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	got = len(calls)
	mu.Unlock()
	if got != 2 {
		t.Fatalf("calls = %d, want 2 after a second change", got)
	}
}

func TestWatcherIgnoresPatterns(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "dist"), 0o755); err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var mu sync.Mutex
	calls := 0
	w, err := NewWatcher([]string{dir}, []string{"dist"}, log, func(string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(filepath.Join(dir, "dist", "out.html"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	got := calls
	mu.Unlock()
	if got != 0 {
		t.Fatalf("calls = %d, ignored dirs must not trigger reloads", got)
	}
}
