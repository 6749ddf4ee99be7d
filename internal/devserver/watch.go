package devserver

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches source directories and reports changed files after a
// debounce window, so a burst of writes from one save triggers a single
// reload.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *slog.Logger
	ignore   []string
	debounce time.Duration
	onChange func(path string)
}

// NewWatcher creates a watcher over dirs, recursively. Directory names
// matching an ignore entry are skipped.
func NewWatcher(dirs, ignore []string, log *slog.Logger, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fsw,
		log:      log,
		ignore:   ignore,
		debounce: 100 * time.Millisecond,
		onChange: onChange,
	}

	for _, dir := range dirs {
		if err := w.addRecursive(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				w.log.Warn("watch dir missing", "dir", root)
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(d.Name()) {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

func (w *Watcher) ignored(name string) bool {
	for _, pattern := range w.ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Run processes events until ctx is cancelled. Changed paths within one
// debounce window collapse into a single onChange call.
func (w *Watcher) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if w.ignored(filepath.Base(ev.Name)) || strings.HasSuffix(ev.Name, "~") {
				continue
			}
			// New directories need watching too.
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.addRecursive(ev.Name)
				}
			}

			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				resetDebounce(timer, timerC, w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-timerC:
			w.log.Debug("source changed", "path", pending)
			w.onChange(pending)
			timer = nil
			timerC = nil
		}
	}
}

// resetDebounce rearms an active timer. If the timer already expired
// without its tick being consumed, the stale tick is drained first so
// the rearmed timer cannot fire early.
func resetDebounce(timer *time.Timer, c <-chan time.Time, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-c:
		default:
		}
	}
	timer.Reset(d)
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
