package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/id3mend/internal/ports"
)

// Debounce window between the last write event for a path and its scan.
// Taggers and rippers write files in bursts; scanning mid-write reads a
// half-written tag.
const watchDebounce = 200 * time.Millisecond

// Watcher monitors directories via fsnotify and feeds newly created or
// rewritten files to the scanner. Scans run on the Run goroutine, so the
// scanner needs no locking.
type Watcher struct {
	scanner *Scanner
	logger  ports.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	scanCh  chan string
}

// NewWatcher creates a watcher feeding the given scanner.
func NewWatcher(s *Scanner, logger ports.Logger) *Watcher {
	return &Watcher{
		scanner: s,
		logger:  logger,
		pending: make(map[string]*time.Timer),
		scanCh:  make(chan string, 64),
	}
}

// Run watches the given directories (and subdirectories, added as they
// appear) until the context is canceled.
func (w *Watcher) Run(ctx context.Context, dirs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := w.addTree(watcher, dir); err != nil {
			return err
		}
	}
	w.logger.Info("watching for new files", ports.Int("dirs", len(dirs)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case path := <-w.scanCh:
			w.scanner.ScanFile(path)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", ports.Err(err))
		}
	}
}

func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 && isDir(event.Name) {
		// New subdirectory: watch it and queue whatever already landed
		// inside before the watch took effect.
		if err := w.addTree(watcher, event.Name); err != nil {
			w.logger.Warn("watch subdirectory failed",
				ports.String("path", event.Name), ports.Err(err))
			return
		}
		_ = filepath.WalkDir(event.Name, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if w.scanner.Recognized(path) {
				w.debounceScan(path)
			}
			return nil
		})
		return
	}

	if !w.scanner.Recognized(event.Name) {
		return
	}
	w.debounceScan(event.Name)
}

// debounceScan (re)arms the timer for path; when it fires the path is handed
// to the Run loop for scanning.
func (w *Watcher) debounceScan(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case w.scanCh <- path:
		default:
			w.logger.Warn("scan queue full, dropping event", ports.String("path", path))
		}
	})
}

// addTree registers dir and every subdirectory with the watcher.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
