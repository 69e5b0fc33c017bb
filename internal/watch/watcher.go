// Package watch reloads a scene file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before a change is
// reported. Editors often write a file in several steps.
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher reports changes to a single file. It watches the parent
// directory so atomic replace-by-rename saves are seen too.
type FileWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func(path string)
	logger   *zap.Logger

	debounce time.Duration
	pending  bool
	lastSeen time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a watcher for path. onChange runs on the watcher goroutine.
func New(path string, onChange func(path string), logger *zap.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	return &FileWatcher{
		watcher:  w,
		path:     abs,
		onChange: onChange,
		logger:   logger,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the quiet period. Call before Start.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.debounce = d
}

// Start begins watching. It is non-blocking.
func (fw *FileWatcher) Start(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	fw.mu.Unlock()

	dir := filepath.Dir(fw.path)
	if err := fw.watcher.Add(dir); err != nil {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	fw.logger.Debug("watching scene file", zap.String("path", fw.path))

	go fw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	wasRunning := fw.running
	fw.running = false
	fw.mu.Unlock()

	if wasRunning {
		close(fw.stopCh)
		<-fw.doneCh
	}
	if err := fw.watcher.Close(); err != nil {
		fw.logger.Warn("closing file watcher", zap.Error(err))
	}
}

func (fw *FileWatcher) run(ctx context.Context) {
	defer close(fw.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", zap.Error(err))

		case <-ticker.C:
			fw.flush()
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != fw.path {
		return
	}
	// Removal is reported once the file reappears
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	fw.logger.Debug("scene file event", zap.String("op", event.Op.String()))

	fw.mu.Lock()
	fw.pending = true
	fw.lastSeen = time.Now()
	fw.mu.Unlock()
}

func (fw *FileWatcher) flush() {
	fw.mu.Lock()
	if !fw.pending || time.Since(fw.lastSeen) < fw.debounce {
		fw.mu.Unlock()
		return
	}
	fw.pending = false
	fw.mu.Unlock()

	if fw.onChange != nil {
		fw.onChange(fw.path)
	}
}
