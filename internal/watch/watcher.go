// Package watch re-runs a handler whenever the OCR input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"bankocr/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Handler processes the input file after it settles.
type Handler func(ctx context.Context, path string) error

// Stats tracks watcher activity.
type Stats struct {
	Events    int
	Runs      int
	Errors    int
	LastEvent time.Time
	LastOp    string
}

// InputWatcher watches the directory holding the input file, since editors
// and scanners often replace the file rather than writing in place.
type InputWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	dir         string
	handler     Handler
	pending     bool
	lastEvent   time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// New creates a watcher for path. Events settle for debounce before the
// handler runs.
func New(path string, debounce time.Duration, handler Handler) (*InputWatcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch: handler required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &InputWatcher{
		watcher:     w,
		path:        abs,
		dir:         filepath.Dir(abs),
		handler:     handler,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
func (iw *InputWatcher) Start(ctx context.Context) error {
	iw.mu.Lock()
	if iw.running {
		iw.mu.Unlock()
		return nil
	}
	iw.running = true
	iw.mu.Unlock()

	if err := iw.watcher.Add(iw.dir); err != nil {
		iw.mu.Lock()
		iw.running = false
		iw.mu.Unlock()
		return fmt.Errorf("watch %s: %w", iw.dir, err)
	}
	logging.Watch("watching %s in %s", filepath.Base(iw.path), iw.dir)

	go iw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (iw *InputWatcher) Stop() {
	iw.mu.Lock()
	if !iw.running {
		iw.mu.Unlock()
		_ = iw.watcher.Close()
		return
	}
	iw.running = false
	iw.mu.Unlock()

	close(iw.stopCh)
	<-iw.doneCh

	if err := iw.watcher.Close(); err != nil {
		logging.WatchError("error closing watcher: %v", err)
	}
	logging.Watch("stopped")
}

// Done is closed when the event loop exits.
func (iw *InputWatcher) Done() <-chan struct{} {
	return iw.doneCh
}

func (iw *InputWatcher) run(ctx context.Context) {
	defer close(iw.doneCh)

	tick := min(iw.debounceDur, 100*time.Millisecond)
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Watch("context cancelled")
			return

		case <-iw.stopCh:
			return

		case event, ok := <-iw.watcher.Events:
			if !ok {
				return
			}
			iw.handleEvent(event)

		case err, ok := <-iw.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchError("watcher error: %v", err)
			iw.mu.Lock()
			iw.stats.Errors++
			iw.mu.Unlock()

		case <-ticker.C:
			iw.processSettled(ctx)
		}
	}
}

func (iw *InputWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != iw.path {
		return
	}

	var op string
	switch {
	case event.Op&fsnotify.Create != 0:
		op = "create"
	case event.Op&fsnotify.Write != 0:
		op = "modify"
	default:
		// Removal leaves nothing to process; chmod changes no content.
		return
	}
	logging.WatchDebug("%s event for %s", op, event.Name)

	iw.mu.Lock()
	iw.stats.Events++
	iw.stats.LastEvent = time.Now()
	iw.stats.LastOp = op
	iw.pending = true
	iw.lastEvent = iw.stats.LastEvent
	iw.mu.Unlock()
}

func (iw *InputWatcher) processSettled(ctx context.Context) {
	iw.mu.Lock()
	if !iw.pending || time.Since(iw.lastEvent) < iw.debounceDur {
		iw.mu.Unlock()
		return
	}
	iw.pending = false
	iw.mu.Unlock()

	iw.Trigger(ctx)
}

// Trigger runs the handler immediately, e.g. for the initial pass.
func (iw *InputWatcher) Trigger(ctx context.Context) {
	err := iw.handler(ctx, iw.path)

	iw.mu.Lock()
	iw.stats.Runs++
	if err != nil {
		iw.stats.Errors++
	}
	iw.mu.Unlock()

	if err != nil {
		logging.WatchError("handler failed for %s: %v", iw.path, err)
	}
}

// GetStats returns the current watcher statistics.
func (iw *InputWatcher) GetStats() Stats {
	iw.mu.RLock()
	defer iw.mu.RUnlock()
	return iw.stats
}

// IsWatching returns true if the watcher is currently running.
func (iw *InputWatcher) IsWatching() bool {
	iw.mu.RLock()
	defer iw.mu.RUnlock()
	return iw.running
}
