// Package watcher monitors the seed dataset file and reloads the store when
// it changes. Writes are debounced with a settle delay so a half-written
// file is never loaded.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a file must stay unchanged before an
// event is emitted.
const DefaultSettleDelay = 500 * time.Millisecond

// Event signals that the watched file has settled after a change.
type Event struct {
	ModTime time.Time
	Path    string
	Size    int64
}

// Watcher watches a single file for changes.
type Watcher struct {
	logger      *slog.Logger
	watcher     *fsnotify.Watcher
	pending     *time.Timer
	events      chan Event
	errors      chan error
	done        chan struct{}
	path        string
	settleDelay time.Duration
	lastSize    int64
	lastMod     time.Time
	mu          sync.Mutex
	wg          sync.WaitGroup
}

// New creates a watcher for the given file. The file's parent directory is
// watched so editors that replace the file atomically are still detected.
func New(path string, settleDelay time.Duration, logger *slog.Logger) (*Watcher, error) {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}

	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat watched file: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close() //nolint:errcheck // Best-effort cleanup
		return nil, fmt.Errorf("failed to add watch: %w", err)
	}

	return &Watcher{
		logger:      logger,
		watcher:     fsw,
		events:      make(chan Event, 10),
		errors:      make(chan error, 10),
		done:        make(chan struct{}),
		path:        path,
		settleDelay: settleDelay,
	}, nil
}

// Start begins watching for events. It blocks until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.wg.Add(1)
	go w.processEvents(ctx)

	select {
	case <-ctx.Done():
	case <-w.done:
	}
	return nil
}

// processEvents handles raw fsnotify events.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsnotifyEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFsnotifyEvent restarts the settle timer on writes to the watched file.
func (w *Watcher) handleFsnotifyEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}

	info, err := os.Stat(w.path)
	if err != nil {
		w.logger.Warn("failed to stat watched file", "path", w.path, "error", err)
		w.pending = nil
		return
	}
	w.lastSize = info.Size()
	w.lastMod = info.ModTime()

	w.pending = time.AfterFunc(w.settleDelay, w.checkSettled)
}

// checkSettled emits an event once the file stops changing.
func (w *Watcher) checkSettled() {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := os.Stat(w.path)
	if err != nil {
		// File vanished mid-write; wait for the next event.
		w.pending = nil
		return
	}

	if info.Size() != w.lastSize || !info.ModTime().Equal(w.lastMod) {
		// Still changing, restart the timer.
		w.lastSize = info.Size()
		w.lastMod = info.ModTime()
		w.pending = time.AfterFunc(w.settleDelay, w.checkSettled)
		return
	}

	w.pending = nil

	event := Event{
		Path:    w.path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	select {
	case w.events <- event:
	case <-w.done:
	}
}

// Events returns the channel for settled file events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel for watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stop stops the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()

	close(w.events)
	close(w.errors)

	return err
}
