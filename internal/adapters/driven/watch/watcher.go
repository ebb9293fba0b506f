// Package watch notifies the session when the storage files change on
// disk, so an externally modified library is picked up without restart.
package watch

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/markpad-labs/markpad-cli/internal/core/ports/driven"
	"github.com/markpad-labs/markpad-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.StoreWatcher = (*Watcher)(nil)

// coalesceDelay collapses a burst of filesystem events into one signal
// so a single save (which touches db, wal and journal files) does not
// trigger several refreshes.
const coalesceDelay = 100 * time.Millisecond

// Watcher signals data-directory changes via fsnotify.
type Watcher struct {
	dataDir string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given data directory.
func NewWatcher(dataDir string) *Watcher {
	return &Watcher{dataDir: dataDir}
}

// Watch starts watching the data directory and returns a channel that
// receives a signal for each coalesced burst of changes. The channel is
// closed when ctx is cancelled or the watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := os.MkdirAll(w.dataDir, 0700); err != nil {
		return nil, fmt.Errorf("ensuring data directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.dataDir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.dataDir, err)
	}

	w.mu.Lock()
	w.watcher = fsw
	w.mu.Unlock()

	signals := make(chan struct{}, 1)

	go func() {
		defer close(signals)

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				timerC = nil
				select {
				case signals <- struct{}{}:
				default:
					// Consumer has an unread signal already.
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Debug("store watcher error: %v", err)
			case _, ok := <-fsw.Events:
				if !ok {
					return
				}
				if timer == nil {
					timer = time.NewTimer(coalesceDelay)
					timerC = timer.C
				} else if timerC == nil {
					timer.Reset(coalesceDelay)
					timerC = timer.C
				}
			}
		}
	}()

	return signals, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
