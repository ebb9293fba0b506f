package driven

import "context"

// StoreWatcher reports external modification of the storage files so
// the session can refresh its document list.
type StoreWatcher interface {
	// Watch starts watching and returns a channel that receives a
	// signal whenever the underlying storage changes on disk.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)

	// Close stops the watcher.
	Close() error
}
