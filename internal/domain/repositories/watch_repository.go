package repositories

import "context"

// WatchRepository notifies about changes of a file.
type WatchRepository interface {
	// Watch calls onChange each time the file at path is written or created,
	// until ctx is cancelled.
	Watch(ctx context.Context, path string, onChange func()) error
}
