package watcher

import "context"

// EventHandler processes one newly arrived processed video file.
type EventHandler func(ctx context.Context, path string) error

// Watcher defines the interface for directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop()
}
