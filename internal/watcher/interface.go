package watcher

import "context"

// Watcher defines the interface for queue directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles one queue file
type EventHandler func(ctx context.Context, filePath string) error
