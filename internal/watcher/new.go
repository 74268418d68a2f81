package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/fuji-flow/internal/config"
	"github.com/nguyentantai21042004/fuji-flow/internal/logger"
)

type implWatcher struct {
	dir     string
	prefix  string
	marker  string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// New creates a Watcher that reports files matching the processed
// naming convention appearing in dir.
func New(dir string, naming config.NamingConfig, handler EventHandler, log logger.Logger) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &implWatcher{
		dir:     dir,
		prefix:  naming.Prefix,
		marker:  naming.ProcessedSuffix + naming.ProcessedExt,
		handler: handler,
		logger:  log,
		watcher: fw,
	}, nil
}
