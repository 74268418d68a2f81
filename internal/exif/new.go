package exif

import (
	"github.com/nguyentantai21042004/fuji-flow/internal/config"
	"github.com/nguyentantai21042004/fuji-flow/internal/logger"
	"github.com/nguyentantai21042004/fuji-flow/pkg/executor"
)

type implAdapter struct {
	bin        string
	largeFiles bool
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a new Adapter instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Adapter {
	return &implAdapter{
		bin:        cfg.Exiftool.BinaryPath,
		largeFiles: cfg.Exiftool.LargeFileSupport,
		executor:   exec,
		logger:     log,
	}
}
