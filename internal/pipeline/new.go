package pipeline

import (
	"github.com/nguyentantai21042004/fuji-flow/internal/config"
	"github.com/nguyentantai21042004/fuji-flow/internal/exif"
	"github.com/nguyentantai21042004/fuji-flow/internal/logger"
)

type implPipeline struct {
	cfg    *config.Config
	exif   exif.Adapter
	logger logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, adapter exif.Adapter, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:    cfg,
		exif:   adapter,
		logger: log,
	}
}
