package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/fuji-flow/internal/correlate"
)

// Batch processes a directory of paired original/processed videos:
// each processed file is renamed into outDir under the original's base
// name, gets its creation time restored from the original, and is then
// geotagged through the companion-image pipeline. Per-item failures
// are logged and skipped; the batch always runs to the end.
func (p *implPipeline) Batch(ctx context.Context, dir string, trackLogs []string, shiftHours int, outDir string) (*Summary, error) {
	summary := &Summary{}

	pairs, warnings, err := correlate.FindPairs(dir, p.cfg.Naming)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		p.logger.Warn(ctx, "Pairing: %s", w)
		summary.addWarning("pairing: %s", w)
		summary.Skipped++
	}

	if len(pairs) == 0 {
		p.logger.Info(ctx, "No file pairs found in %s", dir)
		return summary, summary.Err()
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var moved []string
	for _, pair := range pairs {
		dest := filepath.Join(outDir, pair.Base+p.cfg.Naming.ProcessedExt)
		p.logger.Info(ctx, "Moving %s -> %s", pair.Processed, dest)
		if err := os.Rename(pair.Processed, dest); err != nil {
			p.logger.Error(ctx, "Move %s: %v", pair.Processed, err)
			summary.addFailure("%s: move: %v", pair.Processed, err)
			continue
		}

		if err := p.CopyTime(ctx, pair.Original, dest); err != nil {
			// The file stays in outDir; no rollback is attempted,
			// matching the external tool's in-place mutation model.
			p.logger.Error(ctx, "Copy time for %s: %v", dest, err)
			summary.addFailure("%s: copy time: %v", dest, err)
			continue
		}

		moved = append(moved, dest)
	}

	if len(trackLogs) == 0 {
		p.logger.Info(ctx, "No track logs given, skipping geotag stage")
		summary.Processed += len(moved)
		return summary, summary.Err()
	}

	geo, err := p.GeotagVideos(ctx, moved, trackLogs, shiftHours)
	if geo == nil {
		// Whole-stage failure (bad track log). Record it so the exit
		// code reflects it even though no per-item entry exists.
		p.logger.Error(ctx, "Geotag stage: %v", err)
		summary.addFailure("geotag stage: %v", err)
		return summary, summary.Err()
	}
	summary.merge(geo)

	return summary, summary.Err()
}
