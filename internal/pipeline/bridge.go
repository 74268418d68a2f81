package pipeline

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/fuji-flow/internal/exif"
)

// CopyTime copies the full date-tag family from original onto
// processed and stamps the camera make/model, which the external
// encode service drops. Writing the same values again yields the same
// end state, so re-running is safe.
func (p *implPipeline) CopyTime(ctx context.Context, original, processed string) error {
	tags := make([]string, 0, len(exif.VideoDateTags)+len(exif.CameraTags))
	tags = append(tags, exif.VideoDateTags...)
	tags = append(tags, exif.CameraTags...)

	values, err := p.exif.ReadTags(ctx, original, tags)
	if err != nil {
		return fmt.Errorf("read tags from %s: %w", original, err)
	}

	hasDate := false
	for _, t := range exif.VideoDateTags {
		if _, ok := values[t]; ok {
			hasDate = true
			break
		}
	}
	if !hasDate {
		return fmt.Errorf("no date tags found on %s", original)
	}

	exif.CanonicalCameraTags(values, p.cfg.Camera.Make, p.cfg.Camera.Model)

	p.logger.Info(ctx, "Copying creation time: %s -> %s", original, processed)
	if err := p.exif.WriteTags(ctx, processed, values); err != nil {
		return fmt.Errorf("write tags to %s: %w", processed, err)
	}
	return nil
}
