package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/fuji-flow/internal/exif"
	"github.com/nguyentantai21042004/fuji-flow/internal/gpslog"
)

// GeotagImages geotags image files directly; exiftool handles whole
// batches in one invocation. Unless force is set, files that already
// carry GPS tags are filtered out first so reruns don't clobber
// manually corrected coordinates.
func (p *implPipeline) GeotagImages(ctx context.Context, files, trackLogs []string, shiftHours int, force bool) error {
	if len(files) == 0 {
		return nil
	}

	cov, err := gpslog.Load(trackLogs)
	if err != nil {
		return err
	}
	p.logCoverage(ctx, cov)

	targets := files
	if !force {
		targets = nil
		for _, f := range files {
			values, err := p.exif.ReadTags(ctx, f, exif.GPSTags)
			if err != nil {
				return err
			}
			if len(values) > 0 {
				p.logger.Info(ctx, "Skipping already geotagged file: %s", f)
				continue
			}
			targets = append(targets, f)
		}
	}

	if len(targets) == 0 {
		p.logger.Info(ctx, "No files left to geotag")
		return nil
	}

	return p.exif.Geotag(ctx, targets, trackLogs, shiftHours)
}

// GeotagVideos runs the three-stage companion-image pipeline per video:
// stamp the video's creation time onto a throwaway JPEG, geotag the
// JPEGs against the track logs, then transfer the coordinate tags back
// onto the videos. exiftool can geotag a JPEG but not a QuickTime file,
// hence the detour.
func (p *implPipeline) GeotagVideos(ctx context.Context, files, trackLogs []string, shiftHours int) (*Summary, error) {
	summary := &Summary{}
	if len(files) == 0 {
		return summary, nil
	}

	cov, err := gpslog.Load(trackLogs)
	if err != nil {
		return nil, err
	}
	p.logCoverage(ctx, cov)

	type job struct {
		video     string
		companion string
	}

	var jobs []job
	for _, video := range files {
		companion, createDate, err := p.stamp(ctx, video)
		if err != nil {
			p.logger.Error(ctx, "%v", err)
			summary.addFailure("%v", err)
			continue
		}

		if t, perr := exif.ParseDate(createDate); perr == nil && !cov.Covers(t, shiftHours) {
			p.logger.Warn(ctx, "Creation time of %s (%s) is outside track coverage", video, createDate)
			summary.addWarning("%s: creation time %s outside track coverage", video, createDate)
		}

		jobs = append(jobs, job{video: video, companion: companion})
	}

	if len(jobs) == 0 {
		return summary, summary.Err()
	}

	companions := make([]string, 0, len(jobs))
	for _, j := range jobs {
		companions = append(companions, j.companion)
	}

	p.logger.Info(ctx, "Geotagging %d companion image(s) with %d track log(s)", len(companions), len(trackLogs))
	if err := p.exif.Geotag(ctx, companions, trackLogs, shiftHours); err != nil {
		for _, j := range jobs {
			summary.addFailure("%s: geotag companion: %v", j.video, err)
			p.removeCompanion(ctx, j.companion)
		}
		return summary, summary.Err()
	}

	for _, j := range jobs {
		if err := p.transfer(ctx, j.companion, j.video, summary); err != nil {
			p.logger.Error(ctx, "Transfer GPS tags to %s: %v", j.video, err)
			summary.addFailure("%s: transfer GPS tags: %v", j.video, err)
		} else {
			summary.Processed++
		}
		p.removeCompanion(ctx, j.companion)
	}

	return summary, summary.Err()
}

// stamp creates the companion JPEG for a video and writes the video's
// creation time onto its date-tag family. A stale companion from an
// earlier run is replaced.
func (p *implPipeline) stamp(ctx context.Context, video string) (string, string, error) {
	values, err := p.exif.ReadTags(ctx, video, []string{"CreateDate"})
	if err != nil {
		return "", "", &StampError{Video: video, Err: err}
	}
	createDate, ok := values["CreateDate"]
	if !ok {
		return "", "", &StampError{Video: video, Err: fmt.Errorf("no CreateDate tag")}
	}

	companion := p.companionPath(video)
	if err := os.Remove(companion); err != nil && !os.IsNotExist(err) {
		return "", "", &StampError{Video: video, Err: err}
	}
	if err := writeCompanionJPEG(companion); err != nil {
		return "", "", &StampError{Video: video, Err: err}
	}

	dates := make(map[string]string, len(exif.DateTags))
	for _, t := range exif.DateTags {
		dates[t] = createDate
	}
	if err := p.exif.WriteTags(ctx, companion, dates); err != nil {
		p.removeCompanion(ctx, companion)
		return "", "", &StampError{Video: video, Err: err}
	}

	p.logger.Debug(ctx, "Stamped companion %s with %s", companion, createDate)
	return companion, createDate, nil
}

// transfer copies the coordinate tag family from the companion to the
// video. A companion that ended the tag stage without a coordinate
// produces the placeholder block instead; the video never ends up
// silently untagged.
func (p *implPipeline) transfer(ctx context.Context, companion, video string, summary *Summary) error {
	copied, absent, err := p.exif.CopyTags(ctx, companion, video, exif.GPSTags)
	if err != nil {
		return err
	}

	hasCoord := copied["GPSCoordinates"] != "" || copied["GPSLatitude"] != ""
	if !hasCoord {
		if err := p.exif.WriteTags(ctx, video, placeholderGPS()); err != nil {
			return fmt.Errorf("write placeholder coordinates: %w", err)
		}
		p.logger.Warn(ctx, "No coordinate resolved for %s, wrote placeholder (absent: %s)",
			video, strings.Join(absent, ", "))
		summary.addWarning("%s: no coordinate resolved, wrote placeholder", video)
	}
	return nil
}

func (p *implPipeline) companionPath(video string) string {
	base := strings.TrimSuffix(video, filepath.Ext(video))
	return base + p.cfg.Geotag.CompanionSuffix + ".jpg"
}

func (p *implPipeline) removeCompanion(ctx context.Context, companion string) {
	if err := os.Remove(companion); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to remove companion %s: %v", companion, err)
	}
}

func (p *implPipeline) logCoverage(ctx context.Context, cov *gpslog.Coverage) {
	start, end := cov.Bounds()
	p.logger.Info(ctx, "Loaded %d track log(s), %d points (%s .. %s)",
		len(cov.Tracks), cov.PointCount(),
		start.Format(time.RFC3339), end.Format(time.RFC3339))
}

// placeholderGPS is the zero coordinate block written when no track
// point matched the video's timestamp.
func placeholderGPS() map[string]string {
	return map[string]string{
		"GPSCoordinates": "0 0 0",
		"GPSLatitude":    "0",
		"GPSLongitude":   "0",
		"GPSAltitude":    "0",
		"GPSAltitudeRef": "0",
	}
}

// writeCompanionJPEG writes a minimal 1x1 baseline JPEG; it only needs
// to be a valid carrier for date and GPS tags.
func writeCompanionJPEG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create companion: %w", err)
	}

	img := image.NewGray(image.Rect(0, 0, 1, 1))
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encode companion: %w", err)
	}
	return f.Close()
}
