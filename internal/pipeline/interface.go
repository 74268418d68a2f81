package pipeline

import "context"

// Pipeline defines the metadata workflow operations built on top of
// the exiftool adapter.
type Pipeline interface {
	// CopyTime copies the creation-time tag family and the camera
	// make/model from original onto processed. Idempotent.
	CopyTime(ctx context.Context, original, processed string) error

	// GeotagImages geotags image files directly. Unless force is set,
	// files already carrying GPS tags are left untouched.
	GeotagImages(ctx context.Context, files, trackLogs []string, shiftHours int, force bool) error

	// GeotagVideos runs the three-stage companion-image pipeline
	// (stamp, tag, transfer) for each video.
	GeotagVideos(ctx context.Context, files, trackLogs []string, shiftHours int) (*Summary, error)

	// Batch correlates original/processed pairs in dir, moves the
	// processed files into outDir, restores their timestamps and
	// geotags them.
	Batch(ctx context.Context, dir string, trackLogs []string, shiftHours int, outDir string) (*Summary, error)
}
