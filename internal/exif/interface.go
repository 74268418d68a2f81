package exif

import "context"

// Adapter wraps the external exiftool binary. All operations mutate
// file metadata in place (overwrite_original, no sidecars).
type Adapter interface {
	// ReadTags returns the requested tags present on file. Tags absent
	// on the file are simply missing from the result, not an error.
	ReadTags(ctx context.Context, file string, tags []string) (map[string]string, error)

	// WriteTags applies all assignments in a single invocation.
	WriteTags(ctx context.Context, file string, values map[string]string) error

	// CopyTags copies the named tags from src to dst. It returns the
	// values written and the tags that were absent on src; absent tags
	// leave dst untouched and are never an error.
	CopyTags(ctx context.Context, src, dst string, tags []string) (map[string]string, []string, error)

	// Geotag assigns coordinate tags to files from one or more track
	// logs. The nearest-timestamp matching is exiftool's own; shiftHours
	// is forwarded as a geosync offset applied to file timestamps.
	Geotag(ctx context.Context, files []string, trackLogs []string, shiftHours int) error

	// ShiftTime applies a uniform hour shift to the date-tag family of
	// each file (video tag set for videos, image set otherwise).
	ShiftTime(ctx context.Context, files []string, hours int) error
}
