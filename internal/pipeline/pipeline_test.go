package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/fuji-flow/internal/config"
	"github.com/nguyentantai21042004/fuji-flow/internal/exif"
	"github.com/nguyentantai21042004/fuji-flow/internal/logger"
)

// fakeAdapter is an in-memory tag store standing in for exiftool.
// Geotag assigns a fixed coordinate to every file whose shifted
// CreateDate falls inside the configured window, mimicking the real
// tool's nearest-point matching at the granularity these tests need.
type fakeAdapter struct {
	files      map[string]map[string]string
	coverStart time.Time
	coverEnd   time.Time
	geotagged  []string
	geoErr     error
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{files: make(map[string]map[string]string)}
}

func (f *fakeAdapter) setTags(path string, tags map[string]string) {
	m := make(map[string]string, len(tags))
	for k, v := range tags {
		m[k] = v
	}
	f.files[path] = m
}

func (f *fakeAdapter) ReadTags(ctx context.Context, file string, tags []string) (map[string]string, error) {
	m, ok := f.files[file]
	if !ok {
		return nil, &exif.ToolError{Op: "read", File: file, Err: errors.New("file not found")}
	}
	out := make(map[string]string)
	for _, t := range tags {
		if v, ok := m[t]; ok {
			out[t] = v
		}
	}
	return out, nil
}

func (f *fakeAdapter) WriteTags(ctx context.Context, file string, values map[string]string) error {
	m, ok := f.files[file]
	if !ok {
		m = make(map[string]string)
		f.files[file] = m
	}
	for k, v := range values {
		m[k] = v
	}
	return nil
}

func (f *fakeAdapter) CopyTags(ctx context.Context, src, dst string, tags []string) (map[string]string, []string, error) {
	values, err := f.ReadTags(ctx, src, tags)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := values["GPSCoordinates"]; !ok {
		pos, hasPos := values["GPSPosition"]
		alt, hasAlt := values["GPSAltitude"]
		if hasPos && hasAlt {
			values["GPSCoordinates"] = fmt.Sprintf("%s, %s", pos, alt)
		}
	}
	delete(values, "GPSPosition")

	var absent []string
	for _, t := range tags {
		if t == "GPSPosition" {
			continue
		}
		if _, ok := values[t]; !ok {
			absent = append(absent, t)
		}
	}

	if len(values) > 0 {
		if err := f.WriteTags(ctx, dst, values); err != nil {
			return nil, absent, err
		}
	}
	return values, absent, nil
}

func (f *fakeAdapter) Geotag(ctx context.Context, files []string, trackLogs []string, shiftHours int) error {
	if f.geoErr != nil {
		return f.geoErr
	}
	for _, file := range files {
		f.geotagged = append(f.geotagged, file)
		m, ok := f.files[file]
		if !ok {
			continue
		}
		t, err := exif.ParseDate(m["CreateDate"])
		if err != nil {
			continue
		}
		shifted := t.Add(time.Duration(shiftHours) * time.Hour)
		if shifted.Before(f.coverStart) || shifted.After(f.coverEnd) {
			continue
		}
		m["GPSLatitude"] = "35.6590 N"
		m["GPSLongitude"] = "139.7460 E"
		m["GPSAltitude"] = "40 m"
		m["GPSAltitudeRef"] = "Above Sea Level"
		m["GPSPosition"] = "35.6590 N, 139.7460 E"
	}
	return nil
}

func (f *fakeAdapter) ShiftTime(ctx context.Context, files []string, hours int) error {
	return nil
}

func newTestPipeline(fake *fakeAdapter) Pipeline {
	return New(config.Default(), fake, logger.New("error"))
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

const gpxTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="35.6586" lon="139.7454">
        <ele>40.0</ele>
        <time>%s</time>
      </trkpt>
      <trkpt lat="35.6590" lon="139.7460">
        <ele>41.0</ele>
        <time>%s</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>
`

// writeGPX creates a two-point track log covering [start, end] and
// mirrors the same window into the fake adapter.
func writeGPX(t *testing.T, fake *fakeAdapter, dir, start, end string) string {
	t.Helper()
	path := filepath.Join(dir, "track.gpx")
	if err := os.WriteFile(path, []byte(fmt.Sprintf(gpxTemplate, start, end)), 0644); err != nil {
		t.Fatal(err)
	}
	fake.coverStart, _ = time.Parse(time.RFC3339, start)
	fake.coverEnd, _ = time.Parse(time.RFC3339, end)
	return path
}
