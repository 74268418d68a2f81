package gpslog

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Track summarizes one GPS log file: how many timestamped points it
// carries and the time range they span.
type Track struct {
	Path   string
	Points int
	Start  time.Time
	End    time.Time
}

// Coverage is the union of the loaded tracks' time ranges. It is
// advisory only: the actual point matching happens inside exiftool,
// which always receives every log file unfiltered.
type Coverage struct {
	Tracks []Track
}

// Load parses the given GPX files and builds their combined coverage.
// A file that fails to parse or has no timestamped points is an error:
// exiftool would silently match nothing against it.
func Load(paths []string) (*Coverage, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no track log files given")
	}

	cov := &Coverage{}
	for _, path := range paths {
		doc, err := gpx.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse track log %s: %w", path, err)
		}

		track := Track{Path: path}
		for _, trk := range doc.Tracks {
			for _, seg := range trk.Segments {
				for _, pt := range seg.Points {
					if pt.Timestamp.IsZero() {
						continue
					}
					ts := pt.Timestamp.UTC()
					if track.Points == 0 || ts.Before(track.Start) {
						track.Start = ts
					}
					if track.Points == 0 || ts.After(track.End) {
						track.End = ts
					}
					track.Points++
				}
			}
		}

		if track.Points == 0 {
			return nil, fmt.Errorf("track log %s has no timestamped points", path)
		}
		cov.Tracks = append(cov.Tracks, track)
	}

	return cov, nil
}

// Covers reports whether t, after applying the hour shift, falls inside
// any loaded track's time range.
func (c *Coverage) Covers(t time.Time, shiftHours int) bool {
	shifted := t.Add(time.Duration(shiftHours) * time.Hour).UTC()
	for _, track := range c.Tracks {
		if !shifted.Before(track.Start) && !shifted.After(track.End) {
			return true
		}
	}
	return false
}

// Bounds returns the earliest start and latest end across all tracks.
func (c *Coverage) Bounds() (time.Time, time.Time) {
	var start, end time.Time
	for i, track := range c.Tracks {
		if i == 0 || track.Start.Before(start) {
			start = track.Start
		}
		if i == 0 || track.End.After(end) {
			end = track.End
		}
	}
	return start, end
}

// PointCount returns the total number of timestamped points loaded.
func (c *Coverage) PointCount() int {
	n := 0
	for _, track := range c.Tracks {
		n += track.Points
	}
	return n
}
