package pipeline

import "fmt"

// StampError aborts the geotag pipeline for a single video: without a
// stamped companion image there is nothing to match against the track
// logs. Other videos in the same run are unaffected.
type StampError struct {
	Video string
	Err   error
}

func (e *StampError) Error() string {
	return fmt.Sprintf("stamp companion for %s: %v", e.Video, e.Err)
}

func (e *StampError) Unwrap() error {
	return e.Err
}
