package pipeline

import "fmt"

// Summary aggregates per-item outcomes of a run. Failures never abort
// the batch; they are collected here and surfaced at the end.
type Summary struct {
	Processed int
	Skipped   int
	Warnings  []string
	Failed    []string
}

func (s *Summary) addWarning(format string, args ...interface{}) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Summary) addFailure(format string, args ...interface{}) {
	s.Failed = append(s.Failed, fmt.Sprintf(format, args...))
}

func (s *Summary) merge(other *Summary) {
	if other == nil {
		return
	}
	s.Processed += other.Processed
	s.Skipped += other.Skipped
	s.Warnings = append(s.Warnings, other.Warnings...)
	s.Failed = append(s.Failed, other.Failed...)
}

// Err returns a non-nil error if any item failed.
func (s *Summary) Err() error {
	if len(s.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d item(s) failed", len(s.Failed))
}

func (s *Summary) String() string {
	return fmt.Sprintf("processed=%d skipped=%d warnings=%d failed=%d",
		s.Processed, s.Skipped, len(s.Warnings), len(s.Failed))
}
