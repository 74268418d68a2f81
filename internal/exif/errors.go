package exif

import "fmt"

// ToolError reports an exiftool invocation that failed for a reason
// other than a missing tag or an out-of-range geotag lookup.
type ToolError struct {
	Op   string
	File string
	Err  error
}

func (e *ToolError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("exiftool %s %s: %v", e.Op, e.File, e.Err)
	}
	return fmt.Sprintf("exiftool %s: %v", e.Op, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
