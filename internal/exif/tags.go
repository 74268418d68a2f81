package exif

import (
	"fmt"
	"strings"
	"time"
)

// Tag families used by the workflow. Video files carry the QuickTime
// track/media dates on top of the EXIF ones.
var (
	DateTags = []string{"CreateDate", "DateTimeOriginal", "ModifyDate", "DateCreated"}

	VideoDateTags = []string{
		"CreateDate", "DateTimeOriginal", "ModifyDate", "DateCreated",
		"MediaCreateDate", "MediaModifyDate", "TrackCreateDate", "TrackModifyDate",
	}

	GPSTags = []string{
		"GPSCoordinates", "GPSAltitude", "GPSAltitudeRef",
		"GPSLatitude", "GPSLongitude", "GPSPosition",
	}

	CameraTags = []string{"Make", "Model", "DeviceManufacturer", "DeviceModelName"}
)

// Sony writes DeviceManufacturer/DeviceModelName instead of Make and
// Model, and exiftool cannot write those two back. Map them onto the
// canonical pair before writing.
var cameraTagAliases = map[string]string{
	"DeviceManufacturer": "Make",
	"DeviceModelName":    "Model",
}

// GPSPosition is a composite tag assembled by exiftool from latitude
// and longitude; it is readable but never writable.
const compositePositionTag = "GPSPosition"

// CanonicalCameraTags rewrites vendor-specific make/model aliases onto
// Make and Model, then fills in the configured camera constants when
// the source carried neither.
func CanonicalCameraTags(values map[string]string, fallbackMake, fallbackModel string) {
	for alias, canonical := range cameraTagAliases {
		v, ok := values[alias]
		if !ok {
			continue
		}
		values[canonical] = v
		delete(values, alias)
	}

	if values["Make"] == "" {
		values["Make"] = fallbackMake
	}
	if values["Model"] == "" {
		values["Model"] = fallbackModel
	}
}

var dateLayouts = []string{
	"2006:01:02 15:04:05-07:00",
	"2006:01:02 15:04:05Z",
	"2006:01:02 15:04:05",
}

// ParseDate parses an exiftool-formatted timestamp value.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}
