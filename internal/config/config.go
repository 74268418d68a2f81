package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Exiftool ExiftoolConfig `yaml:"exiftool"`
	Camera   CameraConfig   `yaml:"camera"`
	Naming   NamingConfig   `yaml:"naming"`
	Paths    PathsConfig    `yaml:"paths"`
	Geotag   GeotagConfig   `yaml:"geotag"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ExiftoolConfig struct {
	BinaryPath       string `yaml:"binary_path"`
	LargeFileSupport bool   `yaml:"large_file_support"`
}

type CameraConfig struct {
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
}

// NamingConfig describes the vendor file naming convention: originals
// keep the camera prefix and uppercase extension, the encode service
// writes its output with a marker suffix and lowercase extension.
type NamingConfig struct {
	Prefix          string `yaml:"prefix"`
	ProcessedSuffix string `yaml:"processed_suffix"`
	OriginalExt     string `yaml:"original_ext"`
	ProcessedExt    string `yaml:"processed_ext"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type GeotagConfig struct {
	TimeShiftHours  int    `yaml:"time_shift_hours"`
	CompanionSuffix string `yaml:"companion_suffix"`
	ImagePattern    string `yaml:"image_pattern"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Exiftool.BinaryPath == "" {
		c.Exiftool.BinaryPath = "exiftool"
	}
	if c.Camera.Make == "" {
		c.Camera.Make = "FUJIFILM"
	}
	if c.Camera.Model == "" {
		c.Camera.Model = "X-T30"
	}
	if c.Naming.Prefix == "" {
		c.Naming.Prefix = "DSCF"
	}
	if c.Naming.ProcessedSuffix == "" {
		c.Naming.ProcessedSuffix = "-1"
	}
	if c.Naming.OriginalExt == "" {
		c.Naming.OriginalExt = ".MOV"
	}
	if c.Naming.ProcessedExt == "" {
		c.Naming.ProcessedExt = ".mov"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "000hevc"
	}
	if c.Geotag.CompanionSuffix == "" {
		c.Geotag.CompanionSuffix = "_geotag_tmp"
	}
	if c.Geotag.ImagePattern == "" {
		c.Geotag.ImagePattern = "*.jpg"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if !strings.HasPrefix(c.Naming.OriginalExt, ".") {
		return fmt.Errorf("naming.original_ext must start with a dot: %q", c.Naming.OriginalExt)
	}
	if !strings.HasPrefix(c.Naming.ProcessedExt, ".") {
		return fmt.Errorf("naming.processed_ext must start with a dot: %q", c.Naming.ProcessedExt)
	}
	if strings.TrimSpace(c.Naming.Prefix) == "" {
		return fmt.Errorf("naming.prefix must not be blank")
	}

	return nil
}
