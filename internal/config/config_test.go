package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "extension without dot",
			config: Config{
				Naming: NamingConfig{OriginalExt: "MOV"},
			},
			wantErr: true,
		},
		{
			name: "blank prefix",
			config: Config{
				Naming: NamingConfig{Prefix: "   "},
			},
			wantErr: true,
		},
		{
			name: "custom naming",
			config: Config{
				Naming: NamingConfig{
					Prefix:          "C",
					ProcessedSuffix: "-hevc",
					OriginalExt:     ".MP4",
					ProcessedExt:    ".mp4",
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Exiftool.BinaryPath != "exiftool" {
		t.Errorf("BinaryPath = %q, want %q", cfg.Exiftool.BinaryPath, "exiftool")
	}
	if !cfg.Exiftool.LargeFileSupport {
		t.Error("LargeFileSupport should default to true")
	}
	if cfg.Camera.Make != "FUJIFILM" || cfg.Camera.Model != "X-T30" {
		t.Errorf("Camera = %q/%q, want FUJIFILM/X-T30", cfg.Camera.Make, cfg.Camera.Model)
	}
	if cfg.Naming.Prefix != "DSCF" {
		t.Errorf("Prefix = %q, want DSCF", cfg.Naming.Prefix)
	}
	if cfg.Naming.ProcessedSuffix != "-1" {
		t.Errorf("ProcessedSuffix = %q, want -1", cfg.Naming.ProcessedSuffix)
	}
	if cfg.Naming.OriginalExt != ".MOV" || cfg.Naming.ProcessedExt != ".mov" {
		t.Errorf("extensions = %q/%q, want .MOV/.mov", cfg.Naming.OriginalExt, cfg.Naming.ProcessedExt)
	}
	if cfg.Paths.Output != "000hevc" {
		t.Errorf("Output = %q, want 000hevc", cfg.Paths.Output)
	}
	if cfg.Geotag.CompanionSuffix != "_geotag_tmp" {
		t.Errorf("CompanionSuffix = %q, want _geotag_tmp", cfg.Geotag.CompanionSuffix)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
exiftool:
  binary_path: "/opt/local/bin/exiftool"

camera:
  make: "SONY"
  model: "ILCE-7M4"

naming:
  prefix: "C"
  processed_suffix: "-hevc"
  original_ext: ".MP4"
  processed_ext: ".mp4"

paths:
  input: "footage"
  output: "footage/converted"

geotag:
  time_shift_hours: -8

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Exiftool.BinaryPath != "/opt/local/bin/exiftool" {
		t.Errorf("BinaryPath = %v, want /opt/local/bin/exiftool", cfg.Exiftool.BinaryPath)
	}
	if cfg.Camera.Make != "SONY" {
		t.Errorf("Make = %v, want SONY", cfg.Camera.Make)
	}
	if cfg.Naming.ProcessedSuffix != "-hevc" {
		t.Errorf("ProcessedSuffix = %v, want -hevc", cfg.Naming.ProcessedSuffix)
	}
	if cfg.Geotag.TimeShiftHours != -8 {
		t.Errorf("TimeShiftHours = %v, want -8", cfg.Geotag.TimeShiftHours)
	}
	if cfg.Paths.Output != "footage/converted" {
		t.Errorf("Output = %v, want footage/converted", cfg.Paths.Output)
	}
	// Unset fields still get defaults.
	if cfg.Geotag.CompanionSuffix != "_geotag_tmp" {
		t.Errorf("CompanionSuffix = %v, want default", cfg.Geotag.CompanionSuffix)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
