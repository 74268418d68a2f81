package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nguyentantai21042004/fuji-flow/internal/pipeline"
	"github.com/nguyentantai21042004/fuji-flow/internal/watcher"
)

func runCopyTime(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("copy-time", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: copy-time [flags] <source> <destination>...")
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	return copyTimeAll(ctx, d.pipeline, rest[0], rest[1:])
}

// copyTimeAll applies CopyTime from src onto every destination. A
// failing destination is reported and skipped; the remaining ones are
// still processed.
func copyTimeAll(ctx context.Context, p pipeline.Pipeline, src string, dsts []string) error {
	failed := 0
	for _, dst := range dsts {
		if err := p.CopyTime(ctx, src, dst); err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", dst, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d destination(s) failed", failed)
	}
	return nil
}

func runShiftTime(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("shift-time", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	shift := fs.IntP("shift", "s", 0, "Hours to shift, e.g. -8 to move local time to UTC")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(fs.Args()) == 0 {
		return fmt.Errorf("usage: shift-time [flags] <file>...")
	}
	if *shift == 0 {
		return fmt.Errorf("shift of 0 hours is a no-op, use --shift")
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	return d.exif.ShiftTime(ctx, fs.Args(), *shift)
}

func runGeotagImage(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("geotag-image", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	logs := fs.StringArrayP("gpslog", "g", nil, "GPS track log file (repeatable)")
	shift := fs.IntP("time-shift", "t", 0, "Hour offset applied to file timestamps before matching")
	pattern := fs.StringP("pattern", "p", "", "Glob pattern for directory arguments")
	force := fs.Bool("force", false, "Geotag files even if they already carry GPS tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(fs.Args()) == 0 {
		return fmt.Errorf("usage: geotag-image [flags] <file-or-dir>...")
	}
	if len(*logs) == 0 {
		return fmt.Errorf("at least one --gpslog is required")
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	pat := *pattern
	if pat == "" {
		pat = d.cfg.Geotag.ImagePattern
	}
	files, err := expandPaths(fs.Args(), pat)
	if err != nil {
		return err
	}

	return d.pipeline.GeotagImages(ctx, files, *logs, effectiveShift(d, *shift, fs), *force)
}

func runGeotagVideo(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("geotag-video", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	logs := fs.StringArrayP("gpslog", "g", nil, "GPS track log file (repeatable)")
	shift := fs.IntP("time-shift", "t", 0, "Hour offset applied to file timestamps before matching")
	pattern := fs.StringP("pattern", "p", "", "Glob pattern for directory arguments")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(fs.Args()) == 0 {
		return fmt.Errorf("usage: geotag-video [flags] <file-or-dir>...")
	}
	if len(*logs) == 0 {
		return fmt.Errorf("at least one --gpslog is required")
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	pat := *pattern
	if pat == "" {
		pat = "*" + d.cfg.Naming.ProcessedExt
	}
	files, err := expandPaths(fs.Args(), pat)
	if err != nil {
		return err
	}

	summary, err := d.pipeline.GeotagVideos(ctx, files, *logs, effectiveShift(d, *shift, fs))
	if summary == nil {
		return err
	}
	return reportSummary(summary)
}

func runBatch(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("batch", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	logs := fs.StringArrayP("gpslog", "g", nil, "GPS track log file (repeatable)")
	shift := fs.IntP("time-shift", "t", 0, "Hour offset applied to file timestamps before matching")
	outDir := fs.StringP("output-dir", "o", "", "Directory receiving the renamed, retagged files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	dir := d.cfg.Paths.Input
	if len(fs.Args()) > 0 {
		dir = fs.Args()[0]
	}
	if dir == "" {
		dir = "."
	}

	out := *outDir
	if out == "" {
		out = d.cfg.Paths.Output
	}

	summary, err := d.pipeline.Batch(ctx, dir, *logs, effectiveShift(d, *shift, fs), out)
	if summary == nil {
		return err
	}
	return reportSummary(summary)
}

func runWatch(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("watch", pflag.ExitOnError)
	configPath := fs.StringP("config", "c", "", "Path to config file")
	logLevel := fs.StringP("log-level", "l", "", "Logging level override")
	logs := fs.StringArrayP("gpslog", "g", nil, "GPS track log file (repeatable)")
	shift := fs.IntP("time-shift", "t", 0, "Hour offset applied to file timestamps before matching")
	outDir := fs.StringP("output-dir", "o", "", "Directory receiving the renamed, retagged files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := buildDeps(*configPath, *logLevel)
	if err != nil {
		return err
	}

	dir := d.cfg.Paths.Input
	if len(fs.Args()) > 0 {
		dir = fs.Args()[0]
	}
	if dir == "" {
		dir = "."
	}

	out := *outDir
	if out == "" {
		out = d.cfg.Paths.Output
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	hours := effectiveShift(d, *shift, fs)
	naming := d.cfg.Naming
	marker := naming.ProcessedSuffix + naming.ProcessedExt

	handler := func(ctx context.Context, processed string) error {
		base := strings.TrimSuffix(filepath.Base(processed), marker)
		original := filepath.Join(dir, base+naming.OriginalExt)
		if _, err := os.Stat(original); err != nil {
			d.logger.Warn(ctx, "Pairing: %s: no original %s", processed, original)
			return nil
		}

		dest := filepath.Join(out, base+naming.ProcessedExt)
		if err := os.Rename(processed, dest); err != nil {
			return fmt.Errorf("move %s: %w", processed, err)
		}
		if err := d.pipeline.CopyTime(ctx, original, dest); err != nil {
			return err
		}

		if len(*logs) == 0 {
			return nil
		}
		summary, err := d.pipeline.GeotagVideos(ctx, []string{dest}, *logs, hours)
		if summary == nil {
			return err
		}
		return summary.Err()
	}

	w, err := watcher.New(dir, naming, handler, d.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// effectiveShift prefers an explicit --time-shift flag over the
// configured default.
func effectiveShift(d *deps, flagValue int, fs *pflag.FlagSet) int {
	if fs.Changed("time-shift") {
		return flagValue
	}
	return d.cfg.Geotag.TimeShiftHours
}
