package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/nguyentantai21042004/fuji-flow/internal/config"
	"github.com/nguyentantai21042004/fuji-flow/internal/exif"
	"github.com/nguyentantai21042004/fuji-flow/internal/logger"
	"github.com/nguyentantai21042004/fuji-flow/internal/pipeline"
	"github.com/nguyentantai21042004/fuji-flow/pkg/executor"
)

const defaultConfigFile = "config.yaml"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: fujiflow <command> [flags] [args]

Commands:
  copy-time     copy creation time and camera tags from one file to others
  shift-time    shift the date tags of files by a number of hours
  geotag-image  geotag image files from GPS track logs
  geotag-video  geotag video files via companion images
  batch         process a directory of paired original/processed videos
  watch         monitor a directory and process new videos as they appear

Run 'fujiflow <command> --help' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "copy-time":
		err = runCopyTime(ctx, args)
	case "shift-time":
		err = runShiftTime(ctx, args)
	case "geotag-image":
		err = runGeotagImage(ctx, args)
	case "geotag-video":
		err = runGeotagVideo(ctx, args)
	case "batch":
		err = runBatch(ctx, args)
	case "watch":
		err = runWatch(ctx, args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "fujiflow %s failed: %v\n", cmd, err)
		os.Exit(1)
	}
}

type deps struct {
	cfg      *config.Config
	logger   logger.Logger
	pipeline pipeline.Pipeline
	exif     exif.Adapter
}

// loadConfig reads the given config file, falling back to config.yaml
// in the working directory and finally to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

func buildDeps(configPath, logLevel string) (*deps, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	adapter := exif.New(cfg, exec, log)

	return &deps{
		cfg:      cfg,
		logger:   log,
		pipeline: pipeline.New(cfg, adapter, log),
		exif:     adapter,
	}, nil
}

// expandPaths resolves directories in the argument list into the files
// matching pattern, leaving plain files untouched. Paths come out in
// sorted order per directory.
func expandPaths(paths []string, pattern string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(p, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s in %s: %w", pattern, p, err)
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}
	return out, nil
}

// reportSummary prints failures to stderr and returns the aggregate
// error, so one bad file never hides in the middle of the log output.
func reportSummary(summary *pipeline.Summary) error {
	fmt.Println(summary)
	for _, f := range summary.Failed {
		fmt.Fprintf(os.Stderr, "failed: %s\n", f)
	}
	return summary.Err()
}
