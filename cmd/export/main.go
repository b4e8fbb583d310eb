package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"camera-path-export/internal/batch"
	"camera-path-export/internal/config"
	"camera-path-export/internal/fsutil"
	"camera-path-export/internal/logging"
	"camera-path-export/internal/scene"
)

func main() {
	os.Exit(run())
}

func run() int {
	// CLI flags
	configFile := flag.String("config", "", "Path to a YAML or JSON config file")
	scenePath := flag.String("scene", "", "Scene document to export from")
	output := flag.String("output", "", "Output path; one <output>_<camera>.json is written per camera")
	prefix := flag.String("prefix", "", "Camera name prefix, case-insensitive (default: b2c2_)")
	fixFOV := flag.Bool("fix-fov", false, "Force the calibrated sensor onto every exported camera")
	loop := flag.Bool("loop", true, "Loop playback (recorded in the log only)")
	sync := flag.Bool("sync", true, "Sync to song (recorded in the log only)")
	withPreview := flag.Bool("preview", false, "Write a top-down path preview per camera")
	previewFormat := flag.String("preview-format", "", "Preview format: webp or tga (default: webp)")
	manifest := flag.Bool("manifest", false, "Write <output>_manifest.json")
	logLevel := flag.String("log-level", "", "Log level (default: debug)")
	logDir := flag.String("log-dir", "", "Also write a log file to this directory")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 2
		}
	}

	// Boolean flags only override the file when given explicitly.
	flags := config.Flags{
		Scene:         *scenePath,
		Output:        *output,
		Prefix:        *prefix,
		LogLevel:      *logLevel,
		LogDir:        *logDir,
		PreviewFormat: *previewFormat,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fix-fov":
			flags.FixFOV = fixFOV
		case "loop":
			flags.Loop = loop
		case "sync":
			flags.SyncToSong = sync
		case "preview":
			flags.Preview = withPreview
		case "manifest":
			flags.Manifest = manifest
		}
	})
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		return 2
	}

	sceneBase := strings.TrimSuffix(filepath.Base(cfg.Scene), filepath.Ext(cfg.Scene))
	log, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, Dir: cfg.LogDir, Name: sceneBase})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging to console only)\n", err)
	}
	defer closer.Close()

	s, err := scene.Load(cfg.Scene)
	if err != nil {
		log.Errorf("Cannot load scene: %v", err)
		return 1
	}
	if dir := filepath.Dir(cfg.Output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Errorf("Cannot create output directory: %v", err)
			return 1
		}
	}

	fmt.Printf("Camera path export: %s\n", cfg.Scene)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	report, err := batch.Run(batch.Config{
		BasePath:    cfg.Output,
		Prefix:      cfg.Prefix,
		FixFOV:      cfg.FixFOV,
		Calibration: cfg.Calibration(),
		Loop:        *cfg.Loop,
		SyncToSong:  *cfg.SyncToSong,
		Preview:     cfg.PreviewOptions(),
		Manifest:    cfg.Manifest,
		Writer:      fsutil.OSFileSystem{},
		Log:         log,
	}, s)

	fmt.Println("------------------------------------------------------------")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export aborted: %v\n", err)
		return 1
	}
	fmt.Printf("Done in %.1fs\n", report.Elapsed.Seconds())
	fmt.Printf("Exported: %d/%d (skipped %d camera(s) without prefix)\n",
		report.Exported, len(report.Results), report.Skipped)
	if report.Manifest != "" {
		fmt.Printf("Manifest: %s\n", report.Manifest)
	}

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failures))
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, f := range failures[:limit] {
			if frame, ok := f.Frame(); ok {
				fmt.Printf("  %s [%s, frame %d]: %v\n", f.Name, f.Stage, frame, f.Err)
			} else {
				fmt.Printf("  %s [%s]: %v\n", f.Name, f.Stage, f.Err)
			}
		}
		return 1
	}
	return 0
}
