// Package config loads export settings from a YAML (or JSON) file and
// merges command-line overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"camera-path-export/internal/preview"
	"camera-path-export/internal/sampler"
	"camera-path-export/internal/scene"
)

// Config holds all export settings.
type Config struct {
	// Paths
	Scene  string `yaml:"scene"`
	Output string `yaml:"output"`
	LogDir string `yaml:"log_dir"`

	// Export settings
	Prefix     string  `yaml:"prefix"`
	FixFOV     bool    `yaml:"fix_fov"`
	Loop       *bool   `yaml:"loop"`
	SyncToSong *bool   `yaml:"sync_to_song"`
	Sensor     Sensor  `yaml:"sensor"`
	Preview    Preview `yaml:"preview"`
	Manifest   bool    `yaml:"manifest"`
	LogLevel   string  `yaml:"log_level"`

	// dir is the config file's directory; relative paths from the file
	// resolve against it.
	dir string
}

// Sensor is the calibration forced onto cameras when FixFOV is set.
type Sensor struct {
	Fit    string  `yaml:"fit"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Preview controls the per-entity path preview.
type Preview struct {
	Enabled     bool   `yaml:"enabled"`
	Format      string `yaml:"format"`
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
}

// Flags holds CLI flag values that override config file settings. Empty
// strings and nil pointers leave the file value alone.
type Flags struct {
	Scene         string
	Output        string
	Prefix        string
	LogLevel      string
	LogDir        string
	PreviewFormat string
	FixFOV        *bool
	Loop          *bool
	SyncToSong    *bool
	Preview       *bool
	Manifest      *bool
}

// Load reads a config file. Fields not set in the file keep their zero
// values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Resolve applies flag overrides and fills in defaults. Paths that came
// from the config file are made relative to the file's directory; paths
// from flags stay relative to the working directory.
func (c *Config) Resolve(flags Flags) {
	if c.dir != "" {
		c.Scene = relTo(c.dir, c.Scene)
		c.Output = relTo(c.dir, c.Output)
		c.LogDir = relTo(c.dir, c.LogDir)
	}

	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Prefix != "" {
		c.Prefix = flags.Prefix
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogDir != "" {
		c.LogDir = flags.LogDir
	}
	if flags.PreviewFormat != "" {
		c.Preview.Format = flags.PreviewFormat
	}
	if flags.FixFOV != nil {
		c.FixFOV = *flags.FixFOV
	}
	if flags.Loop != nil {
		c.Loop = boolPtr(*flags.Loop)
	}
	if flags.SyncToSong != nil {
		c.SyncToSong = boolPtr(*flags.SyncToSong)
	}
	if flags.Preview != nil {
		c.Preview.Enabled = *flags.Preview
	}
	if flags.Manifest != nil {
		c.Manifest = *flags.Manifest
	}

	if c.Prefix == "" {
		c.Prefix = sampler.DefaultPrefix
	}
	if c.Loop == nil {
		c.Loop = boolPtr(true)
	}
	if c.SyncToSong == nil {
		c.SyncToSong = boolPtr(true)
	}
	if c.Sensor.Fit == "" {
		c.Sensor.Fit = string(sampler.DefaultCalibration.Fit)
	}
	if c.Sensor.Width <= 0 {
		c.Sensor.Width = sampler.DefaultCalibration.Width
	}
	if c.Sensor.Height <= 0 {
		c.Sensor.Height = sampler.DefaultCalibration.Height
	}
	if c.Preview.Format == "" {
		c.Preview.Format = string(preview.FormatWebP)
	}
	if c.Preview.Size <= 0 {
		c.Preview.Size = 512
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = 2
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
}

// Validate reports every setting that would stop an export from starting.
func (c Config) Validate() error {
	var errs []error
	if c.Scene == "" {
		errs = append(errs, errors.New("scene path is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if _, err := scene.ParseSensorFit(c.Sensor.Fit); err != nil {
		errs = append(errs, err)
	}
	if c.Preview.Enabled {
		if _, err := preview.ParseFormat(c.Preview.Format); err != nil {
			errs = append(errs, err)
		}
		if c.Preview.Size <= 0 {
			errs = append(errs, fmt.Errorf("preview size must be > 0, got %d", c.Preview.Size))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Calibration returns the sensor settings as a scene sensor. Call after
// Validate.
func (c Config) Calibration() scene.Sensor {
	fit, _ := scene.ParseSensorFit(c.Sensor.Fit)
	return scene.Sensor{Fit: fit, Width: c.Sensor.Width, Height: c.Sensor.Height}
}

// PreviewOptions returns nil when previews are disabled.
func (c Config) PreviewOptions() *preview.Options {
	if !c.Preview.Enabled {
		return nil
	}
	f, _ := preview.ParseFormat(c.Preview.Format)
	return &preview.Options{Format: f, Size: c.Preview.Size, Supersample: c.Preview.Supersample}
}

func relTo(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func boolPtr(v bool) *bool { return &v }
