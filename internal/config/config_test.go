package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-path-export/internal/preview"
	"camera-path-export/internal/sampler"
	"camera-path-export/internal/scene"
)

func TestLoadAndResolve(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "export.yaml"))
	require.NoError(t, err)
	cfg.Resolve(Flags{})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, filepath.Join("testdata", "scenes", "finale.yaml"), cfg.Scene)
	assert.Equal(t, "/tmp/out/finale.json", cfg.Output)
	assert.Equal(t, filepath.Join("testdata", "logs"), cfg.LogDir)
	assert.Equal(t, "cam_", cfg.Prefix)
	assert.True(t, cfg.FixFOV)
	assert.False(t, *cfg.Loop)
	assert.True(t, *cfg.SyncToSong, "unset booleans default to true")
	assert.True(t, cfg.Manifest)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, scene.Sensor{Fit: scene.FitHorizontal, Width: 36, Height: 24}, cfg.Calibration())
	assert.Equal(t, &preview.Options{Format: preview.FormatTGA, Size: 256, Supersample: 2}, cfg.PreviewOptions())
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{Scene: "s.yaml", Output: "o.json"})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "s.yaml", cfg.Scene)
	assert.Equal(t, sampler.DefaultPrefix, cfg.Prefix)
	assert.False(t, cfg.FixFOV)
	assert.True(t, *cfg.Loop)
	assert.True(t, *cfg.SyncToSong)
	assert.Equal(t, sampler.DefaultCalibration, cfg.Calibration())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Nil(t, cfg.PreviewOptions())
	assert.Equal(t, Preview{Format: "webp", Size: 512, Supersample: 2}, cfg.Preview)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "export.yaml"))
	require.NoError(t, err)

	no, yes := false, true
	cfg.Resolve(Flags{
		Scene:         "other.yaml",
		Prefix:        "B2C2_",
		PreviewFormat: "webp",
		FixFOV:        &no,
		Loop:          &yes,
		Preview:       &no,
		Manifest:      &no,
	})

	assert.Equal(t, "other.yaml", cfg.Scene, "flag paths are not rebased")
	assert.Equal(t, "B2C2_", cfg.Prefix)
	assert.Equal(t, "webp", cfg.Preview.Format)
	assert.False(t, cfg.FixFOV)
	assert.True(t, *cfg.Loop)
	assert.Nil(t, cfg.PreviewOptions())
	assert.False(t, cfg.Manifest)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"no scene", func(c *Config) { c.Scene = "" }, "scene path is required"},
		{"no output", func(c *Config) { c.Output = "" }, "output path is required"},
		{"bad fit", func(c *Config) { c.Sensor.Fit = "diagonal" }, "sensor_fit"},
		{"bad format", func(c *Config) { c.Preview = Preview{Enabled: true, Format: "png", Size: 1} }, "unknown format"},
		{"format ignored when disabled", func(c *Config) { c.Preview.Format = "png" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{Scene: "s.yaml", Output: "o.json"})
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview: [1, 2"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}
