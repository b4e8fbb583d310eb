package batch

import (
	"time"

	"camera-path-export/internal/fsutil"
	"camera-path-export/internal/logging"
	"camera-path-export/internal/preview"
	"camera-path-export/internal/sampler"
	"camera-path-export/internal/scene"
)

// Stages an entity can fail in.
const (
	StageSample  = "sample"
	StageConvert = "convert"
	StageBuild   = "build"
	StageWrite   = "write"
)

// Config holds everything one export run needs besides the scene.
type Config struct {
	// BasePath is the user-chosen output path; each entity is written to
	// <BasePath without extension>_<entity>.json.
	BasePath    string
	Prefix      string
	FixFOV      bool
	Calibration scene.Sensor

	// Loop and SyncToSong are accepted for the trigger surface but have no
	// field in the movement script.
	Loop       bool
	SyncToSong bool

	// Preview enables a path preview per entity when non-nil.
	Preview  *preview.Options
	Manifest bool

	Writer fsutil.Writer
	Log    logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Prefix == "" {
		c.Prefix = sampler.DefaultPrefix
	}
	if c.Calibration == (scene.Sensor{}) {
		c.Calibration = sampler.DefaultCalibration
	}
	if c.Writer == nil {
		c.Writer = fsutil.OSFileSystem{}
	}
	if c.Log == nil {
		c.Log = logging.Discard()
	}
	return c
}

// Result holds the outcome of exporting one entity.
type Result struct {
	Name     string
	Path     string // script path, set once a write was attempted
	Preview  string // preview path, empty when disabled or failed
	Segments int
	Success  bool

	// Stage and Err describe a failed export.
	Stage string
	Err   error
	// PreviewErr is set when the script was written but its preview was not.
	PreviewErr error
}

// Frame returns the frame the entity failed at, when the failure was tied
// to one.
func (r Result) Frame() (int, bool) {
	if r.Err == nil {
		return 0, false
	}
	return sampler.FailedFrame(r.Err)
}

// Report summarizes a run.
type Report struct {
	Results []Result
	// Exported counts entities whose script was written.
	Exported int
	// Skipped counts camera objects that lacked the prefix.
	Skipped int
	// Manifest is the manifest path, empty when none was written.
	Manifest    string
	ManifestErr error
	Elapsed     time.Duration
}

// Failures returns the failed results in run order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Success {
			out = append(out, res)
		}
	}
	return out
}
