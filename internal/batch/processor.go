// Package batch runs one export: discovery, sampling, conversion, segment
// building and writing, entity by entity.
package batch

import (
	"fmt"
	"time"

	"camera-path-export/internal/preview"
	"camera-path-export/internal/sampler"
	"camera-path-export/internal/scene"
	"camera-path-export/internal/script"
	"camera-path-export/internal/segment"
	"camera-path-export/internal/transform"
)

// Run exports every prefixed camera in s. A failing entity is recorded in
// the report and the run moves on to the next one. The returned error is
// non-nil only when the run itself could not complete, in which case no
// scripts were written.
func Run(cfg Config, s scene.Scene) (Report, error) {
	cfg = cfg.withDefaults()
	log := cfg.Log
	start := time.Now()

	log.Infof("Exporting camera paths to %s", cfg.BasePath)
	log.Debugf("Loop: %t, sync to song: %t", cfg.Loop, cfg.SyncToSong)

	names, skipped := sampler.Discover(s.Objects(), cfg.Prefix)
	for _, n := range names {
		log.Debugf("Found camera %s", n)
	}
	log.Infof("Found %d camera(s) to export, %d skipped", len(names), skipped)

	report := Report{Skipped: skipped}
	if len(names) == 0 {
		log.Warnf("No cameras found with prefix %q", cfg.Prefix)
		report.Elapsed = time.Since(start)
		return report, nil
	}

	smp := sampler.New(s, sampler.Options{
		Prefix:      cfg.Prefix,
		FixFOV:      cfg.FixFOV,
		Calibration: cfg.Calibration,
	}, log)
	tracks, err := smp.Run(names)
	if err != nil {
		report.Elapsed = time.Since(start)
		return report, fmt.Errorf("batch: %w", err)
	}

	rate := s.FrameRate()
	report.Results = make([]Result, 0, len(tracks))
	for _, tr := range tracks {
		res := processTrack(cfg, tr, rate)
		if res.Success {
			report.Exported++
		}
		report.Results = append(report.Results, res)
	}

	if cfg.Manifest {
		first, last := s.FrameRange()
		path, err := WriteManifest(cfg.Writer, cfg.BasePath, first, last, report.Results)
		if err != nil {
			log.Warnf("Manifest write failed: %v", err)
			report.ManifestErr = err
		} else {
			report.Manifest = path
			log.Infof("Manifest: %s", path)
		}
	}

	report.Elapsed = time.Since(start)
	log.Infof("Done in %.1fs: %d/%d exported", report.Elapsed.Seconds(), report.Exported, len(names))
	return report, nil
}

func processTrack(cfg Config, tr sampler.Track, rate float64) Result {
	log := cfg.Log.WithField("camera", tr.Entity)
	res := Result{Name: tr.Entity}
	fail := func(stage string, err error) Result {
		res.Stage = stage
		res.Err = err
		log.Errorf("Export failed during %s: %v", stage, err)
		return res
	}

	if tr.Err != nil {
		return fail(StageSample, tr.Err)
	}
	samples, err := transform.ConvertAll(tr.Samples)
	if err != nil {
		return fail(StageConvert, fmt.Errorf("batch: %s: %w", tr.Entity, err))
	}
	segs, err := segment.Build(samples, rate)
	if err != nil {
		return fail(StageBuild, fmt.Errorf("batch: %s: %w", tr.Entity, err))
	}
	res.Segments = len(segs)

	res.Path, err = script.Write(cfg.Writer, cfg.BasePath, tr.Entity, script.New(segs))
	if err != nil {
		return fail(StageWrite, err)
	}
	res.Success = true
	log.Infof("Exported %d segment(s) to %s", res.Segments, res.Path)

	if cfg.Preview != nil {
		path, err := preview.Write(cfg.Writer, cfg.BasePath, tr.Entity, samples, *cfg.Preview)
		if err != nil {
			res.PreviewErr = err
			log.Errorf("Preview failed: %v", err)
		} else {
			res.Preview = path
			log.Infof("Preview: %s", path)
		}
	}
	return res
}
