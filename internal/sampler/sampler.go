// Package sampler walks a scene's frame range and captures, for every
// trackable camera, its world transform and vertical field of view.
package sampler

import (
	"errors"
	"fmt"
	"strings"

	"camera-path-export/internal/logging"
	"camera-path-export/internal/mathutil"
	"camera-path-export/internal/scene"
)

// Discover returns the names of camera objects whose case-folded name starts
// with the case-folded prefix, in scene order. skipped counts the cameras
// that did not match.
func Discover(objects []scene.Object, prefix string) (entities []string, skipped int) {
	prefix = strings.ToLower(prefix)
	for _, o := range objects {
		if o.Kind != scene.KindCamera {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(o.Name), prefix) {
			skipped++
			continue
		}
		entities = append(entities, o.Name)
	}
	return entities, skipped
}

// Sampler captures raw samples from a scene. The scene is shared mutable
// state; a Sampler must not run concurrently with anything else using it.
type Sampler struct {
	scene scene.Scene
	opts  Options
	log   logging.Logger
}

func New(s scene.Scene, opts Options, log logging.Logger) *Sampler {
	return &Sampler{scene: s, opts: opts, log: log}
}

// Run samples each entity over the scene's frame range, in the given order.
// The selection and frame cursor are restored and the scratch node removed
// on every exit path. A non-nil error means the run itself failed (scratch
// node or restore); per-entity failures are reported in Track.Err.
func (s *Sampler) Run(entities []string) ([]Track, error) {
	tracks := make([]Track, 0, len(entities))
	err := scene.PreserveSelection(s.scene, func() error {
		return scene.PreserveFrame(s.scene, func() error {
			return scene.WithScratch(s.scene, func(node scene.ScratchNode) error {
				s.log.Debugf("Scratch node %s created", node.Name())
				for _, name := range entities {
					tracks = append(tracks, s.sample(node, name))
				}
				return nil
			})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	return tracks, nil
}

func (s *Sampler) sample(node scene.ScratchNode, name string) Track {
	log := s.log.WithField("camera", name)
	log.Debugf("Retrieving data for camera")

	if s.opts.FixFOV {
		if err := s.scene.SetSensor(name, s.opts.Calibration); err != nil {
			return Track{Entity: name, Err: fmt.Errorf("sampler: %s: calibrate sensor: %w", name, err)}
		}
	}

	start, end := s.scene.FrameRange()
	if s.opts.Window != nil {
		w, _, empty := s.opts.Window.Clamp(start, end)
		if empty {
			return Track{Entity: name, Samples: []RawSample{}}
		}
		start, end = w.Start, w.End
	}
	samples := make([]RawSample, 0, end-start+1)
	for f := start; f <= end; f++ {
		raw, err := s.capture(node, name, f)
		if err != nil {
			return Track{Entity: name, Err: &FrameError{Entity: name, Frame: f, Err: err}}
		}
		samples = append(samples, raw)
	}
	log.Debugf("Captured %d frame(s)", len(samples))
	return Track{Entity: name, Samples: samples}
}

// capture moves the frame cursor to f and measures the entity there. The
// world transform is held in the scratch node so the sample is a snapshot,
// detached from the live object.
func (s *Sampler) capture(node scene.ScratchNode, name string, f int) (RawSample, error) {
	if err := s.scene.SetFrame(f); err != nil {
		return RawSample{}, err
	}
	world, err := s.scene.WorldMatrix(name)
	if err != nil {
		return RawSample{}, err
	}
	node.SetWorld(world)

	fov, err := s.scene.VerticalFOV(name)
	if err != nil {
		return RawSample{}, err
	}
	deg := mathutil.Rad2Deg(fov)
	if !(deg > 0 && deg < 180) {
		return RawSample{}, fmt.Errorf("vertical fov %v outside (0, 180)", deg)
	}
	return RawSample{Frame: f, World: node.World(), FOV: deg}, nil
}

// FailedFrame returns the frame a track failed at, if the failure was
// frame-specific.
func FailedFrame(err error) (int, bool) {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe.Frame, true
	}
	return 0, false
}
