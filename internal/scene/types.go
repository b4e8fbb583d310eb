// Package scene models the authoring-tool scene the exporter reads from: a
// capability interface over the host's mutable scene, scoped helpers that
// restore host state on every exit path, and an in-memory implementation
// backed by a YAML/JSON scene document.
package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is an object's type tag in the scene graph.
type Kind string

const (
	KindCamera Kind = "CAMERA"
	KindEmpty  Kind = "EMPTY"
)

// Object identifies one node of the scene graph.
type Object struct {
	Name   string
	Kind   Kind
	Parent string
}

// SensorFit selects which sensor dimension the authoring tool fits its
// field of view to when rendering.
type SensorFit string

const (
	FitAuto       SensorFit = "AUTO"
	FitHorizontal SensorFit = "HORIZONTAL"
	FitVertical   SensorFit = "VERTICAL"
)

// ParseSensorFit accepts a fit name in any case; empty means AUTO.
func ParseSensorFit(s string) (SensorFit, error) {
	switch fit := SensorFit(strings.ToUpper(strings.TrimSpace(s))); fit {
	case "":
		return FitAuto, nil
	case FitAuto, FitHorizontal, FitVertical:
		return fit, nil
	}
	return "", fmt.Errorf("unknown sensor_fit %q", s)
}

// Sensor is a camera's physical sensor calibration, in millimetres.
type Sensor struct {
	Fit    SensorFit
	Width  float64
	Height float64
}

// Selection is the set of selected object names plus the active one.
type Selection struct {
	Active   string
	Selected []string
}

func (s Selection) clone() Selection {
	return Selection{Active: s.Active, Selected: append([]string(nil), s.Selected...)}
}

var (
	// ErrNotFound is returned for names that are not in the scene graph.
	ErrNotFound = errors.New("scene: object not found")

	// ErrNotCamera is returned when a camera accessor is used on another kind.
	ErrNotCamera = errors.New("scene: object is not a camera")

	// ErrScratch wraps failures to create or remove the scratch node.
	ErrScratch = errors.New("scene: scratch node")
)

// ScratchPrefix starts the name of every scratch node.
const ScratchPrefix = "b2c2_export_object_"
