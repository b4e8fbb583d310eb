package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk scene description. JSON files parse as well, since
// the YAML decoder accepts JSON.
type Document struct {
	FrameStart   int         `yaml:"frame_start"`
	FrameEnd     int         `yaml:"frame_end"`
	FPS          float64     `yaml:"fps"`
	FPSBase      float64     `yaml:"fps_base"`
	CurrentFrame *int        `yaml:"current_frame"`
	Active       string      `yaml:"active"`
	Selected     []string    `yaml:"selected"`
	Objects      []ObjectDoc `yaml:"objects"`
}

// ObjectDoc describes one scene object. Base values apply to any channel no
// keyframe sets. Euler angles are in degrees; quaternions are w, x, y, z.
type ObjectDoc struct {
	Name               string     `yaml:"name"`
	Type               string     `yaml:"type"`
	Parent             string     `yaml:"parent"`
	RotationMode       string     `yaml:"rotation_mode"`
	Location           []float64  `yaml:"location"`
	RotationEuler      []float64  `yaml:"rotation_euler"`
	RotationQuaternion []float64  `yaml:"rotation_quaternion"`
	Scale              []float64  `yaml:"scale"`
	Camera             *CameraDoc `yaml:"camera"`
	Keyframes          []Keyframe `yaml:"keyframes"`
}

// CameraDoc holds lens and sensor data, in millimetres.
type CameraDoc struct {
	Lens         float64 `yaml:"lens"`
	SensorWidth  float64 `yaml:"sensor_width"`
	SensorHeight float64 `yaml:"sensor_height"`
	SensorFit    string  `yaml:"sensor_fit"`
}

// Keyframe sets any subset of an object's animated channels at Frame.
type Keyframe struct {
	Frame              int       `yaml:"frame"`
	Location           []float64 `yaml:"location"`
	RotationEuler      []float64 `yaml:"rotation_euler"`
	RotationQuaternion []float64 `yaml:"rotation_quaternion"`
	Scale              []float64 `yaml:"scale"`
	Lens               *float64  `yaml:"lens"`
}

// Parse decodes a scene document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	return &doc, nil
}

// Load reads a scene document from path and builds an in-memory scene.
func Load(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	m, err := NewMemory(doc)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return m, nil
}
