package scene

import "github.com/go-gl/mathgl/mgl64"

// Scene is the narrow capability the exporter needs from the host scene.
// Implementations are single-threaded: the frame cursor, selection and
// scratch node are shared mutable state.
type Scene interface {
	// FrameRange returns the inclusive frame range.
	FrameRange() (start, end int)
	// FrameRate returns frames per second, > 0.
	FrameRate() float64
	// Objects returns the scene graph in its stored order.
	Objects() []Object

	Frame() int
	SetFrame(n int) error

	// WorldMatrix evaluates an object's world transform at the current frame.
	WorldMatrix(name string) (mgl64.Mat4, error)
	// VerticalFOV returns a camera's vertical field of view in radians at
	// the current frame.
	VerticalFOV(name string) (float64, error)

	Sensor(name string) (Sensor, error)
	SetSensor(name string, s Sensor) error

	// CreateScratch adds a temporary transform holder to the scene graph.
	CreateScratch() (ScratchNode, error)
	// DestroyScratch removes a node returned by CreateScratch.
	DestroyScratch(n ScratchNode) error

	Selection() Selection
	SetSelection(sel Selection) error
}

// ScratchNode is a temporary transform holder living in the scene graph.
type ScratchNode interface {
	Name() string
	SetWorld(m mgl64.Mat4)
	World() mgl64.Mat4
}
