package segment

// Places is the number of decimal digits kept for positions, FOV and angles.
const Places = 3

// Position is a target-space point plus the vertical FOV in degrees.
type Position struct {
	X, Y, Z float64
	FOV     float64
}

// Rotation holds target-space Euler angles in degrees.
type Rotation struct {
	X, Y, Z float64
}

// Segment is a linear move between two consecutive samples.
type Segment struct {
	// Index is the segment's position in its entity's sequence, from 1.
	// Players ignore it; it helps when reading a script by hand.
	Index int

	StartPos Position
	StartRot Rotation
	EndPos   Position
	EndRot   Rotation

	// Duration is 1/frame rate, in seconds.
	Duration float64
	Delay    float64

	EaseTransition       bool
	TurnToHead           bool
	TurnToHeadHorizontal bool
}
