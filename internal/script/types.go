package script

// Script is one entity's movement script. Fields are declared in
// lexicographic key order at every level so encoding/json writes sorted keys.
type Script struct {
	ActiveInPauseMenu          bool       `json:"ActiveInPauseMenu"`
	Movements                  []Movement `json:"Movements"`
	TurnToHeadUseCameraSetting bool       `json:"TurnToHeadUseCameraSetting"`
}

// Movement is one segment as the player reads it.
type Movement struct {
	Delay                float64 `json:"Delay"`
	Duration             float64 `json:"Duration"`
	EaseTransition       bool    `json:"EaseTransition"`
	EndPos               Pos     `json:"EndPos"`
	EndRot               Rot     `json:"EndRot"`
	StartPos             Pos     `json:"StartPos"`
	StartRot             Rot     `json:"StartRot"`
	TurnToHead           bool    `json:"TurnToHead"`
	TurnToHeadHorizontal bool    `json:"TurnToHeadHorizontal"`
	FrameIndex           int     `json:"frame_index"`
}

type Pos struct {
	FOV float64 `json:"FOV"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
}

type Rot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
