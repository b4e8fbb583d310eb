package sampler

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-path-export/internal/logging"
	"camera-path-export/internal/scene"
)

func newScene(t *testing.T, start, end int, objects ...scene.ObjectDoc) *scene.Memory {
	t.Helper()
	m, err := scene.NewMemory(&scene.Document{
		FrameStart: start,
		FrameEnd:   end,
		FPS:        30,
		Active:     "Cube",
		Selected:   []string{"Cube"},
		Objects:    append([]scene.ObjectDoc{{Name: "Cube", Type: "MESH"}}, objects...),
	})
	require.NoError(t, err)
	return m
}

func camera(name string, keys ...scene.Keyframe) scene.ObjectDoc {
	return scene.ObjectDoc{
		Name:      name,
		Type:      "CAMERA",
		Camera:    &scene.CameraDoc{Lens: 35, SensorWidth: 36, SensorHeight: 18},
		Keyframes: keys,
	}
}

func TestDiscover(t *testing.T) {
	objects := []scene.Object{
		{Name: "b2c2_Front", Kind: scene.KindCamera},
		{Name: "B2C2_side", Kind: scene.KindCamera},
		{Name: "b2c2_rig", Kind: scene.KindEmpty},
		{Name: "Witness", Kind: scene.KindCamera},
		{Name: "xb2c2_cam", Kind: scene.KindCamera},
	}

	got, skipped := Discover(objects, DefaultPrefix)
	assert.Equal(t, []string{"b2c2_Front", "B2C2_side"}, got)
	assert.Equal(t, 2, skipped)

	got, _ = Discover(objects, "B2C2_")
	assert.Equal(t, []string{"b2c2_Front", "B2C2_side"}, got, "prefix is case-folded too")

	got, skipped = Discover(objects[2:3], DefaultPrefix)
	assert.Empty(t, got)
	assert.Zero(t, skipped)
}

func TestRunSampleCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"single frame", 0, 0},
		{"short", 1, 5},
		{"negative start", -3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newScene(t, tt.start, tt.end, camera("b2c2_a"), camera("B2C2_b"))

			tracks, err := New(m, Options{Prefix: DefaultPrefix}, logging.Discard()).Run([]string{"b2c2_a", "B2C2_b"})
			require.NoError(t, err)
			require.Len(t, tracks, 2)
			for _, tr := range tracks {
				require.NoError(t, tr.Err)
				require.Len(t, tr.Samples, tt.end-tt.start+1)
				for i, s := range tr.Samples {
					assert.Equal(t, tt.start+i, s.Frame)
				}
			}
			assert.Equal(t, "b2c2_a", tracks[0].Entity)
			assert.Equal(t, "B2C2_b", tracks[1].Entity)
		})
	}
}

func TestWindowClamp(t *testing.T) {
	tests := []struct {
		name         string
		in           Window
		want         Window
		clamped, emp bool
	}{
		{"inside", Window{3, 5}, Window{3, 5}, false, false},
		{"whole", Window{1, 10}, Window{1, 10}, false, false},
		{"low", Window{-4, 5}, Window{1, 5}, true, false},
		{"high", Window{8, 40}, Window{8, 10}, true, false},
		{"before", Window{-9, -2}, Window{1, -2}, true, true},
		{"after", Window{12, 15}, Window{12, 10}, true, true},
		{"reversed", Window{6, 4}, Window{6, 4}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped, empty := tt.in.Clamp(1, 10)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clamped, clamped)
			assert.Equal(t, tt.emp, empty)
		})
	}
}

func TestRunWindow(t *testing.T) {
	m := newScene(t, 1, 10, camera("b2c2_a"))

	tracks, err := New(m, Options{Window: &Window{Start: 4, End: 20}}, logging.Discard()).Run([]string{"b2c2_a"})
	require.NoError(t, err)
	require.Len(t, tracks[0].Samples, 7)
	assert.Equal(t, 4, tracks[0].Samples[0].Frame)
	assert.Equal(t, 10, tracks[0].Samples[6].Frame)

	tracks, err = New(m, Options{Window: &Window{Start: 11, End: 20}}, logging.Discard()).Run([]string{"b2c2_a"})
	require.NoError(t, err)
	assert.NoError(t, tracks[0].Err)
	assert.Empty(t, tracks[0].Samples)
}

func TestRunCapturesPoseAndFOV(t *testing.T) {
	m := newScene(t, 1, 3, camera("b2c2_cam",
		scene.Keyframe{Frame: 1, Location: []float64{0, 0, 0}},
		scene.Keyframe{Frame: 3, Location: []float64{4, 2, 0}},
	))

	tracks, err := New(m, Options{}, logging.Discard()).Run([]string{"b2c2_cam"})
	require.NoError(t, err)
	require.Len(t, tracks[0].Samples, 3)

	mid := tracks[0].Samples[1]
	assert.Empty(t, cmp.Diff(mgl64.Vec3{2, 1, 0}, mid.World.Col(3).Vec3(), cmpopts.EquateApprox(0, 1e-12)))
	assert.InDelta(t, 2*math.Atan(18.0/70.0)*180/math.Pi, mid.FOV, 1e-9)
}

func TestRunRestoresHostState(t *testing.T) {
	m := newScene(t, 1, 4, camera("b2c2_cam"))
	require.NoError(t, m.SetFrame(2))
	before := m.Objects()

	_, err := New(m, Options{}, logging.Discard()).Run([]string{"b2c2_cam"})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Frame())
	assert.Equal(t, before, m.Objects(), "scratch node removed")
	assert.Equal(t, scene.Selection{Active: "Cube", Selected: []string{"Cube"}}, m.Selection())
}

func TestRunFixFOV(t *testing.T) {
	m := newScene(t, 1, 1, camera("b2c2_a"), camera("b2c2_b"))

	opts := Options{FixFOV: true, Calibration: DefaultCalibration}
	tracks, err := New(m, opts, logging.Discard()).Run([]string{"b2c2_a", "b2c2_b"})
	require.NoError(t, err)

	want := 2 * math.Atan(24.0/70.0) * 180 / math.Pi
	for _, tr := range tracks {
		assert.InDelta(t, want, tr.Samples[0].FOV, 1e-9)
		s, err := m.Sensor(tr.Entity)
		require.NoError(t, err)
		assert.Equal(t, DefaultCalibration, s)
	}
}

func TestRunMalformedEntityDoesNotStopOthers(t *testing.T) {
	m := newScene(t, 1, 4,
		camera("b2c2_good"),
		camera("b2c2_bad",
			scene.Keyframe{Frame: 1, Scale: []float64{1, 1, 1}},
			scene.Keyframe{Frame: 3, Scale: []float64{0, 0, 0}},
		),
		camera("b2c2_after"),
	)

	tracks, err := New(m, Options{}, logging.Discard()).Run([]string{"b2c2_good", "b2c2_bad", "b2c2_after"})
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	assert.NoError(t, tracks[0].Err)
	assert.NoError(t, tracks[2].Err)
	assert.Len(t, tracks[2].Samples, 4)

	var fe *FrameError
	require.ErrorAs(t, tracks[1].Err, &fe)
	assert.Equal(t, "b2c2_bad", fe.Entity)
	assert.Equal(t, 3, fe.Frame)
	assert.Contains(t, fe.Error(), "singular")
	assert.Nil(t, tracks[1].Samples)

	frame, ok := FailedFrame(tracks[1].Err)
	assert.True(t, ok)
	assert.Equal(t, 3, frame)
}

func TestRunUnknownEntity(t *testing.T) {
	m := newScene(t, 1, 2)
	tracks, err := New(m, Options{FixFOV: true, Calibration: DefaultCalibration}, logging.Discard()).Run([]string{"b2c2_ghost"})
	require.NoError(t, err)
	assert.ErrorIs(t, tracks[0].Err, scene.ErrNotFound)
	_, ok := FailedFrame(tracks[0].Err)
	assert.False(t, ok)
}

type noScratch struct {
	*scene.Memory
}

func (noScratch) CreateScratch() (scene.ScratchNode, error) {
	return nil, errors.New("scene is read-only")
}

func TestRunScratchFailureIsFatal(t *testing.T) {
	m := newScene(t, 1, 2, camera("b2c2_cam"))
	require.NoError(t, m.SetFrame(2))

	tracks, err := New(noScratch{m}, Options{}, logging.Discard()).Run([]string{"b2c2_cam"})
	require.Error(t, err)
	assert.ErrorIs(t, err, scene.ErrScratch)
	assert.Nil(t, tracks)
	assert.Equal(t, 2, m.Frame())
	assert.Equal(t, scene.Selection{Active: "Cube", Selected: []string{"Cube"}}, m.Selection())
}
