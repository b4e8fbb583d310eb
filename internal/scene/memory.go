package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"camera-path-export/internal/mathutil"
)

// Camera defaults of the authoring tool, used when a camera has no camera block.
const (
	DefaultLens         = 50.0
	DefaultSensorWidth  = 36.0
	DefaultSensorHeight = 24.0
)

var _ Scene = (*Memory)(nil)

// Memory is an in-memory scene built from a Document.
type Memory struct {
	start, end int
	rate       float64
	frame      int

	objects   []*object
	byName    map[string]*object
	selection Selection
	scratch   *scratchNode
}

type object struct {
	Object
	parent *object

	quaternion bool
	order      mathutil.EulerOrder

	location channel
	euler    channel
	quat     channel
	scale    channel
	lens     channel

	sensor Sensor

	// held replaces evaluation for scratch nodes.
	held *mgl64.Mat4
}

// NewMemory validates doc and builds a scene from it.
func NewMemory(doc *Document) (*Memory, error) {
	if !(doc.FPS > 0) || !mathutil.Finite(doc.FPS) {
		return nil, fmt.Errorf("fps must be > 0, got %v", doc.FPS)
	}
	// fps_base is validated but not applied; segment durations are 1/fps.
	if doc.FPSBase < 0 || !mathutil.Finite(doc.FPSBase) {
		return nil, fmt.Errorf("fps_base must not be negative, got %v", doc.FPSBase)
	}
	if doc.FrameEnd < doc.FrameStart {
		return nil, fmt.Errorf("frame_end %d before frame_start %d", doc.FrameEnd, doc.FrameStart)
	}

	m := &Memory{
		start:  doc.FrameStart,
		end:    doc.FrameEnd,
		rate:   doc.FPS,
		frame:  doc.FrameStart,
		byName: make(map[string]*object, len(doc.Objects)),
	}
	if doc.CurrentFrame != nil {
		m.frame = *doc.CurrentFrame
	}

	for i := range doc.Objects {
		o, err := buildObject(&doc.Objects[i])
		if err != nil {
			return nil, err
		}
		if _, dup := m.byName[o.Name]; dup {
			return nil, fmt.Errorf("duplicate object name %q", o.Name)
		}
		m.objects = append(m.objects, o)
		m.byName[o.Name] = o
	}

	for _, o := range m.objects {
		if o.Parent == "" {
			continue
		}
		p, ok := m.byName[o.Parent]
		if !ok {
			return nil, fmt.Errorf("object %q: parent %q: %w", o.Name, o.Parent, ErrNotFound)
		}
		o.parent = p
	}
	for _, o := range m.objects {
		seen := map[*object]bool{}
		for p := o; p != nil; p = p.parent {
			if seen[p] {
				return nil, fmt.Errorf("object %q: parent cycle", o.Name)
			}
			seen[p] = true
		}
	}

	sel := Selection{Active: doc.Active, Selected: append([]string(nil), doc.Selected...)}
	if err := m.SetSelection(sel); err != nil {
		return nil, err
	}
	return m, nil
}

func buildObject(d *ObjectDoc) (*object, error) {
	if d.Name == "" {
		return nil, errors.New("object without name")
	}
	kind := Kind(strings.ToUpper(d.Type))
	if kind == "" {
		kind = KindEmpty
	}
	o := &object{Object: Object{Name: d.Name, Kind: kind, Parent: d.Parent}}
	fail := func(err error) (*object, error) {
		return nil, fmt.Errorf("object %q: %w", d.Name, err)
	}

	switch mode := strings.ToUpper(d.RotationMode); mode {
	case "", "XYZ":
		o.order = mathutil.OrderXYZ
	case "QUATERNION":
		o.quaternion = true
	default:
		order, err := mathutil.ParseEulerOrder(mode)
		if err != nil {
			return fail(err)
		}
		o.order = order
	}

	o.location.base = orDefault(d.Location, 0, 0, 0)
	o.euler.base = orDefault(d.RotationEuler, 0, 0, 0)
	o.quat.base = orDefault(d.RotationQuaternion, 1, 0, 0, 0)
	o.scale.base = orDefault(d.Scale, 1, 1, 1)
	for _, c := range []struct {
		what string
		v    []float64
		n    int
	}{
		{"location", o.location.base, 3},
		{"rotation_euler", o.euler.base, 3},
		{"rotation_quaternion", o.quat.base, 4},
		{"scale", o.scale.base, 3},
	} {
		if err := checkLen(c.what, c.v, c.n); err != nil {
			return fail(err)
		}
	}

	if kind == KindCamera {
		var cam CameraDoc
		if d.Camera != nil {
			cam = *d.Camera
		}
		// Unset fields take the authoring tool's defaults one by one.
		if cam.Lens == 0 {
			cam.Lens = DefaultLens
		}
		if cam.SensorWidth == 0 {
			cam.SensorWidth = DefaultSensorWidth
		}
		if cam.SensorHeight == 0 {
			cam.SensorHeight = DefaultSensorHeight
		}
		fit, err := ParseSensorFit(cam.SensorFit)
		if err != nil {
			return fail(err)
		}
		o.sensor = Sensor{Fit: fit, Width: cam.SensorWidth, Height: cam.SensorHeight}
		o.lens.base = []float64{cam.Lens}
	}

	frames := map[int]bool{}
	for _, k := range d.Keyframes {
		if frames[k.Frame] {
			return fail(fmt.Errorf("duplicate keyframe at frame %d", k.Frame))
		}
		frames[k.Frame] = true

		for _, c := range []struct {
			what string
			v    []float64
			n    int
			ch   *channel
		}{
			{"location", k.Location, 3, &o.location},
			{"rotation_euler", k.RotationEuler, 3, &o.euler},
			{"rotation_quaternion", k.RotationQuaternion, 4, &o.quat},
			{"scale", k.Scale, 3, &o.scale},
		} {
			if c.v == nil {
				continue
			}
			if err := checkLen(fmt.Sprintf("keyframe %d %s", k.Frame, c.what), c.v, c.n); err != nil {
				return fail(err)
			}
			c.ch.add(k.Frame, c.v)
		}
		if k.Lens != nil {
			if kind != KindCamera {
				return fail(fmt.Errorf("keyframe %d: lens on a %s", k.Frame, kind))
			}
			o.lens.add(k.Frame, []float64{*k.Lens})
		}
	}
	for _, ch := range []*channel{&o.location, &o.euler, &o.quat, &o.scale, &o.lens} {
		ch.sort()
	}
	return o, nil
}

func orDefault(v []float64, def ...float64) []float64 {
	if v == nil {
		return def
	}
	return v
}

func (m *Memory) FrameRange() (int, int) { return m.start, m.end }

func (m *Memory) FrameRate() float64 { return m.rate }

func (m *Memory) Objects() []Object {
	out := make([]Object, len(m.objects))
	for i, o := range m.objects {
		out[i] = o.Object
	}
	return out
}

func (m *Memory) Frame() int { return m.frame }

func (m *Memory) SetFrame(n int) error {
	m.frame = n
	return nil
}

func (m *Memory) lookup(name string) (*object, error) {
	o, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return o, nil
}

func (m *Memory) camera(name string) (*object, error) {
	o, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if o.Kind != KindCamera {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotCamera, name, o.Kind)
	}
	return o, nil
}

// WorldMatrix evaluates parent chain × T·R·S at the current frame.
func (m *Memory) WorldMatrix(name string) (mgl64.Mat4, error) {
	o, err := m.lookup(name)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	w, err := o.world(m.frame)
	if err != nil {
		return mgl64.Mat4{}, fmt.Errorf("scene: %q at frame %d: %w", name, m.frame, err)
	}
	return w, nil
}

func (o *object) world(frame int) (mgl64.Mat4, error) {
	if o.held != nil {
		return *o.held, nil
	}
	local, err := o.local(frame)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	if o.parent != nil {
		pw, err := o.parent.world(frame)
		if err != nil {
			return mgl64.Mat4{}, fmt.Errorf("parent %q: %w", o.parent.Name, err)
		}
		local = pw.Mul4(local)
	}
	for _, v := range local {
		if !mathutil.Finite(v) {
			return mgl64.Mat4{}, errors.New("non-finite world matrix")
		}
	}
	if math.Abs(local.Mat3().Det()) < 1e-12 {
		return mgl64.Mat4{}, errors.New("singular world matrix")
	}
	return local, nil
}

func (o *object) local(frame int) (mgl64.Mat4, error) {
	loc := o.location.at(frame)
	scale := o.scale.at(frame)

	var rot mgl64.Mat3
	if o.quaternion {
		q := o.quat.at(frame)
		quat := mgl64.Quat{W: q[0], V: mgl64.Vec3{q[1], q[2], q[3]}}
		if quat.Len() < 1e-12 {
			return mgl64.Mat4{}, errors.New("zero-length rotation quaternion")
		}
		rot = quat.Normalize().Mat4().Mat3()
	} else {
		e := o.euler.at(frame)
		rot = mathutil.EulerToMat3(mathutil.RadVec3(mgl64.Vec3{e[0], e[1], e[2]}), o.order)
	}

	t := mgl64.Translate3D(loc[0], loc[1], loc[2])
	s := mgl64.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(rot.Mat4()).Mul4(s), nil
}

// VerticalFOV returns 2·atan(sensor height / 2·lens), which is what the
// authoring tool reports as a camera's vertical angle whatever the fit mode.
func (m *Memory) VerticalFOV(name string) (float64, error) {
	o, err := m.camera(name)
	if err != nil {
		return 0, err
	}
	lens := o.lens.at(m.frame)[0]
	if !(lens > 0) || !mathutil.Finite(lens) {
		return 0, fmt.Errorf("scene: %q at frame %d: lens must be > 0, got %v", name, m.frame, lens)
	}
	if !(o.sensor.Height > 0) || !mathutil.Finite(o.sensor.Height) {
		return 0, fmt.Errorf("scene: %q: sensor height must be > 0, got %v", name, o.sensor.Height)
	}
	return 2 * math.Atan(o.sensor.Height/(2*lens)), nil
}

func (m *Memory) Sensor(name string) (Sensor, error) {
	o, err := m.camera(name)
	if err != nil {
		return Sensor{}, err
	}
	return o.sensor, nil
}

func (m *Memory) SetSensor(name string, s Sensor) error {
	o, err := m.camera(name)
	if err != nil {
		return err
	}
	o.sensor = s
	return nil
}

// CreateScratch adds an empty named ScratchPrefix plus 20 hex characters.
// Like the authoring tool's "add empty", the new node becomes the only
// selected object and the active one.
func (m *Memory) CreateScratch() (ScratchNode, error) {
	if m.scratch != nil {
		return nil, fmt.Errorf("scratch node %q already exists", m.scratch.o.Name)
	}
	name := scratchName()
	for m.byName[name] != nil {
		name = scratchName()
	}

	id := mgl64.Ident4()
	o := &object{Object: Object{Name: name, Kind: KindEmpty}, held: &id}
	m.objects = append(m.objects, o)
	m.byName[name] = o
	m.selection = Selection{Active: name, Selected: []string{name}}

	m.scratch = &scratchNode{o: o}
	return m.scratch, nil
}

func scratchName() string {
	return ScratchPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

func (m *Memory) DestroyScratch(n ScratchNode) error {
	sn, ok := n.(*scratchNode)
	if !ok || sn != m.scratch {
		return fmt.Errorf("%q is not this scene's scratch node", n.Name())
	}
	name := sn.o.Name
	m.objects = slices.DeleteFunc(m.objects, func(o *object) bool { return o == sn.o })
	delete(m.byName, name)
	m.selection.Selected = slices.DeleteFunc(m.selection.Selected, func(s string) bool { return s == name })
	if m.selection.Active == name {
		m.selection.Active = ""
	}
	m.scratch = nil
	return nil
}

func (m *Memory) Selection() Selection {
	return m.selection.clone()
}

// SetSelection replaces the selection. Every name must exist; an empty
// active name means no active object.
func (m *Memory) SetSelection(sel Selection) error {
	if sel.Active != "" {
		if _, err := m.lookup(sel.Active); err != nil {
			return fmt.Errorf("scene: active: %w", err)
		}
	}
	for _, name := range sel.Selected {
		if _, err := m.lookup(name); err != nil {
			return fmt.Errorf("scene: selected: %w", err)
		}
	}
	m.selection = sel.clone()
	return nil
}

type scratchNode struct {
	o *object
}

func (n *scratchNode) Name() string { return n.o.Name }

func (n *scratchNode) SetWorld(w mgl64.Mat4) {
	held := w
	n.o.held = &held
}

func (n *scratchNode) World() mgl64.Mat4 { return *n.o.held }
