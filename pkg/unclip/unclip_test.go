package unclip

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/taigrr/unclip/pkg/geom"
	"github.com/taigrr/unclip/pkg/math3d"
)

type fakeCamera struct {
	eye, dir, up math3d.Vec3
	perspective  bool
	sets         int
}

func (c *fakeCamera) Eye() math3d.Vec3       { return c.eye }
func (c *fakeCamera) Direction() math3d.Vec3 { return c.dir }
func (c *fakeCamera) Up() math3d.Vec3        { return c.up }
func (c *fakeCamera) Perspective() bool      { return c.perspective }

func (c *fakeCamera) Set(eye, target, up math3d.Vec3) {
	c.sets++
	c.eye = eye
	c.dir = target.Sub(eye).Normalize()
	c.up = up
}

type fakeHost struct {
	cam      *fakeCamera
	bounds   Bounds
	messages []string
}

func (h *fakeHost) Camera() Camera        { return h.cam }
func (h *fakeHost) Bounds() Bounds        { return h.bounds }
func (h *fakeHost) MessageBox(msg string) { h.messages = append(h.messages, msg) }

type fakeMenu struct {
	names   []string
	actions []func()
}

func (m *fakeMenu) AddItem(name string, action func()) {
	m.names = append(m.names, name)
	m.actions = append(m.actions, action)
}

func unitCube() Bounds {
	return BoundsFromBox(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
}

func TestBoundsFromBox(t *testing.T) {
	b := BoundsFromBox(math3d.V3(0, 0, 0), math3d.V3(2, 4, 4))
	if b.Center != math3d.V3(1, 2, 2) {
		t.Errorf("center = %v, want (1, 2, 2)", b.Center)
	}
	if b.Diagonal != 6 {
		t.Errorf("diagonal = %v, want 6", b.Diagonal)
	}
	if r := b.Sphere().Radius; r != 3 {
		t.Errorf("radius = %v, want 3", r)
	}
}

func TestRepositionInsideSphere(t *testing.T) {
	bounds := Bounds{Center: math3d.V3(0, 0, 0), Diagonal: 20}
	pose := Pose{
		Eye:       math3d.V3(0, 0, 2),
		Direction: math3d.V3(0, 0, -1),
		Up:        math3d.V3(0, 1, 0),
	}

	moved, ok, err := Reposition(pose, bounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the camera to move")
	}
	if moved.Eye.Distance(math3d.V3(0, 0, 10)) > 1e-9 {
		t.Errorf("eye = %v, want (0, 0, 10)", moved.Eye)
	}
	if moved.Target().Distance(math3d.V3(0, 0, 9)) > 1e-9 {
		t.Errorf("target = %v, want (0, 0, 9)", moved.Target())
	}
	if moved.Up != pose.Up {
		t.Errorf("up = %v, want %v unchanged", moved.Up, pose.Up)
	}
}

func TestRepositionOutsideSphere(t *testing.T) {
	bounds := Bounds{Center: math3d.V3(0, 0, 0), Diagonal: 2}

	tests := []struct {
		name string
		pose Pose
	}{
		{"looking at the model", Pose{math3d.V3(0, 0, 5), math3d.V3(0, 0, -1), math3d.Up()}},
		{"looking past the model", Pose{math3d.V3(0, 5, 5), math3d.V3(0, 0, -1), math3d.Up()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := Reposition(tc.pose, bounds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Errorf("camera outside the sphere should not move")
			}
		})
	}
}

func TestRepositionLookingAwayFromModel(t *testing.T) {
	// Outside the sphere but facing away: the backward ray crosses the
	// whole sphere and the eye lands on the near side.
	bounds := Bounds{Center: math3d.V3(0, 0, 0), Diagonal: 2}
	pose := Pose{math3d.V3(0, 0, 5), math3d.V3(0, 0, 1), math3d.Up()}

	moved, ok, err := Reposition(pose, bounds)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if moved.Eye.Distance(math3d.V3(0, 0, 1)) > 1e-9 {
		t.Errorf("eye = %v, want (0, 0, 1)", moved.Eye)
	}
}

func TestRepositionZeroSizeModel(t *testing.T) {
	pose := Pose{math3d.V3(0, 0, 5), math3d.V3(0, 0, -1), math3d.Up()}

	// Eye not on the line through the point
	_, ok, err := Reposition(pose, Bounds{Center: math3d.V3(1, 0, 0)})
	if err != nil || ok {
		t.Errorf("ok=%v err=%v, want no move", ok, err)
	}

	// Point in front of the camera is not behind it either
	_, ok, err = Reposition(pose, Bounds{Center: math3d.V3(0, 0, 0)})
	if err != nil || ok {
		t.Errorf("ok=%v err=%v, want no move", ok, err)
	}
}

func TestRepositionZeroDirection(t *testing.T) {
	pose := Pose{math3d.V3(0, 0, 0), math3d.Zero3(), math3d.Up()}

	_, _, err := Reposition(pose, unitCube())
	if !errors.Is(err, geom.ErrInvalidVector) {
		t.Errorf("got error %v, want ErrInvalidVector", err)
	}
}

func TestRepositionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bounds := Bounds{Center: math3d.V3(3, -2, 1), Diagonal: 30}
	radius := bounds.Diagonal / 2

	for i := range 500 {
		// Eye strictly inside the sphere
		offset := math3d.V3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if offset.LenSq() >= 1 {
			continue
		}
		dir := math3d.V3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize()
		if !dir.Valid() {
			continue
		}
		pose := Pose{
			Eye:       bounds.Center.Add(offset.Scale(radius * 0.99)),
			Direction: dir,
			Up:        math3d.V3(0, 1, 0),
		}

		moved, ok, err := Reposition(pose, bounds)
		if err != nil || !ok {
			t.Fatalf("case %d: ok=%v err=%v", i, ok, err)
		}
		if d := math.Abs(moved.Eye.Distance(bounds.Center) - radius); d > 1e-9 {
			t.Errorf("case %d: new eye %v off the surface", i, d)
		}
		if moved.Up != pose.Up {
			t.Errorf("case %d: up changed", i)
		}
		if got := moved.Target().Sub(moved.Eye).Normalize(); got.Distance(dir) > 1e-9 {
			t.Errorf("case %d: direction %v, want %v", i, got, dir)
		}
		if moved.Eye.Sub(pose.Eye).Dot(dir) > 0 {
			t.Errorf("case %d: eye moved forward", i)
		}

		// A second pass must not move the camera any further back
		again, ok, err := Reposition(moved, bounds)
		if err != nil {
			t.Fatalf("case %d: second pass: %v", i, err)
		}
		if ok && again.Eye.Distance(moved.Eye) > 1e-9 {
			t.Errorf("case %d: second pass moved eye from %v to %v", i, moved.Eye, again.Eye)
		}
	}
}

func TestUnclipParallelCamera(t *testing.T) {
	cam := &fakeCamera{
		eye: math3d.V3(0, 0, 0.5),
		dir: math3d.V3(0, 0, -1),
		up:  math3d.V3(0, 1, 0),
	}
	host := &fakeHost{cam: cam, bounds: unitCube()}

	moved, err := Unclip(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved {
		t.Fatal("expected camera to move")
	}
	if cam.sets != 1 {
		t.Errorf("Set called %d times, want 1", cam.sets)
	}
	if d := cam.eye.Distance(math3d.Zero3()); math.Abs(d-math.Sqrt(3)) > 1e-9 {
		t.Errorf("eye distance = %v, want sqrt(3)", d)
	}
	if cam.dir.Distance(math3d.V3(0, 0, -1)) > 1e-9 {
		t.Errorf("direction = %v, want unchanged", cam.dir)
	}
	if len(host.messages) != 0 {
		t.Errorf("unexpected messages: %v", host.messages)
	}

	// Already outside now
	moved, err = Unclip(host)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if moved && cam.eye.Distance(math3d.V3(0, 0, math.Sqrt(3))) > 1e-9 {
		t.Errorf("second run moved the camera to %v", cam.eye)
	}
}

func TestUnclipCameraOutside(t *testing.T) {
	cam := &fakeCamera{eye: math3d.V3(0, 0, 10), dir: math3d.V3(0, 0, -1), up: math3d.Up()}
	host := &fakeHost{cam: cam, bounds: unitCube()}

	moved, err := Unclip(host)
	if err != nil || moved {
		t.Errorf("moved=%v err=%v, want no-op", moved, err)
	}
	if cam.sets != 0 {
		t.Errorf("Set called %d times, want 0", cam.sets)
	}
}

func TestUnclipPerspectiveRefused(t *testing.T) {
	cam := &fakeCamera{
		eye:         math3d.V3(0, 0, 0),
		dir:         math3d.V3(0, 0, -1),
		up:          math3d.Up(),
		perspective: true,
	}
	host := &fakeHost{cam: cam, bounds: unitCube()}

	moved, err := Unclip(host)
	if !errors.Is(err, ErrPerspective) {
		t.Errorf("got error %v, want ErrPerspective", err)
	}
	if moved || cam.sets != 0 {
		t.Errorf("perspective camera must not be touched (moved=%v, sets=%d)", moved, cam.sets)
	}
	if len(host.messages) != 1 || host.messages[0] != PerspectiveMessage {
		t.Errorf("messages = %q, want the perspective message", host.messages)
	}
}

func TestExtensionRegistersOnce(t *testing.T) {
	var ext Extension
	menu := &fakeMenu{}
	cam := &fakeCamera{eye: math3d.Zero3(), dir: math3d.V3(1, 0, 0), up: math3d.Up()}
	host := &fakeHost{cam: cam, bounds: unitCube()}

	var results []bool
	ext.OnResult = func(moved bool, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		results = append(results, moved)
	}

	if !ext.Register(menu, host) {
		t.Fatal("first Register should succeed")
	}
	if ext.Register(menu, host) {
		t.Error("second Register should be a no-op")
	}
	if !ext.Loaded() {
		t.Error("extension should report loaded")
	}
	if len(menu.names) != 1 || menu.names[0] != Name {
		t.Fatalf("menu items = %v, want [%q]", menu.names, Name)
	}

	menu.actions[0]()
	if len(results) != 1 || !results[0] {
		t.Errorf("results = %v, want [true]", results)
	}
	if cam.eye.Distance(math3d.V3(-math.Sqrt(3), 0, 0)) > 1e-9 {
		t.Errorf("eye = %v, want (-sqrt(3), 0, 0)", cam.eye)
	}
}

func TestExtensionCopyright(t *testing.T) {
	var ext Extension
	if got := ext.Copyright(); got != "2019, Eneroth" {
		t.Errorf("Copyright() = %q", got)
	}
}
