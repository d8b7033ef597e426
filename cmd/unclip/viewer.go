package main

import (
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/taigrr/unclip/pkg/math3d"
	"github.com/taigrr/unclip/pkg/models"
	"github.com/taigrr/unclip/pkg/render"
	"github.com/taigrr/unclip/pkg/unclip"
)

var (
	meshColor   = render.RGB(0, 255, 128)
	sphereColor = render.RGB(255, 215, 0)
)

// menuKeys binds extension menu items to viewer keys.
var menuKeys = map[string]string{
	unclip.Name: "u",
}

// viewer is the state of the interactive viewer. The event goroutine and
// the render loop share it through mu.
type viewer struct {
	mu sync.Mutex

	name    string
	mesh    *models.Mesh
	camera  *render.Camera
	eyeAnim *render.EyeAnimator
	host    *sceneHost
	menu    *keyMenu

	fb   *render.Framebuffer
	wire *render.Wireframe
	bg   render.Color

	step       float64 // Move distance per key press
	showSphere bool
	status     string
}

func newViewer(name string, mesh *models.Mesh, fps int, bg render.Color, width, height int) *viewer {
	bounds := meshBounds(mesh)

	cam := render.NewCamera()
	cam.SetClipPlanes(0.1, 10*bounds.Diagonal+100)
	cam.SetOrthoHeight(math.Max(bounds.Diagonal, 1))
	cam.Set(bounds.Center.Add(math3d.V3(0, 0, bounds.Diagonal)), bounds.Center, math3d.Up())

	v := &viewer{
		name:    name,
		mesh:    mesh,
		camera:  cam,
		eyeAnim: render.NewEyeAnimator(fps),
		menu:    newKeyMenu(menuKeys),
		bg:      bg,
		step:    math.Max(bounds.Diagonal/40, 0.05),
	}
	v.host = &sceneHost{
		camera:    &animatedCamera{Camera: cam, anim: v.eyeAnim},
		bounds:    bounds,
		onMessage: func(msg string) { v.status = msg },
	}

	ext := &unclip.Extension{OnResult: v.unclipResult}
	ext.Register(v.menu, v.host)

	v.resize(width, height)
	return v
}

// resize sizes the framebuffer for a terminal of width x height cells.
func (v *viewer) resize(width, height int) {
	v.fb = render.NewFramebuffer(width, height*2)
	v.wire = render.NewWireframe(v.camera, v.fb)
	if height > 0 {
		v.camera.SetAspectRatio(float64(width) / float64(height*2))
	}
}

func (v *viewer) unclipResult(moved bool, err error) {
	switch {
	case errors.Is(err, unclip.ErrPerspective):
		// The message box already set the status.
	case err != nil:
		v.status = err.Error()
	case moved:
		v.status = "moved outside the scene bounds"
	default:
		v.status = "camera is already outside the scene bounds"
	}
}

// handleKey applies a key press; match reports whether the pressed key is
// any of the given names. It returns true when the viewer should quit.
func (v *viewer) handleKey(match func(keys ...string) bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	const orbitStep = 0.05

	switch {
	case match("escape", "ctrl+c"):
		return true
	case match("u"):
		v.menu.Trigger("u")
	case match("p"):
		if v.camera.Perspective() {
			v.camera.SetProjection(render.Parallel)
		} else {
			v.camera.SetProjection(render.Perspective)
		}
		v.status = v.camera.Projection.String() + " projection"
	case match("w"):
		v.camera.MoveForward(v.step)
	case match("s"):
		v.camera.MoveForward(-v.step)
	case match("a"):
		v.camera.MoveRight(-v.step)
	case match("d"):
		v.camera.MoveRight(v.step)
	case match("left"):
		v.camera.Orbit(-orbitStep, 0)
	case match("right"):
		v.camera.Orbit(orbitStep, 0)
	case match("up"):
		v.camera.Orbit(0, orbitStep)
	case match("down"):
		v.camera.Orbit(0, -orbitStep)
	case match("+", "="):
		v.zoom(0.9)
	case match("-", "_"):
		v.zoom(1 / 0.9)
	case match("b"):
		v.showSphere = !v.showSphere
	}
	return false
}

// keyIs returns a key matcher for a single synthetic key press.
func keyIs(key string) func(keys ...string) bool {
	return func(keys ...string) bool {
		return slices.Contains(keys, key)
	}
}

// zoom scales the visible height by f.
func (v *viewer) zoom(f float64) {
	if v.camera.Perspective() {
		v.camera.SetFOV(math.Min(math.Max(v.camera.FOV*f, 0.1), 2.8))
		return
	}
	v.camera.SetOrthoHeight(math.Max(v.camera.OrthoHeight*f, 0.01))
}

// frame advances the eye animation and draws the scene into the framebuffer.
func (v *viewer) frame() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if eye, ok := v.eyeAnim.Update(); ok {
		v.camera.SetEye(eye)
	}

	v.fb.Clear(v.bg)
	v.wire.ResetStats()
	v.wire.DrawMesh(v.mesh, meshColor)
	stats := v.wire.Stats

	if v.showSphere {
		s := v.host.bounds.Sphere()
		v.wire.DrawSphere(s.Center, s.Radius, 48, sphereColor)
	}
	v.wire.Stats = stats
}

// hudInfo is what the HUD shows for the last frame.
type hudInfo struct {
	name        string
	projection  render.Projection
	eye         math3d.Vec3
	triangles   int
	nearClipped int
	status      string
}

func (v *viewer) info() hudInfo {
	v.mu.Lock()
	defer v.mu.Unlock()

	return hudInfo{
		name:        v.name,
		projection:  v.camera.Projection,
		eye:         v.camera.Eye(),
		triangles:   v.mesh.TriangleCount(),
		nearClipped: v.wire.Stats.NearClipped,
		status:      v.status,
	}
}
