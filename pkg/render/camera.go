// Package render draws scene wireframes from a parallel or perspective
// camera into a framebuffer, for a terminal or a PNG.
package render

import (
	"math"

	"github.com/taigrr/unclip/pkg/math3d"
)

// Projection is the camera projection mode.
type Projection int

const (
	Parallel    Projection = iota // Orthographic, near plane at the eye
	Perspective                   // Pinhole with a positive near plane
)

func (p Projection) String() string {
	if p == Perspective {
		return "perspective"
	}
	return "parallel"
}

// Camera is a look-at camera. A parallel camera clips everything behind the
// plane through its eye, which is what makes standing inside a model cut it
// open.
type Camera struct {
	eye    math3d.Vec3
	target math3d.Vec3
	up     math3d.Vec3

	Projection Projection

	OrthoHeight float64 // Height of the parallel view volume in scene units
	FOV         float64 // Vertical field of view in radians (perspective)
	AspectRatio float64 // Width / Height
	Near        float64 // Near plane (perspective only)
	Far         float64 // Far plane

	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates a parallel camera at (0, 0, 10) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		eye:           math3d.V3(0, 0, 10),
		target:        math3d.Zero3(),
		up:            math3d.Up(),
		Projection:    Parallel,
		OrthoHeight:   10,
		FOV:           math.Pi / 3,
		AspectRatio:   16.0 / 9.0,
		Near:          0.1,
		Far:           1000,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() math3d.Vec3 {
	return c.eye
}

// Target returns the point the camera looks at.
func (c *Camera) Target() math3d.Vec3 {
	return c.target
}

// Up returns the camera up vector as last set.
func (c *Camera) Up() math3d.Vec3 {
	return c.up
}

// Direction returns the unit view direction.
func (c *Camera) Direction() math3d.Vec3 {
	return c.target.Sub(c.eye).Normalize()
}

// Perspective reports whether the camera uses perspective projection.
func (c *Camera) Perspective() bool {
	return c.Projection == Perspective
}

// Set places the camera at eye looking at target.
func (c *Camera) Set(eye, target, up math3d.Vec3) {
	c.eye = eye
	c.target = target
	c.up = up
	c.invalidateView()
}

// SetEye moves the eye keeping the view direction and the distance to the
// target.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.target = eye.Add(c.target.Sub(c.eye))
	c.eye = eye
	c.invalidateView()
}

// SetProjection switches between parallel and perspective.
func (c *Camera) SetProjection(p Projection) {
	c.Projection = p
	c.invalidateProjection()
}

// SetOrthoHeight sets the height of the parallel view volume.
func (c *Camera) SetOrthoHeight(h float64) {
	c.OrthoHeight = h
	c.invalidateProjection()
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.invalidateProjection()
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.invalidateProjection()
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.invalidateProjection()
}

// Right returns the unit vector pointing to the right of the view.
func (c *Camera) Right() math3d.Vec3 {
	return c.Direction().Cross(c.up).Normalize()
}

// MoveForward moves eye and target along the view direction.
func (c *Camera) MoveForward(distance float64) {
	d := c.Direction().Scale(distance)
	c.eye = c.eye.Add(d)
	c.target = c.target.Add(d)
	c.invalidateView()
}

// MoveRight moves eye and target sideways.
func (c *Camera) MoveRight(distance float64) {
	d := c.Right().Scale(distance)
	c.eye = c.eye.Add(d)
	c.target = c.target.Add(d)
	c.invalidateView()
}

// Orbit rotates the eye around the target, yaw about the up vector and
// pitch about the right vector (radians). Pitch stops short of the poles.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.eye.Sub(c.target)
	offset = math3d.Rotate(c.up, yaw).MulVec3Dir(offset)

	const maxPitch = math.Pi/2 - 0.01
	dir := offset.Normalize().Negate()
	current := math.Asin(math.Max(-1, math.Min(1, dir.Dot(c.up.Normalize()))))
	pitch = math.Max(-maxPitch-current, math.Min(maxPitch-current, pitch))

	right := dir.Cross(c.up).Normalize()
	if right.Valid() {
		offset = math3d.Rotate(right, pitch).MulVec3Dir(offset)
	}

	c.eye = c.target.Add(offset)
	c.invalidateView()
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.eye, c.target, c.up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.viewProjDirty {
		c.viewProjMatrix = c.ProjectionMatrix().Mul(c.ViewMatrix())
		c.viewProjDirty = false
	}
	return c.viewProjMatrix
}

func (c *Camera) invalidateView() {
	c.viewDirty = true
	c.viewProjDirty = true
}

func (c *Camera) invalidateProjection() {
	c.projDirty = true
	c.viewProjDirty = true
}

func (c *Camera) computeProjectionMatrix() {
	if c.Projection == Perspective {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		return
	}

	// The parallel near plane sits on the eye itself
	h := c.OrthoHeight / 2
	w := h * c.AspectRatio
	c.projMatrix = math3d.Orthographic(-w, w, -h, h, 0, c.Far)
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))

	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clipPos.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight) // Y is flipped
	depth = ndc.Z

	return x, y, depth, true
}
