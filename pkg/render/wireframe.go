package render

import (
	"math"

	"github.com/taigrr/unclip/pkg/math3d"
)

// Mesh is the geometry the wireframe renderer can draw.
type Mesh interface {
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) math3d.Vec3
	GetBounds() (min, max math3d.Vec3)
}

// WireframeStats counts what happened to the segments of the last frame.
type WireframeStats struct {
	Segments     int // Segments submitted
	Drawn        int // Segments with a visible part
	NearClipped  int // Segments cut or removed by the near plane
	MeshesCulled int
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	Stats WireframeStats
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// ResetStats zeroes the counters, typically once per frame.
func (w *Wireframe) ResetStats() {
	w.Stats = WireframeStats{}
}

// clipPlanes are the six view volume planes as distances in clip space.
// A point is inside when every distance is >= 0.
var clipPlanes = [6]func(v math3d.Vec4) float64{
	func(v math3d.Vec4) float64 { return v.W + v.Z }, // near
	func(v math3d.Vec4) float64 { return v.W - v.Z }, // far
	func(v math3d.Vec4) float64 { return v.W + v.X },
	func(v math3d.Vec4) float64 { return v.W - v.X },
	func(v math3d.Vec4) float64 { return v.W + v.Y },
	func(v math3d.Vec4) float64 { return v.W - v.Y },
}

// DrawLine3D draws the part of a world-space segment inside the view
// volume. Clipping happens in clip space, so geometry behind the near plane
// is cut exactly where the camera would cut it.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	w.Stats.Segments++

	viewProj := w.camera.ViewProjectionMatrix()
	a := viewProj.MulVec4(math3d.V4FromV3(p1, 1))
	b := viewProj.MulVec4(math3d.V4FromV3(p2, 1))

	// Liang-Barsky on the parameter range [t0, t1]
	t0, t1 := 0.0, 1.0
	for i, dist := range clipPlanes {
		da, db := dist(a), dist(b)
		if da < 0 && db < 0 {
			if i == 0 {
				w.Stats.NearClipped++
			}
			return
		}
		if da >= 0 && db >= 0 {
			continue
		}
		t := da / (da - db)
		if da < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if i == 0 {
			w.Stats.NearClipped++
		}
	}
	if t0 > t1 {
		return
	}

	ca, cb := a.Lerp(b, t0), a.Lerp(b, t1)
	x0, y0 := w.toScreen(ca)
	x1, y1 := w.toScreen(cb)

	w.Stats.Drawn++
	w.fb.DrawLine(x0, y0, x1, y1, color)
}

func (w *Wireframe) toScreen(clip math3d.Vec4) (int, int) {
	ndc := clip.PerspectiveDivide()
	x := (ndc.X + 1) * 0.5 * float64(w.fb.Width-1)
	y := (1 - ndc.Y) * 0.5 * float64(w.fb.Height-1)
	return int(math.Round(x)), int(math.Round(y))
}

// DrawMesh draws every triangle edge of mesh. Meshes entirely outside the
// view volume are skipped.
func (w *Wireframe) DrawMesh(mesh Mesh, color Color) {
	min, max := mesh.GetBounds()
	if !w.camera.GetFrustum().IntersectAABB(AABB{Min: min, Max: max}) {
		w.Stats.MeshesCulled++
		return
	}

	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)

		v0 := mesh.GetVertex(face[0])
		v1 := mesh.GetVertex(face[1])
		v2 := mesh.GetVertex(face[2])

		w.DrawLine3D(v0, v1, color)
		w.DrawLine3D(v1, v2, color)
		w.DrawLine3D(v2, v0, color)
	}
}

// DrawSphere draws a sphere as its three axis-aligned great circles.
func (w *Wireframe) DrawSphere(center math3d.Vec3, radius float64, segments int, color Color) {
	if radius <= 0 || segments < 3 {
		return
	}

	step := 2 * math.Pi / float64(segments)
	circle := func(u, v math3d.Vec3) {
		prev := center.Add(u.Scale(radius))
		for i := 1; i <= segments; i++ {
			a := float64(i) * step
			p := center.Add(u.Scale(radius * math.Cos(a))).Add(v.Scale(radius * math.Sin(a)))
			w.DrawLine3D(prev, p, color)
			prev = p
		}
	}

	x, y, z := math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0, 1)
	circle(x, y)
	circle(y, z)
	circle(z, x)
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	h := size / 2
	w.DrawLine3D(math3d.V3(pos.X-h, pos.Y, pos.Z), math3d.V3(pos.X+h, pos.Y, pos.Z), color)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y-h, pos.Z), math3d.V3(pos.X, pos.Y+h, pos.Z), color)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y, pos.Z-h), math3d.V3(pos.X, pos.Y, pos.Z+h), color)
}
