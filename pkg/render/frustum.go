package render

import (
	"github.com/taigrr/unclip/pkg/math3d"
)

// Plane is Ax + By + Cz + D = 0 with (A, B, C) in Normal.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is the six planes of a view volume, normals pointing inward.
// For a parallel camera it is a box.
type Frustum struct {
	Planes [6]Plane
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts the planes of a view-projection matrix
// (Gribb/Hartmann).
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	var f Frustum

	// Row i, column j of the column-major matrix is m[i+j*4]
	row := func(i int) [4]float64 {
		return [4]float64{m[i], m[i+4], m[i+8], m[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	plane := func(a [4]float64, sign float64, b [4]float64) Plane {
		return Plane{
			Normal: math3d.V3(a[0]+sign*b[0], a[1]+sign*b[1], a[2]+sign*b[2]),
			D:      a[3] + sign*b[3],
		}
	}

	f.Planes[FrustumLeft] = plane(r3, 1, r0)
	f.Planes[FrustumRight] = plane(r3, -1, r0)
	f.Planes[FrustumBottom] = plane(r3, 1, r1)
	f.Planes[FrustumTop] = plane(r3, -1, r1)
	f.Planes[FrustumNear] = plane(r3, 1, r2)
	f.Planes[FrustumFar] = plane(r3, -1, r2)

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}

	return f
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// IntersectAABB returns true if any part of the box may be inside the
// frustum. It tests the corner furthest along each plane normal.
func (f Frustum) IntersectAABB(box AABB) bool {
	for i := range f.Planes {
		plane := f.Planes[i]

		p := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)

		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// GetFrustum returns the current view frustum from the camera.
func (c *Camera) GetFrustum() Frustum {
	return NewFrustumFromMatrix(c.ViewProjectionMatrix())
}
