// Package unclip moves a parallel projection camera out of the scene's
// bounding sphere so the near plane stops cutting through the model.
//
// Reposition is the pure policy. Unclip wraps it for a Host, refusing
// perspective cameras before any geometry runs.
package unclip

import (
	"github.com/taigrr/unclip/pkg/geom"
	"github.com/taigrr/unclip/pkg/math3d"
)

// Pose is a camera placement: where it is, where it looks and which way is up.
type Pose struct {
	Eye       math3d.Vec3
	Direction math3d.Vec3 // from Eye toward the target
	Up        math3d.Vec3
}

// Target returns the point one Direction ahead of Eye.
func (p Pose) Target() math3d.Vec3 {
	return p.Eye.Add(p.Direction)
}

// Bounds is a scene bounding volume reduced to a center and the length of
// the bounding box diagonal.
type Bounds struct {
	Center   math3d.Vec3
	Diagonal float64
}

// BoundsFromBox returns the bounds of the axis-aligned box [min, max].
func BoundsFromBox(min, max math3d.Vec3) Bounds {
	return Bounds{
		Center:   min.Add(max).Scale(0.5),
		Diagonal: max.Sub(min).Len(),
	}
}

// Sphere returns the sphere circumscribing the bounding box.
func (b Bounds) Sphere() geom.Sphere {
	return geom.Sphere{Center: b.Center, Radius: b.Diagonal / 2}
}
