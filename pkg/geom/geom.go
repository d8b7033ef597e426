// Package geom intersects lines and rays with spheres.
//
// All functions are pure. Point comparisons are exact: a tangent line yields
// a single point only when both roots land on the same float64 coordinates.
package geom

import (
	"errors"
	"fmt"

	"github.com/taigrr/unclip/pkg/math3d"
)

// ErrInvalidArgument is the root of all caller contract violations.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrInvalidVector is returned for a zero or non-finite direction.
	ErrInvalidVector = fmt.Errorf("%w: invalid vector", ErrInvalidArgument)

	// ErrInvalidRadius is returned for a negative or NaN radius.
	ErrInvalidRadius = fmt.Errorf("%w: invalid radius", ErrInvalidArgument)
)

// Line is the infinite line through Origin along Direction.
type Line struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// Ray is the half line starting at Origin and extending along Direction.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// Line returns the infinite line the ray lies on.
func (r Ray) Line() Line {
	return Line{Origin: r.Origin, Direction: r.Direction}
}

// Ahead reports whether p is on the forward side of the ray's origin.
// The origin itself counts as ahead.
func (r Ray) Ahead(p math3d.Vec3) bool {
	return p.Sub(r.Origin).Dot(r.Direction) >= 0
}

// Sphere is a sphere in scene units. A zero radius is a single point.
type Sphere struct {
	Center math3d.Vec3
	Radius float64
}

// Contains returns true if p is inside or on the sphere.
func (s Sphere) Contains(p math3d.Vec3) bool {
	return p.Sub(s.Center).LenSq() <= s.Radius*s.Radius
}

// IntersectLine is IntersectLineSphere for this sphere.
func (s Sphere) IntersectLine(l Line) ([]math3d.Vec3, error) {
	return IntersectLineSphere(l, s.Center, s.Radius)
}

// IntersectRay is IntersectRaySphere for this sphere.
func (s Sphere) IntersectRay(r Ray) (math3d.Vec3, bool, error) {
	return IntersectRaySphere(r, s.Center, s.Radius)
}
