package geom

import (
	"math"

	"github.com/taigrr/unclip/pkg/math3d"
)

// IntersectLineSphere returns the points where line crosses the sphere at
// center with the given radius: none, one for a tangent, or two.
//
// Two points come back in root order (far root along the direction first),
// not sorted by distance. A zero radius is treated as the point center,
// which is returned only if it lies exactly on the line.
func IntersectLineSphere(line Line, center math3d.Vec3, radius float64) ([]math3d.Vec3, error) {
	if !line.Direction.Valid() {
		return nil, ErrInvalidVector
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, ErrInvalidRadius
	}

	dir := line.Direction.Normalize()
	origin := line.Origin

	if radius == 0 {
		if !onLine(center, origin, dir) {
			return nil, nil
		}
		return []math3d.Vec3{center}, nil
	}

	// Signed distance d along dir: d = b ± sqrt(disc)
	oc := origin.Sub(center)
	proj := dir.Dot(oc)
	b := -proj
	disc := proj*proj - oc.Dot(oc) + radius*radius

	if disc < 0 {
		return nil, nil
	}

	s := math.Sqrt(disc)
	p0 := origin.Offset(dir, b+s)
	p1 := origin.Offset(dir, b-s)

	if p0 == p1 {
		return []math3d.Vec3{p0}, nil
	}
	return []math3d.Vec3{p0, p1}, nil
}

// IntersectRaySphere returns the intersection of the ray and the sphere
// nearest to the ray's origin. ok is false when the sphere is not hit ahead
// of the origin.
func IntersectRaySphere(ray Ray, center math3d.Vec3, radius float64) (hit math3d.Vec3, ok bool, err error) {
	points, err := IntersectLineSphere(ray.Line(), center, radius)
	if err != nil {
		return math3d.Vec3{}, false, err
	}

	best := math.Inf(1)
	for _, p := range points {
		if !ray.Ahead(p) {
			continue
		}
		if d := p.Distance(ray.Origin); d < best {
			hit, best, ok = p, d, true
		}
	}
	return hit, ok, nil
}

// onLine reports whether p is exactly on the line through origin along the
// unit vector dir, i.e. p equals its own projection onto the line.
func onLine(p, origin, dir math3d.Vec3) bool {
	return origin.Offset(dir, p.Sub(origin).Dot(dir)) == p
}
