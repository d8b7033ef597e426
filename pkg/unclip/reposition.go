package unclip

import (
	"fmt"

	"github.com/taigrr/unclip/pkg/geom"
)

// Reposition casts a ray backwards from the eye, against the view
// direction, and returns a pose with the eye moved to where that ray leaves
// the bounds' sphere. View direction and up are kept.
//
// ok is false when the ray has no exit point, which is the normal case for
// a camera already outside the sphere. Reposition does not care about the
// projection mode.
func Reposition(pose Pose, bounds Bounds) (moved Pose, ok bool, err error) {
	ray := geom.Ray{Origin: pose.Eye, Direction: pose.Direction.Negate()}

	hit, ok, err := bounds.Sphere().IntersectRay(ray)
	if err != nil {
		return Pose{}, false, fmt.Errorf("cast back from eye: %w", err)
	}
	if !ok {
		return Pose{}, false, nil
	}

	return Pose{Eye: hit, Direction: pose.Direction, Up: pose.Up}, true, nil
}
