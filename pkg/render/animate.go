package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/unclip/pkg/math3d"
)

// settleDistance is how close the animated eye must be, in scene units and
// units per frame, before it snaps onto the destination.
const settleDistance = 1e-3

// EyeAnimator eases a camera eye from one point to another with a
// critically damped spring per axis.
type EyeAnimator struct {
	spring harmonica.Spring
	pos    [3]float64
	vel    [3]float64
	to     math3d.Vec3
	active bool
}

// NewEyeAnimator creates an animator stepped fps times per second.
func NewEyeAnimator(fps int) *EyeAnimator {
	return &EyeAnimator{
		// Frequency 6 settles in about half a second without overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Start begins moving from from to to, dropping any animation in progress.
func (a *EyeAnimator) Start(from, to math3d.Vec3) {
	a.pos = [3]float64{from.X, from.Y, from.Z}
	a.vel = [3]float64{}
	a.to = to
	a.active = from != to
}

// Active reports whether an animation is in progress.
func (a *EyeAnimator) Active() bool {
	return a.active
}

// Update advances one frame and returns the current eye. ok is false when
// no animation is running.
func (a *EyeAnimator) Update() (eye math3d.Vec3, ok bool) {
	if !a.active {
		return a.to, false
	}

	to := [3]float64{a.to.X, a.to.Y, a.to.Z}
	settled := true
	for i := range a.pos {
		a.pos[i], a.vel[i] = a.spring.Update(a.pos[i], a.vel[i], to[i])
		if math.Abs(a.pos[i]-to[i]) > settleDistance || math.Abs(a.vel[i]) > settleDistance {
			settled = false
		}
	}

	if settled {
		a.active = false
		return a.to, true
	}
	return math3d.V3(a.pos[0], a.pos[1], a.pos[2]), true
}
