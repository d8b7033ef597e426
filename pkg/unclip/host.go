package unclip

import "github.com/taigrr/unclip/pkg/math3d"

// Camera is the host's active view camera.
type Camera interface {
	Eye() math3d.Vec3
	Direction() math3d.Vec3
	Up() math3d.Vec3
	Perspective() bool

	// Set places the camera at eye looking at target.
	Set(eye, target, up math3d.Vec3)
}

// Host is the application the command runs inside.
type Host interface {
	Camera() Camera
	Bounds() Bounds

	// MessageBox shows msg to the user.
	MessageBox(msg string)
}

// Menu accepts user invocable commands.
type Menu interface {
	AddItem(name string, action func())
}
