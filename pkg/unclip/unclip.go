package unclip

import (
	"errors"
	"fmt"
)

// PerspectiveMessage is shown when the command is run on a perspective camera.
const PerspectiveMessage = Name + " only functions on parallel projection cameras. " +
	"Clipping on perspective cameras has a different cause, to which this " +
	"solution can't be applied."

// ErrPerspective is returned by Unclip for perspective cameras.
var ErrPerspective = errors.New("camera is not a parallel projection")

// Unclip removes clipping for the host's parallel projection camera by
// moving it back outside the scene bounds. It reports whether the camera
// was moved.
//
// Perspective cameras are refused with a message box and ErrPerspective;
// their clipping has nothing to do with the eye being inside the model.
func Unclip(host Host) (bool, error) {
	if host.Camera().Perspective() {
		host.MessageBox(PerspectiveMessage)
		return false, ErrPerspective
	}

	return MoveBack(host)
}

// MoveBack moves the host camera backwards outside the scene bounds if it
// isn't already. The camera is written at most once.
func MoveBack(host Host) (bool, error) {
	cam := host.Camera()
	pose := Pose{Eye: cam.Eye(), Direction: cam.Direction(), Up: cam.Up()}

	moved, ok, err := Reposition(pose, host.Bounds())
	if err != nil {
		return false, fmt.Errorf("move back: %w", err)
	}
	if !ok {
		return false, nil
	}

	cam.Set(moved.Eye, moved.Target(), moved.Up)
	return true, nil
}
