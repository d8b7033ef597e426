package main

import (
	"github.com/taigrr/unclip/pkg/math3d"
	"github.com/taigrr/unclip/pkg/models"
	"github.com/taigrr/unclip/pkg/render"
	"github.com/taigrr/unclip/pkg/unclip"
)

// sceneHost runs unclip commands against a camera and a loaded scene.
type sceneHost struct {
	camera    unclip.Camera
	bounds    unclip.Bounds
	onMessage func(msg string)
}

func (h *sceneHost) Camera() unclip.Camera { return h.camera }
func (h *sceneHost) Bounds() unclip.Bounds { return h.bounds }

func (h *sceneHost) MessageBox(msg string) {
	if h.onMessage != nil {
		h.onMessage(msg)
	}
}

func meshBounds(m *models.Mesh) unclip.Bounds {
	b := m.Bounds()
	return unclip.BoundsFromBox(b.Min, b.Max)
}

// animatedCamera eases the eye to every pose written through Set instead
// of jumping there.
type animatedCamera struct {
	*render.Camera
	anim *render.EyeAnimator
}

func (c *animatedCamera) Set(eye, target, up math3d.Vec3) {
	from := c.Camera.Eye()
	c.Camera.Set(eye, target, up)
	c.Camera.SetEye(from)
	c.anim.Start(from, eye)
}

// keyMenu binds menu items to keys by item name. Items without a binding
// are not reachable.
type keyMenu struct {
	bindings map[string]string // item name -> key
	actions  map[string]func() // key -> action
	names    map[string]string // key -> item name
}

func newKeyMenu(bindings map[string]string) *keyMenu {
	return &keyMenu{
		bindings: bindings,
		actions:  make(map[string]func()),
		names:    make(map[string]string),
	}
}

func (m *keyMenu) AddItem(name string, action func()) {
	key, ok := m.bindings[name]
	if !ok {
		return
	}
	m.actions[key] = action
	m.names[key] = name
}

// Trigger runs the item bound to key and reports whether there was one.
func (m *keyMenu) Trigger(key string) bool {
	action, ok := m.actions[key]
	if !ok {
		return false
	}
	action()
	return true
}

// Len returns the number of reachable items.
func (m *keyMenu) Len() int {
	return len(m.actions)
}
