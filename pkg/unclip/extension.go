package unclip

import "fmt"

// Extension metadata.
const (
	Name        = "Unclip Parallel"
	Description = "Removes clipping on parallel projection cameras."
	Version     = "1.0.0"
	Creator     = "Eneroth"
)

// Extension registers the Unclip command with a host menu. The zero value
// is ready to use.
//
// An Extension registers its menu item once; reloading the extension in the
// same process must reuse the same value so the item isn't added twice.
type Extension struct {
	loaded bool

	// OnResult, if set, receives the outcome of every invocation.
	OnResult func(moved bool, err error)
}

// Copyright returns the copyright line for the extension.
func (e *Extension) Copyright() string {
	return fmt.Sprintf("2019, %s", Creator)
}

// Loaded reports whether the menu item has been registered.
func (e *Extension) Loaded() bool {
	return e.loaded
}

// Register adds the Unclip menu item running against host. It returns false
// without touching the menu if the extension was already registered.
func (e *Extension) Register(menu Menu, host Host) bool {
	if e.loaded {
		return false
	}
	e.loaded = true

	menu.AddItem(Name, func() {
		moved, err := Unclip(host)
		if e.OnResult != nil {
			e.OnResult(moved, err)
		}
	})
	return true
}
