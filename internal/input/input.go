// Package input turns key-down and key-up events into the movement intent
// read by the integrator once per frame, and tracks which way the player
// sprite faces.
package input

import (
	"fmt"

	"chosenoffset.com/vspaces/internal/render"
)

// Action is a directional intent a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "none"
	}
}

// Intent is the set of directional flags currently held.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether at least one flag is set.
func (i Intent) Any() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

func (i *Intent) set(a Action, v bool) {
	switch a {
	case ActionForward:
		i.Forward = v
	case ActionBackward:
		i.Backward = v
	case ActionLeft:
		i.Left = v
	case ActionRight:
		i.Right = v
	}
}

// Facing selects which sprite variant the player is drawn with.
type Facing string

const (
	FacingFront Facing = "front"
	FacingBack  Facing = "back"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Valid reports whether f is one of the four known facings.
func (f Facing) Valid() bool {
	switch f {
	case FacingFront, FacingBack, FacingLeft, FacingRight:
		return true
	}
	return false
}

// FacingMap says which way the sprite faces after each directional key
// press. Spaces viewed from above and from the eye use different mappings.
type FacingMap struct {
	Forward  Facing `yaml:"forward"`
	Backward Facing `yaml:"backward"`
	Left     Facing `yaml:"left"`
	Right    Facing `yaml:"right"`
}

// TopDownFacing is used when the camera looks down the -Z axis: walking
// forward shows the player's back.
var TopDownFacing = FacingMap{
	Forward:  FacingBack,
	Backward: FacingFront,
	Left:     FacingLeft,
	Right:    FacingRight,
}

// FirstPersonFacing maps each action to the facing of the same name.
var FirstPersonFacing = FacingMap{
	Forward:  FacingFront,
	Backward: FacingBack,
	Left:     FacingLeft,
	Right:    FacingRight,
}

// For returns the facing selected by a, and false for ActionNone.
func (m FacingMap) For(a Action) (Facing, bool) {
	switch a {
	case ActionForward:
		return m.Forward, true
	case ActionBackward:
		return m.Backward, true
	case ActionLeft:
		return m.Left, true
	case ActionRight:
		return m.Right, true
	}
	return "", false
}

// Validate checks that every entry is a known facing.
func (m FacingMap) Validate() error {
	for _, a := range []Action{ActionForward, ActionBackward, ActionLeft, ActionRight} {
		if f, _ := m.For(a); !f.Valid() {
			return fmt.Errorf("facing for %s: unknown value %q", a, f)
		}
	}
	return nil
}

// Bindings maps physical keys to actions.
type Bindings map[render.Key]Action

// DefaultBindings binds both the arrow keys and WASD.
func DefaultBindings() Bindings {
	return Bindings{
		render.KeyUp:    ActionForward,
		render.KeyW:     ActionForward,
		render.KeyDown:  ActionBackward,
		render.KeyS:     ActionBackward,
		render.KeyLeft:  ActionLeft,
		render.KeyA:     ActionLeft,
		render.KeyRight: ActionRight,
		render.KeyD:     ActionRight,
	}
}
