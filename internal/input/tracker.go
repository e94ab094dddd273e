package input

import (
	"chosenoffset.com/vspaces/internal/render"
)

// Tracker holds the movement intent and facing derived from key events.
// Its handlers and the frame update both run on the game loop.
type Tracker struct {
	bindings Bindings
	facings  FacingMap
	intent   Intent
	facing   Facing
}

// NewTracker creates a tracker. A nil bindings map uses DefaultBindings.
// The player initially faces front.
func NewTracker(bindings Bindings, facings FacingMap) *Tracker {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Tracker{
		bindings: bindings,
		facings:  facings,
		facing:   FacingFront,
	}
}

// HandleKey applies one key transition. Keys without a binding are ignored.
func (t *Tracker) HandleKey(key render.Key, down bool) {
	action, ok := t.bindings[key]
	if !ok {
		return
	}
	t.intent.set(action, down)
	if !down {
		return
	}
	if f, ok := t.facings.For(action); ok && f.Valid() {
		t.facing = f
	}
}

// KeyDown is a render.KeyHandler for key-down events.
func (t *Tracker) KeyDown(key render.Key) { t.HandleKey(key, true) }

// KeyUp is a render.KeyHandler for key-up events.
func (t *Tracker) KeyUp(key render.Key) { t.HandleKey(key, false) }

// Attach subscribes the tracker to src. The returned detach function
// removes both handlers and clears any held intent; it may be called more
// than once.
func (t *Tracker) Attach(src render.KeySource) (detach func()) {
	remove := src.AddKeyListener(t.KeyDown, t.KeyUp)
	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		remove()
		t.Reset()
	}
}

// Intent returns a snapshot of the held flags.
func (t *Tracker) Intent() Intent {
	return t.intent
}

// Facing returns the facing chosen by the most recent directional press.
func (t *Tracker) Facing() Facing {
	return t.facing
}

// Restore sets the held flags and facing, for carrying a player's state
// into a tracker that replaces this one while keys are down.
func (t *Tracker) Restore(intent Intent, facing Facing) {
	t.intent = intent
	if facing.Valid() {
		t.facing = facing
	}
}

// Reset releases every flag. Facing is kept.
func (t *Tracker) Reset() {
	t.intent = Intent{}
}
