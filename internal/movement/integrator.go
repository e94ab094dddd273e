// Package movement integrates the player's position once per frame:
// intent becomes a speed-scaled displacement, each axis is tested against
// the static obstacles on its own so the player slides along walls, and the
// result is clamped to the space's boundary.
package movement

import (
	"math"

	"chosenoffset.com/vspaces/internal/core/geom"
	"chosenoffset.com/vspaces/internal/input"
)

// Integrator owns the canonical player position of one space.
type Integrator struct {
	cfg       Config
	obstacles []geom.Rect
	bounds    geom.Bounds

	pos     geom.Vec3
	moving  bool
	elapsed float64
	bob     float64
}

// NewIntegrator creates an integrator starting at start. The obstacle slice
// is copied and never modified.
func NewIntegrator(cfg Config, obstacles []geom.Rect, bounds geom.Bounds, start geom.Vec3) *Integrator {
	return &Integrator{
		cfg:       cfg,
		obstacles: append([]geom.Rect(nil), obstacles...),
		bounds:    bounds,
		pos:       start,
	}
}

// Direction converts intent into a unit vector on the X-Z plane, or the
// zero vector when no flag is set or opposite flags cancel out.
func Direction(intent input.Intent) geom.Vec3 {
	var d geom.Vec3
	if intent.Forward {
		d.Z -= 1
	}
	if intent.Backward {
		d.Z += 1
	}
	if intent.Left {
		d.X -= 1
	}
	if intent.Right {
		d.X += 1
	}
	return d.Normalize()
}

// Step advances the simulation by dt seconds and returns the accepted
// position. Non-positive or non-finite dt moves nothing, but the boundary
// clamp is still applied.
func (it *Integrator) Step(intent input.Intent, dt float64) geom.Vec3 {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	move := Direction(intent).Scale(it.cfg.Speed * dt)
	it.moving = move.X != 0 || move.Z != 0

	next := it.pos
	if candidate := next.X + move.X; !it.Collides(candidate, next.Z) {
		next.X = candidate
	}
	if candidate := next.Z + move.Z; !it.Collides(next.X, candidate) {
		next.Z = candidate
	}
	next = it.bounds.Clamp(next)
	if (next.X != it.pos.X || next.Z != it.pos.Z) && it.Collides(next.X, next.Z) {
		// Clamping pulled the player back into an obstacle that crosses
		// the boundary.
		next.X, next.Z = it.pos.X, it.pos.Z
	}

	it.elapsed += dt
	next.Y, it.bob = it.vertical(next.Y, dt)

	it.pos = next
	return it.pos
}

// Collides reports whether the player footprint centered on (x, z) overlaps
// any obstacle.
func (it *Integrator) Collides(x, z float64) bool {
	player := geom.Rect{X: x, Z: z, Width: it.cfg.PlayerWidth, Depth: it.cfg.PlayerDepth}
	for _, obs := range it.obstacles {
		if player.Overlaps(obs) {
			return true
		}
	}
	return false
}

// Position returns the canonical position, without display offsets.
func (it *Integrator) Position() geom.Vec3 {
	return it.pos
}

// Display returns the position the player should be drawn at, including
// the bob offset.
func (it *Integrator) Display() geom.Vec3 {
	p := it.pos
	p.Y += it.bob
	return p
}

// Moving reports whether the last step displaced the player horizontally
// before collision.
func (it *Integrator) Moving() bool {
	return it.moving
}

// Elapsed returns the simulated time in seconds.
func (it *Integrator) Elapsed() float64 {
	return it.elapsed
}

// Obstacles returns the obstacle list. Callers must not modify it.
func (it *Integrator) Obstacles() []geom.Rect {
	return it.obstacles
}

// Bounds returns the boundary rectangle.
func (it *Integrator) Bounds() geom.Bounds {
	return it.bounds
}

// Reset moves the player to p and clears motion state.
func (it *Integrator) Reset(p geom.Vec3) {
	it.pos = p
	it.moving = false
	it.elapsed = 0
	it.bob = 0
}

// vertical returns the canonical Y and the display-only offset for the
// configured mode.
func (it *Integrator) vertical(y, dt float64) (float64, float64) {
	v := it.cfg.Vertical
	switch v.Mode {
	case VerticalBob:
		if !it.moving {
			return y, 0
		}
		return y, math.Sin(it.elapsed*v.Frequency) * v.Amplitude
	case VerticalGravity:
		y -= v.Gravity * dt
		if y < v.EyeHeight {
			y = v.EyeHeight
		}
		return y, 0
	default:
		return y, 0
	}
}
