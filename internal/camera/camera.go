// Package camera implements the follow rig: every frame the camera moves a
// fixed fraction of the way towards the player plus an offset, and looks at
// the player's ground position.
package camera

import (
	"chosenoffset.com/vspaces/internal/core/geom"
)

// Config describes how a space's camera follows the player.
type Config struct {
	Offset geom.Vec3 `yaml:"offset"`
	Factor float64   `yaml:"factor"` // fraction of the remaining distance covered per frame
	Zoom   float64   `yaml:"zoom"`   // pixels per world unit in the top-down view
}

// DefaultConfig matches the top-down virtual space.
func DefaultConfig() Config {
	return Config{
		Offset: geom.Vec3{X: 0, Y: 300, Z: 300},
		Factor: 0.05,
		Zoom:   4,
	}
}

// Rig is a camera that trails a target.
type Rig struct {
	Position geom.Vec3
	LookAt   geom.Vec3
	Offset   geom.Vec3
	Factor   float64
}

// NewRig creates a rig already settled on target. Factors outside (0,1],
// NaN included, become 1; zero would never move.
func NewRig(cfg Config, target geom.Vec3) *Rig {
	r := &Rig{Offset: cfg.Offset, Factor: clampFactor(cfg.Factor)}
	r.Position = r.Target(target)
	r.LookAt = ground(target)
	return r
}

func clampFactor(f float64) float64 {
	if !(f > 0 && f <= 1) {
		return 1
	}
	return f
}

func ground(p geom.Vec3) geom.Vec3 {
	return geom.Vec3{X: p.X, Y: 0, Z: p.Z}
}

// Target returns where the camera wants to be for a player at p.
func (r *Rig) Target(p geom.Vec3) geom.Vec3 {
	return p.Add(r.Offset)
}

// Follow advances the camera one frame towards the player at p.
func (r *Rig) Follow(p geom.Vec3) {
	r.Position = r.Position.Lerp(r.Target(p), r.Factor)
	r.LookAt = ground(p)
}

// Distance returns how far the camera is from its target for a player at p.
func (r *Rig) Distance(p geom.Vec3) float64 {
	return r.Target(p).Sub(r.Position).Len()
}

// Focus is the ground point the camera is currently centered over, i.e.
// its position with the offset taken back out.
func (r *Rig) Focus() geom.Vec3 {
	return ground(r.Position.Sub(r.Offset))
}
