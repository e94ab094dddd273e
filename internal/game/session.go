package game

import (
	"image/color"
	"math"
	"time"

	"chosenoffset.com/vspaces/internal/camera"
	"chosenoffset.com/vspaces/internal/core/geom"
	"chosenoffset.com/vspaces/internal/input"
	"chosenoffset.com/vspaces/internal/movement"
	"chosenoffset.com/vspaces/internal/render"
	"chosenoffset.com/vspaces/internal/render/lighting"
	"chosenoffset.com/vspaces/internal/space"
)

// Frame is the walk-cycle sprite variant.
type Frame int

const (
	FrameIdle Frame = iota
	FrameWalk1
	FrameWalk2
)

// walkCycleRate is how many walk frames are shown per second.
const walkCycleRate = 8

// SessionOptions tune the frame clock.
type SessionOptions struct {
	MaxDelta float64          // seconds; larger gaps are clamped
	Now      func() time.Time // defaults to time.Now
}

// palette is a space's colours, parsed once.
type palette struct {
	background, ground, obstacle, player, boundary color.NRGBA
}

// Session is one open space: it owns the input tracker, the movement
// integrator and the camera rig, and runs them in that order each frame.
type Session struct {
	Def        space.Definition
	Tracker    *input.Tracker
	Integrator *movement.Integrator
	Rig        *camera.Rig
	Lights     *lighting.Manager

	colors   palette
	now      func() time.Time
	last     time.Time
	maxDelta float64
	frame    Frame
	detach   func()
}

// NewSession opens def and subscribes to keys. The caller must Close the
// session to release the key listeners.
func NewSession(def space.Definition, keys render.KeySource, opts SessionOptions) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = 0.1
	}

	s := &Session{
		Def:        def,
		Tracker:    input.NewTracker(input.DefaultBindings(), def.Facing),
		Integrator: movement.NewIntegrator(def.Movement, def.Rects(), def.Boundary, def.Start),
		Rig:        camera.NewRig(def.Camera, def.Start),
		Lights:     lighting.NewManager(def.Ambient),
		now:        opts.Now,
		maxDelta:   opts.MaxDelta,
	}
	s.colors = palette{
		background: space.ColorOr(def.Palette.Background, color.NRGBA{15, 23, 42, 255}),
		ground:     space.ColorOr(def.Palette.Ground, color.NRGBA{45, 80, 22, 255}),
		obstacle:   space.ColorOr(def.Palette.Obstacle, color.NRGBA{100, 116, 139, 255}),
		player:     space.ColorOr(def.Palette.Player, color.NRGBA{244, 209, 166, 255}),
		boundary:   space.ColorOr(def.Palette.Boundary, color.NRGBA{34, 211, 238, 255}),
	}
	for _, l := range def.Lights {
		s.Lights.AddLight(lighting.LightSource{
			Name:      l.Name,
			X:         l.X,
			Z:         l.Z,
			Radius:    l.Radius,
			Intensity: l.Intensity,
			Color:     space.ColorOr(l.Color, color.NRGBA{255, 255, 255, 255}),
		})
	}
	if keys != nil {
		s.detach = s.Tracker.Attach(keys)
	}
	return s
}

// Update advances the session by the wall-clock time since the last call.
// The first call after opening moves nothing.
func (s *Session) Update() {
	s.Step(s.tick())
}

// Step advances the session by dt seconds: movement first, then the camera
// reads the position the movement just produced.
func (s *Session) Step(dt float64) {
	pos := s.Integrator.Step(s.Tracker.Intent(), dt)
	s.Rig.Follow(pos)

	if s.Integrator.Moving() {
		cycle := int(math.Floor(s.Integrator.Elapsed()*walkCycleRate)) % 2
		s.frame = FrameWalk1 + Frame(cycle)
	} else {
		s.frame = FrameIdle
	}
}

func (s *Session) tick() float64 {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	dt := now.Sub(s.last).Seconds()
	s.last = now
	if dt < 0 {
		return 0
	}
	return math.Min(dt, s.maxDelta)
}

// Position returns the player's canonical position.
func (s *Session) Position() geom.Vec3 {
	return s.Integrator.Position()
}

// Facing returns the player's sprite facing.
func (s *Session) Facing() input.Facing {
	return s.Tracker.Facing()
}

// Frame returns the walk-cycle frame chosen by the last step.
func (s *Session) Frame() Frame {
	return s.frame
}

// Close releases the key listeners. It is safe to call more than once.
func (s *Session) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}
