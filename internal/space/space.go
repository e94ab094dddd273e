// Package space describes the themed spaces a player can open: their
// geometry, movement tuning, camera and cosmetic palette. Definitions are
// built in and can be added to or overridden by YAML files.
package space

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/vspaces/internal/camera"
	"chosenoffset.com/vspaces/internal/core/geom"
	"chosenoffset.com/vspaces/internal/input"
	"chosenoffset.com/vspaces/internal/movement"
)

var (
	// ErrInvalidDefinition wraps every validation failure.
	ErrInvalidDefinition = errors.New("invalid space definition")
	// ErrUnknownSpace is returned when looking up an id that is not in the catalog.
	ErrUnknownSpace = errors.New("unknown space")
)

// View is how a space is presented.
type View string

const (
	ViewTopDown     View = "top-down"
	ViewFirstPerson View = "first-person"
)

// Obstacle is a static rectangle the player cannot enter.
type Obstacle struct {
	geom.Rect `yaml:",inline"`
	Label     string `yaml:"label"`
}

// Light is a cosmetic point light.
type Light struct {
	Name      string  `yaml:"name"`
	X         float64 `yaml:"x"`
	Z         float64 `yaml:"z"`
	Radius    float64 `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
	Color     string  `yaml:"color"`
}

// Palette holds the hex colours a space is drawn with.
type Palette struct {
	Background string `yaml:"background"`
	Ground     string `yaml:"ground"`
	Obstacle   string `yaml:"obstacle"`
	Player     string `yaml:"player"`
	Boundary   string `yaml:"boundary"`
}

// Definition is everything needed to open a space.
type Definition struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	View        View            `yaml:"view"`
	Start       geom.Vec3       `yaml:"start"`
	Ambient     float64         `yaml:"ambient"`
	Movement    movement.Config `yaml:"movement"`
	Facing      input.FacingMap `yaml:"facing"`
	Camera      camera.Config   `yaml:"camera"`
	Boundary    geom.Bounds     `yaml:"boundary"`
	Obstacles   []Obstacle      `yaml:"obstacles"`
	Lights      []Light         `yaml:"lights"`
	Palette     Palette         `yaml:"palette"`
}

// Default returns the values a YAML definition starts from.
func Default() Definition {
	return Definition{
		View:     ViewTopDown,
		Start:    geom.Vec3{Y: 1},
		Ambient:  0.4,
		Movement: movement.DefaultConfig(),
		Camera:   camera.DefaultConfig(),
		Boundary: geom.Bounds{MinX: -500, MaxX: 500, MinZ: -500, MaxZ: 500},
		Palette: Palette{
			Background: "#0f172a",
			Ground:     "#2d5016",
			Obstacle:   "#64748b",
			Player:     "#f4d1a6",
			Boundary:   "#22d3ee",
		},
	}
}

// normalize fills in fields whose default depends on other fields.
func (d *Definition) normalize() {
	if d.Name == "" {
		d.Name = d.ID
	}
	if d.Facing == (input.FacingMap{}) {
		if d.View == ViewFirstPerson {
			d.Facing = input.FirstPersonFacing
		} else {
			d.Facing = input.TopDownFacing
		}
	}
	if d.Movement.Vertical.Mode == "" {
		d.Movement.Vertical.Mode = movement.VerticalNone
	}
}

// Rects returns the obstacle rectangles.
func (d Definition) Rects() []geom.Rect {
	out := make([]geom.Rect, len(d.Obstacles))
	for i, o := range d.Obstacles {
		out[i] = o.Rect
	}
	return out
}

// Validate checks the definition. All problems are reported together.
func (d Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id is empty"))
	}
	switch d.View {
	case ViewTopDown, ViewFirstPerson:
	default:
		errs = append(errs, fmt.Errorf("unknown view %q", d.View))
	}
	if err := d.Movement.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := d.Facing.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(d.Camera.Factor > 0 && d.Camera.Factor <= 1) {
		errs = append(errs, fmt.Errorf("camera factor must be in (0,1], got %v", d.Camera.Factor))
	}
	if !(d.Camera.Zoom > 0) || !geom.Finite(d.Camera.Zoom) || !d.Camera.Offset.Finite() {
		errs = append(errs, fmt.Errorf("camera zoom must be positive and offset finite, got zoom %v offset %+v", d.Camera.Zoom, d.Camera.Offset))
	}
	if !geom.Finite(d.Ambient) {
		errs = append(errs, fmt.Errorf("ambient must be finite, got %v", d.Ambient))
	}
	b := d.Boundary
	switch {
	case !b.Finite():
		errs = append(errs, fmt.Errorf("boundary must be finite: %+v", b))
	case !(b.MinX <= b.MaxX && b.MinZ <= b.MaxZ):
		errs = append(errs, fmt.Errorf("boundary is inverted: %+v", b))
	case !d.Start.Finite():
		errs = append(errs, fmt.Errorf("start must be finite: %+v", d.Start))
	case !b.Contains(d.Start.X, d.Start.Z):
		errs = append(errs, fmt.Errorf("start (%v, %v) is outside the boundary", d.Start.X, d.Start.Z))
	}
	player := geom.Rect{X: d.Start.X, Z: d.Start.Z, Width: d.Movement.PlayerWidth, Depth: d.Movement.PlayerDepth}
	for i, o := range d.Obstacles {
		if !o.Finite() || !(o.Width > 0 && o.Depth > 0) {
			errs = append(errs, fmt.Errorf("obstacle %d must have a finite position and a positive size: %+v", i, o.Rect))
			continue
		}
		if player.Overlaps(o.Rect) {
			errs = append(errs, fmt.Errorf("start overlaps obstacle %d %q", i, o.Label))
		}
	}
	for _, l := range d.Lights {
		if !geom.Finite(l.X, l.Z, l.Radius, l.Intensity) {
			errs = append(errs, fmt.Errorf("light %q must have finite position, radius and intensity", l.Name))
		}
		if _, err := ParseColor(l.Color); err != nil {
			errs = append(errs, fmt.Errorf("light %q: %w", l.Name, err))
		}
	}
	for _, c := range []string{d.Palette.Background, d.Palette.Ground, d.Palette.Obstacle, d.Palette.Player, d.Palette.Boundary} {
		if _, err := ParseColor(c); err != nil {
			errs = append(errs, fmt.Errorf("palette: %w", err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidDefinition, d.ID, errors.Join(errs...))
}

// ParseColor parses a "#rrggbb" colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ColorOr parses s and falls back to fallback when it is malformed.
// Definitions are validated on load, so the fallback only covers
// hand-built values.
func ColorOr(s string, fallback color.NRGBA) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
