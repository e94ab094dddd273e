package movement

import (
	"errors"
	"fmt"

	"chosenoffset.com/vspaces/internal/core/geom"
)

// VerticalMode selects the presentation-only motion layered onto Y.
type VerticalMode string

const (
	// VerticalNone holds Y constant.
	VerticalNone VerticalMode = "none"
	// VerticalBob adds a sinusoidal display offset while the player moves.
	VerticalBob VerticalMode = "bob"
	// VerticalGravity lets Y fall towards a minimum eye height.
	VerticalGravity VerticalMode = "gravity"
)

// VerticalConfig tunes the vertical mode. Only the fields of the selected
// mode are read.
type VerticalConfig struct {
	Mode      VerticalMode `yaml:"mode"`
	Amplitude float64      `yaml:"amplitude"`
	Frequency float64      `yaml:"frequency"` // radians per second
	Gravity   float64      `yaml:"gravity"`   // units per second
	EyeHeight float64      `yaml:"eye_height"`
}

// Config holds the per-space movement parameters.
type Config struct {
	Speed       float64        `yaml:"speed"` // units per second
	PlayerWidth float64        `yaml:"player_width"`
	PlayerDepth float64        `yaml:"player_depth"`
	Vertical    VerticalConfig `yaml:"vertical"`
}

// DefaultConfig matches the top-down virtual space.
func DefaultConfig() Config {
	return Config{
		Speed:       100,
		PlayerWidth: 3,
		PlayerDepth: 3,
		Vertical:    VerticalConfig{Mode: VerticalNone},
	}
}

// Validate reports configuration that would make movement meaningless.
func (c Config) Validate() error {
	var errs []error
	if !positive(c.Speed) {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}
	if !positive(c.PlayerWidth) || !positive(c.PlayerDepth) {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.PlayerWidth, c.PlayerDepth))
	}
	v := c.Vertical
	switch v.Mode {
	case "", VerticalNone:
	case VerticalBob:
		if !geom.Finite(v.Amplitude, v.Frequency) {
			errs = append(errs, fmt.Errorf("bob amplitude and frequency must be finite, got %v and %v", v.Amplitude, v.Frequency))
		}
	case VerticalGravity:
		if !(v.Gravity >= 0) || !geom.Finite(v.Gravity, v.EyeHeight) {
			errs = append(errs, fmt.Errorf("gravity must be finite and not negative, got %v to eye height %v", v.Gravity, v.EyeHeight))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown vertical mode %q", v.Mode))
	}
	return errors.Join(errs...)
}

// positive rejects zero, negatives, NaN and infinities.
func positive(v float64) bool {
	return v > 0 && geom.Finite(v)
}
