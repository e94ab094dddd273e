package movement

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/vspaces/internal/core/geom"
	"chosenoffset.com/vspaces/internal/input"
)

var (
	water  = geom.Rect{X: 0, Z: 0, Width: 240, Depth: 360}
	bounds = geom.Bounds{MinX: -500, MaxX: 500, MinZ: -500, MaxZ: 500}

	virtualSpaceObstacles = []geom.Rect{
		{X: -150, Z: 100, Width: 30, Depth: 30},
		{X: -125, Z: 125, Width: 18, Depth: 18},
		{X: -160, Z: 115, Width: 12, Depth: 12},
		{X: 200, Z: -200, Width: 90, Depth: 90},
		water,
		{X: 300, Z: 150, Width: 60, Depth: 60},
		{X: -300, Z: -100, Width: 40, Depth: 80},
		{X: 150, Z: 300, Width: 50, Depth: 50},
	}
)

func allIntents() []input.Intent {
	var out []input.Intent
	for mask := 0; mask < 16; mask++ {
		out = append(out, input.Intent{
			Forward:  mask&1 != 0,
			Backward: mask&2 != 0,
			Left:     mask&4 != 0,
			Right:    mask&8 != 0,
		})
	}
	return out
}

func TestDirectionIsUnitOrZero(t *testing.T) {
	for _, in := range allIntents() {
		d := Direction(in)
		assert.Zero(t, d.Y)

		cancels := in.Forward == in.Backward && in.Left == in.Right
		if !in.Any() || cancels {
			assert.Equal(t, geom.Vec3{}, d, "intent %+v", in)
			continue
		}
		assert.InDelta(t, 1.0, d.Len(), 1e-9, "intent %+v", in)
	}
}

func TestStepMovesOutsideObstacle(t *testing.T) {
	it := NewIntegrator(DefaultConfig(), []geom.Rect{water}, bounds, geom.Vec3{X: 0, Y: 1, Z: 200})

	got := it.Step(input.Intent{Backward: true}, 0.1)

	assert.InDelta(t, 0, got.X, 1e-9)
	assert.Equal(t, 1.0, got.Y)
	assert.InDelta(t, 210, got.Z, 1e-9)
}

func TestStepRejectsMoveIntoObstacle(t *testing.T) {
	it := NewIntegrator(DefaultConfig(), []geom.Rect{water}, bounds, geom.Vec3{X: 0, Y: 1, Z: 10})

	got := it.Step(input.Intent{Backward: true}, 0.1)

	assert.Equal(t, geom.Vec3{X: 0, Y: 1, Z: 10}, got)
}

func TestStepStopsAtObstacleEdge(t *testing.T) {
	// Touching is not overlapping: the player can stand flush with the water.
	start := geom.Vec3{X: 0, Y: 1, Z: 187.75}
	it := NewIntegrator(DefaultConfig(), []geom.Rect{water}, bounds, start)

	got := it.Step(input.Intent{Forward: true}, 0.0625)
	assert.Equal(t, 181.5, got.Z)

	got = it.Step(input.Intent{Forward: true}, 0.0625)
	assert.InDelta(t, 181.5, got.Z, 1e-9, "next step would overlap and is rejected")
}

func TestStepSlidesAlongWall(t *testing.T) {
	// Player flush against the water's right edge, pushing left and forward.
	start := geom.Vec3{X: 121.5, Y: 1, Z: 0}
	it := NewIntegrator(DefaultConfig(), []geom.Rect{water}, bounds, start)

	got := it.Step(input.Intent{Left: true, Forward: true}, 0.1)

	assert.Equal(t, 121.5, got.X, "x is blocked")
	assert.InDelta(t, -10/math.Sqrt2, got.Z, 1e-9, "z still advances")
}

func TestStepClampsToBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 1000
	it := NewIntegrator(cfg, nil, bounds, geom.Vec3{X: 495, Y: 1, Z: -495})

	got := it.Step(input.Intent{Right: true, Forward: true}, 0.1)

	assert.Equal(t, 500.0, got.X)
	assert.Equal(t, -500.0, got.Z)
}

func TestStepClampDoesNotEnterStraddlingObstacle(t *testing.T) {
	// The wall runs from x=495 to x=505, across the x=500 edge. A step
	// from x=480 to x=520 misses it entirely, but the clamp would put the
	// player at x=500, inside it.
	wall := geom.Rect{X: 500, Z: 0, Width: 10, Depth: 10}
	cfg := DefaultConfig()
	cfg.Speed = 400
	it := NewIntegrator(cfg, []geom.Rect{wall}, bounds, geom.Vec3{X: 480, Y: 1, Z: 0})

	got := it.Step(input.Intent{Right: true}, 0.1)

	assert.Equal(t, geom.Vec3{X: 480, Y: 1, Z: 0}, got)
	assert.False(t, it.Collides(got.X, got.Z))
	assert.True(t, bounds.Contains(got.X, got.Z))
}

func TestStepClampsWithoutMovement(t *testing.T) {
	it := NewIntegrator(DefaultConfig(), nil, bounds, geom.Vec3{X: 800, Y: 1, Z: -900})

	got := it.Step(input.Intent{}, 0)

	assert.Equal(t, geom.Vec3{X: 500, Y: 1, Z: -500}, got)
}

func TestStepIgnoresBadDelta(t *testing.T) {
	start := geom.Vec3{X: 300, Y: 1, Z: 400}
	for _, dt := range []float64{0, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		it := NewIntegrator(DefaultConfig(), nil, bounds, start)
		got := it.Step(input.Intent{Forward: true, Right: true}, dt)
		assert.Equal(t, start, got, "dt=%v", dt)
		assert.False(t, it.Moving())
	}
}

func TestStepIdleIsIdempotent(t *testing.T) {
	start := geom.Vec3{X: -42, Y: 1, Z: 250}
	it := NewIntegrator(DefaultConfig(), virtualSpaceObstacles, bounds, start)

	for i := 0; i < 100; i++ {
		require.Equal(t, start, it.Step(input.Intent{}, 1.0/60))
	}
	assert.Equal(t, start, it.Step(input.Intent{Left: true, Right: true}, 1.0/60), "cancelling keys do not move")
}

func TestStepNeverEntersObstacleOrLeavesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	intents := allIntents()
	cfg := DefaultConfig()

	for run := 0; run < 50; run++ {
		var start geom.Vec3
		for {
			start = geom.Vec3{X: rng.Float64()*1000 - 500, Y: 1, Z: rng.Float64()*1000 - 500}
			if !NewIntegrator(cfg, virtualSpaceObstacles, bounds, start).Collides(start.X, start.Z) {
				break
			}
		}
		it := NewIntegrator(cfg, virtualSpaceObstacles, bounds, start)

		for step := 0; step < 400; step++ {
			dt := rng.Float64() * 0.1
			p := it.Step(intents[rng.Intn(len(intents))], dt)

			require.True(t, bounds.Contains(p.X, p.Z), "run %d step %d: %+v out of bounds", run, step, p)
			require.False(t, it.Collides(p.X, p.Z), "run %d step %d: %+v inside an obstacle", run, step, p)
		}
	}
}

func TestStepSpeedScalesDisplacement(t *testing.T) {
	for _, speed := range []float64{5, 50, 100} {
		cfg := DefaultConfig()
		cfg.Speed = speed
		it := NewIntegrator(cfg, nil, bounds, geom.Vec3{})

		got := it.Step(input.Intent{Right: true}, 0.1)
		assert.InDelta(t, speed*0.1, got.X, 1e-9)
	}
}

func TestVerticalBob(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vertical = VerticalConfig{Mode: VerticalBob, Amplitude: 0.2, Frequency: 4}
	it := NewIntegrator(cfg, nil, bounds, geom.Vec3{Y: 1})

	p := it.Step(input.Intent{Right: true}, 0.25)
	assert.Equal(t, 1.0, p.Y, "bob never touches the canonical position")
	assert.InDelta(t, 1+math.Sin(1)*0.2, it.Display().Y, 1e-9)
	assert.True(t, it.Moving())

	it.Step(input.Intent{}, 0.25)
	assert.Equal(t, 1.0, it.Display().Y, "no bob while idle")
}

func TestVerticalGravity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vertical = VerticalConfig{Mode: VerticalGravity, Gravity: 9.8, EyeHeight: 1.6}
	it := NewIntegrator(cfg, nil, bounds, geom.Vec3{Y: 5})

	p := it.Step(input.Intent{}, 0.1)
	assert.InDelta(t, 5-0.98, p.Y, 1e-9)

	for i := 0; i < 100; i++ {
		p = it.Step(input.Intent{}, 0.1)
	}
	assert.Equal(t, 1.6, p.Y)
	assert.Equal(t, p, it.Display())
}

func TestReset(t *testing.T) {
	it := NewIntegrator(DefaultConfig(), nil, bounds, geom.Vec3{})
	it.Step(input.Intent{Right: true}, 0.1)

	it.Reset(geom.Vec3{X: 3, Y: 1, Z: 4})

	assert.Equal(t, geom.Vec3{X: 3, Y: 1, Z: 4}, it.Position())
	assert.False(t, it.Moving())
	assert.Zero(t, it.Elapsed())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Speed = 0
	cfg.PlayerDepth = -1
	cfg.Vertical.Mode = "hover"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speed")
	assert.Contains(t, err.Error(), "player size")
	assert.Contains(t, err.Error(), "hover")
}

func TestConfigValidateRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"nan speed", func(c *Config) { c.Speed = math.NaN() }, "speed"},
		{"infinite speed", func(c *Config) { c.Speed = math.Inf(1) }, "speed"},
		{"nan width", func(c *Config) { c.PlayerWidth = math.NaN() }, "player size"},
		{"infinite depth", func(c *Config) { c.PlayerDepth = math.Inf(1) }, "player size"},
		{"nan gravity", func(c *Config) {
			c.Vertical = VerticalConfig{Mode: VerticalGravity, Gravity: math.NaN(), EyeHeight: 1.6}
		}, "gravity"},
		{"nan bob", func(c *Config) {
			c.Vertical = VerticalConfig{Mode: VerticalBob, Amplitude: math.NaN(), Frequency: 4}
		}, "bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
