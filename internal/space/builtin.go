package space

import (
	"chosenoffset.com/vspaces/internal/camera"
	"chosenoffset.com/vspaces/internal/core/geom"
	"chosenoffset.com/vspaces/internal/input"
	"chosenoffset.com/vspaces/internal/movement"
)

// First-person spaces share the walking pace and the fall towards eye height.
func firstPerson(id, name, description string) Definition {
	d := Default()
	d.ID = id
	d.Name = name
	d.Description = description
	d.View = ViewFirstPerson
	d.Start = geom.Vec3{X: 0, Y: 1.6, Z: 5}
	d.Ambient = 0.2
	d.Movement = movement.Config{
		Speed:       5,
		PlayerWidth: 0.5,
		PlayerDepth: 0.5,
		Vertical: movement.VerticalConfig{
			Mode:      movement.VerticalGravity,
			Gravity:   9.8,
			EyeHeight: 1.6,
		},
	}
	d.Facing = input.FirstPersonFacing
	d.Camera = camera.Config{Factor: 1, Zoom: 24}
	return d
}

func obstacle(label string, x, z, width, depth float64) Obstacle {
	return Obstacle{Rect: geom.Rect{X: x, Z: z, Width: width, Depth: depth}, Label: label}
}

// virtualSpaceObstacles are the rocks, water and buildings of the large
// top-down map.
var virtualSpaceObstacles = []Obstacle{
	obstacle("rock", -150, 100, 30, 30),
	obstacle("rock", -125, 125, 18, 18),
	obstacle("rock", -160, 115, 12, 12),
	obstacle("building", 200, -200, 90, 90),
	obstacle("water", 0, 0, 240, 360),
	obstacle("building", 300, 150, 60, 60),
	obstacle("building", -300, -100, 40, 80),
	obstacle("building", 150, 300, 50, 50),
}

var virtualSpaceLights = []Light{
	{Name: "center", X: 0, Z: 0, Radius: 100, Intensity: 0.8, Color: "#00ffff"},
	{Name: "east", X: 200, Z: -200, Radius: 150, Intensity: 0.6, Color: "#ff00ff"},
	{Name: "west", X: -200, Z: 200, Radius: 150, Intensity: 0.6, Color: "#ffff00"},
}

// Builtin returns the spaces that ship with the application, in lobby order.
func Builtin() []Definition {
	zen := firstPerson("zen-garden", "Zen Garden", "A tranquil garden for meditation and peace.")
	zen.Boundary = geom.Bounds{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50}
	zen.Obstacles = []Obstacle{
		obstacle("rock", -3, 2, 1, 1),
		obstacle("pebble", -2.5, 2.5, 0.6, 0.6),
		obstacle("lantern", 5, -5, 0.6, 0.6),
	}
	zen.Palette = Palette{
		Background: "#1b2a1f",
		Ground:     "#4a7c59",
		Obstacle:   "#8d8d8d",
		Player:     "#f4d1a6",
		Boundary:   "#e2d3b5",
	}

	neon := firstPerson("neon-rooftop", "Neon Rooftop", "A vibrant, futuristic city overlook.")
	neon.Boundary = geom.Bounds{MinX: -15, MaxX: 15, MinZ: -15, MaxZ: 15}
	neon.Obstacles = []Obstacle{
		obstacle("tower", -15, 0, 5, 5),
		obstacle("tower", 15, -5, 6, 6),
	}
	neon.Lights = []Light{
		{Name: "sign", X: -10, Z: -14, Radius: 10, Intensity: 1, Color: "#800080"},
		{Name: "sign", X: 8, Z: -14, Radius: 10, Intensity: 1, Color: "#00ffff"},
	}
	neon.Ambient = 0.1
	neon.Palette = Palette{
		Background: "#101015",
		Ground:     "#1f1f2a",
		Obstacle:   "#2b2b3d",
		Player:     "#f4d1a6",
		Boundary:   "#ff00ff",
	}

	island := firstPerson("floating-island", "Floating Island", "A magical island floating in the sky.")
	island.Boundary = geom.Bounds{MinX: -8, MaxX: 8, MinZ: -8, MaxZ: 8}
	island.Obstacles = []Obstacle{
		obstacle("crystal", 0, 0, 2, 2),
	}
	island.Lights = []Light{
		{Name: "crystal", X: 0, Z: 0, Radius: 15, Intensity: 1, Color: "#00ffff"},
	}
	island.Ambient = 0.6
	island.Palette = Palette{
		Background: "#aaccff",
		Ground:     "#5c8a3a",
		Obstacle:   "#7dd3fc",
		Player:     "#f4d1a6",
		Boundary:   "#8b5a2b",
	}

	virtual := Default()
	virtual.ID = "virtual-space"
	virtual.Name = "Virtual Space"
	virtual.Description = "A 1000x1000 map seen from above. Use the arrow keys to navigate."
	virtual.Start = geom.Vec3{X: 0, Y: 1, Z: 200}
	virtual.Facing = input.TopDownFacing
	virtual.Obstacles = virtualSpaceObstacles
	virtual.Lights = virtualSpaceLights

	courtyard := Default()
	courtyard.ID = "courtyard"
	courtyard.Name = "Courtyard"
	courtyard.Description = "The same map at walking pace, with a bounce in your step."
	courtyard.Start = geom.Vec3{X: 0, Y: 1, Z: 200}
	courtyard.Movement = movement.Config{
		Speed:       50,
		PlayerWidth: 1.5,
		PlayerDepth: 1.5,
		Vertical: movement.VerticalConfig{
			Mode:      movement.VerticalBob,
			Amplitude: 0.2,
			Frequency: 4,
		},
	}
	courtyard.Facing = input.TopDownFacing
	courtyard.Camera.Zoom = 6
	courtyard.Obstacles = virtualSpaceObstacles
	courtyard.Lights = virtualSpaceLights

	return []Definition{zen, neon, island, virtual, courtyard}
}
