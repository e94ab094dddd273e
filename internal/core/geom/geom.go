// Package geom holds the small amount of world-space math shared by the
// movement core and the camera: a 3D vector and axis-aligned rectangles on
// the X-Z ground plane.
package geom

import "math"

// Vec3 is a point or direction in world space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp moves v towards o by fraction t of the remaining distance.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Finite reports whether none of v's components is NaN or infinite.
func (v Vec3) Finite() bool {
	return Finite(v.X, v.Y, v.Z)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rect is an axis-aligned rectangle on the X-Z plane described by its
// center and extents. Obstacles and the player footprint are Rects.
type Rect struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X - r.Width/2 }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width/2 }

// MinZ returns the far edge.
func (r Rect) MinZ() float64 { return r.Z - r.Depth/2 }

// MaxZ returns the near edge.
func (r Rect) MaxZ() float64 { return r.Z + r.Depth/2 }

// Overlaps reports whether the interiors of r and o intersect. Rectangles
// that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX() < o.MaxX() && r.MaxX() > o.MinX() &&
		r.MinZ() < o.MaxZ() && r.MaxZ() > o.MinZ()
}

// Finite reports whether the center and extents are all finite.
func (r Rect) Finite() bool {
	return Finite(r.X, r.Z, r.Width, r.Depth)
}

// Bounds is the inclusive playable area of a space.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// Contains reports whether (x, z) lies inside b, edges included.
func (b Bounds) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Clamp constrains the X and Z components of p to b. Y is left alone.
func (b Bounds) Clamp(p Vec3) Vec3 {
	p.X = math.Max(b.MinX, math.Min(b.MaxX, p.X))
	p.Z = math.Max(b.MinZ, math.Min(b.MaxZ, p.Z))
	return p
}

// Finite reports whether all four edges are finite.
func (b Bounds) Finite() bool {
	return Finite(b.MinX, b.MaxX, b.MinZ, b.MaxZ)
}

// Width returns the X extent of b.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the Z extent of b.
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }
