package camera

import (
	"chosenoffset.com/vspaces/internal/core/geom"
)

// Viewport maps the X-Z plane onto the screen for the top-down view: -Z is
// up on screen and the rig's focus sits at the center.
type Viewport struct {
	Width, Height int
	Zoom          float64
	Center        geom.Vec3
}

// NewViewport creates a viewport centered on the rig's focus.
func NewViewport(r *Rig, width, height int, zoom float64) Viewport {
	if zoom <= 0 {
		zoom = 1
	}
	return Viewport{Width: width, Height: height, Zoom: zoom, Center: r.Focus()}
}

// ToScreen projects a world point to pixel coordinates.
func (v Viewport) ToScreen(x, z float64) (float32, float32) {
	sx := (x-v.Center.X)*v.Zoom + float64(v.Width)/2
	sy := (z-v.Center.Z)*v.Zoom + float64(v.Height)/2
	return float32(sx), float32(sy)
}

// Scale converts a world length to pixels.
func (v Viewport) Scale(l float64) float32 {
	return float32(l * v.Zoom)
}

// Visible reports whether any part of r is on screen.
func (v Viewport) Visible(r geom.Rect) bool {
	x0, y0 := v.ToScreen(r.MinX(), r.MinZ())
	x1, y1 := v.ToScreen(r.MaxX(), r.MaxZ())
	return x1 >= 0 && y1 >= 0 && x0 <= float32(v.Width) && y0 <= float32(v.Height)
}
