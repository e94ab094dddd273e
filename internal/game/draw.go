package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/vspaces/internal/camera"
	"chosenoffset.com/vspaces/internal/input"
	"chosenoffset.com/vspaces/internal/render"
	"chosenoffset.com/vspaces/internal/space"
)

// minPlayerPixels keeps the player visible when zoomed far out.
const minPlayerPixels = 6

var (
	textColor   = color.RGBA{255, 255, 255, 255}
	hintColor   = color.RGBA{160, 160, 170, 255}
	facingColor = color.RGBA{20, 20, 30, 255}
	shadowColor = color.RGBA{0, 0, 0, 77}
)

// overlayMargin is the gap between overlay text and the screen edges.
const overlayMargin = 16

// Draw renders the space from above, centered on the camera's focus.
func (s *Session) Draw(screen render.Image, r render.Renderer) {
	w, h := screen.Size()
	view := camera.NewViewport(s.Rig, w, h, s.Def.Camera.Zoom)

	screen.Fill(s.colors.background)
	s.drawGround(screen, r, view)
	s.drawLights(screen, r, view)
	s.drawObstacles(screen, r, view)
	s.drawPlayer(screen, r, view)
	if s.Def.View == space.ViewFirstPerson {
		r.FillCircle(screen, float32(w)/2, float32(h)/2, 2, color.RGBA{255, 255, 255, 128})
	}
	s.drawOverlay(screen, r)
}

func (s *Session) drawGround(screen render.Image, r render.Renderer, view camera.Viewport) {
	b := s.Def.Boundary
	x0, y0 := view.ToScreen(b.MinX, b.MinZ)
	r.FillRect(screen, x0, y0, view.Scale(b.Width()), view.Scale(b.Depth()), s.colors.ground)
	r.StrokeRect(screen, x0, y0, view.Scale(b.Width()), view.Scale(b.Depth()), 2, s.colors.boundary)
}

func (s *Session) drawLights(screen render.Image, r render.Renderer, view camera.Viewport) {
	for _, l := range s.Lights.GetAllLights() {
		x, y := view.ToScreen(l.X, l.Z)
		r.FillCircle(screen, x, y, view.Scale(l.Radius), s.Lights.Glow(l))
	}
}

func (s *Session) drawObstacles(screen render.Image, r render.Renderer, view camera.Viewport) {
	edge := darken(s.colors.obstacle)
	for _, o := range s.Integrator.Obstacles() {
		if !view.Visible(o) {
			continue
		}
		x, y := view.ToScreen(o.MinX(), o.MinZ())
		r.FillRect(screen, x, y, view.Scale(o.Width), view.Scale(o.Depth), s.colors.obstacle)
		r.StrokeRect(screen, x, y, view.Scale(o.Width), view.Scale(o.Depth), 1, edge)
	}
}

// drawPlayer draws the ground shadow, the footprint, a facing tick and the
// feet of the current walk frame. The bob offset lifts the sprite off its
// shadow on screen only.
func (s *Session) drawPlayer(screen render.Image, r render.Renderer, view camera.Viewport) {
	p := s.Integrator.Display()
	cx, groundY := view.ToScreen(p.X, p.Z)
	cy := groundY - view.Scale(p.Y-s.Integrator.Position().Y)

	pw := max(view.Scale(s.Def.Movement.PlayerWidth), minPlayerPixels)
	pd := max(view.Scale(s.Def.Movement.PlayerDepth), minPlayerPixels)

	r.StrokeCircle(screen, cx, groundY, max(pw, pd)*2/3, 2, shadowColor)

	footY := cy + pd/2
	switch s.frame {
	case FrameWalk1:
		r.FillCircle(screen, cx-pw/4, footY+2, pw/6, facingColor)
	case FrameWalk2:
		r.FillCircle(screen, cx+pw/4, footY+2, pw/6, facingColor)
	default:
		r.FillCircle(screen, cx-pw/4, footY, pw/6, facingColor)
		r.FillCircle(screen, cx+pw/4, footY, pw/6, facingColor)
	}

	r.FillRect(screen, cx-pw/2, cy-pd/2, pw, pd, s.colors.player)

	dx, dy := facingVector(s.Tracker.Facing())
	r.StrokeLine(screen, cx, cy, cx+dx*pw/2, cy+dy*pd/2, 2, facingColor)
}

// facingVector points towards the side of the sprite being shown: "front"
// faces the viewer at the bottom of the screen.
func facingVector(f input.Facing) (float32, float32) {
	switch f {
	case input.FacingBack:
		return 0, -1
	case input.FacingLeft:
		return -1, 0
	case input.FacingRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// drawOverlay writes the space name and position top-left, a status panel
// right-aligned top-right and the key hint bottom-left.
func (s *Session) drawOverlay(screen render.Image, r render.Renderer) {
	b := screen.Bounds()
	p := s.Integrator.Position()
	r.DrawText(screen, s.Def.Name, b.Min.X+overlayMargin, b.Min.Y+overlayMargin, textColor, 1.0)
	r.DrawText(screen, fmt.Sprintf("pos %.1f, %.1f, %.1f", p.X, p.Y, p.Z), b.Min.X+overlayMargin, b.Min.Y+overlayMargin+18, textColor, 1.0)

	motion := "idle"
	if s.Integrator.Moving() {
		motion = "walking"
	}
	y := b.Min.Y + overlayMargin
	for _, line := range []string{"Status", "facing " + string(s.Tracker.Facing()), motion} {
		w, h := r.MeasureText(line, 1.0)
		r.DrawText(screen, line, b.Max.X-overlayMargin-w, y, textColor, 1.0)
		y += h + 2
	}

	r.DrawText(screen, "Arrow keys or WASD to move, Esc to exit", b.Min.X+overlayMargin, b.Max.Y-28, hintColor, 1.0)
}

func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
