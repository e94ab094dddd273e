// Package lighting keeps the cosmetic point lights of a space. Lights are
// drawn as translucent glow discs on the ground plane; they never affect
// movement.
package lighting

import (
	"image/color"
	"sort"
)

// LightSource represents a single point light on the ground plane.
type LightSource struct {
	Name      string
	X         float64 // World X position
	Z         float64 // World Z position
	Radius    float64 // Reach in world units
	Intensity float64 // 0.0 to 1.0
	Color     color.NRGBA
}

// Manager handles all light sources of the open space.
type Manager struct {
	lights       []LightSource
	ambientLight float64 // 0.0 = pitch black, 1.0 = fully lit
}

// NewManager creates a lighting manager with the given ambient level.
func NewManager(ambient float64) *Manager {
	m := &Manager{}
	m.SetAmbientLight(ambient)
	return m
}

// SetAmbientLight sets the global ambient light level, clamped to [0,1].
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = clamp01(level)
}

// GetAmbientLight returns the current ambient light level.
func (m *Manager) GetAmbientLight() float64 {
	return m.ambientLight
}

// AddLight adds a light. Intensity is clamped to [0,1] and lights without
// reach are dropped.
func (m *Manager) AddLight(l LightSource) {
	if l.Radius <= 0 {
		return
	}
	l.Intensity = clamp01(l.Intensity)
	m.lights = append(m.lights, l)
}

// GetAllLights returns the lights ordered from dimmest to brightest so
// brighter glows are drawn last.
func (m *Manager) GetAllLights() []LightSource {
	out := append([]LightSource(nil), m.lights...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Intensity < out[j].Intensity
	})
	return out
}

// Glow returns the fill colour used for a light's disc: the light colour
// with alpha scaled by intensity and dimmed by the ambient level, so lights
// matter less in bright spaces.
func (m *Manager) Glow(l LightSource) color.NRGBA {
	c := l.Color
	c.A = uint8(float64(c.A) * l.Intensity * (1 - m.ambientLight*0.5) * 0.6)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
