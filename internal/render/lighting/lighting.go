package lighting

import (
	"image/color"
	"math"
	"sort"

	"chosenoffset.com/camerawalk/internal/render"
)

// SpriteSize is the edge length of the generated glow sprite
const SpriteSize = 64

// LightSource represents a single glow in the world
type LightSource struct {
	X         float64     // World X position (in pixels)
	Y         float64     // World Y position (in pixels)
	Radius    float64     // Light radius (in pixels)
	Intensity float64     // Light intensity (0.0 to 1.0)
	Color     color.NRGBA // Light color
}

// Manager handles all light sources in the sketch
type Manager struct {
	playerLight   *LightSource
	playerLightOn bool
	glyphLights   map[int]*LightSource // Keyed by glyph ID
	sprite        render.Image
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		playerLightOn: true,
		glyphLights:   make(map[int]*LightSource),
	}
}

// GlowRadius is the lantern radius for a glow moving at speed at time t. It
// breathes slowly and swells with speed.
func GlowRadius(speed, t float64) float64 {
	breathe := 0.6 + 0.4*math.Sin(t*1.1)
	return 26 + breathe*10 + speed*6
}

// SetPlayerLight configures the player's lantern
func (m *Manager) SetPlayerLight(intensity float64, col color.NRGBA) {
	if m.playerLight == nil {
		m.playerLight = &LightSource{}
	}
	m.playerLight.Intensity = intensity
	m.playerLight.Color = col
}

// EnablePlayerLight turns on/off the player's lantern
func (m *Manager) EnablePlayerLight(enabled bool) {
	m.playerLightOn = enabled
}

// IsPlayerLightOn returns whether the player's lantern is currently on
func (m *Manager) IsPlayerLightOn() bool {
	return m.playerLightOn
}

// UpdatePlayerLight moves the lantern and recomputes its radius (called each frame)
func (m *Manager) UpdatePlayerLight(x, y, speed, t float64) {
	if m.playerLight == nil {
		return
	}
	m.playerLight.X = x
	m.playerLight.Y = y
	// The outer glow ring spans 1.3x the lantern radius
	m.playerLight.Radius = GlowRadius(speed, t) * 1.3
}

// PlayerLight returns a copy of the lantern, if configured
func (m *Manager) PlayerLight() (LightSource, bool) {
	if m.playerLight == nil {
		return LightSource{}, false
	}
	return *m.playerLight, true
}

// SetGlyphLight adds or updates the halo of a glyph
func (m *Manager) SetGlyphLight(id int, x, y, radius, intensity float64, col color.NRGBA) {
	light, ok := m.glyphLights[id]
	if !ok {
		light = &LightSource{}
		m.glyphLights[id] = light
	}
	light.X = x
	light.Y = y
	light.Radius = radius
	light.Intensity = clamp01(intensity)
	light.Color = col
}

// RemoveGlyphLight removes a glyph halo (e.g. once it is collected)
func (m *Manager) RemoveGlyphLight(id int) {
	delete(m.glyphLights, id)
}

// HasGlyphLight reports whether the glyph currently has a halo
func (m *Manager) HasGlyphLight(id int) bool {
	_, ok := m.glyphLights[id]
	return ok
}

// GlyphLights returns the glyph halos in glyph ID order
func (m *Manager) GlyphLights() []LightSource {
	ids := make([]int, 0, len(m.glyphLights))
	for id := range m.glyphLights {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lights := make([]LightSource, 0, len(ids))
	for _, id := range ids {
		lights = append(lights, *m.glyphLights[id])
	}
	return lights
}

// DrawGlyphLights renders the glyph halos as scaled glow sprites. The canvas
// translation decides whether lights land in world or screen space.
func (m *Manager) DrawGlyphLights(c *render.Canvas) {
	for _, light := range m.GlyphLights() {
		m.drawLight(c, light)
	}
}

// DrawPlayerLight renders the lantern glow if it is lit
func (m *Manager) DrawPlayerLight(c *render.Canvas) {
	if m.playerLightOn && m.playerLight != nil {
		m.drawLight(c, *m.playerLight)
	}
}

func (m *Manager) drawLight(c *render.Canvas, light LightSource) {
	if light.Radius <= 0 || light.Intensity <= 0 {
		return
	}
	if m.sprite == nil {
		m.sprite = c.Renderer().NewImageFromImage(CreateGlowSprite(SpriteSize))
	}
	tint := light.Color
	tint.A = uint8(math.Round(255 * clamp01(light.Intensity)))
	scale := light.Radius * 2 / SpriteSize
	c.Image(m.sprite, light.X, light.Y, scale, tint)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
