// Package config provides the tuning values for the camera walk.
// Values are loaded from an optional JSON file layered over the defaults, so a
// file only needs to name the fields it changes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds every tunable of the sketch
type Config struct {
	World   WorldConfig  `json:"world"`
	Player  PlayerConfig `json:"player"`
	Camera  CameraConfig `json:"camera"`
	Field   FieldConfig  `json:"field"`
	Glyphs  GlyphConfig  `json:"glyphs"`
	Ripples RippleConfig `json:"ripples"`
	Audio   AudioConfig  `json:"audio"`
	HUD     HUDConfig    `json:"hud"`
}

// WorldConfig defines the world extents and the visible window into it
type WorldConfig struct {
	Width      float64 `json:"width"`       // World width in pixels
	Height     float64 `json:"height"`      // World height in pixels
	ViewWidth  int     `json:"view_width"`  // Logical screen width
	ViewHeight int     `json:"view_height"` // Logical screen height
	Margin     float64 `json:"margin"`      // Player keeps this far from the world edge
	TPS        int     `json:"tps"`         // Update ticks per second, used to derive time
}

// PlayerConfig defines how the glow moves
type PlayerConfig struct {
	Radius   float64 `json:"radius"`
	MaxSpeed float64 `json:"max_speed"` // Pixels per tick at full intent
	Ease     float64 `json:"ease"`      // Lerp factor toward the desired velocity
	Drag     float64 `json:"drag"`      // Velocity multiplier applied after easing
	SpawnX   float64 `json:"spawn_x"`   // Spawn as a fraction of world width
	SpawnY   float64 `json:"spawn_y"`   // Spawn as a fraction of world height
}

// CameraConfig defines the follow camera
type CameraConfig struct {
	Ease       float64 `json:"ease"`        // Lerp factor toward the target
	DriftScale float64 `json:"drift_scale"` // Multiplier on the breathing drift (0 disables)
	Parallax   float64 `json:"parallax"`    // Fraction of camera motion applied to the star layer
}

// FieldConfig defines the ambient particles
type FieldConfig struct {
	Stars int `json:"stars"`
	Motes int `json:"motes"`
}

// GlyphConfig defines the collectibles
type GlyphConfig struct {
	Count           int     `json:"count"`
	Inset           float64 `json:"inset"`            // Minimum distance from the world edge
	MinRadius       float64 `json:"min_radius"`       // Collect radius lower bound
	MaxRadius       float64 `json:"max_radius"`       // Collect radius upper bound
	DiscoverPadding float64 `json:"discover_padding"` // Viewport padding for discovery
	PulseDecay      float64 `json:"pulse_decay"`      // Highlight decay per tick
}

// RippleConfig defines both ripple kinds
type RippleConfig struct {
	World  RippleParams `json:"world"`
	Screen RippleParams `json:"screen"`
}

// RippleParams defines how one ripple kind expands and fades
type RippleParams struct {
	StartAlpha float64 `json:"start_alpha"`
	Grow       float64 `json:"grow"` // Radius added per tick
	Fade       float64 `json:"fade"` // Alpha removed per tick
}

// AudioConfig defines the chime synthesiser
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	Volume     float64 `json:"volume"` // Master volume (0-1)
}

// HUDConfig defines what the overlay shows
type HUDConfig struct {
	ShowControls bool    `json:"show_controls"`
	ShowMiniMap  bool    `json:"show_mini_map"`
	Opacity      float64 `json:"opacity"` // Panel background opacity (0-1)
	Title        string  `json:"title"`
}

// DefaultConfig returns the default tuning
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:      3600,
			Height:     2200,
			ViewWidth:  900,
			ViewHeight: 540,
			Margin:     30,
			TPS:        60,
		},
		Player: PlayerConfig{
			Radius:   12,
			MaxSpeed: 2.25,
			Ease:     0.08,
			Drag:     0.985,
			SpawnX:   0.5,
			SpawnY:   0.55,
		},
		Camera: CameraConfig{
			Ease:       0.06,
			DriftScale: 1,
			Parallax:   0.25,
		},
		Field: FieldConfig{
			Stars: 280,
			Motes: 140,
		},
		Glyphs: GlyphConfig{
			Count:           26,
			Inset:           120,
			MinRadius:       28,
			MaxRadius:       44,
			DiscoverPadding: 40,
			PulseDecay:      0.03,
		},
		Ripples: RippleConfig{
			World:  RippleParams{StartAlpha: 180, Grow: 3.6, Fade: 4.8},
			Screen: RippleParams{StartAlpha: 170, Grow: 3.1, Fade: 4.2},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		HUD: HUDConfig{
			ShowControls: true,
			ShowMiniMap:  true,
			Opacity:      0.35,
			Title:        "Meditative Camera Walk",
		},
	}
}

// LoadConfig loads the config from a JSON file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations the simulation cannot honour
func (c *Config) Validate() error {
	w := c.World
	if w.ViewWidth <= 0 || w.ViewHeight <= 0 {
		return fmt.Errorf("view size must be positive, got %dx%d", w.ViewWidth, w.ViewHeight)
	}
	if w.Width < float64(w.ViewWidth) || w.Height < float64(w.ViewHeight) {
		return fmt.Errorf("world %.0fx%.0f is smaller than the view %dx%d", w.Width, w.Height, w.ViewWidth, w.ViewHeight)
	}
	if w.Margin < 0 || 2*w.Margin > w.Width || 2*w.Margin > w.Height {
		return fmt.Errorf("margin %.1f does not fit the world", w.Margin)
	}
	if w.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", w.TPS)
	}

	if c.Player.Ease < 0 || c.Player.Ease > 1 {
		return fmt.Errorf("player ease must be in [0, 1], got %g", c.Player.Ease)
	}
	if c.Camera.Ease < 0 || c.Camera.Ease > 1 {
		return fmt.Errorf("camera ease must be in [0, 1], got %g", c.Camera.Ease)
	}

	if c.Field.Stars < 0 || c.Field.Motes < 0 || c.Glyphs.Count < 0 {
		return errors.New("entity counts must not be negative")
	}
	if c.Glyphs.MinRadius > c.Glyphs.MaxRadius {
		return fmt.Errorf("glyph radius range [%g, %g] is inverted", c.Glyphs.MinRadius, c.Glyphs.MaxRadius)
	}
	if 2*c.Glyphs.Inset > w.Width || 2*c.Glyphs.Inset > w.Height {
		return fmt.Errorf("glyph inset %.1f does not fit the world", c.Glyphs.Inset)
	}

	for name, p := range map[string]RippleParams{"world": c.Ripples.World, "screen": c.Ripples.Screen} {
		if p.Fade <= 0 {
			return fmt.Errorf("%s ripple fade must be positive, got %g", name, p.Fade)
		}
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %g", c.Audio.Volume)
	}

	return nil
}
