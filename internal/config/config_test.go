package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got: %v", err)
	}

	if cfg.World.Width != 3600 || cfg.World.Height != 2200 {
		t.Errorf("Expected world 3600x2200, got %.0fx%.0f", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.ViewWidth != 900 || cfg.World.ViewHeight != 540 {
		t.Errorf("Expected view 900x540, got %dx%d", cfg.World.ViewWidth, cfg.World.ViewHeight)
	}
	if cfg.Glyphs.Count != 26 {
		t.Errorf("Expected 26 glyphs, got %d", cfg.Glyphs.Count)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Player.MaxSpeed != DefaultConfig().Player.MaxSpeed {
		t.Errorf("Expected default max speed, got %g", cfg.Player.MaxSpeed)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected defaults for an empty path, got error: %v", err)
	}
	if cfg.Field.Stars != 280 {
		t.Errorf("Expected 280 stars, got %d", cfg.Field.Stars)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.json")
	data := `{
		"world": {"width": 2000},
		"glyphs": {"count": 5},
		"audio": {"enabled": false}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.World.Width != 2000 {
		t.Errorf("Expected width 2000, got %.0f", cfg.World.Width)
	}
	if cfg.World.Height != 2200 {
		t.Errorf("Expected untouched height 2200, got %.0f", cfg.World.Height)
	}
	if cfg.Glyphs.Count != 5 {
		t.Errorf("Expected 5 glyphs, got %d", cfg.Glyphs.Count)
	}
	if cfg.Glyphs.MaxRadius != 44 {
		t.Errorf("Expected untouched max radius 44, got %g", cfg.Glyphs.MaxRadius)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio to be disabled")
	}
}

func TestLoadedVolumeIsValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.json")
	if err := os.WriteFile(path, []byte(`{"audio": {"volume": 4}}`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected a volume of 4 to be rejected")
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"view wider than world", func(c *Config) { c.World.ViewWidth = 4000 }},
		{"view taller than world", func(c *Config) { c.World.ViewHeight = 3000 }},
		{"zero view", func(c *Config) { c.World.ViewWidth = 0 }},
		{"margin too large", func(c *Config) { c.World.Margin = 1200 }},
		{"zero tps", func(c *Config) { c.World.TPS = 0 }},
		{"player ease above one", func(c *Config) { c.Player.Ease = 1.5 }},
		{"negative camera ease", func(c *Config) { c.Camera.Ease = -0.1 }},
		{"negative motes", func(c *Config) { c.Field.Motes = -1 }},
		{"inverted glyph radius", func(c *Config) { c.Glyphs.MinRadius = 50 }},
		{"glyph inset too large", func(c *Config) { c.Glyphs.Inset = 1500 }},
		{"ripple never fades", func(c *Config) { c.Ripples.Screen.Fade = 0 }},
		{"audio without rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 4 }},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected %q to be rejected", tt.name)
			}
		})
	}
}

func TestValidateAllowsEmptyWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Stars = 0
	cfg.Field.Motes = 0
	cfg.Glyphs.Count = 0
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected an empty world to be valid, got: %v", err)
	}
}
