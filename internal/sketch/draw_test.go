package sketch

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/camerawalk/internal/config"
	"chosenoffset.com/camerawalk/internal/render/rendertest"
)

func (f *fixture) draw() *rendertest.Image {
	f.rec.Reset()
	screen := rendertest.NewImage(900, 540)
	f.sketch.Draw(screen)
	return screen
}

func TestDrawClearsToBackground(t *testing.T) {
	f := newFixture(t, nil)
	screen := f.draw()

	if len(screen.Fills) == 0 {
		t.Fatal("Expected the screen to be filled")
	}
	if got := color.NRGBAModel.Convert(screen.Fills[0]); got != (color.NRGBA{12, 12, 12, 255}) {
		t.Errorf("Expected background (12, 12, 12), got %v", got)
	}
}

func TestDrawWorldLayerFollowsCamera(t *testing.T) {
	f := newFixture(t, nil)
	cam := f.sketch.World.Camera.Pos
	f.draw()

	found := false
	for _, op := range f.rec.Find("rect") {
		if op.W == 3600 && op.H == 2200 {
			found = true
			if math.Abs(op.X+cam.X) > 0.01 || math.Abs(op.Y+cam.Y) > 0.01 {
				t.Errorf("Expected world base at (%g, %g), got (%g, %g)", -cam.X, -cam.Y, op.X, op.Y)
			}
		}
	}
	if !found {
		t.Error("Expected the world base rectangle")
	}
}

func TestDrawStarsAreCulled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) {
		c.Glyphs.Count = 0
		c.Field.Motes = 0
	})
	f.draw()

	for _, op := range f.rec.Find("circle") {
		if op.Color == nil {
			continue
		}
		if c := color.NRGBAModel.Convert(op.Color).(color.NRGBA); c.R == 230 && c.G == 235 {
			if op.X < -50 || op.X > 950 || op.Y < -50 || op.Y > 590 {
				t.Errorf("Expected star outside the screen to be culled, drawn at (%g, %g)", op.X, op.Y)
			}
		}
	}
}

func TestDrawUndiscoveredGlyphIsFaint(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 1 })
	g := &f.sketch.World.Glyphs[0]
	g.Symbol = 0 // six-pointed, filled
	f.draw()

	polys := f.rec.Find("polygon")
	if len(polys) != 1 {
		t.Fatalf("Expected one glyph polygon, got %d", len(polys))
	}
	if polys[0].Alpha() != 10 {
		t.Errorf("Expected an undiscovered glyph at alpha 10, got %d", polys[0].Alpha())
	}
	if len(polys[0].Points) != 12 {
		t.Errorf("Expected 12 outline points, got %d", len(polys[0].Points))
	}
}

func TestDrawDiscoveredGlyphIsBright(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 1 })
	w := f.sketch.World
	g := &w.Glyphs[0]
	g.Symbol = 0
	g.Pos = w.Player.Pos
	f.tick(t)
	f.draw()

	polys := f.rec.Find("polygon")
	if len(polys) != 1 {
		t.Fatalf("Expected one glyph polygon, got %d", len(polys))
	}
	// Base 110±90 plus the fresh discovery highlight
	if polys[0].Alpha() < 150 {
		t.Errorf("Expected a freshly discovered glyph to be bright, got alpha %d", polys[0].Alpha())
	}

	// Glow ring and proximity hint
	if n := f.rec.Count("ring"); n != 2 {
		t.Errorf("Expected glow and hint rings, got %d rings", n)
	}
}

func TestDrawCollectedGlyphIsGone(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 1 })
	g := &f.sketch.World.Glyphs[0]
	g.Symbol = 0
	g.Discovered = true
	g.Collected = true
	f.draw()

	if n := f.rec.Count("polygon"); n != 0 {
		t.Errorf("Expected a collected glyph to vanish, got %d polygons", n)
	}
}

func TestDrawScreenRippleIsUntranslated(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 0 })
	f.input.Click(300, 200)
	f.tick(t)
	f.draw()

	rings := f.rec.Find("ring")
	if len(rings) != 1 {
		t.Fatalf("Expected one ripple ring, got %d", len(rings))
	}
	if rings[0].X != 300 || rings[0].Y != 200 {
		t.Errorf("Expected ripple at click position, got (%g, %g)", rings[0].X, rings[0].Y)
	}
}

func TestDrawLanternUsesGlowSprite(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 0 })
	f.tick(t)
	screen := f.draw()

	if len(screen.Draws) != 1 {
		t.Fatalf("Expected the lantern sprite to be drawn once, got %d", len(screen.Draws))
	}

	f.sketch.LightingManager.EnablePlayerLight(false)
	screen = f.draw()
	if len(screen.Draws) != 0 {
		t.Errorf("Expected no sprite with the lantern dimmed, got %d", len(screen.Draws))
	}
}

func TestDrawLanternGlowsOverGlyphs(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Glyphs.Count = 1 })
	w := f.sketch.World
	g := &w.Glyphs[0]
	g.Symbol = 0
	g.Pos = w.Player.Pos
	f.tick(t)

	f.rec.Reset()
	screen := rendertest.NewImage(900, 540)
	screen.Log = f.rec
	f.sketch.Draw(screen)

	glyph, core := -1, -1
	var sprites []int
	for i, op := range f.rec.Ops {
		switch {
		case op.Kind == "polygon":
			glyph = i
		case op.Kind == "image":
			sprites = append(sprites, i)
		case op.Kind == "circle" && op.Radius == w.Player.Radius && glyph >= 0:
			if core < 0 {
				core = i
			}
		}
	}

	if glyph < 0 || core < 0 {
		t.Fatalf("Expected a glyph and the player core, got glyph=%d core=%d", glyph, core)
	}
	if len(sprites) != 2 {
		t.Fatalf("Expected the halo and the lantern sprites, got %d", len(sprites))
	}
	if sprites[0] > glyph {
		t.Errorf("Expected the halo (op %d) under the glyph (op %d)", sprites[0], glyph)
	}
	if sprites[1] < glyph || sprites[1] > core {
		t.Errorf("Expected the lantern (op %d) between the glyph (op %d) and the player core (op %d)", sprites[1], glyph, core)
	}
}

func TestDrawHUDOnTop(t *testing.T) {
	f := newFixture(t, nil)
	f.draw()

	texts := f.rec.Texts()
	if len(texts) == 0 {
		t.Fatal("Expected HUD text")
	}
	last := f.rec.Ops[len(f.rec.Ops)-1]
	if last.Kind == "rect" && last.W == 3600 {
		t.Error("Expected the HUD after the world layer")
	}
}
