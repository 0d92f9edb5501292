package world

import (
	"math"
	"testing"

	"chosenoffset.com/camerawalk/internal/config"
)

func singleGlyphWorld(t *testing.T) *World {
	t.Helper()
	return newTestWorld(t, func(c *config.Config) {
		c.Glyphs.Count = 1
	})
}

func TestGlyphDiscoveredWhenInView(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]
	g.Pos = Point{w.Camera.Pos.X + 100, w.Camera.Pos.Y + 100}

	events := w.Step(Controls{})

	if !g.Discovered {
		t.Fatal("Expected glyph in view to be discovered")
	}
	if len(events) != 1 || events[0].Kind != EventDiscovered || events[0].Glyph != g.ID {
		t.Fatalf("Expected one discovery event, got %+v", events)
	}
	// Pulse starts at 1 and has already decayed once
	if math.Abs(g.Pulse-0.97) > 1e-9 {
		t.Errorf("Expected pulse 0.97, got %g", g.Pulse)
	}

	events = w.Step(Controls{})
	if len(events) != 0 {
		t.Errorf("Expected discovery to fire once, got %+v", events)
	}
	if w.Stats().Discovered != 1 {
		t.Errorf("Expected 1 discovered, got %d", w.Stats().Discovered)
	}
}

func TestGlyphDiscoveryUsesPadding(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]

	view := w.Viewport()
	g.Pos = Point{view.Max.X + 30, view.Min.Y + 50}
	w.Step(Controls{})
	if !g.Discovered {
		t.Error("Expected glyph 30px outside the view to be discovered through padding")
	}

	w = singleGlyphWorld(t)
	g = &w.Glyphs[0]
	view = w.Viewport()
	g.Pos = Point{view.Max.X + 200, view.Min.Y + 50}
	w.Step(Controls{})
	if g.Discovered {
		t.Error("Expected glyph 200px outside the view to stay hidden")
	}
}

func TestGlyphCollectRequiresHoldKey(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]
	g.Pos = w.Player.Pos

	w.Step(Controls{})
	if g.Collected {
		t.Fatal("Expected glyph to stay uncollected without the hold key")
	}

	events := w.Step(Controls{Collect: true})
	if !g.Collected {
		t.Fatal("Expected glyph to be collected while holding the key")
	}
	if len(events) != 1 || events[0].Kind != EventCollected {
		t.Fatalf("Expected one collect event, got %+v", events)
	}

	if len(w.Ripples) != 1 || w.Ripples[0].Space != SpaceWorld {
		t.Fatalf("Expected a world ripple, got %+v", w.Ripples)
	}
	if w.Ripples[0].Pos != g.Pos {
		t.Errorf("Expected ripple at the glyph, got %v", w.Ripples[0].Pos)
	}

	stats := w.Stats()
	if stats.Collected != 1 || stats.Discovered != 1 || stats.Total != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestGlyphCollectOutOfReach(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]
	g.Pos = Point{w.Player.Pos.X + g.Radius + 5, w.Player.Pos.Y}

	w.Step(Controls{Collect: true})
	if g.Collected {
		t.Error("Expected glyph outside the collect radius to stay")
	}
	if !g.Discovered {
		t.Error("Expected nearby glyph to be discovered")
	}
}

func TestGlyphCollectedOnlyOnce(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]
	g.Pos = w.Player.Pos

	w.Step(Controls{Collect: true})
	for i := 0; i < 10; i++ {
		if events := w.Step(Controls{Collect: true}); len(events) != 0 {
			t.Fatalf("Expected no further events, got %+v", events)
		}
	}
	if w.Stats().Collected != 1 {
		t.Errorf("Expected 1 collected, got %d", w.Stats().Collected)
	}
}

func TestGlyphCollectDiscoversFirst(t *testing.T) {
	w := singleGlyphWorld(t)
	g := &w.Glyphs[0]
	g.Pos = w.Player.Pos
	// Push the discovery window away so only the collect path can discover
	w.cfg.Glyphs.DiscoverPadding = -10000

	events := w.Step(Controls{Collect: true})

	if len(events) != 2 {
		t.Fatalf("Expected discover and collect events, got %+v", events)
	}
	if events[0].Kind != EventDiscovered || events[1].Kind != EventCollected {
		t.Errorf("Expected discovered before collected, got %v then %v", events[0].Kind, events[1].Kind)
	}
	if !g.Discovered || !g.Collected {
		t.Error("Expected glyph to be both discovered and collected")
	}
}

func TestGlyphTransitionsAreOneWay(t *testing.T) {
	g := Glyph{}

	if g.collect() {
		t.Error("Expected an undiscovered glyph to refuse collection")
	}
	if !g.discover() {
		t.Error("Expected first discover to report a change")
	}
	if g.discover() {
		t.Error("Expected second discover to be a no-op")
	}
	if !g.collect() {
		t.Error("Expected a discovered glyph to be collectable")
	}
	if g.collect() {
		t.Error("Expected second collect to be a no-op")
	}
	if !g.Discovered {
		t.Error("Expected collected glyph to stay discovered")
	}
}

func TestGlyphShapeWraps(t *testing.T) {
	g := Glyph{Symbol: len(Symbols) + 2}
	if g.Shape() != Symbols[2] {
		t.Errorf("Expected symbol index to wrap, got %q", g.Shape().Name)
	}
}
