// Package world holds the state of the camera walk and advances it one tick at
// a time. It knows nothing about windows, input devices or drawing.
package world

import (
	"math/rand"

	"chosenoffset.com/camerawalk/internal/config"
)

// EventKind identifies what happened to a glyph during a tick.
type EventKind int

const (
	EventDiscovered EventKind = iota
	EventCollected
)

func (k EventKind) String() string {
	switch k {
	case EventDiscovered:
		return "discovered"
	case EventCollected:
		return "collected"
	default:
		return "unknown"
	}
}

// Event reports a glyph state change.
type Event struct {
	Kind  EventKind
	Glyph int // Glyph ID
	Pos   Point
}

// Stats are the counters shown on the HUD.
type Stats struct {
	Discovered int
	Collected  int
	Total      int
}

// World is the whole mutable state of the sketch.
type World struct {
	cfg *config.Config

	Width, Height float64
	ViewW, ViewH  float64

	Player  Player
	Camera  Camera
	Stars   []Star
	Motes   []Mote
	Glyphs  []Glyph
	Ripples []Ripple

	discovered int
	collected  int

	Tick int
}

// New builds a world from cfg, scattering stars, motes and glyphs with rng.
func New(cfg *config.Config, rng *rand.Rand) *World {
	wc := cfg.World
	w := &World{
		cfg:    cfg,
		Width:  wc.Width,
		Height: wc.Height,
		ViewW:  float64(wc.ViewWidth),
		ViewH:  float64(wc.ViewHeight),
		Player: Player{
			Pos:      Point{wc.Width * cfg.Player.SpawnX, wc.Height * cfg.Player.SpawnY},
			MaxSpeed: cfg.Player.MaxSpeed,
			Radius:   cfg.Player.Radius,
		},
	}
	w.Player.Pos = w.clampPlayer(w.Player.Pos)

	w.Stars = make([]Star, cfg.Field.Stars)
	for i := range w.Stars {
		w.Stars[i] = newStar(rng, w.Width, w.Height)
	}

	w.Motes = make([]Mote, cfg.Field.Motes)
	for i := range w.Motes {
		w.Motes[i] = newMote(rng, w.Width, w.Height)
	}

	area := w.Bounds().Expand(-cfg.Glyphs.Inset)
	w.Glyphs = make([]Glyph, cfg.Glyphs.Count)
	for i := range w.Glyphs {
		w.Glyphs[i] = newGlyph(rng, i, area, cfg.Glyphs.MinRadius, cfg.Glyphs.MaxRadius)
	}

	w.Camera.aim(w.Player.Pos, w.ViewW, w.ViewH, Point{}, w.CameraLimits())
	w.Camera.snap()

	return w
}

// Time is the sketch clock in seconds, derived from the tick counter.
func (w *World) Time() float64 {
	return float64(w.Tick) / float64(w.cfg.World.TPS)
}

// Bounds is the whole world rectangle.
func (w *World) Bounds() Rect {
	return Rect{Max: Point{w.Width, w.Height}}
}

// PlayerLimits is the rectangle the player is kept inside.
func (w *World) PlayerLimits() Rect {
	return w.Bounds().Expand(-w.cfg.World.Margin)
}

// CameraLimits is the range of valid camera positions.
func (w *World) CameraLimits() Rect {
	return Rect{Max: Point{w.Width - w.ViewW, w.Height - w.ViewH}}
}

// Viewport is the visible part of the world.
func (w *World) Viewport() Rect {
	return Rect{
		Min: w.Camera.Pos,
		Max: Point{w.Camera.Pos.X + w.ViewW, w.Camera.Pos.Y + w.ViewH},
	}
}

// Stats returns the discovery counters.
func (w *World) Stats() Stats {
	return Stats{Discovered: w.discovered, Collected: w.collected, Total: len(w.Glyphs)}
}

// PlayerNear reports whether the player is inside g's collect radius.
func (w *World) PlayerNear(g *Glyph) bool {
	return Dist(w.Player.Pos, g.Pos) < g.Radius
}

// SpawnScreenRipple adds a ripple at a screen position, e.g. a mouse click.
func (w *World) SpawnScreenRipple(x, y float64) {
	w.Ripples = append(w.Ripples, newRipple(Point{x, y}, SpaceScreen, w.cfg.Ripples.Screen))
}

// Step advances the world by one tick and returns the glyph events it caused.
func (w *World) Step(c Controls) []Event {
	t := w.Time()

	w.Player.update(c, w.cfg.Player, w.PlayerLimits())

	drift := Drift(t)
	drift.X *= w.cfg.Camera.DriftScale
	drift.Y *= w.cfg.Camera.DriftScale
	limits := w.CameraLimits()
	w.Camera.aim(w.Player.Pos, w.ViewW, w.ViewH, drift, limits)
	w.Camera.ease(w.cfg.Camera.Ease, limits)

	for i := range w.Motes {
		w.Motes[i].update(w.Width, w.Height)
	}

	events := w.updateGlyphs(c)
	w.Ripples = updateRipples(w.Ripples, w.cfg.Ripples)

	w.Tick++
	return events
}

func (w *World) updateGlyphs(c Controls) []Event {
	var events []Event
	view := w.Viewport().Expand(w.cfg.Glyphs.DiscoverPadding)

	for i := range w.Glyphs {
		g := &w.Glyphs[i]
		if g.Collected {
			continue
		}

		if view.Contains(g.Pos) && g.discover() {
			w.discovered++
			events = append(events, Event{Kind: EventDiscovered, Glyph: g.ID, Pos: g.Pos})
		}

		g.Pulse = max(0, g.Pulse-w.cfg.Glyphs.PulseDecay)

		if !c.Collect || !w.PlayerNear(g) {
			continue
		}
		// A glyph can only be collected once it has been seen
		if g.discover() {
			w.discovered++
			events = append(events, Event{Kind: EventDiscovered, Glyph: g.ID, Pos: g.Pos})
		}
		if g.collect() {
			w.collected++
			w.Ripples = append(w.Ripples, newRipple(g.Pos, SpaceWorld, w.cfg.Ripples.World))
			events = append(events, Event{Kind: EventCollected, Glyph: g.ID, Pos: g.Pos})
		}
	}

	return events
}

func (w *World) clampPlayer(p Point) Point {
	l := w.PlayerLimits()
	return Point{Clamp(p.X, l.Min.X, l.Max.X), Clamp(p.Y, l.Min.Y, l.Max.Y)}
}
