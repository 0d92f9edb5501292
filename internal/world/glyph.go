package world

import (
	"math"
	"math/rand"
)

// Symbol describes the star shape a glyph is drawn with.
type Symbol struct {
	Name   string
	Rune   rune
	Points int     // Number of star points
	Inner  float64 // Inner radius as a fraction of the outer radius
	Hollow bool    // Drawn as an outline instead of a fill
}

// Symbols is the set glyphs draw from.
var Symbols = []Symbol{
	{Name: "six-pointed star", Rune: '✶', Points: 6, Inner: 0.45},
	{Name: "eight-pointed star", Rune: '✷', Points: 8, Inner: 0.4},
	{Name: "twelve-pointed star", Rune: '✹', Points: 12, Inner: 0.55},
	{Name: "circled star", Rune: '❂', Points: 8, Inner: 0.7, Hollow: true},
	{Name: "florette", Rune: '❀', Points: 5, Inner: 0.8, Hollow: true},
	{Name: "four-pointed star", Rune: '✦', Points: 4, Inner: 0.35},
	{Name: "open four-pointed star", Rune: '✧', Points: 4, Inner: 0.35, Hollow: true},
	{Name: "outlined star", Rune: '✩', Points: 5, Inner: 0.45, Hollow: true},
	{Name: "sixteen-pointed asterisk", Rune: '✺', Points: 16, Inner: 0.5},
	{Name: "spoked asterisk", Rune: '✻', Points: 6, Inner: 0.25},
}

// Glyph is a hidden collectible. It moves only forward through
// undiscovered -> discovered -> collected.
type Glyph struct {
	ID         int
	Pos        Point
	Symbol     int // Index into Symbols
	Discovered bool
	Collected  bool
	Seed       float64 // Phase offset for the idle animation
	Radius     float64 // Collect distance
	Pulse      float64 // Discovery highlight, decays to 0
}

// Shape returns the glyph's symbol.
func (g *Glyph) Shape() Symbol {
	return Symbols[g.Symbol%len(Symbols)]
}

// Bob is the vertical idle offset of the glyph at time t.
func (g *Glyph) Bob(t float64) float64 {
	return 6 * math.Sin(t*0.9+g.Seed)
}

func newGlyph(rng *rand.Rand, id int, area Rect, minR, maxR float64) Glyph {
	return Glyph{
		ID:     id,
		Pos:    Point{randRange(rng, area.Min.X, area.Max.X), randRange(rng, area.Min.Y, area.Max.Y)},
		Symbol: rng.Intn(len(Symbols)),
		Seed:   rng.Float64() * 1000,
		Radius: randRange(rng, minR, maxR),
	}
}

// discover marks g discovered. It reports whether the flag changed.
func (g *Glyph) discover() bool {
	if g.Discovered {
		return false
	}
	g.Discovered = true
	g.Pulse = 1
	return true
}

// collect marks g collected. It reports whether the flag changed.
func (g *Glyph) collect() bool {
	if g.Collected || !g.Discovered {
		return false
	}
	g.Collected = true
	return true
}
