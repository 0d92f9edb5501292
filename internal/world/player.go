package world

import (
	"math"

	"chosenoffset.com/camerawalk/internal/config"
)

// Controls is the input state sampled once per tick.
type Controls struct {
	Left, Right, Up, Down bool
	Collect               bool // Hold-to-collect key
}

// Intent returns the normalised movement direction. Diagonals are scaled so
// they are no faster than straight moves.
func (c Controls) Intent() (dx, dy float64) {
	dx = axis(c.Left, c.Right)
	dy = axis(c.Up, c.Down)
	n := math.Max(1, math.Abs(dx)+math.Abs(dy))
	return dx / n, dy / n
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Player is the glow the user steers around the world.
type Player struct {
	Pos      Point
	Vel      Point
	MaxSpeed float64
	Radius   float64
}

// Speed is the current velocity magnitude.
func (p *Player) Speed() float64 {
	return math.Hypot(p.Vel.X, p.Vel.Y)
}

// update eases velocity toward the intent, applies drag, integrates and clamps
// the position to bounds.
func (p *Player) update(c Controls, cfg config.PlayerConfig, bounds Rect) {
	dx, dy := c.Intent()
	p.Vel.X = Lerp(p.Vel.X, dx*p.MaxSpeed, cfg.Ease) * cfg.Drag
	p.Vel.Y = Lerp(p.Vel.Y, dy*p.MaxSpeed, cfg.Ease) * cfg.Drag

	p.Pos.X = Clamp(p.Pos.X+p.Vel.X, bounds.Min.X, bounds.Max.X)
	p.Pos.Y = Clamp(p.Pos.Y+p.Vel.Y, bounds.Min.Y, bounds.Max.Y)
}
