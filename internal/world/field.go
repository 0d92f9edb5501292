package world

import (
	"math"
	"math/rand"
)

// Star is a point of the far parallax layer.
type Star struct {
	Pos     Point
	Size    float64
	Twinkle float64 // Phase offset of the twinkle
}

// Mote is a drifting speck in the mid layer.
type Mote struct {
	Pos    Point
	Radius float64
	Alpha  float64
	Vel    Point
	Phase  float64
}

func newStar(rng *rand.Rand, w, h float64) Star {
	return Star{
		Pos:     Point{rng.Float64() * w, rng.Float64() * h},
		Size:    randRange(rng, 0.6, 2.2),
		Twinkle: rng.Float64() * 2 * math.Pi,
	}
}

func newMote(rng *rand.Rand, w, h float64) Mote {
	return Mote{
		Pos:    Point{rng.Float64() * w, rng.Float64() * h},
		Radius: randRange(rng, 1.5, 4.5),
		Alpha:  randRange(rng, 50, 140),
		Vel:    Point{randRange(rng, -0.25, 0.25), randRange(rng, -0.22, 0.22)},
		Phase:  rng.Float64() * 2 * math.Pi,
	}
}

// update drifts the mote and wraps it around a world of size (w, h).
func (m *Mote) update(w, h float64) {
	m.Phase += 0.01
	m.Pos.X = wrap(m.Pos.X+m.Vel.X+math.Sin(m.Phase)*0.08, w)
	m.Pos.Y = wrap(m.Pos.Y+m.Vel.Y+math.Cos(m.Phase*0.9)*0.08, h)
}

// Brightness is the twinkle factor of s at time t, in [0.2, 1].
func (s Star) Brightness(t float64) float64 {
	return 0.6 + 0.4*math.Sin(t*0.9+s.Twinkle)
}
