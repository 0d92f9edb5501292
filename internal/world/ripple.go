package world

import "chosenoffset.com/camerawalk/internal/config"

// Space tells the renderer which coordinate system a ripple lives in.
type Space int

const (
	SpaceWorld  Space = iota // Drawn through the camera transform
	SpaceScreen              // Drawn on top of everything, untranslated
)

// Ripple is an expanding ring that fades out and is then removed.
type Ripple struct {
	Pos    Point
	Radius float64
	Alpha  float64
	Space  Space
}

func newRipple(pos Point, space Space, p config.RippleParams) Ripple {
	return Ripple{Pos: pos, Alpha: p.StartAlpha, Space: space}
}

// updateRipples advances every ripple and drops the ones that have faded,
// reusing the backing array.
func updateRipples(rs []Ripple, cfg config.RippleConfig) []Ripple {
	kept := rs[:0]
	for _, r := range rs {
		p := cfg.World
		if r.Space == SpaceScreen {
			p = cfg.Screen
		}
		r.Radius += p.Grow
		r.Alpha -= p.Fade
		if r.Alpha > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}
