package sketch

import (
	"math"

	"chosenoffset.com/camerawalk/internal/render"
	"chosenoffset.com/camerawalk/internal/world"
)

// StarPoints returns the outline of a star with n points around (cx, cy),
// alternating between the outer radius and inner*outer. The first point is
// straight up, rotated by rot radians.
func StarPoints(cx, cy, outer, inner float64, n int, rot float64) []render.Point {
	if n < 2 {
		return nil
	}
	pts := make([]render.Point, 0, 2*n)
	step := math.Pi / float64(n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = outer * inner
		}
		a := rot - math.Pi/2 + float64(i)*step
		pts = append(pts, render.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// symbolPoints is the star outline for a glyph symbol drawn at text size
func symbolPoints(sym world.Symbol, cx, cy, size, rot float64) []render.Point {
	return StarPoints(cx, cy, size/2, sym.Inner, sym.Points, rot)
}

// alpha converts a 0-255 float to a channel value, clamping out-of-range input
func alpha(v float64) uint8 {
	return uint8(math.Round(world.Clamp(v, 0, 255)))
}
