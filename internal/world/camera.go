package world

import "math"

// Camera is the top-left corner of the viewport in world coordinates. It eases
// toward Target every tick.
type Camera struct {
	Pos    Point
	Target Point
}

// Drift is the slow breathing offset added to the camera target at time t.
func Drift(t float64) Point {
	return Point{
		X: math.Sin(t*0.55)*9 + math.Sin(t*0.13)*5,
		Y: math.Cos(t*0.48)*8 + math.Sin(t*0.17)*4,
	}
}

// aim sets the target so focus sits at the centre of a view of size (vw, vh),
// offset by drift and clamped to limit.
func (c *Camera) aim(focus Point, vw, vh float64, drift Point, limit Rect) {
	c.Target.X = Clamp(focus.X-vw/2+drift.X, limit.Min.X, limit.Max.X)
	c.Target.Y = Clamp(focus.Y-vh/2+drift.Y, limit.Min.Y, limit.Max.Y)
}

// ease moves the camera a fraction of the way to its target, staying inside
// limit.
func (c *Camera) ease(k float64, limit Rect) {
	c.Pos.X = Clamp(Lerp(c.Pos.X, c.Target.X, k), limit.Min.X, limit.Max.X)
	c.Pos.Y = Clamp(Lerp(c.Pos.Y, c.Target.Y, k), limit.Min.Y, limit.Max.Y)
}

// snap jumps straight to the target.
func (c *Camera) snap() {
	c.Pos = c.Target
}
