package world

import "math"

// Point represents a 2D point in world or screen space
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its min and max corners
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Expand grows r by pad on every side (shrinks for negative pad).
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Min: Point{r.Min.X - pad, r.Min.Y - pad},
		Max: Point{r.Max.X + pad, r.Max.Y + pad},
	}
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Dist is the euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Map linearly remaps v from [inLo, inHi] to [outLo, outHi].
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// wrap folds v back into [0, size] after a single overshoot.
func wrap(v, size float64) float64 {
	if v < 0 {
		v += size
	}
	if v > size {
		v -= size
	}
	return v
}

func randRange(rng interface{ Float64() float64 }, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
