package render

import "image/color"

// Canvas draws onto one destination image through a translation stack, so a
// whole layer can be drawn in world coordinates and shifted by the camera.
type Canvas struct {
	r     Renderer
	dst   Image
	dx    float64
	dy    float64
	saved [][2]float64
}

// NewCanvas wraps dst for drawing with r.
func NewCanvas(r Renderer, dst Image) *Canvas {
	return &Canvas{r: r, dst: dst}
}

// Renderer returns the backend the canvas draws with.
func (c *Canvas) Renderer() Renderer { return c.r }

// Size returns the destination size.
func (c *Canvas) Size() (int, int) { return c.dst.Size() }

// Push saves the current translation.
func (c *Canvas) Push() {
	c.saved = append(c.saved, [2]float64{c.dx, c.dy})
}

// Pop restores the translation saved by the matching Push. An unmatched Pop
// resets to the identity.
func (c *Canvas) Pop() {
	if len(c.saved) == 0 {
		c.dx, c.dy = 0, 0
		return
	}
	last := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.dx, c.dy = last[0], last[1]
}

// Translate shifts everything drawn afterwards by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.dx += x
	c.dy += y
}

func (c *Canvas) at(x, y float64) (float32, float32) {
	return float32(x + c.dx), float32(y + c.dy)
}

func (c *Canvas) points(pts []Point) []Point {
	if c.dx == 0 && c.dy == 0 {
		return pts
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{p.X + c.dx, p.Y + c.dy}
	}
	return out
}

// Fill covers the destination, ignoring the translation.
func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

// Circle draws a filled circle.
func (c *Canvas) Circle(x, y, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	px, py := c.at(x, y)
	c.r.FillCircle(c.dst, px, py, float32(radius), clr)
}

// Ring draws a circle outline.
func (c *Canvas) Ring(x, y, radius, width float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	px, py := c.at(x, y)
	c.r.StrokeCircle(c.dst, px, py, float32(radius), float32(width), clr)
}

// Rect draws a filled rectangle.
func (c *Canvas) Rect(x, y, w, h float64, clr color.Color) {
	px, py := c.at(x, y)
	c.r.FillRect(c.dst, px, py, float32(w), float32(h), clr)
}

// RoundRect draws a filled rectangle with rounded corners.
func (c *Canvas) RoundRect(x, y, w, h, radius float64, clr color.Color) {
	px, py := c.at(x, y)
	c.r.FillRoundRect(c.dst, px, py, float32(w), float32(h), float32(radius), clr)
}

// RoundRectOutline draws the outline of a rounded rectangle.
func (c *Canvas) RoundRectOutline(x, y, w, h, radius, width float64, clr color.Color) {
	px, py := c.at(x, y)
	c.r.StrokeRoundRect(c.dst, px, py, float32(w), float32(h), float32(radius), float32(width), clr)
}

// Polygon fills a closed shape.
func (c *Canvas) Polygon(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	c.r.FillPolygon(c.dst, c.points(pts), clr)
}

// Polyline strokes a path, optionally closing it.
func (c *Canvas) Polyline(pts []Point, closed bool, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	c.r.StrokePolyline(c.dst, c.points(pts), closed, float32(width), clr)
}

// Text draws str with its top-left corner at (x, y).
func (c *Canvas) Text(str string, x, y, size float64, clr color.Color) {
	px, py := c.at(x, y)
	c.r.DrawText(c.dst, str, float64(px), float64(py), size, clr)
}

// Image draws img scaled by scale with its centre at (x, y), tinted by tint.
func (c *Canvas) Image(img Image, x, y, scale float64, tint color.Color) {
	w, h := img.Size()
	opts := &DrawImageOptions{GeoM: NewGeoM(), Tint: tint}
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x+c.dx, y+c.dy)
	c.dst.DrawImage(img, opts)
}
