package lighting

import (
	"image"
	"image/color"
	"math"
)

// CreateGlowSprite creates a white disc whose alpha falls off quadratically
// from the centre to the edge. Pixels are premultiplied.
func CreateGlowSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d >= 1 {
				continue
			}
			k := (1 - d) * (1 - d)
			a := uint8(math.Round(255 * k))
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}

	return img
}
